package validate

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kebairia/addonsbackup/internal/target"
)

// gameDir creates a source root holding the given marker file.
func gameDir(t *testing.T, marker string) string {
	t.Helper()
	dir := t.TempDir()
	if marker != "" {
		if err := os.WriteFile(filepath.Join(dir, marker), []byte("MZ"), 0o644); err != nil {
			t.Fatalf("write marker: %v", err)
		}
	}
	return dir
}

func severities(fs Findings) []Severity {
	out := make([]Severity, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Severity)
	}
	return out
}

func TestValidateReportsEveryRuleInOrder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	bt := target.New(gameDir(t, ""), missing, "   ", "\t")

	findings := Validate(bt)

	want := []Severity{SeverityError, SeverityError, SeverityWarning, SeverityWarning, SeverityInfo}
	if got := severities(findings); !slices.Equal(got, want) {
		t.Fatalf("severities = %v, want %v", got, want)
	}
	wantMsgs := []string{
		MsgMarkerMissing,
		MsgDestinationMissing,
		MsgLabelMissing,
		MsgRevisionMissing,
		MsgDefaultFoldersOnly,
	}
	for i, f := range findings {
		if f.Message != wantMsgs[i] {
			t.Errorf("finding %d = %q, want %q", i, f.Message, wantMsgs[i])
		}
	}
	if bt.Label != "" || bt.Revision != "" {
		t.Fatalf("blank names not normalized: label=%q revision=%q", bt.Label, bt.Revision)
	}
}

func TestValidateCleanTarget(t *testing.T) {
	bt := target.New(gameDir(t, "wow.exe"), t.TempDir(), "ElvUI", "13.54",
		target.WithSubdirectories("Interface", "WTF", "Fonts"))

	if findings := Validate(bt); len(findings) != 0 {
		t.Fatalf("unexpected findings: %v", findings.Lines())
	}
	if bt.Label != "ElvUI" || bt.Revision != "13.54" {
		t.Fatalf("non-blank names changed: %q %q", bt.Label, bt.Revision)
	}
}

func TestValidateDefaultFoldersIsInfoOnly(t *testing.T) {
	bt := target.New(gameDir(t, "wow-64.exe"), t.TempDir(), "ui", "1")

	findings := Validate(bt)
	if len(findings) != 1 || findings[0].Severity != SeverityInfo {
		t.Fatalf("findings = %v, want a single info", findings.Lines())
	}
	if findings.HasErrors() || findings.HasWarnings() {
		t.Fatal("info finding reported as blocking or warning")
	}
}

func TestValidateInfoRuleCountsEntries(t *testing.T) {
	bt := target.New(gameDir(t, "wow.exe"), t.TempDir(), "ui", "1",
		target.WithSubdirectories("Fonts", "Screenshots"))

	findings := Validate(bt)
	if len(findings) != 1 || findings[0].Message != MsgDefaultFoldersOnly {
		t.Fatalf("findings = %v, want the default folder note", findings.Lines())
	}
}

func TestValidateMarkerMatchIgnoresCase(t *testing.T) {
	bt := target.New(gameDir(t, "Wow.EXE"), t.TempDir(), "ui", "1",
		target.WithSubdirectories("Interface"))

	if findings := Validate(bt); findings.HasErrors() {
		t.Fatalf("marker not recognized: %v", findings.Lines())
	}
}

func TestValidateMarkerMustBeAFile(t *testing.T) {
	src := t.TempDir()
	if err := os.Mkdir(filepath.Join(src, "wow.exe"), 0o755); err != nil {
		t.Fatal(err)
	}
	bt := target.New(src, t.TempDir(), "ui", "1", target.WithSubdirectories("Interface"))

	findings := Validate(bt)
	if len(findings) != 1 || findings[0].Message != MsgMarkerMissing {
		t.Fatalf("findings = %v, want marker error", findings.Lines())
	}
}

func TestValidateMarkerSymlinkToFile(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "Wow.exe")
	if err := os.WriteFile(exe, []byte("MZ"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := t.TempDir()
	if err := os.Symlink(exe, filepath.Join(src, "wow.exe")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	bt := target.New(src, t.TempDir(), "ui", "1", target.WithSubdirectories("Interface"))

	if findings := Validate(bt); findings.HasErrors() {
		t.Fatalf("symlinked marker not recognized: %v", findings.Lines())
	}
}

func TestValidateMarkerSymlinkToDirectory(t *testing.T) {
	src := t.TempDir()
	if err := os.Symlink(t.TempDir(), filepath.Join(src, "wow.exe")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	bt := target.New(src, t.TempDir(), "ui", "1", target.WithSubdirectories("Interface"))

	findings := Validate(bt)
	if len(findings) != 1 || findings[0].Message != MsgMarkerMissing {
		t.Fatalf("findings = %v, want marker error", findings.Lines())
	}
}

func TestValidateDestinationRootMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	bt := target.New(gameDir(t, "wow.exe"), file, "ui", "1", target.WithSubdirectories("Interface"))

	findings := Validate(bt)
	if len(findings) != 1 || findings[0].Message != MsgDestinationMissing {
		t.Fatalf("findings = %v, want destination error", findings.Lines())
	}
}

func TestValidateRerunDoesNotAccumulate(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	bt := target.New(gameDir(t, "wow.exe"), missing, "ui", "1", target.WithSubdirectories("Interface"))

	for run := 0; run < 2; run++ {
		findings := Validate(bt)
		if len(findings) != 1 || findings[0].Message != MsgDestinationMissing {
			t.Fatalf("run %d: findings = %v", run, findings.Lines())
		}
	}
}

func TestFindingsLines(t *testing.T) {
	fs := Findings{
		{Severity: SeverityError, Message: "a"},
		{Severity: SeverityWarning, Message: "b"},
		{Severity: SeverityInfo, Message: "c"},
	}
	want := []string{"Error: a", "Warning: b", "Information: c"}
	if got := fs.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	if !fs.HasErrors() || !fs.HasWarnings() {
		t.Fatal("HasErrors/HasWarnings missed entries")
	}
}
