// Package validate checks the preconditions of a backup before anything is
// written to disk.
package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kebairia/addonsbackup/internal/target"
)

const (
	MsgMarkerMissing      = "Warcraft executable not found. Please verify warcraft directory is correct."
	MsgDestinationMissing = "Backup directory not found. Please verify backup directory is correct."
	MsgLabelMissing       = "No interface name specified."
	MsgRevisionMissing    = "No revision number specified."
	MsgDefaultFoldersOnly = "Only backing up default folders."
)

// defaultFolderCount is compared against the subdirectory count, not their
// names.
const defaultFolderCount = 2

// Validate runs every rule in a fixed order and returns all findings. Blank
// Label and Revision are normalized to "" on t.
func Validate(t *target.BackupTarget) Findings {
	var findings Findings
	add := func(s Severity, msg string) {
		findings = append(findings, Finding{Severity: s, Message: msg})
	}

	if !hasMarker(t.SourceRoot) {
		add(SeverityError, MsgMarkerMissing)
	}
	if !isDir(t.DestinationRoot) {
		add(SeverityError, MsgDestinationMissing)
	}
	if strings.TrimSpace(t.Label) == "" {
		add(SeverityWarning, MsgLabelMissing)
		t.Label = ""
	}
	if strings.TrimSpace(t.Revision) == "" {
		add(SeverityWarning, MsgRevisionMissing)
		t.Revision = ""
	}
	if len(t.Subdirectories) == defaultFolderCount {
		add(SeverityInfo, MsgDefaultFoldersOnly)
	}

	return findings
}

// hasMarker matches names case-insensitively, the way the game's own
// platform resolves them.
func hasMarker(root string) bool {
	if root == "" {
		return false
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !isMarkerName(entry.Name()) {
			continue
		}
		info, err := os.Stat(filepath.Join(root, entry.Name()))
		if err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}

func isMarkerName(name string) bool {
	for _, marker := range target.MarkerFilenames {
		if strings.EqualFold(name, marker) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
