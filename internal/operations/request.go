package operations

import (
	"fmt"
	"strings"

	"github.com/kebairia/addonsbackup/internal/sanitize"
	"github.com/kebairia/addonsbackup/internal/target"
	"github.com/kebairia/addonsbackup/internal/validate"
)

// Request carries the raw user inputs of a backup.
type Request struct {
	SourceRoot      string
	DestinationRoot string
	Label           string
	Revision        string
	// Subdirectories defaults to target.DefaultSubdirectories when empty.
	Subdirectories []string
}

// Target sanitizes the request and builds a BackupTarget from it. Roots and
// subdirectories lose invalid path characters, Label and Revision lose
// invalid file name characters.
func (req Request) Target(opts ...target.Option) *target.BackupTarget {
	if len(req.Subdirectories) > 0 {
		subs := make([]string, 0, len(req.Subdirectories))
		for _, sub := range req.Subdirectories {
			subs = append(subs, sanitize.Path(sub))
		}
		opts = append([]target.Option{target.WithSubdirectories(subs...)}, opts...)
	}
	return target.New(
		sanitize.Path(req.SourceRoot),
		sanitize.Path(req.DestinationRoot),
		sanitize.FileName(req.Label),
		sanitize.FileName(req.Revision),
		opts...,
	)
}

// Prepare builds and validates a target. The findings are always returned;
// the error wraps ErrValidation when any of them blocks the backup.
func Prepare(req Request, opts ...target.Option) (*target.BackupTarget, validate.Findings, error) {
	t := req.Target(opts...)
	findings := validate.Validate(t)
	if findings.HasErrors() {
		var msgs []string
		for _, f := range findings {
			if f.Severity == validate.SeverityError {
				msgs = append(msgs, f.Message)
			}
		}
		return t, findings, fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
	}
	return t, findings, nil
}
