// Package target describes a single addon backup: where it reads from, where
// it writes to and how the destination folder is named.
package target

import (
	"path/filepath"
	"slices"
	"time"
)

// TimestampLayout formats the creation time in the destination folder name
// as dd.MM.yyyy_HH.mm.
const TimestampLayout = "02.01.2006_15.04"

// DefaultSubdirectories are the interface and saved-variables trees.
var DefaultSubdirectories = []string{"Interface", "WTF"}

// MarkerFilenames identify a valid game installation directory.
var MarkerFilenames = []string{"wow.exe", "wow-64.exe"}

// BackupTarget holds the inputs of one backup run.
type BackupTarget struct {
	SourceRoot      string
	DestinationRoot string
	Label           string
	Revision        string
	// Subdirectories are relative to SourceRoot. Order drives progress
	// weighting and duplicates are kept.
	Subdirectories []string

	createdAt time.Time
}

// Option customizes a BackupTarget at construction.
type Option func(*BackupTarget)

// WithCreatedAt pins the creation timestamp instead of using the clock.
func WithCreatedAt(createdAt time.Time) Option {
	return func(t *BackupTarget) {
		t.createdAt = createdAt
	}
}

// WithSubdirectories replaces DefaultSubdirectories.
func WithSubdirectories(subdirectories ...string) Option {
	return func(t *BackupTarget) {
		t.Subdirectories = slices.Clone(subdirectories)
	}
}

// New creates a BackupTarget and captures its creation time once.
func New(sourceRoot, destinationRoot, label, revision string, opts ...Option) *BackupTarget {
	t := &BackupTarget{
		SourceRoot:      sourceRoot,
		DestinationRoot: destinationRoot,
		Label:           label,
		Revision:        revision,
		Subdirectories:  slices.Clone(DefaultSubdirectories),
		createdAt:       time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreatedAt returns the timestamp captured by New.
func (t *BackupTarget) CreatedAt() time.Time {
	return t.createdAt
}

// FolderName is the last element of DestinationPath.
func (t *BackupTarget) FolderName() string {
	return t.Revision + " - " + t.createdAt.Format(TimestampLayout)
}

// DestinationPath is DestinationRoot/Label/"Revision - dd.MM.yyyy_HH.mm".
func (t *BackupTarget) DestinationPath() string {
	return filepath.Join(t.DestinationRoot, t.Label, t.FolderName())
}

// SourceDir returns the absolute source directory of one subdirectory.
func (t *BackupTarget) SourceDir(subdirectory string) string {
	return filepath.Join(t.SourceRoot, subdirectory)
}

// DestinationDir returns where one subdirectory is mirrored to.
func (t *BackupTarget) DestinationDir(subdirectory string) string {
	return filepath.Join(t.DestinationPath(), subdirectory)
}
