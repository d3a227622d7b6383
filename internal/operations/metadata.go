package operations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/kebairia/addonsbackup/internal/mirror"
	"github.com/kebairia/addonsbackup/internal/target"
)

// MetadataFilename is written at the top of the destination path.
const MetadataFilename = "backup.json"

const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Record describes a single mirror run.
type Record struct {
	RunID          string        `json:"run_id"          mapstructure:"run_id"`
	Source         string        `json:"source"          mapstructure:"source"`
	Destination    string        `json:"destination"     mapstructure:"destination"`
	Label          string        `json:"label"           mapstructure:"label"`
	Revision       string        `json:"revision"        mapstructure:"revision"`
	Subdirectories []string      `json:"subdirectories"  mapstructure:"subdirectories"`
	Status         string        `json:"status"          mapstructure:"status"`
	Error          string        `json:"error,omitempty" mapstructure:"error,omitempty"`
	StartedAt      time.Time     `json:"started_at"      mapstructure:"-"`
	CompletedAt    time.Time     `json:"completed_at"    mapstructure:"-"`
	Duration       time.Duration `json:"duration_ns"     mapstructure:"-"`
	Directories    int           `json:"directories"     mapstructure:"directories"`
	Files          int           `json:"files"           mapstructure:"files"`
	SizeBytes      int64         `json:"size_bytes"      mapstructure:"size_bytes"`
}

func newRecord(t *target.BackupTarget) Record {
	return Record{
		RunID:          uuid.NewString(),
		Source:         t.SourceRoot,
		Destination:    t.DestinationPath(),
		Label:          t.Label,
		Revision:       t.Revision,
		Subdirectories: slices.Clone(t.Subdirectories),
		Status:         StatusRunning,
		StartedAt:      time.Now(),
	}
}

func (m *Record) finish(stats mirror.Stats, err error) {
	m.CompletedAt = time.Now()
	m.Duration = m.CompletedAt.Sub(m.StartedAt)
	m.Directories = stats.Directories
	m.Files = stats.Files
	m.SizeBytes = stats.Bytes
	if err != nil {
		m.Status = StatusFailed
		m.Error = err.Error()
		return
	}
	m.Status = StatusSuccess
}

// Fields flattens the record into alternating key/value pairs for the
// structured logger.
func (m Record) Fields() []any {
	var flat map[string]any
	if err := mapstructure.Decode(m, &flat); err != nil {
		return []any{"run_id", m.RunID, "status", m.Status}
	}
	flat["duration"] = m.Duration.String()

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	kv := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		kv = append(kv, k, flat[k])
	}
	return kv
}

// Load reads a record written by Write.
func (m *Record) Load(filePath string) error {
	jsonFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("couldn't open metadata file %q: %w", filePath, err)
	}
	defer jsonFile.Close()

	decoder := json.NewDecoder(jsonFile)
	if err := decoder.Decode(m); err != nil {
		return fmt.Errorf("decode metadata JSON: %w", err)
	}
	return nil
}

// Write stores the record as MetadataFilename in dirPath, which must exist.
func (m *Record) Write(dirPath string) error {
	filePath := filepath.Join(dirPath, MetadataFilename)

	jsonFile, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create metadata file %q: %w", filePath, err)
	}
	defer jsonFile.Close()

	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("encode metadata JSON: %w", err)
	}
	return nil
}
