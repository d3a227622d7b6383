package operations

import (
	"context"
	"fmt"
	"os"

	"github.com/kebairia/addonsbackup/internal/mirror"
	"github.com/kebairia/addonsbackup/internal/target"
)

// eventBuffer lets the worker run ahead of a slow consumer without
// reordering anything.
const eventBuffer = 64

// Event is either a progress update or, when Done is set, the single
// terminal signal of a run.
type Event struct {
	Percent int
	Message string
	Done    bool
	Err     error
	Record  Record
}

// Run mirrors t on the calling goroutine and records the outcome. The
// returned Record is filled in on success and failure.
func (r *Runner) Run(ctx context.Context, t *target.BackupTarget, rep mirror.Reporter) (Record, error) {
	record := newRecord(t)
	r.log.Info("backup started",
		"run_id", record.RunID,
		"source", record.Source,
		"destination", record.Destination,
	)

	stats, err := r.engine.Mirror(ctx, t, rep)
	record.finish(stats, err)

	if r.writeMetadata {
		r.writeRecord(&record)
	}

	if err != nil {
		r.log.Error("backup failed", record.Fields()...)
		return record, fmt.Errorf("backup to %q failed: %w", record.Destination, err)
	}
	r.log.Info("backup completed", record.Fields()...)
	return record, nil
}

// writeRecord is best effort: a run that never created its destination has
// nowhere to put a record.
func (r *Runner) writeRecord(record *Record) {
	if info, err := os.Stat(record.Destination); err != nil || !info.IsDir() {
		r.log.Debug("metadata skipped, destination missing", "destination", record.Destination)
		return
	}
	if err := record.Write(record.Destination); err != nil {
		r.log.Warn("write metadata", "run_id", record.RunID, "error", err.Error())
	}
}

// Start runs t on a new goroutine. Progress events are delivered in the order
// they are produced, followed by exactly one Done event, after which the
// channel is closed. The caller must drain the channel.
func (r *Runner) Start(ctx context.Context, t *target.BackupTarget) (<-chan Event, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	events := make(chan Event, eventBuffer)
	go func() {
		defer close(events)

		last := 0
		rep := mirror.ReporterFunc(func(percent int, message string) {
			last = percent
			events <- Event{Percent: percent, Message: message}
		})
		record, err := r.Run(ctx, t, rep)
		r.running.Store(false)
		events <- Event{Percent: last, Done: true, Err: err, Record: record}
	}()
	return events, nil
}
