package operations

import (
	"errors"
	"sync/atomic"

	"github.com/kebairia/addonsbackup/internal/logger"
	"github.com/kebairia/addonsbackup/internal/mirror"
)

var (
	// ErrValidation wraps blocking validation findings.
	ErrValidation = errors.New("validation failed")
	// ErrBusy is returned by Start while another run is in progress.
	ErrBusy = errors.New("a backup is already running")
)

// Runner executes one mirror operation at a time on a dedicated goroutine.
type Runner struct {
	engine        *mirror.Engine
	log           logger.Logger
	writeMetadata bool
	running       atomic.Bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithEngine replaces the default mirror engine.
func WithEngine(e *mirror.Engine) Option {
	return func(r *Runner) {
		if e != nil {
			r.engine = e
		}
	}
}

// WithLogger overrides logger.Global.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMetadata toggles writing MetadataFilename into the destination path.
func WithMetadata(enabled bool) Option {
	return func(r *Runner) {
		r.writeMetadata = enabled
	}
}

// NewRunner returns a Runner that writes a run record by default.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log:           logger.Global(),
		writeMetadata: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = mirror.New(mirror.WithLogger(r.log))
	}
	return r
}
