package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const defaultBuffer = 64

// ErrStopped is returned by Do once the serializer has shut down.
var ErrStopped = errors.New("serializer stopped")

type job struct {
	name string
	fn   func(ctx context.Context) error
	done chan error
}

// Serializer runs submitted jobs one at a time, in submission order, on a
// single worker goroutine. It is the only writer of whatever state its jobs
// touch.
type Serializer struct {
	jobs    chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewSerializer creates a Serializer whose queue holds up to buffer pending
// jobs. If buffer <= 0, defaultBuffer is used.
func NewSerializer(buffer int, log zerolog.Logger) *Serializer {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Serializer{
		jobs:    make(chan job, buffer),
		stopped: make(chan struct{}),
		log:     log,
	}
}

// Start launches the worker. It stops when ctx is cancelled; jobs still
// queued at that point fail with ErrStopped.
func (s *Serializer) Start(ctx context.Context) {
	go s.run(ctx)
}

// Do submits fn and waits for its result. If ctx ends before the job is
// accepted, Do returns ctx.Err() and fn never runs. Once accepted, fn runs to
// completion with a context that is not cancelled by the caller.
func (s *Serializer) Do(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	j := job{name: name, fn: fn, done: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopped:
		return ErrStopped
	case s.jobs <- j:
	}
	select {
	case err := <-j.done:
		return err
	case <-s.stopped:
		// The worker may have finished this job just before stopping.
		select {
		case err := <-j.done:
			return err
		default:
			return ErrStopped
		}
	}
}

// Stopped is closed when the worker has exited.
func (s *Serializer) Stopped() <-chan struct{} {
	return s.stopped
}

func (s *Serializer) run(ctx context.Context) {
	defer close(s.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.jobs:
			j.done <- s.execute(context.WithoutCancel(ctx), j)
		}
	}
}

func (s *Serializer) execute(ctx context.Context, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("job", j.name).Interface("panic", r).Msg("serialized job panicked")
			err = fmt.Errorf("job %s panicked: %v", j.name, r)
		}
	}()
	return j.fn(ctx)
}
