package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newStarted(t *testing.T) (*Serializer, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSerializer(0, zerolog.Nop())
	s.Start(ctx)
	t.Cleanup(cancel)
	return s, cancel
}

func TestSerializer_RunsJobsInSubmissionOrder(t *testing.T) {
	s, _ := newStarted(t)

	var (
		mu    sync.Mutex
		order []int
	)
	gate := make(chan struct{})

	// Block the worker so the following jobs queue up behind the first.
	first := make(chan error, 1)
	go func() {
		first <- s.Do(context.Background(), "gate", func(context.Context) error {
			<-gate
			return nil
		})
	}()
	time.Sleep(10 * time.Millisecond)

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Do(context.Background(), "append", func(context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}(i)
		// Stagger submissions so their queue order is deterministic.
		time.Sleep(5 * time.Millisecond)
	}
	close(gate)
	wg.Wait()
	if err := <-first; err != nil {
		t.Fatalf("gate job: %v", err)
	}

	for i, v := range order {
		if v != i+1 {
			t.Fatalf("expected submission order, got %v", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(order))
	}
}

func TestSerializer_ReturnsJobError(t *testing.T) {
	s, _ := newStarted(t)
	want := errors.New("boom")

	err := s.Do(context.Background(), "fail", func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestSerializer_AcceptedJobIgnoresCallerCancellation(t *testing.T) {
	s, _ := newStarted(t)
	ctx, cancel := context.WithCancel(context.Background())

	var sawCancel bool
	err := s.Do(ctx, "slow", func(jobCtx context.Context) error {
		cancel()
		time.Sleep(5 * time.Millisecond)
		sawCancel = jobCtx.Err() != nil
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawCancel {
		t.Fatal("job context must not be cancelled by the caller")
	}
}

func TestSerializer_RecoversPanics(t *testing.T) {
	s, _ := newStarted(t)

	err := s.Do(context.Background(), "panic", func(context.Context) error { panic("bad") })
	if err == nil {
		t.Fatal("expected error from panicking job")
	}
	// The worker must survive.
	if err := s.Do(context.Background(), "after", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("worker did not survive panic: %v", err)
	}
}

func TestSerializer_DoAfterStop(t *testing.T) {
	s, cancel := newStarted(t)
	cancel()
	<-s.Stopped()

	err := s.Do(context.Background(), "late", func(context.Context) error { return nil })
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
