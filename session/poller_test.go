package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

// fakeClock advances instantly and records every requested sleep.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return ctx.Err()
}

func (c *fakeClock) recorded() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

func TestWaitForMessagesReturnsThirdResult(t *testing.T) {
	snapshot := &teddy.CheckMessagesResponse{Status: true, Dialog: &teddy.Dialog{ID: 1}}
	calls := 0
	check := func(ctx context.Context) (*teddy.CheckMessagesResponse, error) {
		calls++
		if calls < 3 {
			return nil, teddy.ErrNoNewMessages
		}
		return snapshot, nil
	}

	p := &Poller{Interval: 10 * time.Second, MaxAttempts: 5, Clock: newFakeClock()}
	got, err := p.WaitForMessages(context.Background(), check)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != snapshot {
		t.Error("expected the third snapshot to be returned")
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 calls, got %d", calls)
	}
}

func TestWaitForMessagesExhaustsAttempts(t *testing.T) {
	calls := 0
	check := func(ctx context.Context) (*teddy.CheckMessagesResponse, error) {
		calls++
		return nil, teddy.ErrNoNewMessages
	}

	clock := newFakeClock()
	p := &Poller{Interval: 10 * time.Second, MaxAttempts: 5, Clock: clock}
	_, err := p.WaitForMessages(context.Background(), check)
	if !errors.Is(err, ErrPollExhausted) {
		t.Fatalf("expected ErrPollExhausted, got %v", err)
	}
	if calls != 5 {
		t.Errorf("expected exactly 5 calls, got %d", calls)
	}
	// No sleep after the final attempt.
	if got := len(clock.recorded()); got != 4 {
		t.Errorf("expected 4 inter-attempt sleeps, got %d", got)
	}
}

func TestWaitForMessagesPropagatesTransportError(t *testing.T) {
	wantErr := &teddy.RequestError{StatusCode: 502, Body: "bad gateway"}
	calls := 0
	check := func(ctx context.Context) (*teddy.CheckMessagesResponse, error) {
		calls++
		return nil, wantErr
	}

	p := &Poller{Interval: time.Second, MaxAttempts: 5, Clock: newFakeClock()}
	_, err := p.WaitForMessages(context.Background(), check)
	var reqErr *teddy.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError to propagate, got %v", err)
	}
	if calls != 1 {
		t.Errorf("transport errors must not be retried, got %d calls", calls)
	}
}

func TestWaitForMessagesStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	check := func(ctx context.Context) (*teddy.CheckMessagesResponse, error) {
		cancel()
		return nil, teddy.ErrNoNewMessages
	}

	p := &Poller{Interval: time.Second, MaxAttempts: 5, Clock: newFakeClock()}
	_, err := p.WaitForMessages(ctx, check)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
