package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GS-Software-Solutions/TeddyServer/internal/runtimeclock"
	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

const (
	defaultPollInterval    = 10 * time.Second
	defaultPollMaxAttempts = 100
)

// ErrPollExhausted signals that the retry ceiling was hit without the vendor
// ever reporting a new message.
var ErrPollExhausted = errors.New("session: poll attempts exhausted")

// MessageChecker performs one single-shot poll of the vendor.
type MessageChecker func(ctx context.Context) (*teddy.CheckMessagesResponse, error)

// Poller repeatedly invokes a message check until a snapshot arrives or the
// attempt ceiling is reached. The ceiling is counted in attempts, not wall
// time. Empty-poll answers (teddy.ErrNoNewMessages) are swallowed between
// attempts; every other error propagates immediately.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
	Clock       runtimeclock.Clock
	Logger      *slog.Logger
}

func (p *Poller) WaitForMessages(ctx context.Context, check MessageChecker) (*teddy.CheckMessagesResponse, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultPollMaxAttempts
	}
	clock := p.Clock
	if clock == nil {
		clock = runtimeclock.System()
	}
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snapshot, err := check(ctx)
		if err == nil {
			log.Debug("poll_messages_found", "attempt", attempt)
			return snapshot, nil
		}
		if !errors.Is(err, teddy.ErrNoNewMessages) {
			return nil, err
		}
		log.Debug("poll_no_new_messages", "attempt", attempt, "max_attempts", maxAttempts)
		if attempt < maxAttempts {
			if err := clock.Sleep(ctx, interval); err != nil {
				return nil, err
			}
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrPollExhausted, maxAttempts)
}
