package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GS-Software-Solutions/TeddyServer/internal/runtimeclock"
)

const defaultStagger = 20 * time.Second

// Runner is one account's long-lived loop.
type Runner interface {
	Run(ctx context.Context)
}

// Scheduler fans out account loops with staggered start offsets so the
// vendor is not hit by all accounts at once. It has no steady-state job after
// launch: the loops run independently until the context is cancelled.
type Scheduler struct {
	Stagger time.Duration
	Clock   runtimeclock.Clock
	Logger  *slog.Logger
}

func (s *Scheduler) Run(ctx context.Context, runners []Runner) {
	stagger := s.Stagger
	if stagger <= 0 {
		stagger = defaultStagger
	}
	clock := s.Clock
	if clock == nil {
		clock = runtimeclock.System()
	}
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	var wg sync.WaitGroup
	for i, runner := range runners {
		wg.Add(1)
		go func(index int, r Runner) {
			defer wg.Done()
			if delay := time.Duration(index) * stagger; delay > 0 {
				if err := clock.Sleep(ctx, delay); err != nil {
					return
				}
			}
			log.Info("account_loop_start", "index", index)
			r.Run(ctx)
		}(i, runner)
	}
	wg.Wait()
}
