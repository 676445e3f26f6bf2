// Package session drives the per-account lifecycle: login, availability,
// polling, normalization, forwarding, logout, cooldown — forever. Each
// account owns its own Session token and its own loop; accounts never share
// state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GS-Software-Solutions/TeddyServer/gsapi"
	"github.com/GS-Software-Solutions/TeddyServer/internal/runtimeclock"
	"github.com/GS-Software-Solutions/TeddyServer/normalize"
	"github.com/GS-Software-Solutions/TeddyServer/siteinfo"
	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

const (
	defaultCooldown      = 30 * time.Second
	defaultLogoutTimeout = 15 * time.Second
)

type Account struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// VendorClient is the slice of the teddy client the orchestrator needs.
type VendorClient interface {
	Login(ctx context.Context, creds teddy.Credentials) (*teddy.Session, error)
	Logout(ctx context.Context, sess *teddy.Session) error
	IsActive(ctx context.Context, sess *teddy.Session) (bool, error)
	StartSearch(ctx context.Context, sess *teddy.Session) (bool, error)
	CheckMessages(ctx context.Context, sess *teddy.Session) (*teddy.CheckMessagesResponse, error)
}

// Completer forwards a normalized conversation to the completion service.
type Completer interface {
	ChatCompletion(ctx context.Context, infos *siteinfo.SiteInfos) (*gsapi.Response, error)
}

type state int

const (
	stateLoggingIn state = iota
	stateCheckingActive
	stateSearching
	statePolling
	stateNormalizing
	stateForwarding
	stateLoggingOut
	stateDone
)

// Orchestrator runs the state machine for one account. Almost every failure
// degrades to the next stage instead of aborting: the loop's job is to stay
// alive across an unbounded run, and a lost cycle costs nothing.
type Orchestrator struct {
	Account   Account
	Client    VendorClient
	Completer Completer
	Poller    *Poller
	Cooldown  time.Duration
	Clock     runtimeclock.Clock
	Logger    *slog.Logger
}

// Run loops cycles until the context is cancelled. The loop never terminates
// on its own; after each cycle it cools down and starts over.
func (o *Orchestrator) Run(ctx context.Context) {
	log := o.logger().With("account", o.Account.Username)
	clock := o.clock()
	cooldown := o.Cooldown
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}

	for {
		if ctx.Err() != nil {
			log.Info("account_stop", "reason", "context_canceled")
			return
		}
		cycleLog := log.With("cycle_id", uuid.NewString())
		started := clock.Now()
		o.runCycle(ctx, cycleLog)
		cycleLog.Info("cycle_done", "duration_ms", clock.Now().Sub(started).Milliseconds())

		if err := clock.Sleep(ctx, cooldown); err != nil {
			log.Info("account_stop", "reason", "context_canceled")
			return
		}
	}
}

// runCycle walks one pass of the state machine. Each state handler decides
// the next state from its outcome; the transitions mirror the resilience
// policy: only a definitive search refusal or an exhausted poll short-circuit
// to logout, and logout is attempted whenever a token is held — even when the
// cycle panics.
func (o *Orchestrator) runCycle(ctx context.Context, log *slog.Logger) {
	var sess *teddy.Session
	defer func() {
		if r := recover(); r != nil {
			log.Error("cycle_panic", "panic", fmt.Sprint(r))
			o.bestEffortLogout(log, sess)
		}
	}()

	var snapshot *teddy.CheckMessagesResponse
	var infos *siteinfo.SiteInfos

	st := stateLoggingIn
	for st != stateDone {
		if ctx.Err() != nil {
			o.bestEffortLogout(log, sess)
			return
		}

		switch st {
		case stateLoggingIn:
			s, err := o.Client.Login(ctx, teddy.Credentials{
				Username: o.Account.Username,
				Password: o.Account.Password,
			})
			if err != nil {
				// No token yet, so no logout: straight to cooldown.
				log.Warn("login_failed", "error", err.Error())
				return
			}
			sess = s
			log.Info("login_ok")
			st = stateCheckingActive

		case stateCheckingActive:
			active, err := o.Client.IsActive(ctx, sess)
			switch {
			case err != nil:
				// Unknown state; assume not active and search anyway.
				log.Debug("activity_check_unknown", "error", err.Error())
				st = stateSearching
			case active:
				log.Debug("already_active")
				st = statePolling
			default:
				st = stateSearching
			}

		case stateSearching:
			ok, err := o.Client.StartSearch(ctx, sess)
			switch {
			case err != nil:
				// Best-effort continuation: an errored search start may
				// still have taken effect.
				log.Warn("search_start_error", "error", err.Error())
				st = statePolling
			case !ok:
				log.Warn("search_start_refused")
				st = stateLoggingOut
			default:
				log.Info("search_started")
				st = statePolling
			}

		case statePolling:
			snap, err := o.Poller.WaitForMessages(ctx, func(ctx context.Context) (*teddy.CheckMessagesResponse, error) {
				return o.Client.CheckMessages(ctx, sess)
			})
			if err != nil {
				log.Info("poll_gave_up", "error", err.Error())
				st = stateLoggingOut
				continue
			}
			snapshot = snap
			st = stateNormalizing

		case stateNormalizing:
			converted, err := normalize.Normalize(snapshot)
			if err != nil {
				log.Warn("normalize_failed", "error", err.Error())
				st = stateLoggingOut
				continue
			}
			infos = converted
			log.Info("normalize_ok", "messages", len(infos.Messages))
			st = stateForwarding

		case stateForwarding:
			resp, err := o.Completer.ChatCompletion(ctx, infos)
			if err != nil {
				log.Warn("forward_failed", "error", err.Error())
			} else {
				log.Info("forward_ok",
					"prompt_type", resp.PromptType,
					"alert", resp.Alert,
					"response_len", len(resp.ResText),
				)
			}
			st = stateLoggingOut

		case stateLoggingOut:
			o.bestEffortLogout(log, sess)
			st = stateDone
		}
	}
}

// bestEffortLogout invalidates the token if one is held. It runs on its own
// timeout from the background context so a cancelled cycle still releases
// the account server-side.
func (o *Orchestrator) bestEffortLogout(log *slog.Logger, sess *teddy.Session) {
	if !sess.Authenticated() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultLogoutTimeout)
	defer cancel()
	if err := o.Client.Logout(ctx, sess); err != nil {
		log.Warn("logout_failed", "error", err.Error())
		return
	}
	log.Info("logout_ok")
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o *Orchestrator) clock() runtimeclock.Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return runtimeclock.System()
}
