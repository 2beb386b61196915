// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mfadhilr/contekan/internal/adapter"
	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
)

const defaultCountdownSeconds = 3

// deleteTimer is the cancellable handle behind the countdown. Stop reports
// whether the timer was stopped before firing; a fired tick is additionally
// discarded by generation check, so Stop's return value alone is never
// trusted to close the cancel/fire race.
type deleteTimer interface {
	Stop() bool
}

type timerFactory func(d time.Duration, fn func()) deleteTimer

func newSystemTimer(d time.Duration, fn func()) deleteTimer {
	return time.AfterFunc(d, fn)
}

type deleteFlow struct {
	adapter adapter.ServerAdapter
	list    ListController
	logger  *logger.Logger

	mode          string
	countdownFrom int
	newTimer      timerFactory

	mu         sync.Mutex
	state      FlowState
	targetID   string
	remaining  int
	timer      deleteTimer
	generation uint64
	ctx        context.Context
	listener   func(DeleteEvent)
}

// NewDeleteFlow creates the deletion confirmation state machine. The
// confirm mode and the countdown start value come from cfg; an unset mode
// falls back to countdown, an unset countdown to three seconds.
func NewDeleteFlow(cfg config.Delete, serverAdapter adapter.ServerAdapter, list ListController, logger *logger.Logger) DeleteFlow {
	mode := cfg.ConfirmMode
	if mode == "" {
		mode = config.ConfirmCountdown
	}
	seconds := cfg.CountdownSeconds
	if seconds <= 0 {
		seconds = defaultCountdownSeconds
	}

	return &deleteFlow{
		adapter:       serverAdapter,
		list:          list,
		logger:        logger,
		mode:          mode,
		countdownFrom: seconds,
		newTimer:      newSystemTimer,
	}
}

func (f *deleteFlow) RequestDelete(ctx context.Context, id string) error {
	f.mu.Lock()

	if f.state == FlowExecuting {
		f.mu.Unlock()
		return fmt.Errorf("%w: cannot request delete of %s", ErrDeleteInFlight, f.targetID)
	}

	// a second request while one is pending cancels the prior countdown
	// and replaces it, so there is never more than one live timer
	f.stopTimerLocked()

	f.state = FlowPending
	f.targetID = id
	f.ctx = ctx
	if f.mode == config.ConfirmCountdown {
		f.remaining = f.countdownFrom
		f.armTimerLocked(ctx)
	} else {
		f.remaining = 0
	}

	event := f.eventLocked(nil)
	f.mu.Unlock()

	f.logger.Debug().Str("id", id).Str("mode", f.mode).Msg("delete requested")
	f.emit(event)
	return nil
}

func (f *deleteFlow) Confirm() error {
	f.mu.Lock()

	if f.state != FlowPending {
		f.mu.Unlock()
		return fmt.Errorf("%w", ErrNothingToConfirm)
	}

	f.stopTimerLocked()
	f.state = FlowExecuting
	f.remaining = 0
	id, ctx := f.targetID, f.ctx

	event := f.eventLocked(nil)
	f.mu.Unlock()

	f.emit(event)
	return f.execute(ctx, id)
}

func (f *deleteFlow) Cancel() {
	f.mu.Lock()

	if f.state != FlowPending {
		f.mu.Unlock()
		return
	}

	f.stopTimerLocked()
	id := f.targetID
	f.resetLocked()

	event := f.eventLocked(nil)
	f.mu.Unlock()

	f.logger.Debug().Str("id", id).Msg("delete cancelled")
	f.emit(event)
}

func (f *deleteFlow) State() (FlowState, string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.targetID, f.remaining
}

func (f *deleteFlow) SetListener(fn func(DeleteEvent)) {
	f.mu.Lock()
	f.listener = fn
	f.mu.Unlock()
}

// tick runs on the timer goroutine once per second. A tick whose generation
// no longer matches belongs to a cancelled or replaced countdown and is
// discarded.
func (f *deleteFlow) tick(ctx context.Context, generation uint64) {
	f.mu.Lock()

	if generation != f.generation || f.state != FlowPending {
		f.mu.Unlock()
		return
	}

	f.remaining--
	if f.remaining > 0 {
		f.armTimerLocked(ctx)
		event := f.eventLocked(nil)
		f.mu.Unlock()
		f.emit(event)
		return
	}

	f.stopTimerLocked()
	f.state = FlowExecuting
	f.remaining = 0
	id := f.targetID

	event := f.eventLocked(nil)
	f.mu.Unlock()

	f.emit(event)
	_ = f.execute(ctx, id)
}

// execute performs the single delete call. Success removes the snippet from
// the list controller; failure leaves it in place and surfaces the error
// via the return value and the listener. Either way the flow ends Idle.
func (f *deleteFlow) execute(ctx context.Context, id string) error {
	err := f.adapter.DeleteSnippet(ctx, id)

	f.mu.Lock()
	f.resetLocked()
	f.mu.Unlock()

	if err != nil {
		mapped := f.deleteError(id, err)
		f.logger.Error().Err(err).Str("id", id).Msg("delete failed, snippet retained")
		f.emit(DeleteEvent{State: FlowIdle, TargetID: id, Err: mapped})
		return mapped
	}

	f.list.ApplyDelete(id)
	f.logger.Info().Str("id", id).Msg("snippet deleted")
	f.emit(DeleteEvent{State: FlowIdle, TargetID: id})
	return nil
}

func (f *deleteFlow) deleteError(id string, err error) error {
	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAuthorization, err)
	default:
		return fmt.Errorf("%w: delete snippet %s: %w", ErrPersistence, id, err)
	}
}

func (f *deleteFlow) armTimerLocked(ctx context.Context) {
	generation := f.generation
	f.timer = f.newTimer(time.Second, func() { f.tick(ctx, generation) })
}

// stopTimerLocked stops the countdown by handle and bumps the generation so
// that an already-fired tick racing the stop cannot act.
func (f *deleteFlow) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.generation++
}

func (f *deleteFlow) resetLocked() {
	f.state = FlowIdle
	f.targetID = ""
	f.remaining = 0
	f.ctx = nil
}

func (f *deleteFlow) eventLocked(err error) DeleteEvent {
	return DeleteEvent{State: f.state, TargetID: f.targetID, Remaining: f.remaining, Err: err}
}

func (f *deleteFlow) emit(event DeleteEvent) {
	f.mu.Lock()
	listener := f.listener
	f.mu.Unlock()

	if listener != nil {
		listener(event)
	}
}
