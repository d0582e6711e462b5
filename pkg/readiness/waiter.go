// Copyright 2026 PixelPouch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package readiness implements the debugger-attach handshake between a host
// application and the tooling that drives it. A debug adapter running inside
// the host creates a marker file once it is listening; callers block on that
// marker with a bounded, cancellable poll.
package readiness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/livekit/protocol/logger"

	"github.com/pixelpouch/ppdev/pkg/util"
)

const (
	DefaultTimeout  = 60 * time.Second
	DefaultInterval = 500 * time.Millisecond

	progressInterval = 5 * time.Second
)

type Params struct {
	// Path of the marker. Only its existence is observed.
	Path string
	// Timeout bounds the whole wait. Zero means a single check.
	Timeout time.Duration
	// Interval between existence checks, must be positive and shorter
	// than a non-zero Timeout.
	Interval time.Duration
	// Watch adds change notification on the marker's directory. Polling
	// continues regardless.
	Watch bool

	Logger logger.Logger
	// Exists overrides the existence check, defaults to util.PathExists.
	Exists func(path string) (bool, error)
}

func DefaultParams(path string) Params {
	return Params{
		Path:     path,
		Timeout:  DefaultTimeout,
		Interval: DefaultInterval,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Path == "":
		return fmt.Errorf("%w: marker path is required", ErrInvalidConfig)
	case p.Interval <= 0:
		return fmt.Errorf("%w: poll interval must be positive, got %s", ErrInvalidConfig, p.Interval)
	case p.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidConfig, p.Timeout)
	case p.Timeout > 0 && p.Interval >= p.Timeout:
		return fmt.Errorf("%w: poll interval %s must be shorter than timeout %s", ErrInvalidConfig, p.Interval, p.Timeout)
	}
	return nil
}

// Waiter observes a single marker. It is single-use: once Wait has
// returned, the waiter stays in its terminal state.
type Waiter struct {
	params   Params
	state    atomic.Int32
	progress rate.Sometimes
}

func NewWaiter(params Params) (*Waiter, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	if params.Exists == nil {
		params.Exists = util.PathExists
	}
	return &Waiter{
		params:   params,
		progress: rate.Sometimes{Interval: progressInterval},
	}, nil
}

func (w *Waiter) Path() string {
	return w.params.Path
}

func (w *Waiter) State() State {
	return State(w.state.Load())
}

// Wait blocks until the marker exists, the timeout elapses, ctx is done, or
// the existence check itself fails.
func (w *Waiter) Wait(ctx context.Context) error {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateWaiting)) {
		return ErrWaiterUsed
	}
	err := w.wait(ctx)
	w.state.Store(int32(stateFor(err)))
	return err
}

func (w *Waiter) wait(ctx context.Context) error {
	p := w.params
	log := p.Logger.WithValues("marker", p.Path)

	var nudge <-chan struct{}
	if p.Watch {
		n, err := newNotifier(p.Path)
		if err != nil {
			log.Debugw("change notification unavailable, polling only", "error", err)
		} else {
			defer n.Stop()
			nudge = n.C()
		}
	}

	start := time.Now()
	timer := time.NewTimer(p.Interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return cancelled(ctx)
		}

		exists, err := p.Exists(p.Path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCheckFailed, p.Path, err)
		}
		elapsed := time.Since(start)
		if exists {
			log.Debugw("readiness marker observed", "elapsed", elapsed)
			return nil
		}
		if elapsed >= p.Timeout {
			return &TimeoutError{Path: p.Path, Timeout: p.Timeout, Elapsed: elapsed}
		}

		w.progress.Do(func() {
			log.Infow("waiting for readiness marker",
				"elapsed", elapsed.Round(time.Millisecond),
				"timeout", p.Timeout,
			)
		})

		// the last sleep is clipped so one final check lands on the boundary
		timer.Reset(min(p.Interval, p.Timeout-elapsed))
		select {
		case <-ctx.Done():
			return cancelled(ctx)
		case <-nudge:
			timer.Stop()
		case <-timer.C:
		}
	}
}

func cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
}

// AwaitReady waits for the marker at path using a fresh Waiter.
func AwaitReady(ctx context.Context, path string, timeout, interval time.Duration) error {
	w, err := NewWaiter(Params{
		Path:     path,
		Timeout:  timeout,
		Interval: interval,
	})
	if err != nil {
		return err
	}
	return w.Wait(ctx)
}
