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

package util

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh/spinner"
)

// Run an action behind a spinner. When interactive is false the action runs
// directly, which keeps piped output and CI logs free of control sequences.
//
// The result is always the action's own error. If the spinner is interrupted
// by ctrl+c on the raw terminal the action is cancelled and awaited; if it
// fails for any other reason the action keeps running without it.
func Await(ctx context.Context, title string, interactive bool, action func(ctx context.Context) error) error {
	if !interactive {
		return action(ctx)
	}

	actionCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action(actionCtx)
	}()

	spinErr := spinner.New().
		Title(" " + title).
		ActionWithErr(func(spinCtx context.Context) error {
			select {
			case <-done:
			case <-spinCtx.Done():
			}
			return nil
		}).
		Type(spinner.Dots).
		Style(Theme.Focused.Title).
		Context(ctx).
		Run()

	if errors.Is(spinErr, tea.ErrInterrupted) {
		cancel(spinErr)
	}
	<-done
	return actionErr
}
