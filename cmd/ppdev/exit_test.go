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

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpouch/ppdev/pkg/config"
	"github.com/pixelpouch/ppdev/pkg/readiness"
	"github.com/pixelpouch/ppdev/pkg/util"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, exitOK},
		{errors.New("boom"), exitFailure},
		{errNotReady, exitFailure},
		{fmt.Errorf("wrapped: %w", readiness.ErrInvalidConfig), exitInvalidConfig},
		{config.ErrInvalidDuration, exitInvalidConfig},
		{&readiness.TimeoutError{Path: "/tmp/ready"}, exitTimeout},
		{fmt.Errorf("%w: stat", readiness.ErrCheckFailed), exitCheckFailed},
		{fmt.Errorf("%w: %w", readiness.ErrCancelled, context.Canceled), exitCancelled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, exitCode(tt.err), "%v", tt.err)
	}
}

func TestInteractiveWaitCancelledExitCode(t *testing.T) {
	marker := filepath.Join(t.TempDir(), ".debugpy_ready")
	wait := func(ctx context.Context) error {
		return readiness.AwaitReady(ctx, marker, 5*time.Second, 50*time.Millisecond)
	}

	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := util.Await(ctx, "Waiting", true, wait)
		require.ErrorIs(t, err, readiness.ErrCancelled)
		assert.Equal(t, exitCancelled, exitCode(err))
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		time.AfterFunc(200*time.Millisecond, cancel)

		start := time.Now()
		err := util.Await(ctx, "Waiting", true, wait)
		require.ErrorIs(t, err, readiness.ErrCancelled)
		assert.Equal(t, exitCancelled, exitCode(err))
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
