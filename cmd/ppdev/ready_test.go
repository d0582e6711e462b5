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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/pixelpouch/ppdev/pkg/config"
	"github.com/pixelpouch/ppdev/pkg/readiness"
)

func findCommandByName(commands []*cli.Command, name string) *cli.Command {
	for _, cmd := range commands {
		if cmd != nil && cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func run(t *testing.T, ctx context.Context, args ...string) error {
	t.Helper()
	return newApp().Run(ctx, append([]string{"ppdev"}, args...))
}

func TestCommandTree(t *testing.T) {
	app := newApp()
	for _, name := range []string{"wait", "mark", "clear", "status", "env", "init"} {
		cmd := findCommandByName(app.Commands, name)
		require.NotNil(t, cmd, "'%s' command must exist", name)
		require.NotNil(t, cmd.Action, "'%s' must have an action", name)
	}
}

func TestWaitCommand(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "state", ".debugpy_ready")

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = readiness.Mark(marker)
	}()

	err := run(t, context.Background(), "--dir", dir, "wait", "--quiet",
		"--marker", marker, "--timeout", "2s", "--interval", "20ms")
	require.NoError(t, err)
}

func TestWaitCommandTimeout(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, ".debugpy_ready")

	err := run(t, context.Background(), "--dir", dir, "wait", "--quiet",
		"--marker", marker, "--timeout", "100ms", "--interval", "20ms")
	require.ErrorIs(t, err, readiness.ErrTimeout)
	assert.Equal(t, exitTimeout, exitCode(err))
}

func TestWaitCommandInvalidInterval(t *testing.T) {
	dir := t.TempDir()
	err := run(t, context.Background(), "--dir", dir, "wait", "--quiet",
		"--marker", filepath.Join(dir, "m"), "--timeout", "1s", "--interval", "0s")
	require.ErrorIs(t, err, readiness.ErrInvalidConfig)
	assert.Equal(t, exitInvalidConfig, exitCode(err))
}

func TestWaitCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := run(t, ctx, "--dir", dir, "wait", "--quiet",
		"--marker", filepath.Join(dir, "m"), "--timeout", "10s", "--interval", "1s")
	require.ErrorIs(t, err, readiness.ErrCancelled)
	assert.Equal(t, exitCancelled, exitCode(err))
}

func TestWaitCommandMultipleMarkers(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, readiness.Mark(a))

	err := run(t, context.Background(), "--dir", dir, "wait", "--quiet",
		"--timeout", "100ms", "--interval", "20ms", a, b)
	require.ErrorIs(t, err, readiness.ErrTimeout)
	assert.Contains(t, err.Error(), b)

	require.NoError(t, readiness.Mark(b))
	err = run(t, context.Background(), "--dir", dir, "wait", "--quiet",
		"--timeout", "100ms", "--interval", "20ms", a, b)
	require.NoError(t, err)
}

func TestWaitCommandExpandsHomeInArgs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, readiness.Mark(filepath.Join(home, "state", ".debugpy_ready")))

	err := run(t, context.Background(), "--dir", t.TempDir(), "wait", "--quiet",
		"--timeout", "100ms", "--interval", "20ms", "~/state/.debugpy_ready")
	require.NoError(t, err)
}

func TestWaitCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	for _, key := range []string{"PIXELPOUCH_APP", "PIXELPOUCH_READY_MARKER", "PIXELPOUCH_READY_TIMEOUT", "PIXELPOUCH_READY_INTERVAL"} {
		t.Setenv(key, "")
	}
	marker := filepath.Join(dir, "from-config")
	content := "[ready]\nmarker = \"" + filepath.ToSlash(marker) + "\"\ntimeout = \"100ms\"\ninterval = \"20ms\"\nwatch = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.PPDevTOMLFile), []byte(content), 0o644))

	err := run(t, context.Background(), "--dir", dir, "wait", "--quiet")
	require.ErrorIs(t, err, readiness.ErrTimeout)
	assert.Contains(t, err.Error(), "from-config")

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.PPDevTOMLFile), []byte("[ready]\ninterval = \"soon\"\n"), 0o644))
	err = run(t, context.Background(), "--dir", dir, "wait", "--quiet", "--marker", marker)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, exitInvalidConfig, exitCode(err))
}

func TestMarkStatusClear(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "PixelPouch", ".debugpy_ready")

	err := run(t, context.Background(), "--dir", dir, "status", "--marker", marker)
	require.ErrorIs(t, err, errNotReady)
	assert.Equal(t, exitFailure, exitCode(err))

	require.NoError(t, run(t, context.Background(), "--dir", dir, "mark", "--marker", marker))
	require.NoError(t, run(t, context.Background(), "--dir", dir, "status", "--marker", marker))

	require.NoError(t, run(t, context.Background(), "--dir", dir, "clear", "--marker", marker))
	exists, err := readiness.Exists(marker)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMarkUsesAppConvention(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("PIXELPOUCH_READY_MARKER", "")

	require.NoError(t, run(t, context.Background(), "--dir", dir, "mark", "--app", "Maya"))
	exists, err := readiness.Exists(filepath.Join(dir, "Maya", config.ReadyMarkerFile))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run(t, context.Background(), "--dir", dir, "init", "--app", "Houdini"))
	conf, exists, err := config.LoadTOMLFile(dir, config.PPDevTOMLFile)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Houdini", conf.App.Name)

	require.Error(t, run(t, context.Background(), "--dir", dir, "init"))
	require.NoError(t, run(t, context.Background(), "--dir", dir, "init", "--force"))
}

func TestEnvCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOCALAPPDATA", dir)
	require.NoError(t, run(t, context.Background(), "--dir", dir, "env"))

	t.Setenv("PIXELPOUCH_ENV", "staging")
	err := run(t, context.Background(), "--dir", dir, "env")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
