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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DotEnvFile      = ".env"
	DotEnvLocalFile = ".env.local"
)

type Environment string

const (
	EnvironmentDev     Environment = "dev"
	EnvironmentRelease Environment = "release"
)

type ExecutionContext string

const (
	ExecutionContextVSCode  ExecutionContext = "vscode"
	ExecutionContextHoudini ExecutionContext = "houdini"
	ExecutionContextMaya    ExecutionContext = "maya"
)

// Env holds the variables shared by the tooling and the host-side adapter.
type Env struct {
	LocalAppData string `env:"LOCALAPPDATA"`
	XDGStateHome string `env:"XDG_STATE_HOME"`

	App              string           `env:"PIXELPOUCH_APP"`
	Environment      Environment      `env:"PIXELPOUCH_ENV" envDefault:"release"`
	ExecutionContext ExecutionContext `env:"PIXELPOUCH_EXECUTION_CONTEXT"`

	// dev-only, see DebuggerEnabled
	DebuggerEnable bool   `env:"PIXELPOUCH_DEBUGGER_ENABLE"`
	Host           string `env:"PIXELPOUCH_HOST" envDefault:"127.0.0.1"`
	Port           int    `env:"PIXELPOUCH_PORT"`

	ReadyMarker   string `env:"PIXELPOUCH_READY_MARKER"`
	ReadyTimeout  string `env:"PIXELPOUCH_READY_TIMEOUT"`
	ReadyInterval string `env:"PIXELPOUCH_READY_INTERVAL"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (*Env, error) {
	return ParseEnvFrom(nil)
}

// ParseEnvFrom reads Env from environ, or from the process environment when
// environ is nil.
func ParseEnvFrom(environ map[string]string) (*Env, error) {
	e := &Env{}
	var err error
	if environ == nil {
		err = env.Parse(e)
	} else {
		err = env.ParseWithOptions(e, env.Options{Environment: environ})
	}
	if err != nil {
		return nil, fmt.Errorf("parse env: %w: %w", ErrInvalidConfig, err)
	}

	switch e.Environment {
	case EnvironmentDev, EnvironmentRelease:
	default:
		return nil, fmt.Errorf("PIXELPOUCH_ENV=%q: %w", e.Environment, ErrInvalidConfig)
	}
	switch e.ExecutionContext {
	case "", ExecutionContextVSCode, ExecutionContextHoudini, ExecutionContextMaya:
	default:
		return nil, fmt.Errorf("PIXELPOUCH_EXECUTION_CONTEXT=%q: %w", e.ExecutionContext, ErrInvalidConfig)
	}
	return e, nil
}

// DebuggerEnabled is only ever true for dev sessions started from a host
// application. The editor side never runs an adapter itself.
func (e *Env) DebuggerEnabled() bool {
	return e.Environment == EnvironmentDev &&
		e.ExecutionContext != ExecutionContextVSCode &&
		e.DebuggerEnable
}

// LocalStateDir is LOCALAPPDATA when set, otherwise the XDG state directory.
func (e *Env) LocalStateDir() (string, error) {
	if e.LocalAppData != "" {
		return e.LocalAppData, nil
	}
	if e.XDGStateHome != "" {
		return e.XDGStateHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state"), nil
}

// LoadDotEnv loads .env.local and .env from dir into the process
// environment. Variables that are already set are left alone, and
// .env.local takes precedence over .env.
func LoadDotEnv(dir string) ([]string, error) {
	var loaded []string
	for _, name := range []string{DotEnvLocalFile, DotEnvFile} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("%s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
