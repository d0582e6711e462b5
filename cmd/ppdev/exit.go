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
	"errors"

	"github.com/pixelpouch/ppdev/pkg/config"
	"github.com/pixelpouch/ppdev/pkg/readiness"
)

// Exit codes are part of the contract with launch scripts.
const (
	exitOK            = 0
	exitFailure       = 1
	exitInvalidConfig = 2
	exitTimeout       = 3
	exitCheckFailed   = 4
	exitCancelled     = 130
)

var errNotReady = errors.New("readiness marker not present")

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, readiness.ErrInvalidConfig), errors.Is(err, config.ErrInvalidConfig):
		return exitInvalidConfig
	case errors.Is(err, readiness.ErrTimeout):
		return exitTimeout
	case errors.Is(err, readiness.ErrCheckFailed):
		return exitCheckFailed
	case errors.Is(err, readiness.ErrCancelled):
		return exitCancelled
	default:
		return exitFailure
	}
}
