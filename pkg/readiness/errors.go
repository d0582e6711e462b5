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

package readiness

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidConfig = errors.New("invalid readiness configuration")
	ErrTimeout       = errors.New("timed out waiting for readiness marker")
	ErrCancelled     = errors.New("readiness wait cancelled")
	ErrCheckFailed   = errors.New("readiness check failed")
	ErrWaiterUsed    = errors.New("waiter has already been used")
)

// TimeoutError is returned when the marker did not appear within the
// configured bound. It matches ErrTimeout under errors.Is.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %s not present after %s (timeout %s)",
		ErrTimeout, e.Path, e.Elapsed.Round(time.Millisecond), e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}
