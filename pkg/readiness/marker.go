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
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/pixelpouch/ppdev/pkg/util"
)

// MarkerContent is what Mark writes. Waiters never read it.
const MarkerContent = "ready"

// The helpers below belong to the adapter side of the handshake. A Waiter
// only ever calls Exists.

func Exists(path string) (bool, error) {
	return util.PathExists(path)
}

// Mark creates the marker and any missing parent directories.
func Mark(path string) error {
	if err := util.WriteFileAtomic(path, []byte(MarkerContent), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write readiness marker %s", path)
	}
	return nil
}

// Clear removes the marker. A marker that is already gone is not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, "failed to remove readiness marker %s", path)
}
