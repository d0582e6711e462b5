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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PixelPouch", ".debugpy_ready")

	exists, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, Mark(path))
	exists, err = Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, MarkerContent, string(content))

	// marking twice is fine
	require.NoError(t, Mark(path))

	require.NoError(t, Clear(path))
	exists, err = Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	// clearing a missing marker is fine
	require.NoError(t, Clear(path))
}

func TestClearRefusesNonEmptyDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".debugpy_ready")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	err := Clear(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
