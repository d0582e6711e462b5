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

import "unicode/utf8"

// Shortens str to at most maxLength bytes by replacing its beginning with an
// ellipsis. The end of a path is usually the part worth reading.
func EllipsizeLeft(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}
	ellipsis := "..."
	start := len(str) - max(0, maxLength-len(ellipsis))
	for start < len(str) && !utf8.RuneStart(str[start]) {
		start++
	}
	return ellipsis + str[start:]
}
