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
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	green = lipgloss.AdaptiveColor{Light: "#036D26", Dark: "#06DB4D"}
	red   = lipgloss.AdaptiveColor{Light: "#CE4A3B", Dark: "#FF6352"}

	Theme = func() *huh.Theme {
		t := huh.ThemeBase16()
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color("4")).Bold(true)
		return t
	}()

	Accented = func(text string) string {
		return Theme.Focused.Title.Render(text)
	}
	Dimmed = func(text string) string {
		return Theme.Focused.Description.Render(text)
	}
	Succeeded = lipgloss.NewStyle().Foreground(green).Render
	Failed    = lipgloss.NewStyle().Foreground(red).Render
)
