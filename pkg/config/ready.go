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
	"path/filepath"
	"time"

	"github.com/pixelpouch/ppdev/pkg/readiness"
	"github.com/pixelpouch/ppdev/pkg/util"
)

const (
	DefaultAppName  = "PixelPouch"
	ReadyMarkerFile = ".debugpy_ready"

	DefaultTimeout  = readiness.DefaultTimeout
	DefaultInterval = readiness.DefaultInterval
)

// ReadySettings is the fully resolved configuration of a readiness wait.
type ReadySettings struct {
	App      string
	Marker   string
	Timeout  time.Duration
	Interval time.Duration
	Watch    bool
}

func (s *ReadySettings) Params() readiness.Params {
	return readiness.Params{
		Path:     s.Marker,
		Timeout:  s.Timeout,
		Interval: s.Interval,
		Watch:    s.Watch,
	}
}

// Overrides carries values given on the command line. Nil and empty fields
// are unset.
type Overrides struct {
	App      string
	Marker   string
	Timeout  *time.Duration
	Interval *time.Duration
	Watch    *bool
}

// ResolveReady merges settings with precedence flag > environment > project
// file > default. file may be nil.
func ResolveReady(file *PPDevTOML, e *Env, o Overrides) (*ReadySettings, error) {
	s := &ReadySettings{
		App:      DefaultAppName,
		Timeout:  DefaultTimeout,
		Interval: DefaultInterval,
		Watch:    true,
	}

	if file != nil && file.App != nil && file.App.Name != "" {
		s.App = file.App.Name
	}
	if file != nil && file.Ready != nil {
		r := file.Ready
		s.Marker = r.Marker
		if r.Timeout != "" {
			d, err := parseDuration("ready.timeout", r.Timeout)
			if err != nil {
				return nil, err
			}
			s.Timeout = d
		}
		if r.Interval != "" {
			d, err := parseDuration("ready.interval", r.Interval)
			if err != nil {
				return nil, err
			}
			s.Interval = d
		}
		if r.Watch != nil {
			s.Watch = *r.Watch
		}
	}

	if e.App != "" {
		s.App = e.App
		// same rule as --app: the app picks its own marker unless one is
		// given alongside it
		if e.ReadyMarker == "" {
			s.Marker = ""
		}
	}
	if e.ReadyMarker != "" {
		s.Marker = e.ReadyMarker
	}
	if e.ReadyTimeout != "" {
		d, err := parseDuration("PIXELPOUCH_READY_TIMEOUT", e.ReadyTimeout)
		if err != nil {
			return nil, err
		}
		s.Timeout = d
	}
	if e.ReadyInterval != "" {
		d, err := parseDuration("PIXELPOUCH_READY_INTERVAL", e.ReadyInterval)
		if err != nil {
			return nil, err
		}
		s.Interval = d
	}

	if o.App != "" {
		s.App = o.App
		// a new app on the command line implies its own marker
		if o.Marker == "" {
			s.Marker = ""
		}
	}
	if o.Marker != "" {
		s.Marker = o.Marker
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}
	if o.Interval != nil {
		s.Interval = *o.Interval
	}
	if o.Watch != nil {
		s.Watch = *o.Watch
	}

	if s.Marker == "" {
		p, err := MarkerPath(e, s.App)
		if err != nil {
			return nil, err
		}
		s.Marker = p
	} else {
		p, err := util.ExpandHome(s.Marker)
		if err != nil {
			return nil, err
		}
		s.Marker = p
	}
	return s, nil
}

// MarkerPath is the conventional marker location for app,
// <local-state-dir>/<app>/.debugpy_ready.
func MarkerPath(e *Env, app string) (string, error) {
	dir, err := e.LocalStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, app, ReadyMarkerFile), nil
}
