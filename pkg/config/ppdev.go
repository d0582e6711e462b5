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
	"time"

	"github.com/BurntSushi/toml"

	"github.com/livekit/protocol/logger"
)

const (
	PPDevTOMLFile = "ppdev.toml"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidDuration = fmt.Errorf("durations must look like 500ms or 60s: %w", ErrInvalidConfig)
)

type PPDevTOML struct {
	App   *PPDevTOMLAppConfig   `toml:"app"`
	Ready *PPDevTOMLReadyConfig `toml:"ready"`
}

type PPDevTOMLAppConfig struct {
	Name string `toml:"name"`
}

type PPDevTOMLReadyConfig struct {
	Marker   string `toml:"marker,omitempty"`
	Timeout  string `toml:"timeout,omitempty"`
	Interval string `toml:"interval,omitempty"`
	Watch    *bool  `toml:"watch,omitempty"`
}

func NewPPDevTOML(appName string) *PPDevTOML {
	watch := true
	return &PPDevTOML{
		App: &PPDevTOMLAppConfig{
			Name: appName,
		},
		Ready: &PPDevTOMLReadyConfig{
			Timeout:  DefaultTimeout.String(),
			Interval: DefaultInterval.String(),
			Watch:    &watch,
		},
	}
}

func (c *PPDevTOML) SaveTOMLFile(dir string, tomlFileName string) error {
	f, err := os.Create(filepath.Join(dir, tomlFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}
	return nil
}

// LoadTOMLFile reads dir/tomlFileName. A missing file is reported through
// the second return value and is not an error.
func LoadTOMLFile(dir string, tomlFileName string) (*PPDevTOML, bool, error) {
	tomlFile := filepath.Join(dir, tomlFileName)
	logger.Debugw("loading config file", "path", tomlFile)

	if _, err := os.Stat(tomlFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, true, err
	}

	config := &PPDevTOML{}
	if _, err := toml.DecodeFile(tomlFile, config); err != nil {
		return nil, true, fmt.Errorf("%s: %w: %w", tomlFile, ErrInvalidConfig, err)
	}
	return config, true, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidDuration)
	}
	return d, nil
}
