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
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/livekit/protocol/logger"

	"github.com/pixelpouch/ppdev/pkg/config"
)

var (
	workingDir   string = "."
	tomlFilename string = config.PPDevTOMLFile
)

// Flags are built per command tree; urfave/cli keeps parse state on them.

func appFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "app",
		Aliases: []string{"a"},
		Usage:   "`NAME` of the host application, selects <local-state-dir>/NAME/" + config.ReadyMarkerFile,
	}
}

func markerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "marker",
		Aliases: []string{"m"},
		Usage:   "`PATH` of the readiness marker, overrides --app",
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "Give up after `DURATION` (default " + config.DefaultTimeout.String() + ")",
	}
}

func intervalFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  "interval",
		Usage: "Check for the marker every `DURATION` (default " + config.DefaultInterval.String() + ")",
	}
}

func watchFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "watch",
		Usage: "Also wake up on filesystem events for the marker directory (default true)",
	}
}

func quietFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Do not show progress",
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Config `TOML` to use in the working directory",
			Value:       config.PPDevTOMLFile,
			Destination: &tomlFilename,
		},
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Working `DIR` holding the config file and .env files",
			Value:       ".",
			Destination: &workingDir,
		},
		&cli.BoolFlag{
			Name: "verbose",
		},
	}
}

// attempt to resolve the readiness settings, it'll prioritize
// 1. command line flags
// 2. PIXELPOUCH_* environment variables (including .env files)
// 3. config file (by default, ppdev.toml)
// 4. built-in defaults
func loadReadySettings(cmd *cli.Command) (*config.ReadySettings, *config.Env, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return nil, nil, err
	}
	file, _, err := config.LoadTOMLFile(workingDir, tomlFilename)
	if err != nil {
		return nil, nil, err
	}

	o := config.Overrides{
		App:    cmd.String("app"),
		Marker: cmd.String("marker"),
	}
	if cmd.IsSet("timeout") {
		d := cmd.Duration("timeout")
		o.Timeout = &d
	}
	if cmd.IsSet("interval") {
		d := cmd.Duration("interval")
		o.Interval = &d
	}
	if cmd.IsSet("watch") {
		w := cmd.Bool("watch")
		o.Watch = &w
	}

	settings, err := config.ResolveReady(file, env, o)
	if err != nil {
		return nil, nil, err
	}
	return settings, env, nil
}

func isInteractive(cmd *cli.Command) bool {
	if cmd.Bool("quiet") {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// The spinner owns the terminal while it runs, so log lines are only let
// through when explicitly asked for.
func waitLogger(cmd *cli.Command, interactive bool) logger.Logger {
	if interactive && !cmd.Bool("verbose") {
		return logger.LogRLogger(logr.Discard())
	}
	return logger.GetLogger()
}
