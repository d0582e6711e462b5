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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/pixelpouch/ppdev/pkg/config"
	"github.com/pixelpouch/ppdev/pkg/util"
)

var labelStyle = lipgloss.NewStyle().Width(20)

func envCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:     "env",
			Usage:    "Print the resolved environment and readiness settings",
			Category: "Config",
			Action:   printEnv,
			Flags:    []cli.Flag{appFlag(), markerFlag(), timeoutFlag(), intervalFlag(), watchFlag()},
		},
		{
			Name:     "init",
			Usage:    "Write a " + config.PPDevTOMLFile + " with default settings to the working directory",
			Category: "Config",
			Action:   initConfig,
			Flags: []cli.Flag{
				appFlag(),
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite an existing config file",
				},
			},
		},
	}
}

func printEnv(ctx context.Context, cmd *cli.Command) error {
	settings, env, err := loadReadySettings(cmd)
	if err != nil {
		return err
	}
	stateDir, err := env.LocalStateDir()
	if err != nil {
		return err
	}

	debugger := "disabled"
	if env.DebuggerEnabled() {
		debugger = fmt.Sprintf("%s:%d", env.Host, env.Port)
	}

	rows := [][2]string{
		{"environment", string(env.Environment)},
		{"context", string(env.ExecutionContext)},
		{"debugger", debugger},
		{"local state dir", stateDir},
		{"app", settings.App},
		{"marker", settings.Marker},
		{"timeout", settings.Timeout.String()},
		{"interval", settings.Interval.String()},
		{"watch", strconv.FormatBool(settings.Watch)},
	}
	for _, row := range rows {
		fmt.Println(labelStyle.Render(util.Dimmed(row[0])) + util.Accented(row[1]))
	}
	return nil
}

func initConfig(ctx context.Context, cmd *cli.Command) error {
	target := filepath.Join(workingDir, tomlFilename)
	if _, err := os.Stat(target); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite", target)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	app := cmd.String("app")
	if app == "" {
		app = config.DefaultAppName
	}
	if err := config.NewPPDevTOML(app).SaveTOMLFile(workingDir, tomlFilename); err != nil {
		return err
	}
	fmt.Printf("Saved config file [%s]\n", util.Accented(target))
	return nil
}
