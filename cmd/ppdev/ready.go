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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/livekit/protocol/logger"

	"github.com/pixelpouch/ppdev/pkg/readiness"
	"github.com/pixelpouch/ppdev/pkg/util"
)

func readyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "wait",
			Usage:     "Block until a debug adapter signals that it is ready",
			ArgsUsage: "[MARKER...]",
			Description: "Waits for the readiness marker written by a debug adapter inside a host application.\n" +
				"Without arguments the marker is resolved from --marker, --app, the environment and the config file.\n" +
				"With arguments, every listed marker must appear.",
			Category: "Debug",
			Action:   waitForReady,
			Flags: []cli.Flag{
				appFlag(),
				markerFlag(),
				timeoutFlag(),
				intervalFlag(),
				watchFlag(),
				quietFlag(),
			},
		},
		{
			Name:     "mark",
			Usage:    "Create the readiness marker, as a debug adapter would",
			Category: "Debug",
			Action:   markReady,
			Flags:    []cli.Flag{appFlag(), markerFlag()},
		},
		{
			Name:     "clear",
			Usage:    "Remove the readiness marker at the end of a debug session",
			Category: "Debug",
			Action:   clearReady,
			Flags:    []cli.Flag{appFlag(), markerFlag()},
		},
		{
			Name:     "status",
			Usage:    "Report whether the readiness marker is present",
			Category: "Debug",
			Action:   readyStatus,
			Flags:    []cli.Flag{appFlag(), markerFlag()},
		},
	}
}

func waitForReady(ctx context.Context, cmd *cli.Command) error {
	settings, _, err := loadReadySettings(cmd)
	if err != nil {
		return err
	}

	markers := []string{settings.Marker}
	if cmd.Args().Present() {
		markers = markers[:0]
		for _, arg := range cmd.Args().Slice() {
			m, err := util.ExpandHome(arg)
			if err != nil {
				return err
			}
			markers = append(markers, m)
		}
	}

	interactive := isInteractive(cmd)
	params := settings.Params()
	params.Logger = waitLogger(cmd, interactive)

	logger.Debugw("waiting for readiness",
		"markers", markers,
		"timeout", params.Timeout,
		"interval", params.Interval,
		"watch", params.Watch,
	)

	shown := make([]string, len(markers))
	for i, m := range markers {
		shown[i] = util.EllipsizeLeft(m, 60)
	}
	title := "Waiting for " + util.Accented(strings.Join(shown, ", "))
	if err := util.Await(ctx, title, interactive, func(ctx context.Context) error {
		return readiness.AwaitAll(ctx, markers, params)
	}); err != nil {
		return err
	}

	if !cmd.Bool("quiet") {
		for _, m := range markers {
			fmt.Printf("%s %s\n", util.Succeeded("ready"), m)
		}
	}
	return nil
}

func markReady(ctx context.Context, cmd *cli.Command) error {
	settings, _, err := loadReadySettings(cmd)
	if err != nil {
		return err
	}
	if err := readiness.Mark(settings.Marker); err != nil {
		return err
	}
	fmt.Printf("Marked [%s]\n", util.Accented(settings.Marker))
	return nil
}

func clearReady(ctx context.Context, cmd *cli.Command) error {
	settings, _, err := loadReadySettings(cmd)
	if err != nil {
		return err
	}
	if err := readiness.Clear(settings.Marker); err != nil {
		return err
	}
	fmt.Printf("Cleared [%s]\n", util.Accented(settings.Marker))
	return nil
}

func readyStatus(ctx context.Context, cmd *cli.Command) error {
	settings, _, err := loadReadySettings(cmd)
	if err != nil {
		return err
	}
	exists, err := readiness.Exists(settings.Marker)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", readiness.ErrCheckFailed, settings.Marker, err)
	}
	if !exists {
		fmt.Printf("%s %s\n", util.Failed("not ready"), settings.Marker)
		return errNotReady
	}
	fmt.Printf("%s %s\n", util.Succeeded("ready"), settings.Marker)
	return nil
}
