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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/livekit/protocol/logger"

	"github.com/pixelpouch/ppdev"
	"github.com/pixelpouch/ppdev/pkg/config"
)

func main() {
	// SIGINT, SIGTERM and SIGQUIT cancel whatever wait is in flight
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func newApp() *cli.Command {
	app := &cli.Command{
		Name:                   "ppdev",
		Usage:                  "Development helpers for PixelPouch tooling",
		Description:            "Coordinates editor-side tooling with debug adapters running inside host applications.",
		Version:                ppdev.Version,
		EnableShellCompletion:  true,
		Suggest:                true,
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Flags:                  globalFlags(),
		Before:                 initApp,
	}

	app.Commands = append(app.Commands, readyCommands()...)
	app.Commands = append(app.Commands, envCommands()...)
	return app
}

func initApp(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logConfig := &logger.Config{
		Level: "info",
	}
	if cmd.Bool("verbose") {
		logConfig.Level = "debug"
	}
	logger.InitFromConfig(logConfig, "ppdev")

	loaded, err := config.LoadDotEnv(workingDir)
	if err != nil {
		return nil, err
	}
	for _, p := range loaded {
		logger.Debugw("loaded environment file", "path", p)
	}
	return nil, nil
}
