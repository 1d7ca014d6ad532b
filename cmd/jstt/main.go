// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var cli struct {
	Verbose  bool        `short:"v" help:"Log debug diagnostics."`
	Init     cmdInit     `cmd:""`
	Schema   cmdSchema   `cmd:""`
	Generate cmdGenerate `cmd:""`
	Version  cmdVersion  `cmd:""`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jstt"),
		kong.Description("Transpile JSON Schema definitions to TypeScript declarations"),
		kong.UsageOnError(),
	)
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx.FatalIfErrorf(ctx.Run(logger))
}
