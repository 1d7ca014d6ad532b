// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/alecthomas/kong"
)

type cmdVersion struct {
	Short bool `short:"s" help:"Print only the module version."`
}

func (c cmdVersion) Run(ctx *kong.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("build info not found")
	}
	if c.Short {
		ctx.Printf("%s\n", moduleVersion(info))
		return nil
	}
	ctx.Printf("%s\n", describeBuild(info))
	return nil
}

func moduleVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return "devel"
}

// describeBuild summarizes the version, toolchain and VCS stamp of a build.
// Revisions are shortened to eight characters and marked when the tree was dirty.
func describeBuild(info *debug.BuildInfo) string {
	revision, built := "unknown", "unknown"
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 8 {
				revision = revision[:8]
			}
		case "vcs.time":
			built = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		revision += "-dirty"
	}
	return fmt.Sprintf("version %s built with %s from %s on %s",
		moduleVersion(info), info.GoVersion, revision, built)
}
