// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/antoniszymanski/jstt-go/cmd/jstt/config"
	"github.com/antoniszymanski/jstt-go/cmd/jstt/internal"
)

type cmdInit struct {
	Path       string `arg:"" type:"path" default:"jstt.jsonc"`
	SchemaPath string `arg:"" type:"path" default:"jstt.schema.json"`
	NoSchema   bool   `short:"S"`
}

func (c *cmdInit) Run() error {
	var f *os.File
	var err error
	if c.Path != "-" {
		dir := filepath.Dir(c.Path)
		if err = os.MkdirAll(dir, 0750); err != nil {
			return err
		}
		f, err = os.Create(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck

		if !c.NoSchema {
			relpath, err := filepath.Rel(dir, c.SchemaPath)
			if err == nil {
				c.SchemaPath = relpath
			}
		}
	} else {
		f = os.Stdout
	}

	cfg := starterConfig()
	if !c.NoSchema {
		cfg.Schema = c.SchemaPath
	}

	data, err := internal.MarshalIndent(&cfg, "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

func starterConfig() config.Config {
	return config.Config{
		Modules: []config.Module{{
			Name:   "Protocol",
			Input:  "protocol.json",
			Output: "protocol.d.ts",
		}},
	}
}
