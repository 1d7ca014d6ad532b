// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/antoniszymanski/jstt-go/cmd/jstt/config"
	"github.com/antoniszymanski/jstt-go/jstt"
	"github.com/antoniszymanski/sanefmt-go"
)

type cmdGenerate struct {
	Path string `arg:"" type:"path" default:"jstt.jsonc"`
}

func (c *cmdGenerate) Run(logger *slog.Logger) error {
	var f *os.File
	var err error
	dir := "."
	if c.Path != "-" {
		f, err = os.Open(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		dir = filepath.Dir(c.Path)
	} else {
		f = os.Stdin
	}

	data, err := io.ReadAll(jsonc.New(f))
	if err != nil {
		return err
	}
	var cfg config.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}

	return generate(dir, &cfg, logger)
}

func generate(dir string, cfg *config.Config, logger *slog.Logger) error {
	opts := []jstt.TranspilerOption{
		jstt.Logger(logger),
		jstt.TypeMappings(cfg.TypeMappings),
	}
	if cfg.Banner != nil {
		opts = append(opts, jstt.Banner(*cfg.Banner))
	}
	if cfg.Description != nil {
		opts = append(opts, jstt.Description(*cfg.Description))
	}
	t := jstt.NewTranspiler(opts...)

	pkg := make(jstt.TsPackage, len(cfg.Modules))
	for _, mod := range cfg.Modules {
		output := resolvePath(dir, mod.Output)
		if _, ok := pkg[output]; ok {
			return fmt.Errorf("%s: output is used by more than one module", mod.Output)
		}
		doc, err := loadDocument(resolvePath(dir, mod.Input), cfg.Validate)
		if err != nil {
			return err
		}
		pkg[output] = &jstt.TsModule{Name: mod.Name, Document: doc}
	}

	var formatter jstt.TsFormatter
	if cfg.Format {
		formatter = func(b []byte) ([]byte, error) {
			return sanefmt.Format(bytes.NewReader(b))
		}
	}

	return pkg.Render(t, jstt.PackageRenderOptions{
		Formatter: formatter,
		Write: func(path string, data []byte) error {
			if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0600); err != nil {
				return err
			}
			logger.Debug("wrote declarations", "path", path, "bytes", len(data))
			return nil
		},
	})
}

func loadDocument(path string, validate bool) (*jstt.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if validate {
		if err = jstt.Validate(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	doc, err := jstt.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
