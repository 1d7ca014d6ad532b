// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

type TsPackage map[string]*TsModule // Keyed by output path

type PackageRenderOptions struct {
	Limit     int
	Formatter TsFormatter
	Write     func(path string, data []byte) error
}

// Render renders every module concurrently. Each module gets its own Writer,
// so modules never share indentation state.
func (p TsPackage) Render(t *Transpiler, opts PackageRenderOptions) error {
	var g errgroup.Group
	if opts.Limit != 0 {
		g.SetLimit(opts.Limit)
	}
	for path, mod := range p {
		g.Go(func() error {
			data, err := t.RenderModule(mod, ModuleRenderOptions{Formatter: opts.Formatter})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return opts.Write(path, data)
		})
	}
	return g.Wait()
}
