// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

type TsModule struct {
	Name     string
	Document *Document
}

type ModuleRenderOptions struct {
	Formatter TsFormatter
}

type TsFormatter func([]byte) ([]byte, error)

func (t *Transpiler) RenderModule(m *TsModule, opts ModuleRenderOptions) ([]byte, error) {
	data := []byte(t.GenerateModule(m.Name, m.Document))
	if opts.Formatter != nil {
		var err error
		data, err = opts.Formatter(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
