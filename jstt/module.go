// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

// GenerateModule renders every definition of doc, in document order, inside
// an "export module <moduleName>" block preceded by the banner and the module
// description.
func (t *Transpiler) GenerateModule(moduleName string, doc *Document) string {
	var w Writer
	t.transpileModule(&w, moduleName, doc)
	return w.String()
}

func (t *Transpiler) transpileModule(w *Writer, moduleName string, doc *Document) {
	if t.banner != "" {
		w.Line(t.banner)
		w.Line("")
		w.Line("")
	}
	w.Comment(t.description)

	w.Open("export module " + moduleName)
	if doc != nil && doc.Definitions != nil {
		for name, def := range doc.Definitions.AllFromFront() {
			t.transpileDefinition(w, name, def)
		}
	}
	w.Close()
	w.Line("")
}
