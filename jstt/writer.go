// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"strings"
	"unsafe"
)

// Writer accumulates rendered text and tracks the current indentation depth.
// Every OpenBlock must be paired with exactly one CloseBlock.
type Writer struct {
	buf   []byte
	depth int
}

func (w *Writer) Depth() int {
	return w.depth
}

func (w *Writer) indent() string {
	return strings.Repeat("\t", w.depth)
}

// Emit writes s, prefixed with the current indentation when indent is set and s
// is non-empty, and followed by a newline when newline is set.
func (w *Writer) Emit(s string, newline, indent bool) {
	if s != "" {
		if indent {
			w.buf = append(w.buf, w.indent()...)
		}
		w.buf = append(w.buf, s...)
	}
	if newline {
		w.buf = append(w.buf, '\n')
	}
}

func (w *Writer) write(s string) {
	w.buf = append(w.buf, s...)
}

func (w *Writer) Line(s string) {
	w.Emit(s, true, true)
}

func (w *Writer) OpenBlock(header, delim string, indent bool) {
	w.Emit(header+delim, true, indent)
	w.depth++
}

func (w *Writer) CloseBlock(delim string, newline bool) {
	w.depth--
	w.Emit(delim, newline, true)
}

func (w *Writer) Open(header string) {
	w.OpenBlock(header, " {", true)
}

func (w *Writer) Close() {
	w.CloseBlock("}", true)
}

func (w *Writer) Comment(description string) {
	if c := FormatComment(description, w.depth); c != "" {
		w.Line(c)
	}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return unsafe.String(unsafe.SliceData(w.buf), len(w.buf))
}
