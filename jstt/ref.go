// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import "regexp"

var refPattern = regexp.MustCompile(`^#/([^/]+)/([^/]+)$`)

// ResolveRef extracts <name> from a "#/<section>/<name>" pointer. When the
// pointer does not match, the pointer itself is returned along with a
// *MalformedRefError.
func ResolveRef(ref string) (string, error) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return ref, &MalformedRefError{Ref: ref}
	}
	return m[2], nil
}

type MalformedRefError struct {
	Ref string
}

func (e *MalformedRefError) Error() string {
	return "malformed reference " + e.Ref + `: expected "#/<section>/<name>"`
}
