// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"regexp"
	"strings"
)

var codeMarkup = regexp.MustCompile(`<code>(.*?)</code>`)

// FormatComment renders description as a JSDoc comment for a line at the given
// depth. The result carries no leading indentation and no trailing newline.
func FormatComment(description string, depth int) string {
	if description == "" {
		return ""
	}
	indent := strings.Repeat("\t", depth)
	description = codeMarkup.ReplaceAllString(description, "'$1'")
	description = strings.ReplaceAll(description, "\n", "\n"+indent)
	if strings.Contains(description, "\n") {
		return "/** " + description + "\n" + indent + "*/"
	}
	return "/** " + description + " */"
}
