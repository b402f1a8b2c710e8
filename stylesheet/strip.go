/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stylesheet post-processes generated stylesheets.
package stylesheet

import (
	"strings"
)

// DefaultReservedGroup is the token-group name whose blocks StripBlocks
// removes when no other group is configured.
const DefaultReservedGroup = "effect-styles"

// StripBlocks removes every top-level block whose declaration begins with
// the reserved group name followed by a balanced-parenthesis argument
// list, which may span multiple lines. Every other line, including
// surrounding blank lines, passes through unchanged.
func StripBlocks(content []byte, group string) []byte {
	if group == "" {
		group = DefaultReservedGroup
	}

	lines := strings.Split(string(content), "\n")
	kept := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		rest, ok := declarationArgs(lines[i], group)
		if !ok {
			kept = append(kept, lines[i])
			continue
		}

		// Skip lines until the parentheses balance out.
		depth := parenDelta(rest)
		for depth > 0 && i+1 < len(lines) {
			i++
			depth += parenDelta(lines[i])
		}
	}

	return []byte(strings.Join(kept, "\n"))
}

// declarationArgs reports whether a line declares a reserved-group block,
// returning the remainder of the line starting at the opening parenthesis.
func declarationArgs(line, group string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, group)
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "(") {
		return "", false
	}
	return rest, true
}

// parenDelta returns the net parenthesis depth change across a line.
func parenDelta(s string) int {
	return strings.Count(s, "(") - strings.Count(s, ")")
}
