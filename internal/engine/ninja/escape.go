// Package ninja renders an evaluated dependency graph into a ninja build
// file plus its companion artifacts (environment snapshot, launcher script).
package ninja

import "strings"

// EscapeTarget escapes a target name for use in ninja build and
// dependency positions. '$', ':' and ' ' are the only characters ninja
// treats specially in a path.
func EscapeTarget(s string) string {
	if !strings.ContainsAny(s, "$: ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '$', ':', ' ':
			b.WriteByte('$')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EscapeShell escapes a composed command for embedding inside the
// double-quoted `sh -c "..."` invocation of a rule's command line.
// A '$' that directly follows an escaped '$' is emitted bare so that the
// ninja-level "$$" pair turns into a single shell-level "\$$" sequence
// rather than being escaped twice.
func EscapeShell(s string) string {
	if !strings.ContainsAny(s, "$`!\\\"") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	lastDollar := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '$':
			if lastDollar {
				b.WriteByte(c)
				lastDollar = false
			} else {
				b.WriteByte('\\')
				b.WriteByte(c)
				lastDollar = true
			}
		case '`', '"', '!', '\\':
			b.WriteByte('\\')
			fallthrough
		default:
			b.WriteByte(c)
			lastDollar = false
		}
	}
	return b.String()
}
