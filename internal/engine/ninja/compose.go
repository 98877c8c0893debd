package ninja

import (
	"strings"

	"go.trai.ch/ninjify/internal/core/domain"
)

// recipe is the result of composing a node's commands into one shell line.
type recipe struct {
	// cmd is the composite command line ready for a ninja rule.
	cmd string

	// description is the progress message for the rule.
	description string

	// useLocalPool reports that wrapper mode is active but no command of
	// the node matched the wrapper pattern, so the node must not compete
	// for the limited wrapper concurrency pool.
	useLocalPool bool
}

// wrapperInsertPos returns the byte offset at which the compiler wrapper
// binary must be spliced into cmdline, or -1 when the line is not a
// wrappable compiler invocation. A leading ccache wrapper is skipped
// recursively; the compiler must live under prebuilts/gcc/ or
// prebuilts/clang/, be one of the known compiler binaries, and compile
// with -c.
func wrapperInsertPos(cmdline string) int {
	index := strings.IndexByte(cmdline, ' ')
	if index < 0 {
		return -1
	}
	cmd := cmdline[:index]
	if strings.HasSuffix(cmd, "ccache") {
		index++
		pos := wrapperInsertPos(cmdline[index:])
		if pos < 0 {
			return -1
		}
		return pos + index
	}
	rest, ok := strings.CutPrefix(cmd, "prebuilts/")
	if !ok {
		return -1
	}
	if r, ok := strings.CutPrefix(rest, "gcc/"); ok {
		rest = r
	} else if r, ok := strings.CutPrefix(rest, "clang/"); ok {
		rest = r
	} else {
		return -1
	}
	if !strings.HasSuffix(rest, "gcc") && !strings.HasSuffix(rest, "g++") &&
		!strings.HasSuffix(rest, "clang") && !strings.HasSuffix(rest, "clang++") {
		return -1
	}

	if !strings.Contains(cmdline[index:], " -c ") {
		return -1
	}
	return 0
}

// composeRecipe joins a node's commands into a single composite shell
// command. Commands are chained with " && ", except that a command
// following an ignore-error command is chained with " ; " so the sequence
// continues past the failure. With more than one command each step runs in
// a subshell unless it already starts with '('.
func (g *Generator) composeRecipe(commands []*domain.Command) recipe {
	r := recipe{description: "build $out"}

	var buf strings.Builder
	gotDescription := false
	useWrapper := false
	ignorePrevError := false

	for ci, c := range commands {
		if buf.Len() > 0 {
			if ignorePrevError {
				buf.WriteString(" ; ")
			} else {
				buf.WriteString(" && ")
			}
		}
		ignorePrevError = c.IgnoreError

		in := strings.TrimLeft(c.Cmd, " \t\n\v\f\r")

		needsSubshell := len(commands) > 1 && !strings.HasPrefix(in, "(")
		if needsSubshell {
			buf.WriteByte('(')
		}

		translated := translateCommand(in)
		if g.cfg.DetectDescriptions && !gotDescription && !c.Echo {
			if desc, ok := descriptionFromCommand(translated); ok {
				gotDescription = true
				r.description = desc
				translated = ""
			}
		}
		if translated == "" {
			buf.WriteString("true")
		} else {
			if g.cfg.WrapperDir != "" {
				if pos := wrapperInsertPos(translated); pos >= 0 {
					translated = translated[:pos] + g.wrapper + translated[pos:]
					useWrapper = true
				}
			}
			buf.WriteString(translated)
		}

		if ci == len(commands)-1 && c.IgnoreError {
			buf.WriteString(" ; true")
		}

		if needsSubshell {
			buf.WriteByte(')')
		}
	}

	r.cmd = buf.String()
	r.useLocalPool = g.cfg.WrapperDir != "" && !useWrapper
	return r
}
