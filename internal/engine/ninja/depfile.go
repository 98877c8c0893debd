package ninja

import (
	"strings"

	"go.trai.ch/ninjify/internal/core/ports"
)

// findFlag returns the index of name in cmd, requiring something before it
// (a flag at position 0 has no command in front of it and never counts).
func findFlag(cmd, name string) int {
	found := strings.Index(cmd, name)
	if found <= 0 {
		return -1
	}
	return found
}

// findFlagArg extracts the value of a command line flag. Leading
// whitespace after the flag is skipped and, when the flag is repeated,
// the last occurrence wins. The value is the token up to the next
// space or tab.
func findFlagArg(cmd, name string) string {
	index := findFlag(cmd, name)
	if index < 0 {
		return ""
	}

	val := strings.TrimLeft(cmd[index+len(name):], " \t")
	for {
		index = strings.Index(val, name)
		if index < 0 {
			break
		}
		val = strings.TrimLeft(val[index+len(name):], " \t")
	}

	if index = strings.IndexAny(val, " \t"); index >= 0 {
		val = val[:index]
	}
	return val
}

// stripExt removes the extension from the last path component.
func stripExt(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// basename returns the final path component.
func basename(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// depfileFromCommand derives the path of the dependency file a compiler
// invocation will produce. It needs a dependency-generation flag (-MD or
// -MMD) together with a compile-only flag (-c); an explicit -MF argument
// wins, otherwise the path is the -o argument with its extension replaced
// by ".d". A command that claims dependency generation but names no
// output is a reported inconsistency.
func depfileFromCommand(cmd string, logger ports.Logger) (string, bool) {
	if (findFlag(cmd, " -MD") < 0 && findFlag(cmd, " -MMD") < 0) ||
		findFlag(cmd, " -c") < 0 {
		return "", false
	}

	if mf := findFlagArg(cmd, " -MF"); mf != "" {
		return mf, true
	}

	o := findFlagArg(cmd, " -o")
	if o == "" {
		logger.Warn("cannot find the depfile in " + cmd)
		return "", false
	}
	return stripExt(o) + ".d", true
}

// dependencyFile runs depfile detection on a composed command, applies the
// toolchain compatibility exceptions and, when a depfile survives, rewrites
// the command to copy it aside before the build tool consumes it.
// It returns the possibly rewritten command, the depfile path to declare,
// and whether a depfile should be declared at all.
func dependencyFile(cmd string, logger ports.Logger) (string, string, bool) {
	depfile, ok := depfileFromCommand(cmd, logger)
	if !ok {
		return cmd, "", false
	}

	// llvm-rs-cc does not emit a usable dep file despite the flags.
	if strings.Contains(cmd, "bin/llvm-rs-cc ") {
		return cmd, "", false
	}

	// .P post-processing convention: the recipe renames the .d file to .P
	// and removes the original. Drop the removal so the .d file survives
	// for the build tool.
	if p := stripExt(depfile) + ".P"; strings.Contains(cmd, p) {
		rmf := "; rm -f " + depfile
		found := strings.Index(cmd, rmf)
		if found < 0 {
			logger.Warn("cannot find removal of .d file: " + cmd)
			return cmd, "", false
		}
		cmd = cmd[:found] + cmd[found+len(rmf):]
		return cmd, depfile, true
	}

	// For assembly inputs the compiler skips the C preprocessor and with
	// it the -MF flag, leaving the depfile untouched.
	if as := "/" + stripExt(basename(depfile)) + ".s"; strings.Contains(cmd, as) {
		return cmd, "", false
	}

	// Some toolchains truncate the depfile on every invocation before
	// ninja can read it. Copy it aside and declare the copy.
	cmd += " && cp " + depfile + " " + depfile + ".tmp"
	depfile += ".tmp"
	return cmd, depfile, true
}
