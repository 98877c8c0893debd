package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when two nodes declare the same output name.
	ErrDuplicateTarget = zerr.New("duplicate target")

	// ErrTargetNotFound is returned when a requested target is not in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNoRootTargets is returned when a default target is needed but the root list is empty.
	ErrNoRootTargets = zerr.New("no root targets")

	// ErrGraphReadFailed is returned when the graph file cannot be read.
	ErrGraphReadFailed = zerr.New("failed to read graph file")

	// ErrGraphParseFailed is returned when the graph file cannot be parsed.
	ErrGraphParseFailed = zerr.New("failed to parse graph file")

	// ErrGraphVersion is returned when the graph file declares an unsupported version.
	ErrGraphVersion = zerr.New("unsupported graph file version")

	// ErrEnvFileWriteFailed is returned when the environment snapshot cannot be written.
	ErrEnvFileWriteFailed = zerr.New("failed to write environment snapshot")

	// ErrNinjaWriteFailed is returned when the ninja file cannot be opened or written.
	ErrNinjaWriteFailed = zerr.New("failed to write ninja file")

	// ErrScriptWriteFailed is returned when the launcher script cannot be written.
	ErrScriptWriteFailed = zerr.New("failed to write launcher script")

	// ErrStampReadFailed is returned when the generation stamp cannot be read.
	ErrStampReadFailed = zerr.New("failed to read generation stamp")

	// ErrStampWriteFailed is returned when the generation stamp cannot be written.
	ErrStampWriteFailed = zerr.New("failed to write generation stamp")

	// ErrFileHashFailed is returned when fingerprinting an input file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch graph file")
)
