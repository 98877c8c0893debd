package ports

import (
	"context"
	"iter"
)

// WatchEvent describes a file system change relevant to regeneration.
type WatchEvent struct {
	// Path is the file that changed.
	Path string
}

// Watcher watches files for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files until the context is canceled.
	Start(ctx context.Context, paths []string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
