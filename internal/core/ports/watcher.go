package ports

import (
	"context"
	"iter"
)

// Watcher defines the interface for watching a file for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given file. It returns an error if the watcher fails to start.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes returns an iterator that yields once per debounced burst of changes.
	Changes() iter.Seq[string]
}
