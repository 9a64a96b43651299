package ports

import (
	"context"

	"go.trai.ch/minish/internal/core/domain"
)

// ProcessLister defines the interface for snapshotting live processes.
//
//go:generate mockgen -source=processes.go -destination=mocks/mock_processes.go -package=mocks
type ProcessLister interface {
	// List scans the live processes. Entries that vanish during the scan, whose owner
	// cannot be resolved or whose command line is empty are left out without error.
	List(ctx context.Context) (domain.ProcessListing, error)
}
