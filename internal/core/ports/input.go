package ports

import "context"

// LineReader defines the interface for reading interactive input one line at a time.
//
//go:generate mockgen -source=input.go -destination=mocks/mock_input.go -package=mocks
type LineReader interface {
	// ReadLine blocks until a full line is available and returns it without its terminator.
	//
	// It returns domain.ErrReadInterrupted when the interrupt signal arrives first,
	// and io.EOF once the input is exhausted.
	ReadLine(ctx context.Context) (string, error)
	// Close releases the reader.
	Close() error
}
