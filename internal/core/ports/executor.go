package ports

import (
	"context"
	"io"
)

// Stdio binds the standard streams handed to an external program.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor defines the interface for running external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute starts argv[0] with the full argument vector and blocks until it exits.
	//
	// It returns the exit code of the program. A non-zero exit code is not an error;
	// the error is reserved for failures to start or to wait for the program.
	Execute(ctx context.Context, argv []string, stdio Stdio) (int, error)
}
