// Package terminal reads interactive input lines from standard input.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.LineReader = (*Reader)(nil)

type readResult struct {
	line string
	err  error
}

// Reader performs one underlying line read per request on a background goroutine,
// so a read cut short by an interrupt stays pending for the next prompt and a
// running child never competes with the shell for input.
type Reader struct {
	in        *bufio.Reader
	interrupt ports.Interrupter

	requests chan struct{}
	results  chan readResult
	done     chan struct{}
	once     sync.Once

	outstanding bool
	eof         bool
}

// NewReader starts a Reader on r. Interrupts from interrupter end a blocked ReadLine early.
func NewReader(r io.Reader, interrupter ports.Interrupter) *Reader {
	reader := &Reader{
		in:        bufio.NewReader(r),
		interrupt: interrupter,
		requests:  make(chan struct{}),
		results:   make(chan readResult),
		done:      make(chan struct{}),
	}
	go reader.loop()
	return reader
}

func (r *Reader) loop() {
	for {
		select {
		case <-r.done:
			return
		case <-r.requests:
		}

		line, err := r.in.ReadString('\n')

		select {
		case r.results <- readResult{line: line, err: err}:
		case <-r.done:
			return
		}
	}
}

// ReadLine returns the next line without its terminator. It returns
// domain.ErrReadInterrupted when an interrupt arrives first and io.EOF at end of input.
// A final line without terminator is returned before io.EOF.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if r.eof || r.closed() {
		return "", io.EOF
	}

	if !r.outstanding {
		select {
		case r.requests <- struct{}{}:
			r.outstanding = true
		case <-r.done:
			return "", io.EOF
		}
	}

	select {
	case res := <-r.results:
		r.outstanding = false
		return r.finish(res)
	case <-r.interrupt.Wake():
		return "", domain.ErrReadInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", io.EOF
	}
}

func (r *Reader) closed() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

func (r *Reader) finish(res readResult) (string, error) {
	line := strings.TrimSuffix(res.line, "\n")
	line = strings.TrimSuffix(line, "\r")

	switch {
	case res.err == nil:
		return line, nil
	case errors.Is(res.err, io.EOF):
		r.eof = true
		if res.line == "" {
			return "", io.EOF
		}
		return line, nil
	default:
		return "", zerr.Wrap(res.err, domain.ErrReadFailed.Error())
	}
}

// Close stops the background goroutine once its current read returns.
func (r *Reader) Close() error {
	r.once.Do(func() { close(r.done) })
	return nil
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
