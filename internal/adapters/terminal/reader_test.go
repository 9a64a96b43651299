package terminal_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/minish/internal/adapters/interrupt"
	"go.trai.ch/minish/internal/adapters/terminal"
	"go.trai.ch/minish/internal/core/domain"
)

func TestReader_ReadLine(t *testing.T) {
	r := terminal.NewReader(strings.NewReader("pwd\ncd /tmp\r\n\nlast"), interrupt.NewController())
	t.Cleanup(func() { _ = r.Close() })

	for _, want := range []string{"pwd", "cd /tmp", "", "last"} {
		line, err := r.ReadLine(t.Context())
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := r.ReadLine(t.Context())
	assert.ErrorIs(t, err, io.EOF)

	_, err = r.ReadLine(t.Context())
	assert.ErrorIs(t, err, io.EOF, "end of input is sticky")
}

func TestReader_ReadLine_EmptyInput(t *testing.T) {
	r := terminal.NewReader(strings.NewReader(""), interrupt.NewController())
	t.Cleanup(func() { _ = r.Close() })

	_, err := r.ReadLine(t.Context())

	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_ReadLine_InterruptKeepsPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	controller := interrupt.NewController()
	r := terminal.NewReader(pr, controller)
	t.Cleanup(func() { _ = r.Close() })

	done := make(chan error, 1)
	go func() {
		_, err := r.ReadLine(t.Context())
		done <- err
	}()

	controller.Raise()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrReadInterrupted)
	case <-time.After(5 * time.Second):
		t.Fatal("interrupt did not end the read")
	}
	controller.Clear()

	// The outstanding read receives the next line.
	go func() { _, _ = pw.Write([]byte("lf\n")) }()

	line, err := r.ReadLine(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "lf", line)
}

func TestReader_ReadLine_ContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	r := terminal.NewReader(pr, interrupt.NewController())
	t.Cleanup(func() { _ = r.Close() })

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := r.ReadLine(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReader_ReadLine_Failure(t *testing.T) {
	r := terminal.NewReader(failingReader{}, interrupt.NewController())
	t.Cleanup(func() { _ = r.Close() })

	_, err := r.ReadLine(t.Context())

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReadFailed.Error())
	assert.ErrorContains(t, err, "device gone")
}

func TestReader_Close(t *testing.T) {
	r := terminal.NewReader(strings.NewReader("x\n"), interrupt.NewController())

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err := r.ReadLine(t.Context())
	assert.ErrorIs(t, err, io.EOF)
}
