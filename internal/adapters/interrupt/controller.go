// Package interrupt turns SIGINT into a flag the REPL polls between reads.
package interrupt

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
)

var _ ports.Interrupter = (*Controller)(nil)

// Controller owns the interrupt flag. The forwarding goroutine only sets the
// flag and wakes a blocked reader; everything else happens on the REPL side.
// The flag and the wake channel change together under mu, so a wake is
// pending exactly when the flag is set.
type Controller struct {
	pending atomic.Bool
	wake    chan struct{}

	mu         sync.Mutex
	registered bool
	signals    chan os.Signal
	done       chan struct{}
	stopOnce   sync.Once
}

// NewController creates an unregistered Controller.
func NewController() *Controller {
	return &Controller{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Register subscribes to SIGINT. It fails if the Controller is already registered.
func (c *Controller) Register(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.registered {
		return domain.ErrSignalRegistration
	}
	c.registered = true

	c.signals = make(chan os.Signal, 1)
	signal.Notify(c.signals, os.Interrupt)

	go c.forward(ctx, c.signals)
	return nil
}

func (c *Controller) forward(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-signals:
			c.Raise()
		case <-ctx.Done():
			return
		case <-c.done:
			return
		}
	}
}

// Raise sets the flag and wakes a blocked reader, as if SIGINT arrived.
func (c *Controller) Raise() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending.Store(true)
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Pending reports whether an interrupt arrived since the last Clear.
func (c *Controller) Pending() bool {
	return c.pending.Load()
}

// Clear resets the flag and discards an unconsumed wake-up.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending.Store(false)
	select {
	case <-c.wake:
	default:
	}
}

// Wake returns a channel that receives once per interrupt.
func (c *Controller) Wake() <-chan struct{} {
	return c.wake
}

// Stop unsubscribes from SIGINT and ends the forwarding goroutine.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.signals != nil {
			signal.Stop(c.signals)
		}
		close(c.done)
	})
}
