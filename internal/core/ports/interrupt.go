package ports

// Interrupter exposes the process-wide interrupt flag to the REPL driver.
//
//go:generate mockgen -source=interrupt.go -destination=mocks/mock_interrupt.go -package=mocks
type Interrupter interface {
	// Pending reports whether an interrupt arrived and was not yet acknowledged.
	Pending() bool
	// Clear acknowledges a pending interrupt.
	Clear()
	// Wake returns a channel that receives after an interrupt arrives.
	Wake() <-chan struct{}
}
