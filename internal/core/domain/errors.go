package domain

import "go.trai.ch/zerr"

var (
	// ErrTooManyArguments is returned when a built-in receives more arguments than it accepts.
	ErrTooManyArguments = zerr.New("too many arguments")

	// ErrChangeDirFailed is returned when the working directory cannot be changed.
	ErrChangeDirFailed = zerr.New("cannot change directory")

	// ErrHomeLookupFailed is returned when the invoking user's home directory cannot be resolved.
	ErrHomeLookupFailed = zerr.New("cannot get passwd entry")

	// ErrWorkingDirFailed is returned when the current working directory cannot be queried.
	ErrWorkingDirFailed = zerr.New("cannot get current working directory")

	// ErrDirOpenFailed is returned when a directory cannot be opened or read.
	ErrDirOpenFailed = zerr.New("cannot open directory")

	// ErrProcScanFailed is returned when the process pseudo-filesystem cannot be scanned.
	ErrProcScanFailed = zerr.New("cannot scan processes")

	// ErrUserLookupFailed is returned when a numeric user id has no account entry.
	ErrUserLookupFailed = zerr.New("cannot resolve user id")

	// ErrReadFailed is returned when reading from standard input fails.
	ErrReadFailed = zerr.New("failed to read from stdin")

	// ErrReadInterrupted is returned when a blocking read is cut short by the interrupt signal.
	// It is transient and never reported.
	ErrReadInterrupted = zerr.New("read interrupted")

	// ErrExecFailed is returned when an external program cannot be started.
	ErrExecFailed = zerr.New("exec() failed")

	// ErrWaitFailed is returned when waiting for an external program fails.
	ErrWaitFailed = zerr.New("wait() failed")

	// ErrSignalRegistration is returned when the interrupt handler cannot be registered.
	ErrSignalRegistration = zerr.New("cannot register signal handler")

	// ErrPromptFailed is returned when the prompt cannot be written.
	ErrPromptFailed = zerr.New("cannot render prompt")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidColor is returned when the configured prompt color is not a valid color.
	ErrInvalidColor = zerr.New("invalid prompt color, expected an ANSI index or #rrggbb")

	// ErrWatcherFailed is returned when the config watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch config file")
)
