// Package output builds termenv outputs with the color rules shared by the
// prompt and the log handler.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ProfileFunc selects the color profile for an output.
type ProfileFunc func() termenv.Profile

// ColorProfile detects the terminal's capabilities, or returns Ascii when NO_COLOR is set.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the plain 16-color profile, or Ascii when NO_COLOR is set.
// The prompt uses it so its escapes do not depend on terminal detection.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output on w using ColorProfile.
// A nil writer falls back to os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output on w using the given profile selector.
// A nil writer falls back to os.Stderr.
func NewWithProfile(w io.Writer, profile ProfileFunc, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
