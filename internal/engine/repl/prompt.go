package repl

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/ui/output"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Prompt renders "[<cwd>]>" with the bracketed part in the configured style.
type Prompt struct {
	mu    sync.RWMutex
	style domain.PromptStyle
	out   *termenv.Output
}

// NewPrompt creates a Prompt writing to w. Escapes use the 16-color ANSI
// profile and are dropped when NO_COLOR is set.
func NewPrompt(w io.Writer, style domain.PromptStyle) *Prompt {
	return &Prompt{
		style: style,
		out:   output.NewWithProfile(w, output.ColorProfileANSI),
	}
}

// SetStyle replaces the style used by subsequent renders.
func (p *Prompt) SetStyle(style domain.PromptStyle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.style = style
}

// Render returns the prompt text for cwd.
func (p *Prompt) Render(cwd string) string {
	p.mu.RLock()
	style := p.style
	p.mu.RUnlock()

	s := p.out.String("[" + cwd + "]").Foreground(p.out.Color(style.Color))
	if style.Bold {
		s = s.Bold()
	}
	return s.String() + ">"
}

// Write prints the prompt for the current working directory, as the kernel
// reports it, without a newline.
// Nothing is printed when the directory cannot be determined.
func (p *Prompt) Write() error {
	cwd, err := unix.Getwd()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
	}

	if _, err := p.out.WriteString(p.Render(cwd)); err != nil {
		return zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}
	return nil
}
