// Package style holds the colors and icons shared by the shell's output.
package style

import "github.com/charmbracelet/lipgloss"

// Log colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
