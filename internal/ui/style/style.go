// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Table styles, bound to a renderer so the color profile follows the output stream.
type Table struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
	Title  lipgloss.Style
}

// NewTable builds the table styles for r.
func NewTable(r *lipgloss.Renderer) Table {
	return Table{
		Header: r.NewStyle().Bold(true).Foreground(Iris).Padding(0, 1),
		Cell:   r.NewStyle().Padding(0, 1),
		Muted:  r.NewStyle().Foreground(Slate),
		Border: r.NewStyle().Foreground(Slate),
		Title:  r.NewStyle().Bold(true),
	}
}
