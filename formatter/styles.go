package formatter

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette used for value styling.
const (
	colorGray   = "245" // null / undefined markers
	colorYellow = "220" // numbers
	colorCyan   = "51"  // booleans
	colorPurple = "141" // functions and opaque values
)

// Styles holds the lipgloss styles applied to formatted values.
type Styles struct {
	Null   lipgloss.Style
	Number lipgloss.Style
	Bool   lipgloss.Style
	Marker lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Null:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(colorGray)),
		Number: lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow)),
		Bool:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorCyan)),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color(colorPurple)),
	}
}

// NoColorStyles returns an unstyled set for non-terminal output.
func NoColorStyles() Styles {
	return Styles{
		Null:   lipgloss.NewStyle(),
		Number: lipgloss.NewStyle(),
		Bool:   lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate style set for the color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
