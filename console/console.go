package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/codefrk/logman/formatter"
)

// Level represents the severity of a console message.
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// pre-formatted severity tags to avoid rebuilding them per call
var levelTags = [...]string{
	DebugLevel: "[DEBUG] ",
	InfoLevel:  "[INFO] ",
	WarnLevel:  "[WARN] ",
	ErrorLevel: "[ERROR] ",
}

// tagStyles returns the lipgloss styles applied to severity tags.
func tagStyles(noColor bool) [4]lipgloss.Style {
	if noColor {
		return [4]lipgloss.Style{}
	}
	return [4]lipgloss.Style{
		DebugLevel: lipgloss.NewStyle().Faint(true),
		InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Config holds configuration for the console sink.
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// NoColor disables ANSI styling even on a terminal
	NoColor bool
	// MinLevel is the lowest severity that is emitted (default: DebugLevel)
	MinLevel Level
}

// Console writes formatted values and severity-tagged messages to a single
// output stream. Writes are best-effort; stream errors are not reported.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	tags      [4]lipgloss.Style
	formatter *formatter.Formatter
	min       Level
}

// New creates a console sink. Color is enabled only when the writer is a
// terminal and neither cfg.NoColor nor the NO_COLOR convention suppress it.
func New(cfg Config) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != "" || !isTerminal(cfg.Writer)
	return &Console{
		out:       cfg.Writer,
		tags:      tagStyles(noColor),
		formatter: formatter.New(formatter.GetStyles(noColor)),
		min:       cfg.MinLevel,
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes text as one line, appending a newline unless text already
// ends with one.
func (c *Console) Print(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	c.mu.Lock()
	_, _ = io.WriteString(c.out, text)
	c.mu.Unlock()
}

// Printf routes each value through the formatter and writes the result.
// Called with no values it writes the "undefined" marker. A value the
// formatter rejects is reported on the error channel instead of printed.
func (c *Console) Printf(values ...any) {
	if len(values) == 0 {
		c.mu.Lock()
		_, _ = io.WriteString(c.out, c.formatter.Undefined())
		c.mu.Unlock()
		return
	}
	for _, v := range values {
		s, err := c.formatter.Format(v)
		if err != nil {
			c.Error(err.Error())
			continue
		}
		c.mu.Lock()
		_, _ = io.WriteString(c.out, s)
		c.mu.Unlock()
	}
}

// Debug writes a debug-tagged line.
func (c *Console) Debug(msg string) { c.emit(DebugLevel, msg) }

// Info writes an info-tagged line.
func (c *Console) Info(msg string) { c.emit(InfoLevel, msg) }

// Warn writes a warning-tagged line.
func (c *Console) Warn(msg string) { c.emit(WarnLevel, msg) }

// Error writes an error-tagged line.
func (c *Console) Error(msg string) { c.emit(ErrorLevel, msg) }

// Debugf writes a formatted debug-tagged line.
func (c *Console) Debugf(format string, args ...any) {
	c.emit(DebugLevel, fmt.Sprintf(format, args...))
}

// Infof writes a formatted info-tagged line.
func (c *Console) Infof(format string, args ...any) {
	c.emit(InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf writes a formatted warning-tagged line.
func (c *Console) Warnf(format string, args ...any) {
	c.emit(WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf writes a formatted error-tagged line.
func (c *Console) Errorf(format string, args ...any) {
	c.emit(ErrorLevel, fmt.Sprintf(format, args...))
}

// emit writes one severity-tagged line, applying the level filter.
func (c *Console) emit(level Level, msg string) {
	if level < c.min {
		return
	}
	tag := c.tags[level].Render(levelTags[level])
	c.mu.Lock()
	_, _ = io.WriteString(c.out, tag+msg+"\n")
	c.mu.Unlock()
}
