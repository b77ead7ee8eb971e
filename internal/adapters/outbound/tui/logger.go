package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	bannerPass    = lipgloss.NewStyle().Bold(true).Foreground(success)
	bannerFail    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// Logger writes leveled, timestamped progress lines. It is the textual
// half of the reporter; the final report goes through the renderer.
type Logger struct {
	out io.Writer
	now func() time.Time
}

// NewLogger creates a Logger writing to out.
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out, now: time.Now}
}

func (l *Logger) Info(format string, args ...any) {
	l.write(dimStyle.Render("INFO "), fmt.Sprintf(format, args...))
}

func (l *Logger) Success(format string, args ...any) {
	l.write(passStyle.Render("OK   "), fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.write(warnStyle.Render("WARN "), fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.write(failStyle.Render("ERROR"), fmt.Sprintf(format, args...))
}

func (l *Logger) write(tag, msg string) {
	stamp := faintStyle.Render(l.now().Format("15:04:05"))
	fmt.Fprintf(l.out, "%s %s %s\n", stamp, tag, msg)
}
