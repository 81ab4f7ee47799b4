package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskbook/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// BoardTitleStyle underlines board and date headings.
var BoardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true).
	PaddingLeft(1)

// CounterStyle renders the "[done/total]" board counter.
var CounterStyle = lipgloss.NewStyle().Foreground(ColorGray)

// IDStyle renders item ids.
var IDStyle = lipgloss.NewStyle().Foreground(ColorGray)

// DimmedStyle is applied to completed tasks.
var DimmedStyle = lipgloss.NewStyle().Foreground(ColorGray)

// StarStyle renders the star marker.
var StarStyle = lipgloss.NewStyle().Foreground(ColorYellow)

// AgeStyle renders item age in days.
var AgeStyle = lipgloss.NewStyle().Foreground(ColorGray)

// SuccessStyle prefixes success messages.
var SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

// ErrorStyle prefixes failure messages.
var ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// HeaderStyle is used for the browser title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// Item state markers.
const (
	MarkDone     = "✔"
	MarkProgress = "…"
	MarkPending  = "☐"
	MarkNote     = "●"
	MarkStar     = "★"
)

// MarkerStyle returns the colored state marker for item.
func MarkerStyle(item *model.Item) (string, lipgloss.Style) {
	base := lipgloss.NewStyle()

	switch {
	case !item.IsTask:
		return MarkNote, base.Foreground(ColorBlue)
	case item.IsComplete:
		return MarkDone, base.Foreground(ColorGreen)
	case item.InProgress:
		return MarkProgress, base.Foreground(ColorMagenta)
	default:
		return MarkPending, base.Foreground(ColorMagenta)
	}
}

// PriorityStyle returns a color-coded style for the given priority.
func PriorityStyle(p model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch p {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	default:
		return base
	}
}

// PriorityMark returns the "!" suffix shown after high priority
// descriptions; normal priority shows nothing.
func PriorityMark(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "(!!)"
	case model.PriorityMedium:
		return "(!)"
	default:
		return ""
	}
}
