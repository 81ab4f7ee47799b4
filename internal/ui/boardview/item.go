package boardview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/theme"
)

var (
	listItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(theme.ColorBlue).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(theme.ColorBlue)
)

// itemWrapper adapts a model.Item to list.Item.
type itemWrapper struct {
	item *model.Item
}

// FilterValue returns the string used for fuzzy filtering.
func (w itemWrapper) FilterValue() string { return w.item.Description }

// itemDelegate draws one item per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single list item line.
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	wrapper, ok := li.(itemWrapper)
	if !ok {
		return
	}
	fmt.Fprint(w, renderLine(wrapper.item, index == m.Index()))
}

func renderLine(item *model.Item, selected bool) string {
	mark, markStyle := theme.MarkerStyle(item)

	parts := []string{
		theme.IDStyle.Render(fmt.Sprintf("%d.", item.ID)),
		markStyle.Render(mark),
	}

	desc := item.Description
	if item.IsTask && item.Priority > model.PriorityNormal {
		desc += " " + theme.PriorityMark(item.Priority)
	}
	parts = append(parts, desc)

	if item.IsStarred {
		parts = append(parts, theme.StarStyle.Render(theme.MarkStar))
	}

	line := strings.Join(parts, " ")
	if item.IsTask && item.IsComplete {
		line = theme.DimmedStyle.Render(line)
	}

	if selected {
		return selectedItemStyle.Render(line)
	}
	return listItemStyle.Render(line)
}
