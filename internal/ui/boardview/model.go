// Package boardview is an interactive, board-by-board browser over the
// active items.
package boardview

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskbook/internal/engine"
	"github.com/nhle/taskbook/internal/keys"
	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/theme"
)

// Engine is the subset of engine operations the browser drives.
type Engine interface {
	Items(ctx context.Context) (model.Items, error)
	CheckTasks(ctx context.Context, tokens []string) error
	BeginTasks(ctx context.Context, tokens []string) error
	StarItems(ctx context.Context, tokens []string) error
	DeleteItems(ctx context.Context, tokens []string) error
}

// Status collects presenter output between actions. *bytes.Buffer fits.
type Status interface {
	String() string
	Reset()
}

// ItemsLoadedMsg is sent when items have been loaded from the store.
type ItemsLoadedMsg struct {
	Items model.Items
	Err   error
}

// ActionDoneMsg is sent after an item action completes.
type ActionDoneMsg struct {
	Err error
}

// Model is the board browser.
type Model struct {
	engine   Engine
	status   Status
	keys     *keys.KeyMap
	list     list.Model
	help     help.Model
	showHelp bool

	items    model.Items
	grouping model.Grouping
	board    int

	// busy is set while an action runs; further actions are ignored until
	// its ActionDoneMsg arrives.
	busy bool

	message string
	err     error
	width   int
	height  int
}

// New creates a browser model.
func New(e Engine, status Status, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, itemDelegate{}, width, height-4)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return Model{
		engine: e,
		status: status,
		keys:   k,
		list:   l,
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the items.
func (m Model) Init() tea.Cmd {
	return m.loadItems()
}

func (m Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.engine.Items(context.Background())
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}

// Update handles messages for the browser.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ItemsLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.items = msg.Items
		m.grouping = engine.GroupByBoard(msg.Items)
		if m.board >= m.grouping.Len() {
			m.board = max(0, m.grouping.Len()-1)
		}
		cmd := m.syncList()
		return m, cmd

	case ActionDoneMsg:
		m.busy = false
		m.err = msg.Err
		if m.status != nil {
			m.message = lastLine(m.status.String())
			m.status.Reset()
		}
		return m, m.loadItems()

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.NextBoard):
		return m.switchBoard(1)
	case key.Matches(msg, m.keys.PrevBoard):
		return m.switchBoard(-1)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadItems()
	case key.Matches(msg, m.keys.Check):
		return m.act(m.engine.CheckTasks)
	case key.Matches(msg, m.keys.Begin):
		return m.act(m.engine.BeginTasks)
	case key.Matches(msg, m.keys.Star):
		return m.act(m.engine.StarItems)
	case key.Matches(msg, m.keys.Delete):
		return m.act(m.engine.DeleteItems)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) switchBoard(delta int) (tea.Model, tea.Cmd) {
	n := m.grouping.Len()
	if n == 0 {
		return m, nil
	}
	m.board = (m.board + delta + n) % n
	m.list.Select(0)
	cmd := m.syncList()
	return m, cmd
}

// act runs op on the selected item unless another action is still running.
func (m Model) act(op func(context.Context, []string) error) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	id, ok := m.SelectedID()
	if !ok {
		return m, nil
	}
	m.busy = true
	return m, func() tea.Msg {
		return ActionDoneMsg{Err: op(context.Background(), []string{"@" + strconv.Itoa(id)})}
	}
}

// Busy reports whether an action is running.
func (m Model) Busy() bool { return m.busy }

// SelectedID returns the id of the highlighted item.
func (m Model) SelectedID() (int, bool) {
	w, ok := m.list.SelectedItem().(itemWrapper)
	if !ok {
		return 0, false
	}
	return w.item.ID, true
}

// CurrentBoard returns the name of the board on screen.
func (m Model) CurrentBoard() string {
	if m.grouping.Len() == 0 {
		return ""
	}
	return m.grouping.Boards[m.board]
}

func (m *Model) syncList() tea.Cmd {
	board := m.CurrentBoard()
	ids := m.grouping.Buckets[board]
	items := make([]list.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, itemWrapper{item: m.items[id]})
	}
	return m.list.SetItems(items)
}

// View renders the board tabs, the item list and the status line.
func (m Model) View() string {
	sections := []string{m.tabs(), m.list.View()}

	switch {
	case m.err != nil:
		sections = append(sections, theme.ErrorStyle.Render(m.err.Error()))
	case m.message != "":
		sections = append(sections, theme.HelpStyle.Render(m.message))
	}

	m.help.ShowAll = m.showHelp
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) tabs() string {
	if m.grouping.Len() == 0 {
		return theme.HeaderStyle.Render("taskbook") + " " + theme.HelpStyle.Render("no items")
	}
	tabs := make([]string, 0, m.grouping.Len())
	for i, b := range m.grouping.Boards {
		label := fmt.Sprintf("%s (%d)", b, len(m.grouping.Buckets[b]))
		if i == m.board {
			tabs = append(tabs, theme.HeaderStyle.Render(label))
			continue
		}
		tabs = append(tabs, lipgloss.NewStyle().Padding(0, 1).Foreground(theme.ColorGray).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// SetSize updates the browser dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(1, height-4))
	m.help.Width = width
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
