package boardview

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/taskbook/internal/keys"
	"github.com/nhle/taskbook/internal/model"
)

type fakeEngine struct {
	items   model.Items
	err     error
	actions []string
	tokens  [][]string
}

func (f *fakeEngine) Items(context.Context) (model.Items, error) { return f.items, f.err }

func (f *fakeEngine) record(name string, tokens []string) error {
	f.actions = append(f.actions, name)
	f.tokens = append(f.tokens, tokens)
	return nil
}

func (f *fakeEngine) CheckTasks(_ context.Context, tokens []string) error {
	return f.record("check", tokens)
}

func (f *fakeEngine) BeginTasks(_ context.Context, tokens []string) error {
	return f.record("begin", tokens)
}

func (f *fakeEngine) StarItems(_ context.Context, tokens []string) error {
	return f.record("star", tokens)
}

func (f *fakeEngine) DeleteItems(_ context.Context, tokens []string) error {
	return f.record("delete", tokens)
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func loaded(t *testing.T, f *fakeEngine, status *bytes.Buffer) Model {
	t.Helper()
	m := New(f, status, keys.DefaultKeyMap(), 80, 24)
	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func fixture() *fakeEngine {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &fakeEngine{items: model.Items{
		1: model.NewTask(1, "write report", []string{"@work"}, model.PriorityHigh, now),
		2: model.NewTask(2, "water plants", []string{"@home"}, model.PriorityNormal, now),
		3: model.NewNote(3, "wifi password", []string{"@home"}, now),
	}}
}

func TestBrowserLoadsBoards(t *testing.T) {
	m := loaded(t, fixture(), &bytes.Buffer{})

	assert.Equal(t, "@work", m.CurrentBoard())
	id, ok := m.SelectedID()
	require.True(t, ok)
	assert.Equal(t, 1, id)

	view := m.View()
	assert.Contains(t, view, "@work (1)")
	assert.Contains(t, view, "@home (2)")
	assert.Contains(t, view, "write report (!!)")
}

func TestBrowserSwitchesBoards(t *testing.T) {
	m := loaded(t, fixture(), &bytes.Buffer{})

	next, _ := m.Update(runeKey("l"))
	m = next.(Model)
	assert.Equal(t, "@home", m.CurrentBoard())
	id, _ := m.SelectedID()
	assert.Equal(t, 2, id)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, "@work", m.CurrentBoard(), "boards wrap around")

	next, _ = m.Update(runeKey("h"))
	m = next.(Model)
	assert.Equal(t, "@home", m.CurrentBoard())
}

func TestBrowserActionsTargetSelectedItem(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"c", "check"},
		{"b", "begin"},
		{"s", "star"},
		{"d", "delete"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := fixture()
			m := loaded(t, f, &bytes.Buffer{})

			_, cmd := m.Update(runeKey(tt.key))
			require.NotNil(t, cmd)
			msg := cmd()

			assert.IsType(t, ActionDoneMsg{}, msg)
			assert.Equal(t, []string{tt.want}, f.actions)
			assert.Equal(t, [][]string{{"@1"}}, f.tokens)
		})
	}
}

func TestBrowserRunsOneActionAtATime(t *testing.T) {
	f := fixture()
	m := loaded(t, f, &bytes.Buffer{})

	next, first := m.Update(runeKey("c"))
	m = next.(Model)
	require.NotNil(t, first)
	assert.True(t, m.Busy())

	next, second := m.Update(runeKey("s"))
	m = next.(Model)
	assert.Nil(t, second, "actions are ignored while one is running")

	done := first()
	assert.Equal(t, []string{"check"}, f.actions)

	next, _ = m.Update(done)
	m = next.(Model)
	assert.False(t, m.Busy())

	_, third := m.Update(runeKey("s"))
	require.NotNil(t, third)
	third()
	assert.Equal(t, []string{"check", "star"}, f.actions)
}

func TestBrowserShowsPresenterStatus(t *testing.T) {
	status := &bytes.Buffer{}
	m := loaded(t, fixture(), status)

	status.WriteString("\n ✔ Checked task: 1\n\n")
	next, cmd := m.Update(ActionDoneMsg{})
	m = next.(Model)

	assert.NotNil(t, cmd, "items are reloaded after an action")
	assert.Contains(t, m.View(), "✔ Checked task: 1")
	assert.Empty(t, status.String())
}

func TestBrowserLoadError(t *testing.T) {
	f := &fakeEngine{err: errors.New("storage unreadable")}
	m := loaded(t, f, &bytes.Buffer{})

	assert.Equal(t, "", m.CurrentBoard())
	_, ok := m.SelectedID()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "storage unreadable")

	_, cmd := m.Update(runeKey("c"))
	assert.Nil(t, cmd, "no action without a selection")
}

func TestBrowserQuit(t *testing.T) {
	m := loaded(t, fixture(), &bytes.Buffer{})

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "second", lastLine("\n first\n second \n\n"))
	assert.Equal(t, "", lastLine(""))
}
