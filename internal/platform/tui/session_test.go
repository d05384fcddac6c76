package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(Options{}, testConfig)
	if !strings.Contains(m.View(), "Fake") {
		t.Fatalf("menu should list registered games:\n%s", m.View())
	}

	m, _ = updateSession(t, m, keyMsg("enter"))
	if m.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if !m.game.embedded {
		t.Error("session games return to the menu")
	}

	m, cmd := updateSession(t, m, keyMsg("esc"))
	if m.game != nil || cmd != nil {
		t.Fatal("back on an idle game should return to the menu without quitting")
	}
	if m.menu.Selected() != nil {
		t.Error("returning should present a fresh menu")
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	m := NewSessionModel(Options{}, testConfig)

	m, _ = updateSession(t, m, keyMsg("tab"))
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard should render without a store")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(Options{}, testConfig)
	m, cmd := updateSession(t, m, keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
