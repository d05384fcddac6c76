package tui

import (
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionStart, false},
		{"enter", core.ActionStart, false},
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}
	for _, tc := range tests {
		action, quit := km.MapKey(keyMsg(tc.key))
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapCommand(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key      string
		expected Command
	}{
		{"h", CommandToggleHaptics},
		{"m", CommandToggleSound},
		{" ", CommandNone},
	}
	for _, tc := range tests {
		if got := km.MapCommand(keyMsg(tc.key)); got != tc.expected {
			t.Errorf("MapCommand(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}
