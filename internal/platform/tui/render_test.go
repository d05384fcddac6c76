package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("uncoloured screen = %q, expected %q", got, want)
	}
}

func TestRenderScreenColoured(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextFG(0, 0, "ab", core.ColorPrimary)
	s.FillBG(core.NewRect(3, 0, 3, 1), core.ColorField)

	out := RenderScreen(s)
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("coloured output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row rendered as %d lines", strings.Count(out, "\n")+1)
	}
}
