//go:build !cgo

package feedback

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewAudioWithoutCgo(t *testing.T) {
	a, err := NewAudio(log.New(io.Discard))
	if !errors.Is(err, ErrNoAudio) || a != nil {
		t.Errorf("NewAudio() = %v, %v; expected ErrNoAudio", a, err)
	}
}
