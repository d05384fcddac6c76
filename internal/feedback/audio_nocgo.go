//go:build !cgo

package feedback

import (
	"errors"

	"github.com/charmbracelet/log"
)

// ErrNoAudio is returned by NewAudio in builds without cgo, where ebiten
// has no audio backend.
var ErrNoAudio = errors.New("feedback: audio needs a cgo build")

// Audio is unavailable without cgo; NewAudio always fails.
type Audio struct{}

// NewAudio reports ErrNoAudio so callers fall back to Silence.
func NewAudio(*log.Logger) (*Audio, error) {
	return nil, ErrNoAudio
}

// Play does nothing.
func (*Audio) Play(Effect) {}
