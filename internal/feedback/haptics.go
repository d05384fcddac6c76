// Package feedback turns simulation events into haptic and audio cues.
package feedback

import (
	"io"

	"github.com/charmbracelet/log"
)

// HapticKind is the strength or meaning of a haptic cue.
type HapticKind int

const (
	HapticNone HapticKind = iota
	HapticLight
	HapticMedium
	HapticHeavy
	HapticSuccess
	HapticWarning
	HapticError
)

func (k HapticKind) String() string {
	switch k {
	case HapticLight:
		return "light"
	case HapticMedium:
		return "medium"
	case HapticHeavy:
		return "heavy"
	case HapticSuccess:
		return "success"
	case HapticWarning:
		return "warning"
	case HapticError:
		return "error"
	default:
		return "none"
	}
}

// Haptics triggers a physical cue.
type Haptics interface {
	Trigger(kind HapticKind)
}

// BellHaptics approximates haptics in a terminal: strong cues ring the bell,
// light ones are only logged.
type BellHaptics struct {
	out    io.Writer
	logger *log.Logger
}

// NewBellHaptics writes bells to out.
func NewBellHaptics(out io.Writer, logger *log.Logger) *BellHaptics {
	return &BellHaptics{out: out, logger: logger.WithPrefix("haptics")}
}

// Trigger rings the bell for heavy, success, warning and error cues.
func (b *BellHaptics) Trigger(kind HapticKind) {
	switch kind {
	case HapticHeavy, HapticSuccess, HapticWarning, HapticError:
		if _, err := b.out.Write([]byte{'\a'}); err != nil {
			b.logger.Debug("bell failed", "error", err)
		}
	case HapticLight, HapticMedium:
		b.logger.Debug("haptic", "kind", kind)
	}
}
