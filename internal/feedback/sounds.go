package feedback

import (
	"encoding/binary"
	"math"
)

// SampleRate of the shared audio context.
const SampleRate = 48000

// Effect names a sound.
type Effect string

const (
	SoundNone        Effect = ""
	SoundWallHit     Effect = "wallHit"
	SoundPaddleHit   Effect = "paddleHit"
	SoundBrickBreak  Effect = "brickBreak"
	SoundBrickDamage Effect = "brickDamage"
	SoundTargetHit   Effect = "targetHit"
	SoundLevelClear  Effect = "levelClear"
	SoundGameOver    Effect = "gameOver"
	SoundUIClick     Effect = "uiClick"
	SoundBounce      Effect = "bounce"
	SoundPass        Effect = "pass"
)

// Sounds plays effects.
type Sounds interface {
	Play(e Effect)
}

// tone is a synthesised effect: one or more notes played back to back.
type tone struct {
	freqs []float64 // Hz, one per note
	ms    int       // per note
	gain  float64
}

var tones = map[Effect]tone{
	SoundWallHit:     {freqs: []float64{220}, ms: 40, gain: 0.25},
	SoundPaddleHit:   {freqs: []float64{440}, ms: 60, gain: 0.35},
	SoundBrickBreak:  {freqs: []float64{660, 880}, ms: 50, gain: 0.35},
	SoundBrickDamage: {freqs: []float64{330}, ms: 50, gain: 0.3},
	SoundTargetHit:   {freqs: []float64{784, 1047}, ms: 60, gain: 0.35},
	SoundLevelClear:  {freqs: []float64{523, 659, 784, 1047}, ms: 110, gain: 0.4},
	SoundGameOver:    {freqs: []float64{392, 330, 262}, ms: 160, gain: 0.4},
	SoundUIClick:     {freqs: []float64{1200}, ms: 25, gain: 0.2},
	SoundBounce:      {freqs: []float64{300}, ms: 45, gain: 0.3},
	SoundPass:        {freqs: []float64{880}, ms: 35, gain: 0.25},
}

// synth renders a tone as 16-bit little-endian stereo PCM with a short
// attack and exponential decay per note.
func synth(t tone) []byte {
	perNote := SampleRate * t.ms / 1000
	attack := SampleRate / 500
	buf := make([]byte, 0, len(t.freqs)*perNote*4)

	for _, f := range t.freqs {
		for i := 0; i < perNote; i++ {
			env := math.Exp(-4 * float64(i) / float64(perNote))
			if i < attack {
				env *= float64(i) / float64(attack)
			}
			v := math.Sin(2*math.Pi*f*float64(i)/SampleRate) * env * t.gain
			s := uint16(int16(v * math.MaxInt16)) //#nosec G115 -- v is within [-1, 1]
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}

type silence struct{}

func (silence) Play(Effect) {}

// Silence is a Sounds that plays nothing.
var Silence Sounds = silence{}
