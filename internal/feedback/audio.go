//go:build cgo

package feedback

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	contextOnce sync.Once
	sharedCtx   *audio.Context
	contextErr  error
)

// sharedContext returns the process-wide audio context. Ebiten allows only
// one per process.
func sharedContext() (*audio.Context, error) {
	contextOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				contextErr = fmt.Errorf("feedback: audio context: %v", r)
			}
		}()
		sharedCtx = audio.NewContext(SampleRate)
	})
	return sharedCtx, contextErr
}

// Audio plays synthesised effects through ebiten's audio package.
// Play never blocks and never fails loudly: the first error is logged and
// later plays are dropped.
type Audio struct {
	ctx    *audio.Context
	pcm    map[Effect][]byte
	logger *log.Logger

	mu     sync.Mutex
	failed bool
}

// NewAudio prepares every effect. It returns an error when no audio device
// can be opened; callers fall back to silence.
func NewAudio(logger *log.Logger) (*Audio, error) {
	ctx, err := sharedContext()
	if err != nil {
		return nil, err
	}
	a := &Audio{
		ctx:    ctx,
		pcm:    make(map[Effect][]byte, len(tones)),
		logger: logger.WithPrefix("audio"),
	}
	for e, t := range tones {
		a.pcm[e] = synth(t)
	}
	return a, nil
}

// Play starts an effect and returns immediately.
func (a *Audio) Play(e Effect) {
	data, ok := a.pcm[e]
	if !ok {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failed {
		return
	}
	if err := a.ctx.Err(); err != nil {
		a.fail(e, err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			a.fail(e, fmt.Errorf("%v", r))
		}
	}()
	a.ctx.NewPlayerFromBytes(data).Play()
}

func (a *Audio) fail(e Effect, err error) {
	a.failed = true
	a.logger.Warn("audio disabled", "effect", string(e), "error", err)
}
