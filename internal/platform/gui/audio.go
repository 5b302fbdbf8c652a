package gui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/critter-catcher/internal/sound"
)

// sampleRate matches the 16-bit stereo PCM the tone synthesizer writes.
const sampleRate = 48000

// cuePlayer plays synthesized cue tones through an ebiten audio context.
// One player per cue is kept and rewound on every play.
type cuePlayer struct {
	mu      sync.Mutex
	ctx     *audio.Context
	players map[string]*audio.Player
}

func newCuePlayer() *cuePlayer {
	return &cuePlayer{
		ctx:     audio.NewContext(sampleRate),
		players: make(map[string]*audio.Player),
	}
}

// Play starts the cue from the beginning. Unknown cues are ignored.
func (c *cuePlayer) Play(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.players[name]
	if !ok {
		pcm := sound.Render(name, sampleRate)
		if pcm == nil {
			return
		}
		p = c.ctx.NewPlayerFromBytes(pcm)
		c.players[name] = p
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
