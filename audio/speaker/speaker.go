// Package speaker plays the game sounds through the system audio device
// with beep. It is kept apart from package audio because the device backend
// needs cgo.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"retro-snake/audio"
)

const bufferLength = 100 * time.Millisecond

// Player mixes synthesized tones onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New opens the audio device. The device stays open until Close.
func New() (*Player, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(bufferLength)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{
		mixer:       &beep.Mixer{},
		initialized: true,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues s on the mixer and returns immediately.
func (p *Player) Play(s audio.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer, err := audio.NewStreamer(s, audio.SampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all sounds and releases the device. Calling it twice is safe.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
	return nil
}
