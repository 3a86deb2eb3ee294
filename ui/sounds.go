package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"retro-snake/audio"
)

// ErrNoAudioDevice is returned when raylib cannot open an audio device.
var ErrNoAudioDevice = errors.New("audio device not ready")

// SoundPlayer plays sounds through raylib's audio device. Files under
// Sounds/ in the asset directory win; missing files are replaced by the
// synthesized tones.
type SoundPlayer struct {
	sounds map[audio.Sound]rl.Sound
}

// NewSoundPlayer opens the audio device and loads both sounds.
func NewSoundPlayer(assetDir string) (*SoundPlayer, error) {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
		return nil, ErrNoAudioDevice
	}

	p := &SoundPlayer{sounds: make(map[audio.Sound]rl.Sound, 2)}
	for _, s := range []audio.Sound{audio.Eat, audio.Death} {
		snd, err := loadSound(assetDir, s)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.sounds[s] = snd
	}
	return p, nil
}

func loadSound(assetDir string, s audio.Sound) (rl.Sound, error) {
	path := filepath.Join(assetDir, "Sounds", s.String()+".mp3")
	if rl.FileExists(path) {
		return rl.LoadSound(path), nil
	}

	pcm, err := audio.RenderSound(s)
	if err != nil {
		return rl.Sound{}, fmt.Errorf("synthesize %s: %w", s, err)
	}
	wave := rl.NewWave(uint32(len(pcm)/2), uint32(audio.SampleRate), 16, 1, pcm)
	return rl.LoadSoundFromWave(wave), nil
}

func (p *SoundPlayer) Play(s audio.Sound) {
	if snd, ok := p.sounds[s]; ok {
		rl.PlaySound(snd)
	}
}

// Close unloads the sounds and closes the audio device.
func (p *SoundPlayer) Close() error {
	for s, snd := range p.sounds {
		rl.UnloadSound(snd)
		delete(p.sounds, s)
	}
	rl.CloseAudioDevice()
	return nil
}
