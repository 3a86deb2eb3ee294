package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// SampleRate is shared by speaker playback and the PCM renderer.
	SampleRate = beep.SampleRate(44100)

	eatNoteLength   = 60 * time.Millisecond
	deathLength     = 400 * time.Millisecond
	deathStartFreq  = 220.0
	deathEndFreq    = 55.0
	defaultLoudness = -1.0
)

// NewStreamer builds a fresh, finite streamer for s. Each call returns a new
// streamer so overlapping plays do not share position.
func NewStreamer(s Sound, sr beep.SampleRate) (beep.Streamer, error) {
	var (
		streamer beep.Streamer
		err      error
	)
	switch s {
	case Eat:
		streamer, err = eatChirp(sr)
	case Death:
		streamer = beep.Take(sr.N(deathLength), NewSweepGenerator(sr, deathStartFreq, deathEndFreq, deathLength))
	default:
		return nil, fmt.Errorf("no tone for sound %d", s)
	}
	if err != nil {
		return nil, fmt.Errorf("%s tone: %w", s, err)
	}
	return &effects.Volume{Streamer: streamer, Base: 2, Volume: defaultLoudness}, nil
}

// eatChirp is two short rising notes.
func eatChirp(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(sr, 660)
	if err != nil {
		return nil, err
	}
	high, err := generators.SineTone(sr, 990)
	if err != nil {
		return nil, err
	}
	return beep.Seq(
		beep.Take(sr.N(eatNoteLength), low),
		beep.Take(sr.N(eatNoteLength), high),
	), nil
}

// SweepGenerator glides from one frequency to another while fading out.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress
		envelope := math.Exp(-progress * 4)

		// Odd harmonics give the buzz its edge.
		sample := 0.6*math.Sin(2*math.Pi*g.phase) + 0.2*math.Sin(6*math.Pi*g.phase)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
