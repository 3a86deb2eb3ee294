package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const renderChunk = 512

// RenderPCM16 drains a finite streamer into mono signed 16-bit little-endian
// samples. The left channel is kept.
func RenderPCM16(s beep.Streamer) []byte {
	buf := make([][2]float64, renderChunk)
	out := make([]byte, 0, renderChunk*2)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := math.Max(-1, math.Min(1, buf[i][0]))
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// RenderSound renders the tone for s as PCM16 at SampleRate.
func RenderSound(s Sound) ([]byte, error) {
	streamer, err := NewStreamer(s, SampleRate)
	if err != nil {
		return nil, err
	}
	return RenderPCM16(streamer), nil
}
