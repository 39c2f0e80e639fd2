package pcm

import (
	"encoding/binary"
	"time"

	"github.com/go-audio/audio"
)

// DefaultSampleRate is the sample rate assumed when the caller does not
// specify one. It matches the rate used by hosted TTS endpoints that return
// raw L16 audio.
const DefaultSampleRate = 24000

// Decode converts raw 16-bit little-endian signed PCM bytes into a
// single-channel normalized float buffer.
//
// Each consecutive byte pair, starting at offset 0, is interpreted as a
// signed 16-bit little-endian integer and scaled by 1/32768, yielding samples
// in [-1.0, 1.0). The divisor is 32768 for both signs; positive full scale
// maps to 0.999969... rather than 1.0, matching standard 16-bit-to-float
// conversion. A trailing odd byte is ignored. Empty input yields an empty
// buffer.
//
// If sampleRate is not positive, DefaultSampleRate is used. The input slice
// is never mutated and the returned buffer shares no memory with it. Decode
// is a pure function and safe for concurrent use.
func Decode(data []byte, sampleRate int) *audio.FloatBuffer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := len(data) / 2
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = float64(s) / 32768.0
	}
	return &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data: samples,
	}
}

// BufferDuration returns the playback duration of a decoded buffer.
func BufferDuration(buf *audio.FloatBuffer) time.Duration {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(buf.Data)) * time.Second / time.Duration(buf.Format.SampleRate)
}

// Peak returns the largest absolute sample value in the buffer.
func Peak(buf *audio.FloatBuffer) float64 {
	var peak float64
	if buf == nil {
		return 0
	}
	for _, s := range buf.Data {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
