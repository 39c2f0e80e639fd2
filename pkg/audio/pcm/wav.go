package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV wraps raw 16-bit little-endian mono PCM bytes in a WAV container.
// A trailing odd byte is ignored, consistent with Decode. If sampleRate is
// not positive, DefaultSampleRate is used.
//
// The writer must support seeking because the RIFF header sizes are patched
// after the data chunk is written.
func WriteWAV(w io.WriteSeeker, data []byte, sampleRate int) error {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := len(data) / 2
	ints := make([]int, n)
	for i := 0; i < n; i++ {
		ints[i] = int(int16(binary.LittleEndian.Uint16(data[i*2:])))
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           ints,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
