package pcm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestWriteWAVRoundTrip(t *testing.T) {
	data := int16Bytes(0, 32767, -32768, 1234, -1234)

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteWAV(f, data, 24000); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		t.Fatal("WriteWAV produced an invalid WAV file")
	}
	if dec.SampleRate != 24000 {
		t.Errorf("SampleRate = %d, want 24000", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("NumChans = %d, want 1", dec.NumChans)
	}
	if dec.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}
	want := []int{0, 32767, -32768, 1234, -1234}
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i, w := range want {
		if buf.Data[i] != w {
			t.Errorf("sample[%d] = %d, want %d", i, buf.Data[i], w)
		}
	}
}

func TestWriteWAVDefaultRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Odd input length: trailing byte dropped, rate defaulted.
	if err := WriteWAV(f, []byte{0x00, 0x01, 0xFF}, 0); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		t.Fatal("invalid WAV file")
	}
	if dec.SampleRate != DefaultSampleRate {
		t.Errorf("SampleRate = %d, want %d", dec.SampleRate, DefaultSampleRate)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if len(buf.Data) != 1 {
		t.Errorf("decoded %d samples, want 1", len(buf.Data))
	}
}
