package pcm

import (
	"testing"
	"time"
)

func TestFormatProperties(t *testing.T) {
	tests := []struct {
		format Format
		rate   int
		str    string
	}{
		{L16Mono16K, 16000, "audio/L16; rate=16000; channels=1"},
		{L16Mono24K, 24000, "audio/L16; rate=24000; channels=1"},
		{L16Mono48K, 48000, "audio/L16; rate=48000; channels=1"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.format.SampleRate(); got != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", got, tt.rate)
			}
			if got := tt.format.Channels(); got != 1 {
				t.Errorf("Channels() = %d, want 1", got)
			}
			if got := tt.format.Depth(); got != 16 {
				t.Errorf("Depth() = %d, want 16", got)
			}
			if got := tt.format.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.format.BytesRate(); got != tt.rate*2 {
				t.Errorf("BytesRate() = %d, want %d", got, tt.rate*2)
			}
		})
	}
}

func TestFormatSamplesAndDuration(t *testing.T) {
	f := L16Mono24K
	if got := f.Samples(48000); got != 24000 {
		t.Errorf("Samples(48000) = %d, want 24000", got)
	}
	if got := f.Duration(48000); got != time.Second {
		t.Errorf("Duration(48000) = %v, want 1s", got)
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		mime string
		want int
		ok   bool
	}{
		{"audio/L16;codec=pcm;rate=24000", 24000, true},
		{"audio/L16; rate=24000; channels=1", 24000, true},
		{"audio/L16;rate=16000", 16000, true},
		{"audio/L16", 0, false},
		{"audio/L16;rate=abc", 0, false},
		{"audio/L16;rate=-1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			got, ok := ParseRate(tt.mime)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseRate(%q) = (%d, %v), want (%d, %v)", tt.mime, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		mime string
		want Format
		ok   bool
	}{
		{"audio/L16;codec=pcm;rate=24000", L16Mono24K, true},
		{"audio/l16; rate=48000", L16Mono48K, true},
		{"audio/L16;rate=44100", 0, false},
		{"audio/mpeg", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			got, ok := ParseFormat(tt.mime)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseFormat(%q) = (%v, %v), want (%v, %v)", tt.mime, got, ok, tt.want, tt.ok)
			}
		})
	}
}
