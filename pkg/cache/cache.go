// Package cache provides a local content-addressed cache of generation
// results, so repeated prompts and synthesis requests can be served without
// calling the hosted API again.
//
// The package includes a BadgerDB-backed implementation for the CLI and an
// in-memory implementation for testing. Entries are encoded with msgpack.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrMiss is returned when no entry exists for a key.
var ErrMiss = errors.New("cache: miss")

// Entry kinds.
const (
	KindText   = "text"
	KindSpeech = "speech"
)

// Entry is a cached generation result.
type Entry struct {
	// Key is the content-addressed key, as produced by TextKey or SpeechKey.
	Key string `msgpack:"key"`

	// Kind is KindText or KindSpeech.
	Kind string `msgpack:"kind"`

	// Model is the model that produced the result.
	Model string `msgpack:"model"`

	// Voice is the TTS voice, empty for text entries.
	Voice string `msgpack:"voice,omitempty"`

	// Text is the generated text for text entries, or the spoken text for
	// speech entries.
	Text string `msgpack:"text"`

	// Audio is the raw PCM payload for speech entries.
	Audio []byte `msgpack:"audio,omitempty"`

	// MIMEType is the audio MIME type for speech entries.
	MIMEType string `msgpack:"mime_type,omitempty"`

	// SampleRate is the audio sample rate for speech entries.
	SampleRate int `msgpack:"sample_rate,omitempty"`

	// CreatedAt is when the entry was stored.
	CreatedAt time.Time `msgpack:"created_at"`
}

// Store is the interface for a generation cache.
type Store interface {
	// Get retrieves the entry for a key. Returns ErrMiss if not present.
	Get(ctx context.Context, key string) (*Entry, error)

	// Put stores an entry under its Key. Overwrites any existing entry.
	Put(ctx context.Context, e *Entry) error

	// Delete removes an entry. No error if the key does not exist.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// TextKey returns the cache key for a text generation request.
func TextKey(model, system, prompt string) string {
	return hashKey(KindText, model, system, prompt)
}

// SpeechKey returns the cache key for a speech synthesis request.
func SpeechKey(model, voice, text string) string {
	return hashKey(KindSpeech, model, voice, text)
}

// hashKey derives a stable key from the request fields. Fields are separated
// by NUL so ("ab","c") and ("a","bc") hash differently.
func hashKey(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
