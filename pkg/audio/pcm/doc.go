// Package pcm provides types and utilities for working with raw 16-bit
// little-endian PCM audio data.
//
// The package defines audio formats for common configurations (16-bit mono at
// various sample rates), decodes raw sample bytes into normalized
// floating-point buffers suitable for playback APIs, and exports raw PCM into
// a WAV container.
//
// Decoding is a pure transformation:
//
//	buf := pcm.Decode(data, pcm.DefaultSampleRate)
//	fmt.Println(len(buf.Data), buf.Format.SampleRate)
package pcm
