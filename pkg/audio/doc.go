// Package audio is an umbrella for audio-related sub-packages.
//
//   - pcm: raw 16-bit PCM decoding and WAV encoding
package audio
