package gemini

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/talevox/talevox/pkg/audio/pcm"
)

// SpeechService provides speech synthesis operations.
type SpeechService struct {
	client *Client
}

// newSpeechService creates a new speech service.
func newSpeechService(client *Client) *SpeechService {
	return &SpeechService{client: client}
}

// Synthesize synthesizes speech for the given text.
//
// The returned audio is raw 16-bit little-endian mono PCM; the wire payload
// is base64 and decoded transparently. A response without an audio payload
// is reported as ErrNoAudioData.
func (s *SpeechService) Synthesize(ctx context.Context, req *SpeechRequest) (*SpeechResponse, error) {
	model := req.Model
	if model == "" {
		model = DefaultSpeechModel
	}
	voice := req.Voice
	if voice == "" {
		voice = DefaultVoice
	}
	requestID := uuid.NewString()

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voice,
				},
			},
		},
	}

	slog.Debug("gemini: synthesize",
		"request_id", requestID, "model", model, "voice", voice, "text_len", len(req.Text))

	var resp *genai.GenerateContentResponse
	err := s.client.do(ctx, requestID, func() error {
		var err error
		resp, err = s.client.genai.Models.GenerateContent(ctx, model, []*genai.Content{
			{Parts: []*genai.Part{{Text: req.Text}}, Role: "user"},
		}, cfg)
		return err
	})
	if err != nil {
		return nil, err
	}

	audio, mimeType := audioFromResponse(resp)
	if len(audio) == 0 {
		return nil, ErrNoAudioData
	}

	rate := sampleRateFromMIME(mimeType)

	slog.Debug("gemini: synthesize done",
		"request_id", requestID, "audio_bytes", len(audio), "mime_type", mimeType)

	return &SpeechResponse{
		Audio:      audio,
		MIMEType:   mimeType,
		SampleRate: rate,
		Model:      model,
		RequestID:  requestID,
	}, nil
}

// Voices returns the catalog of prebuilt voices.
func (s *SpeechService) Voices() []Voice {
	return Voices()
}

// sampleRateFromMIME resolves the sample rate reported in an audio MIME
// type. Known L16 formats resolve through the format catalog; other MIME
// types fall back to the bare rate parameter, then to the default rate.
func sampleRateFromMIME(mime string) int {
	if f, ok := pcm.ParseFormat(mime); ok {
		return f.SampleRate()
	}
	if rate, ok := pcm.ParseRate(mime); ok {
		return rate
	}
	return pcm.DefaultSampleRate
}

// audioFromResponse extracts the first inline audio payload from a response.
func audioFromResponse(resp *genai.GenerateContentResponse) (data []byte, mimeType string) {
	if resp == nil {
		return nil, ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType
			}
		}
	}
	return nil, ""
}
