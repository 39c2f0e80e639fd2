package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/kaptinlin/jsonrepair"
	"google.golang.org/genai"
)

// TextService provides text generation operations.
type TextService struct {
	client *Client
}

// newTextService creates a new text service.
func newTextService(client *Client) *TextService {
	return &TextService{client: client}
}

// Generate generates text for the given prompt.
//
// An empty model response is reported as ErrEmptyResponse.
func (s *TextService) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = DefaultTextModel
	}
	requestID := uuid.NewString()

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Temperature != nil {
		cfg.Temperature = req.Temperature
	}

	slog.Debug("gemini: generate",
		"request_id", requestID, "model", model, "prompt_len", len(req.Prompt))

	var resp *genai.GenerateContentResponse
	err := s.client.do(ctx, requestID, func() error {
		var err error
		resp, err = s.client.genai.Models.GenerateContent(ctx, model, []*genai.Content{
			{Parts: []*genai.Part{{Text: req.Prompt}}, Role: "user"},
		}, cfg)
		return err
	})
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	text := sb.String()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	slog.Debug("gemini: generate done", "request_id", requestID, "text_len", len(text))

	return &GenerateResponse{
		Text:      text,
		Model:     model,
		RequestID: requestID,
	}, nil
}

// GenerateJSON generates text for the given prompt and unmarshals it into
// out. Markdown code fences are stripped before parsing, and malformed JSON
// is repaired before giving up.
//
// On parse failure the returned error is a *ParseError carrying the raw
// model text; the raw text is logged here for diagnosis and should not be
// shown to end users.
func (s *TextService) GenerateJSON(ctx context.Context, req *GenerateRequest, out any) error {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := DecodeJSON(resp.Text, out); err != nil {
		slog.Error("gemini: model output is not valid JSON",
			"request_id", resp.RequestID, "err", err, "raw", resp.Text)
		return &ParseError{Raw: resp.Text, Err: err}
	}
	return nil
}

// DecodeJSON strips code fences and unmarshals model text into v, attempting
// to repair malformed JSON. If the initial unmarshal fails with a syntax
// error, the text is run through jsonrepair before retrying.
func DecodeJSON(text string, v any) error {
	data := stripCodeFences(text)
	err := json.Unmarshal([]byte(data), v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, rerr := jsonrepair.JSONRepair(data)
		if rerr != nil {
			return err
		}
		return json.Unmarshal([]byte(fixed), v)
	}
	return err
}
