// Package gemini provides a Go client wrapper for the Google Gemini API,
// focused on JSON-structured text generation and speech synthesis.
//
// # Basic Usage
//
//	client, err := gemini.NewClient(ctx, "your-api-key")
//	if err != nil {
//	    return err
//	}
//
//	// Text generation
//	resp, err := client.Text.Generate(ctx, &gemini.GenerateRequest{
//	    Prompt: "Write a haiku about the sea.",
//	})
//
//	// JSON generation (code fences stripped, malformed JSON repaired)
//	var story struct {
//	    Title string `json:"title"`
//	    Body  string `json:"body"`
//	}
//	err = client.Text.GenerateJSON(ctx, req, &story)
//
//	// Speech synthesis (raw 16-bit LE mono PCM, typically 24kHz)
//	speech, err := client.Speech.Synthesize(ctx, &gemini.SpeechRequest{
//	    Text:  "Hello, world!",
//	    Voice: "Kore",
//	})
//	buf := pcm.Decode(speech.Audio, speech.SampleRate)
//
// # Credentials
//
// ValidateAPIKey returns a tagged KeyValidation result instead of an error,
// so callers can surface remediation guidance for empty or wrong-provider
// keys without crashing:
//
//	if v := gemini.ValidateAPIKey(key); !v.Valid {
//	    fmt.Println(v.Message)
//	}
//
// # Error Handling
//
//	resp, err := client.Text.Generate(ctx, req)
//	if err != nil {
//	    if e, ok := gemini.AsError(err); ok && e.IsRateLimit() {
//	        // Handle rate limiting
//	    }
//	}
//
// Transient failures (rate limits, server errors, network errors) are
// retried with exponential backoff up to the configured retry limit.
package gemini
