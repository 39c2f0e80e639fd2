package gemini

// Default models used when a request leaves the model unset.
const (
	// DefaultTextModel is the default model for text and JSON generation.
	DefaultTextModel = "gemini-2.5-flash"

	// DefaultSpeechModel is the default model for speech synthesis.
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"

	// DefaultVoice is the default prebuilt voice for speech synthesis.
	DefaultVoice = "Kore"
)

// GenerateRequest is a text generation request.
type GenerateRequest struct {
	// Model is the model name. Defaults to DefaultTextModel if empty.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Prompt is the user prompt text. Required.
	Prompt string `json:"prompt" yaml:"prompt"`

	// System is an optional system instruction.
	System string `json:"system,omitempty" yaml:"system,omitempty"`

	// Temperature overrides the sampling temperature when non-nil.
	Temperature *float32 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// GenerateResponse is the result of a text generation request.
type GenerateResponse struct {
	// Text is the concatenated model output.
	Text string `json:"text"`

	// Model is the model that served the request.
	Model string `json:"model"`

	// RequestID is the client-assigned request ID, also attached to logs.
	RequestID string `json:"request_id"`
}

// SpeechRequest is a speech synthesis request.
type SpeechRequest struct {
	// Model is the TTS model name. Defaults to DefaultSpeechModel if empty.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Text is the text to speak. Required.
	Text string `json:"text" yaml:"text"`

	// Voice is the prebuilt voice name. Defaults to DefaultVoice if empty.
	Voice string `json:"voice,omitempty" yaml:"voice,omitempty"`
}

// SpeechResponse is the result of a speech synthesis request.
type SpeechResponse struct {
	// Audio is the raw 16-bit little-endian mono PCM payload, decoded from
	// the base64 inline data on the wire.
	Audio []byte `json:"-"`

	// MIMEType is the payload MIME type as reported by the API,
	// e.g. "audio/L16;codec=pcm;rate=24000".
	MIMEType string `json:"mime_type"`

	// SampleRate is the sample rate parsed from MIMEType, or 24000 when the
	// MIME type carries no rate parameter.
	SampleRate int `json:"sample_rate"`

	// Model is the model that served the request.
	Model string `json:"model"`

	// RequestID is the client-assigned request ID.
	RequestID string `json:"request_id"`
}

// Voice describes a prebuilt TTS voice.
type Voice struct {
	// Name is the voice name passed in SpeechRequest.Voice.
	Name string `json:"name"`

	// Description is a short characterization of the voice.
	Description string `json:"description"`
}

// Voices returns the catalog of prebuilt TTS voices. The catalog is static
// and needs no client.
func Voices() []Voice {
	voices := make([]Voice, len(prebuiltVoices))
	copy(voices, prebuiltVoices)
	return voices
}

// prebuiltVoices is the catalog returned by Voices.
var prebuiltVoices = []Voice{
	{"Zephyr", "Bright"},
	{"Puck", "Upbeat"},
	{"Charon", "Informative"},
	{"Kore", "Firm"},
	{"Fenrir", "Excitable"},
	{"Leda", "Youthful"},
	{"Orus", "Firm"},
	{"Aoede", "Breezy"},
	{"Callirrhoe", "Easy-going"},
	{"Autonoe", "Bright"},
	{"Enceladus", "Breathy"},
	{"Iapetus", "Clear"},
	{"Umbriel", "Easy-going"},
	{"Algieba", "Smooth"},
	{"Despina", "Smooth"},
	{"Erinome", "Clear"},
	{"Algenib", "Gravelly"},
	{"Rasalgethi", "Informative"},
	{"Laomedeia", "Upbeat"},
	{"Achernar", "Soft"},
	{"Alnilam", "Firm"},
	{"Schedar", "Even"},
	{"Gacrux", "Mature"},
	{"Pulcherrima", "Forward"},
	{"Achird", "Friendly"},
	{"Zubenelgenubi", "Casual"},
	{"Vindemiatrix", "Gentle"},
	{"Sadachbia", "Lively"},
	{"Sadaltager", "Knowledgeable"},
	{"Sulafat", "Warm"},
}
