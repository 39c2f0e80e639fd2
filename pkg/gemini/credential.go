package gemini

import "strings"

// KeyValidation is the result of checking an API credential. It is a tagged
// result rather than an error so callers can render the message as guidance
// without treating a bad key as a crash.
type KeyValidation struct {
	// Valid reports whether the key looks usable.
	Valid bool

	// Message is a human-readable remediation hint when Valid is false.
	Message string
}

// wrongProviderPrefixes maps recognizable foreign key prefixes to the
// provider they belong to. Gemini API keys start with "AIza"; keys with these
// prefixes were issued by someone else entirely.
var wrongProviderPrefixes = []struct {
	prefix   string
	provider string
}{
	{"sk-ant-", "Anthropic"},
	{"sk-", "OpenAI"},
}

// ValidateAPIKey checks an API key for obvious problems: empty values and
// keys issued by a different provider. It never returns an error; the result
// carries a remediation message for display.
func ValidateAPIKey(key string) KeyValidation {
	key = strings.TrimSpace(key)
	if key == "" {
		return KeyValidation{
			Valid:   false,
			Message: "API key is empty. Create a key at https://aistudio.google.com/apikey and set GEMINI_API_KEY or add it to a context with 'config add-context'.",
		}
	}
	for _, p := range wrongProviderPrefixes {
		if strings.HasPrefix(key, p.prefix) {
			return KeyValidation{
				Valid:   false,
				Message: "This looks like an " + p.provider + " API key (prefix " + p.prefix + "). Gemini keys start with \"AIza\"; create one at https://aistudio.google.com/apikey.",
			}
		}
	}
	return KeyValidation{Valid: true}
}
