package gemini

import "strings"

// stripCodeFences removes a wrapping markdown code fence from model output.
// Models asked for JSON frequently reply with
//
//	```json
//	{...}
//	```
//
// The language tag after the opening fence is ignored. Text without a
// wrapping fence is returned unchanged apart from whitespace trimming.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	body := s[3:]
	// Drop the language tag on the opening fence line, if any.
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		// Single-line fence like ```{}``` or ```json {}```.
		body = strings.TrimSuffix(body, "```")
		body = strings.TrimSpace(body)
		if i := strings.IndexByte(body, ' '); i > 0 && isFenceTag(body[:i]) {
			body = body[i+1:]
		}
		return strings.TrimSpace(body)
	}

	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// isFenceTag reports whether s looks like a fence language tag ("json",
// "json5", "yaml").
func isFenceTag(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}
