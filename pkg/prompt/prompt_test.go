package prompt

import (
	"strings"
	"testing"
)

func TestRenderBuiltins(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    Data
		substrs []string
	}{
		{
			name:    "story with defaults",
			tmpl:    "story",
			data:    Data{"topic": "a lighthouse keeper"},
			substrs: []string{"a lighthouse keeper", "3 paragraphs", "JSON only"},
		},
		{
			name:    "story with paragraph count",
			tmpl:    "story",
			data:    Data{"topic": "robots", "paragraphs": 5},
			substrs: []string{"robots", "5 paragraphs"},
		},
		{
			name:    "quiz",
			tmpl:    "quiz",
			data:    Data{"topic": "the solar system", "questions": 10},
			substrs: []string{"10 questions", "the solar system", "zero-based"},
		},
		{
			name:    "narrate with tone",
			tmpl:    "narrate",
			data:    Data{"text": "Once upon a time.", "tone": "dramatic"},
			substrs: []string{"dramatic", "Once upon a time."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for _, s := range tt.substrs {
				if !strings.Contains(got, s) {
					t.Errorf("rendered prompt missing %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("nope", nil)
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q does not name the template", err)
	}
}

func TestRenderMissingVariable(t *testing.T) {
	if _, err := Render("story", Data{}); err == nil {
		t.Fatal("expected error for missing topic variable")
	}
}

func TestRegisterCustom(t *testing.T) {
	if err := Register("greeting", "Hello, {{.name}}!"); err != nil {
		t.Fatal(err)
	}

	got, err := Render("greeting", Data{"name": "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello, Ada!" {
		t.Errorf("Render = %q, want %q", got, "Hello, Ada!")
	}

	names := Names()
	found := false
	for _, n := range names {
		if n == "greeting" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() = %v, missing greeting", names)
	}
}

func TestRegisterBadTemplate(t *testing.T) {
	if err := Register("broken", "{{.unclosed"); err == nil {
		t.Fatal("expected parse error")
	}
}
