// Package prompt builds model prompts from named text templates.
//
// Built-in templates cover the common generation shapes (stories and quizzes
// as strict JSON, plain narration for speech synthesis); callers can register
// their own with Register.
package prompt

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"
)

// Data holds the variables available to a template.
type Data map[string]any

var (
	mu        sync.RWMutex
	templates = map[string]*template.Template{}
)

// Register registers a template under the given name. Registering an existing
// name replaces the previous template.
func Register(name, text string) error {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return fmt.Errorf("prompt: parse template %q: %w", name, err)
	}
	mu.Lock()
	templates[name] = tmpl
	mu.Unlock()
	return nil
}

// mustRegister registers a built-in template and panics on parse errors.
func mustRegister(name, text string) {
	if err := Register(name, text); err != nil {
		panic(err)
	}
}

// Render renders the named template with the given data.
func Render(name string, data Data) (string, error) {
	mu.RLock()
	tmpl, ok := templates[name]
	mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("prompt: template %q not found (have: %s)", name, strings.Join(Names(), ", "))
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("prompt: render %q: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}

// Names returns the registered template names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	mustRegister("story", storyTemplate)
	mustRegister("quiz", quizTemplate)
	mustRegister("narrate", narrateTemplate)
}

// Optional variables are read with index so missingkey=error only fires for
// required ones.
const storyTemplate = `Write a short story about {{.topic}}.

Respond with JSON only, no prose and no markdown, in exactly this shape:
{"title": "...", "paragraphs": ["...", "..."]}

Keep it to {{with index . "paragraphs"}}{{.}}{{else}}3{{end}} paragraphs suitable for reading aloud.`

const quizTemplate = `Create a quiz with {{with index . "questions"}}{{.}}{{else}}5{{end}} questions about {{.topic}}.

Respond with JSON only, no prose and no markdown, in exactly this shape:
{"questions": [{"question": "...", "choices": ["...", "...", "...", "..."], "answer": 0}]}

The answer field is the zero-based index of the correct choice.`

const narrateTemplate = `Read the following text aloud in a {{with index . "tone"}}{{.}}{{else}}warm, natural{{end}} tone:

{{.text}}`
