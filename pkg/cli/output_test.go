package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{
		"name":  "test",
		"value": 123,
	}

	err := Output(data, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	// Verify valid JSON
	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if result["name"] != "test" {
		t.Errorf("name = %v, want %q", result["name"], "test")
	}
}

func TestOutput_YAML(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{
		"name":  "test",
		"value": 123,
	}

	err := Output(data, OutputOptions{
		Format: FormatYAML,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "name: test") {
		t.Errorf("Output should contain 'name: test', got: %s", output)
	}
}

func TestOutput_DefaultFormat(t *testing.T) {
	var buf bytes.Buffer

	// Empty format should default to YAML
	err := Output(map[string]string{"key": "value"}, OutputOptions{
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	if !strings.Contains(buf.String(), "key: value") {
		t.Errorf("Default format should be YAML, got: %s", buf.String())
	}
}

func TestOutput_Raw(t *testing.T) {
	var buf bytes.Buffer

	err := Output([]byte{0x01, 0x02}, OutputOptions{
		Format: FormatRaw,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x02}) {
		t.Errorf("raw output = %v", buf.Bytes())
	}
}

func TestOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := Output(map[string]string{"a": "b"}, OutputOptions{
		Format: FormatJSON,
		File:   path,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"a": "b"`) {
		t.Errorf("file content = %s", data)
	}
}

func TestOutput_Query(t *testing.T) {
	type resp struct {
		Text      string `json:"text"`
		RequestID string `json:"request_id"`
	}

	tests := []struct {
		name  string
		query string
		in    any
		want  string
	}{
		{
			name:  "select field",
			query: ".text",
			in:    resp{Text: "hello", RequestID: "r1"},
			want:  `"hello"`,
		},
		{
			name:  "nested index",
			query: ".items[1]",
			in:    map[string]any{"items": []any{"a", "b"}},
			want:  `"b"`,
		},
		{
			name:  "multiple outputs collected",
			query: ".items[]",
			in:    map[string]any{"items": []any{1, 2}},
			want:  "[\n  1,\n  2\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Output(tt.in, OutputOptions{
				Format: FormatJSON,
				Query:  tt.query,
				Writer: &buf,
			})
			if err != nil {
				t.Fatalf("Output error: %v", err)
			}
			got := strings.TrimSpace(buf.String())
			if got != tt.want {
				t.Errorf("query %q output = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestOutput_BadQuery(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]string{}, OutputOptions{
		Format: FormatJSON,
		Query:  ".[unclosed",
		Writer: &buf,
	})
	if err == nil {
		t.Error("invalid query should fail")
	}
}

func TestOutputBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.pcm")

	if err := OutputBytes([]byte{0xAA, 0xBB}, path); err != nil {
		t.Fatalf("OutputBytes error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0xAA, 0xBB}) {
		t.Errorf("file content = %v", data)
	}

	if err := OutputBytes([]byte{1}, ""); err == nil {
		t.Error("OutputBytes with empty path should fail")
	}
}
