package cli

import (
	"os"
	"path/filepath"
	"testing"
)

type testRequest struct {
	Model string `json:"model" yaml:"model"`
	Text  string `json:"text" yaml:"text"`
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRequest(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    testRequest
		wantErr bool
	}{
		{
			name:    "yaml",
			file:    "req.yaml",
			content: "model: m1\ntext: hello\n",
			want:    testRequest{Model: "m1", Text: "hello"},
		},
		{
			name:    "json",
			file:    "req.json",
			content: `{"model":"m2","text":"world"}`,
			want:    testRequest{Model: "m2", Text: "world"},
		},
		{
			name:    "unknown extension tries yaml",
			file:    "req.txt",
			content: "text: fallback\n",
			want:    testRequest{Text: "fallback"},
		},
		{
			name:    "garbage",
			file:    "req.json",
			content: "{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)

			var got testRequest
			err := LoadRequest(path, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("LoadRequest succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadRequest: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadRequest = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadRequestMissingFile(t *testing.T) {
	var got testRequest
	if err := LoadRequest(filepath.Join(t.TempDir(), "nope.yaml"), &got); err == nil {
		t.Fatal("LoadRequest on missing file succeeded")
	}
}

func TestLoadRequestFromStdin(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    testRequest
	}{
		{
			name:    "json",
			content: `{"model":"m","text":"piped"}`,
			want:    testRequest{Model: "m", Text: "piped"},
		},
		{
			name:    "yaml",
			content: "model: m\ntext: piped\n",
			want:    testRequest{Model: "m", Text: "piped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "stdin", tt.content)
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			old := os.Stdin
			os.Stdin = f
			defer func() { os.Stdin = old }()

			var got testRequest
			if err := LoadRequestFromStdin(&got); err != nil {
				t.Fatalf("LoadRequestFromStdin: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadRequestFromStdin = %+v, want %+v", got, tt.want)
			}
		})
	}
}
