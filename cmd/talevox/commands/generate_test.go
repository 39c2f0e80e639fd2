package commands

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDecodeModelOutputLogsRawOnFailure(t *testing.T) {
	var logBuf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer slog.SetDefault(old)

	raw := "Sorry, I can't do that."
	var out struct {
		Title string `json:"title"`
	}

	err := decodeModelOutput(raw, &out)
	if err == nil {
		t.Fatalf("decodeModelOutput(%q) succeeded, want error", raw)
	}
	if strings.Contains(err.Error(), "Sorry") {
		t.Errorf("user-facing error leaks raw model text: %v", err)
	}
	if !strings.Contains(err.Error(), "try again") {
		t.Errorf("error %q carries no retry guidance", err)
	}
	if !strings.Contains(logBuf.String(), "Sorry") {
		t.Errorf("raw model text missing from log: %s", logBuf.String())
	}
}

func TestDecodeModelOutputSuccess(t *testing.T) {
	var logBuf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer slog.SetDefault(old)

	var out struct {
		Title string `json:"title"`
	}
	if err := decodeModelOutput("```json\n{\"title\":\"A\"}\n```", &out); err != nil {
		t.Fatalf("decodeModelOutput: %v", err)
	}
	if out.Title != "A" {
		t.Errorf("Title = %q, want %q", out.Title, "A")
	}
	if logBuf.Len() != 0 {
		t.Errorf("successful decode wrote to the error log: %s", logBuf.String())
	}
}
