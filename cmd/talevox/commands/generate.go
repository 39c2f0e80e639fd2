package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/pkg/cache"
	"github.com/talevox/talevox/pkg/gemini"
	"github.com/talevox/talevox/pkg/prompt"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Text generation operations",
	Long: `Generate text or structured JSON from a prompt.

The prompt comes from --prompt, from a request file (-f), or from a
named template (--template) with --var substitutions.

Request file format (YAML):
  model: gemini-2.5-flash   # optional
  system: You are a poet.   # optional
  prompt: Write a haiku about the sea.
  temperature: 0.7          # optional

Examples:
  talevox generate text --prompt "Write a haiku about the sea"
  talevox generate text -f request.yaml -o out.txt
  talevox generate json --template story --var topic=dragons
  talevox generate templates`,
}

var generateTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Generate plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildGenerateRequest(cmd)
		if err != nil {
			return err
		}

		resp, cached, err := generateText(cmd, req)
		if err != nil {
			return err
		}

		if out := getOutputFile(); out != "" && !isJSONOutput() {
			// Plain text output to a file: write the text itself.
			if err := outputBytes([]byte(resp.Text), out); err != nil {
				return err
			}
			printSuccess("Text written to %s", out)
			return nil
		}

		result := map[string]any{
			"text":   resp.Text,
			"model":  resp.Model,
			"cached": cached,
		}
		if resp.RequestID != "" {
			result["request_id"] = resp.RequestID
		}
		return outputResult(result, getOutputFile(), isJSONOutput())
	},
}

var generateJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Generate structured JSON",
	Long: `Generate structured JSON from a prompt.

The model output is parsed as JSON after stripping any wrapping markdown
code fence. Malformed output is repaired where possible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildGenerateRequest(cmd)
		if err != nil {
			return err
		}

		resp, _, err := generateText(cmd, req)
		if err != nil {
			return err
		}

		var out any
		if err := decodeModelOutput(resp.Text, &out); err != nil {
			return err
		}

		return outputResult(out, getOutputFile(), isJSONOutput())
	},
}

var generateTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return outputResult(prompt.Names(), getOutputFile(), isJSONOutput())
	},
}

// decodeModelOutput parses model text as JSON. On failure the raw text is
// logged for diagnosis and the returned error carries only a generic retry
// message. Cached results go through here too, so the raw text is always
// recoverable from the log.
func decodeModelOutput(text string, out any) error {
	if err := gemini.DecodeJSON(text, out); err != nil {
		slog.Error("model output is not valid JSON", "err", err, "raw", text)
		return fmt.Errorf("model returned output that is not valid JSON, try again or tighten the prompt")
	}
	return nil
}

// buildGenerateRequest assembles a generation request from the request file,
// a template, or the --prompt flag, then applies flag overrides.
func buildGenerateRequest(cmd *cobra.Command) (*gemini.GenerateRequest, error) {
	req := &gemini.GenerateRequest{}

	if path := getInputFile(); path != "" {
		if err := loadRequest(path, req); err != nil {
			return nil, err
		}
	}

	tmplName, err := cmd.Flags().GetString("template")
	if err != nil {
		return nil, fmt.Errorf("failed to read 'template' flag: %w", err)
	}
	if tmplName != "" {
		vars, err := cmd.Flags().GetStringArray("var")
		if err != nil {
			return nil, fmt.Errorf("failed to read 'var' flag: %w", err)
		}
		data := prompt.Data{}
		for _, v := range vars {
			k, val, ok := strings.Cut(v, "=")
			if !ok {
				return nil, fmt.Errorf("invalid --var %q, expected key=value", v)
			}
			data[k] = val
		}
		rendered, err := prompt.Render(tmplName, data)
		if err != nil {
			return nil, err
		}
		req.Prompt = rendered
	}

	if p, err := cmd.Flags().GetString("prompt"); err != nil {
		return nil, fmt.Errorf("failed to read 'prompt' flag: %w", err)
	} else if p != "" {
		req.Prompt = p
	}
	if s, err := cmd.Flags().GetString("system"); err != nil {
		return nil, fmt.Errorf("failed to read 'system' flag: %w", err)
	} else if s != "" {
		req.System = s
	}
	if m, err := cmd.Flags().GetString("model"); err != nil {
		return nil, fmt.Errorf("failed to read 'model' flag: %w", err)
	} else if m != "" {
		req.Model = m
	}
	if cmd.Flags().Changed("temperature") {
		t, err := cmd.Flags().GetFloat32("temperature")
		if err != nil {
			return nil, fmt.Errorf("failed to read 'temperature' flag: %w", err)
		}
		req.Temperature = &t
	}

	if req.Prompt == "" {
		return nil, fmt.Errorf("no prompt given, use --prompt, --template or -f")
	}
	return req, nil
}

// generateText runs a generation request through the cache and the API.
// The returned bool reports whether the result was served from cache.
func generateText(cmd *cobra.Command, req *gemini.GenerateRequest) (*gemini.GenerateResponse, bool, error) {
	cliCtx, err := getContext()
	if err != nil {
		return nil, false, err
	}
	if req.Model == "" {
		req.Model = cliCtx.Model
	}

	// Resolve the model before keying so cache hits survive default changes
	// in the context config.
	model := req.Model
	if model == "" {
		model = gemini.DefaultTextModel
	}
	key := cache.TextKey(model, req.System, req.Prompt)

	runCtx := cmd.Context()

	store, err := openCache()
	if err != nil {
		return nil, false, err
	}
	if store != nil {
		defer store.Close()
		if entry, err := store.Get(runCtx, key); err == nil {
			printVerbose("cache hit for model %s", entry.Model)
			return &gemini.GenerateResponse{Text: entry.Text, Model: entry.Model}, true, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			printVerbose("cache read failed: %v", err)
		}
	}

	client, err := createClient(runCtx, cliCtx)
	if err != nil {
		return nil, false, err
	}
	defer client.Close()

	start := time.Now()
	resp, err := client.Text.Generate(runCtx, req)
	if err != nil {
		return nil, false, err
	}
	printVerbose("generated %d characters in %s", len(resp.Text), time.Since(start).Round(time.Millisecond))

	if store != nil {
		entry := &cache.Entry{
			Key:       key,
			Kind:      cache.KindText,
			Model:     resp.Model,
			Text:      resp.Text,
			CreatedAt: time.Now(),
		}
		if err := store.Put(runCtx, entry); err != nil {
			printVerbose("cache write failed: %v", err)
		}
	}

	return resp, false, nil
}

func init() {
	for _, c := range []*cobra.Command{generateTextCmd, generateJSONCmd} {
		c.Flags().String("prompt", "", "prompt text")
		c.Flags().String("system", "", "system instruction")
		c.Flags().String("model", "", "model to use (overrides context default)")
		c.Flags().Float32("temperature", 0, "sampling temperature")
		c.Flags().String("template", "", "prompt template name (see 'generate templates')")
		c.Flags().StringArray("var", nil, "template variable as key=value (repeatable)")
	}

	generateCmd.AddCommand(generateTextCmd)
	generateCmd.AddCommand(generateJSONCmd)
	generateCmd.AddCommand(generateTemplatesCmd)
}
