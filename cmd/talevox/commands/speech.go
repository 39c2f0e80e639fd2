package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/pkg/audio/pcm"
	"github.com/talevox/talevox/pkg/cache"
	"github.com/talevox/talevox/pkg/cli"
	"github.com/talevox/talevox/pkg/gemini"
)

var speechCmd = &cobra.Command{
	Use:   "speech",
	Short: "Speech synthesis operations",
	Long: `Synthesize speech from text using Gemini TTS voices.

Output is a WAV file by default. Use --raw to write the raw 16-bit
little-endian PCM payload instead.

Request file format (YAML):
  model: gemini-2.5-flash-preview-tts  # optional
  voice: Kore                          # optional
  text: Hello, world!

Examples:
  talevox speech synthesize --text "Hello, world!" -o hello.wav
  talevox speech synthesize -f request.yaml -o out.wav
  talevox speech synthesize --text "Hi" --voice Puck --raw -o out.pcm
  talevox speech voices`,
}

var speechSynthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize speech from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &gemini.SpeechRequest{}

		if path := getInputFile(); path != "" {
			if err := loadRequest(path, req); err != nil {
				return err
			}
		}
		if t, err := cmd.Flags().GetString("text"); err != nil {
			return fmt.Errorf("failed to read 'text' flag: %w", err)
		} else if t != "" {
			req.Text = t
		}
		if v, err := cmd.Flags().GetString("voice"); err != nil {
			return fmt.Errorf("failed to read 'voice' flag: %w", err)
		} else if v != "" {
			req.Voice = v
		}
		if m, err := cmd.Flags().GetString("model"); err != nil {
			return fmt.Errorf("failed to read 'model' flag: %w", err)
		} else if m != "" {
			req.Model = m
		}
		raw, err := cmd.Flags().GetBool("raw")
		if err != nil {
			return fmt.Errorf("failed to read 'raw' flag: %w", err)
		}

		if req.Text == "" {
			return fmt.Errorf("no text given, use --text or -f")
		}

		outPath := getOutputFile()
		if outPath == "" {
			return fmt.Errorf("output file is required, use -o")
		}

		resp, err := synthesize(cmd, req)
		if err != nil {
			return err
		}

		buf := pcm.Decode(resp.Audio, resp.SampleRate)
		printVerbose("audio: %d samples, %s at %d Hz, %s",
			len(buf.Data),
			cli.FormatDuration(pcm.BufferDuration(buf)),
			resp.SampleRate,
			cli.FormatBytes(int64(len(resp.Audio))))
		if f, ok := pcm.ParseFormat(resp.MIMEType); ok {
			printVerbose("format: %s, %s", f, cli.FormatDuration(f.Duration(int64(len(resp.Audio)))))
		}

		if raw {
			if err := outputBytes(resp.Audio, outPath); err != nil {
				return err
			}
			printSuccess("PCM written to %s", outPath)
			return nil
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		if err := pcm.WriteWAV(f, resp.Audio, resp.SampleRate); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", outPath, err)
		}

		printSuccess("WAV written to %s (%s)", outPath, cli.FormatDuration(pcm.BufferDuration(buf)))
		return nil
	},
}

var speechVoicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List available TTS voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		voices := gemini.Voices()
		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(voices, getOutputFile(), isJSONOutput())
		}
		for _, v := range voices {
			fmt.Printf("%-12s %s\n", v.Name, v.Description)
		}
		return nil
	},
}

// synthesize runs a speech request through the cache and the API.
func synthesize(cmd *cobra.Command, req *gemini.SpeechRequest) (*gemini.SpeechResponse, error) {
	cliCtx, err := getContext()
	if err != nil {
		return nil, err
	}
	if req.Model == "" {
		req.Model = cliCtx.SpeechModel
	}
	if req.Voice == "" {
		req.Voice = cliCtx.Voice
	}

	model := req.Model
	if model == "" {
		model = gemini.DefaultSpeechModel
	}
	voice := req.Voice
	if voice == "" {
		voice = gemini.DefaultVoice
	}
	key := cache.SpeechKey(model, voice, req.Text)

	runCtx := cmd.Context()

	store, err := openCache()
	if err != nil {
		return nil, err
	}
	if store != nil {
		defer store.Close()
		if entry, err := store.Get(runCtx, key); err == nil {
			printVerbose("cache hit for voice %s", entry.Voice)
			return &gemini.SpeechResponse{
				Audio:      entry.Audio,
				MIMEType:   entry.MIMEType,
				SampleRate: entry.SampleRate,
				Model:      entry.Model,
			}, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			printVerbose("cache read failed: %v", err)
		}
	}

	client, err := createClient(runCtx, cliCtx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	start := time.Now()
	resp, err := client.Speech.Synthesize(runCtx, req)
	if err != nil {
		return nil, err
	}
	printVerbose("synthesized %s in %s",
		cli.FormatBytes(int64(len(resp.Audio))), time.Since(start).Round(time.Millisecond))

	if store != nil {
		entry := &cache.Entry{
			Key:        key,
			Kind:       cache.KindSpeech,
			Model:      resp.Model,
			Voice:      voice,
			Text:       req.Text,
			Audio:      resp.Audio,
			MIMEType:   resp.MIMEType,
			SampleRate: resp.SampleRate,
			CreatedAt:  time.Now(),
		}
		if err := store.Put(runCtx, entry); err != nil {
			printVerbose("cache write failed: %v", err)
		}
	}

	return resp, nil
}

func init() {
	speechSynthesizeCmd.Flags().String("text", "", "text to speak")
	speechSynthesizeCmd.Flags().String("voice", "", "TTS voice name (see 'speech voices')")
	speechSynthesizeCmd.Flags().String("model", "", "speech model to use (overrides context default)")
	speechSynthesizeCmd.Flags().Bool("raw", false, "write raw PCM instead of WAV")

	speechCmd.AddCommand(speechSynthesizeCmd)
	speechCmd.AddCommand(speechVoicesCmd)
}
