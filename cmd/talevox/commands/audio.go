package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/pkg/audio/pcm"
	"github.com/talevox/talevox/pkg/cli"
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Local audio utilities",
	Long: `Inspect and convert raw PCM audio without calling the API.

Input files are 16-bit little-endian mono PCM, as produced by
'speech synthesize --raw'.

Examples:
  talevox audio convert out.pcm -o out.wav
  talevox audio convert out.pcm -o out.wav --rate 48000
  talevox audio info out.pcm`,
}

var audioConvertCmd = &cobra.Command{
	Use:   "convert <input.pcm>",
	Short: "Convert raw PCM to WAV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := cmd.Flags().GetInt("rate")
		if err != nil {
			return fmt.Errorf("failed to read 'rate' flag: %w", err)
		}

		outPath := getOutputFile()
		if outPath == "" {
			return fmt.Errorf("output file is required, use -o")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		if err := pcm.WriteWAV(f, data, rate); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", outPath, err)
		}

		buf := pcm.Decode(data, rate)
		printSuccess("WAV written to %s (%d samples, %s)",
			outPath, len(buf.Data), cli.FormatDuration(pcm.BufferDuration(buf)))
		return nil
	},
}

var audioInfoCmd = &cobra.Command{
	Use:   "info <input.pcm>",
	Short: "Show raw PCM file details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := cmd.Flags().GetInt("rate")
		if err != nil {
			return fmt.Errorf("failed to read 'rate' flag: %w", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		buf := pcm.Decode(data, rate)
		result := map[string]any{
			"file":        args[0],
			"size":        cli.FormatBytes(int64(len(data))),
			"samples":     len(buf.Data),
			"sample_rate": buf.Format.SampleRate,
			"duration":    cli.FormatDuration(pcm.BufferDuration(buf)),
			"peak":        pcm.Peak(buf),
		}
		if len(data)%2 != 0 {
			result["trailing_bytes"] = 1
		}
		return outputResult(result, getOutputFile(), isJSONOutput())
	},
}

func init() {
	audioConvertCmd.Flags().Int("rate", pcm.DefaultSampleRate, "sample rate in Hz")
	audioInfoCmd.Flags().Int("rate", pcm.DefaultSampleRate, "sample rate in Hz")

	audioCmd.AddCommand(audioConvertCmd)
	audioCmd.AddCommand(audioInfoCmd)
}
