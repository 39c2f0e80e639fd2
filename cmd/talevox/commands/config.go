package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talevox/talevox/pkg/cli"
	"github.com/talevox/talevox/pkg/gemini"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage CLI configuration and contexts.

Contexts allow you to manage multiple API configurations,
similar to kubectl's context management.

Configuration is stored in ~/.talevox/talevox/config.yaml`,
}

var configAddContextCmd = &cobra.Command{
	Use:   "add-context <name>",
	Short: "Add a new context",
	Long: `Add a new context with the specified name.

Example:
  talevox config add-context myctx --api-key YOUR_API_KEY
  talevox config add-context quick --api-key KEY --model gemini-2.5-flash --voice Puck`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		apiKey, err := cmd.Flags().GetString("api-key")
		if err != nil {
			return fmt.Errorf("failed to read 'api-key' flag: %w", err)
		}
		if apiKey == "" {
			return fmt.Errorf("--api-key is required")
		}

		// Tagged validation result: warn but still store, so a key that is
		// merely unusual does not block setup.
		if v := gemini.ValidateAPIKey(apiKey); !v.Valid {
			cli.PrintWarning("%s", v.Message)
		}

		baseURL, err := cmd.Flags().GetString("base-url")
		if err != nil {
			return fmt.Errorf("failed to read 'base-url' flag: %w", err)
		}
		timeout, err := cmd.Flags().GetInt("timeout")
		if err != nil {
			return fmt.Errorf("failed to read 'timeout' flag: %w", err)
		}
		maxRetries, err := cmd.Flags().GetInt("max-retries")
		if err != nil {
			return fmt.Errorf("failed to read 'max-retries' flag: %w", err)
		}
		model, err := cmd.Flags().GetString("model")
		if err != nil {
			return fmt.Errorf("failed to read 'model' flag: %w", err)
		}
		speechModel, err := cmd.Flags().GetString("speech-model")
		if err != nil {
			return fmt.Errorf("failed to read 'speech-model' flag: %w", err)
		}
		voice, err := cmd.Flags().GetString("voice")
		if err != nil {
			return fmt.Errorf("failed to read 'voice' flag: %w", err)
		}

		ctx := &cli.Context{
			APIKey:      apiKey,
			BaseURL:     baseURL,
			Timeout:     timeout,
			MaxRetries:  maxRetries,
			Model:       model,
			SpeechModel: speechModel,
			Voice:       voice,
		}

		cfg := getConfig()
		if err := cfg.AddContext(name, ctx); err != nil {
			return err
		}

		printSuccess("Context %q added successfully", name)
		return nil
	},
}

var configDeleteContextCmd = &cobra.Command{
	Use:   "delete-context <name>",
	Short: "Delete a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg := getConfig()
		if err := cfg.DeleteContext(name); err != nil {
			return err
		}

		printSuccess("Context %q deleted", name)
		return nil
	},
}

var configUseContextCmd = &cobra.Command{
	Use:   "use-context <name>",
	Short: "Set the current context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg := getConfig()
		if err := cfg.UseContext(name); err != nil {
			return err
		}

		printSuccess("Switched to context %q", name)
		return nil
	},
}

var configGetContextsCmd = &cobra.Command{
	Use:   "get-contexts",
	Short: "List all contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()

		if len(cfg.Contexts) == 0 {
			fmt.Println("No contexts configured. Add one with 'talevox config add-context'.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CURRENT\tNAME\tAPI KEY\tMODEL\tVOICE")
		for name, ctx := range cfg.Contexts {
			current := ""
			if name == cfg.CurrentContext {
				current = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				current, name, cli.MaskAPIKey(ctx.APIKey), ctx.Model, ctx.Voice)
		}
		return w.Flush()
	},
}

var configCurrentContextCmd = &cobra.Command{
	Use:   "current-context",
	Short: "Show the current context",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if cfg.CurrentContext == "" {
			return fmt.Errorf("no current context set")
		}
		fmt.Println(cfg.CurrentContext)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [key]",
	Short: "Validate an API key",
	Long: `Validate an API key without making a network call.

With no argument, validates the key of the selected context. The result is a
tagged valid/invalid verdict with remediation guidance, never a crash.

Examples:
  talevox -c myctx config validate
  talevox config validate AIzaSy...`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			ctx, err := getContext()
			if err != nil {
				return err
			}
			key = ctx.APIKey
		}

		v := gemini.ValidateAPIKey(key)
		result := map[string]any{
			"valid":   v.Valid,
			"message": v.Message,
		}
		if err := outputResult(result, getOutputFile(), isJSONOutput()); err != nil {
			return err
		}
		if !v.Valid {
			printError("%s", v.Message)
		}
		return nil
	},
}

func init() {
	configAddContextCmd.Flags().String("api-key", "", "Gemini API key (required)")
	configAddContextCmd.Flags().String("base-url", "", "custom API base URL")
	configAddContextCmd.Flags().Int("timeout", 0, "request timeout in seconds")
	configAddContextCmd.Flags().Int("max-retries", 0, "maximum retries for transient errors")
	configAddContextCmd.Flags().String("model", "", "default text generation model")
	configAddContextCmd.Flags().String("speech-model", "", "default speech synthesis model")
	configAddContextCmd.Flags().String("voice", "", "default TTS voice")

	configCmd.AddCommand(configAddContextCmd)
	configCmd.AddCommand(configDeleteContextCmd)
	configCmd.AddCommand(configUseContextCmd)
	configCmd.AddCommand(configGetContextsCmd)
	configCmd.AddCommand(configCurrentContextCmd)
	configCmd.AddCommand(configValidateCmd)
}
