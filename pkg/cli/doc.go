// Package cli provides common plumbing for the talevox command-line tool.
//
// This package includes:
//   - Configuration management (contexts holding API credentials)
//   - Output formatting (YAML, JSON, raw) with optional jq-style filtering
//   - Request file loading (YAML/JSON)
//
// Configuration is stored in ~/.talevox/<app>/ directory, supporting
// multiple contexts similar to kubectl.
//
// Example usage:
//
//	// Initialize config for your app
//	cfg, err := cli.LoadConfig("talevox")
//
//	// Resolve the context to use
//	ctx, err := cfg.ResolveContext("")
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    Query:  ".text",
//	})
package cli
