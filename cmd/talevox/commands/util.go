package commands

import (
	"context"
	"path/filepath"
	"time"

	"github.com/talevox/talevox/pkg/cache"
	"github.com/talevox/talevox/pkg/cli"
	"github.com/talevox/talevox/pkg/gemini"
)

// loadRequest loads a request from a YAML or JSON file. "-" reads from stdin.
func loadRequest(path string, v any) error {
	if path == "-" {
		return cli.LoadRequestFromStdin(v)
	}
	return cli.LoadRequest(path, v)
}

// outputBytes outputs binary data to a file
func outputBytes(data []byte, outputPath string) error {
	return cli.OutputBytes(data, outputPath)
}

// printError prints an error message to stderr
func printError(format string, args ...any) {
	cli.PrintError(format, args...)
}

// printSuccess prints a success message
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// printVerbose prints a verbose message when -v is set
func printVerbose(format string, args ...any) {
	cli.PrintVerbose(verbose, format, args...)
}

// createClient creates a Gemini API client from context configuration
func createClient(runCtx context.Context, ctx *cli.Context) (*gemini.Client, error) {
	var opts []gemini.Option

	if ctx.BaseURL != "" {
		opts = append(opts, gemini.WithBaseURL(ctx.BaseURL))
	}
	if ctx.Timeout > 0 {
		opts = append(opts, gemini.WithTimeout(time.Duration(ctx.Timeout)*time.Second))
	}
	if ctx.MaxRetries > 0 {
		opts = append(opts, gemini.WithRetry(ctx.MaxRetries))
	}

	return gemini.NewClient(runCtx, ctx.APIKey, opts...)
}

// openCache opens the local generation cache, or returns nil when caching is
// disabled with --no-cache.
func openCache() (cache.Store, error) {
	if noCache {
		return nil, nil
	}
	paths, err := cli.NewPaths(appName)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureCacheDir(); err != nil {
		return nil, err
	}
	return cache.NewBadger(cache.BadgerOptions{
		Dir: filepath.Join(paths.CacheDir(), "generations"),
	})
}
