// Package main provides the talevox CLI tool.
//
// Usage:
//
//	talevox [flags] <service> <command> [args]
//
// Services:
//
//	generate - Text and JSON generation
//	speech   - Speech synthesis (TTS)
//	audio    - Local PCM decoding utilities
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.talevox/talevox/
//	Use 'talevox config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/talevox/talevox/cmd/talevox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
