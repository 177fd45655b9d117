// Package main is the entry point for the hermes CLI.
//
// Usage:
//
//	hermes [flags] <command> [subcommand] [args]
//
// Commands:
//
//	encode     - Serialize a feature vector to a base64 or hex token
//	decode     - Decode a token back into a feature vector
//	distance   - Compute the distance between two vectors
//	store      - Manage vectors in a blob archive (put, get, ls, rm, nearest)
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/hermes/cmd/hermes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
