// Package main provides the entry point for the minigrep CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/minigrep/cmd/minigrep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
