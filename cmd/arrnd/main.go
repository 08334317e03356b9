// Package main provides the arrnd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/ndarray/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
