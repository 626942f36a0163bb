// Package main provides the docnav CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/docnav/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
