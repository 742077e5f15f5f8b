package main

import (
	"os"

	"github.com/AI2HU/sitekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
