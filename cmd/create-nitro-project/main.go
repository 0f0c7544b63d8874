package main

import (
	"os"

	"github.com/nitro-tools/create-nitro-project/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
