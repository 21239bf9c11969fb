package main

import (
	"os"

	"github.com/edonnat/chronos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
