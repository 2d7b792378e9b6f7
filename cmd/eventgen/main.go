package main

import (
	"os"

	"github.com/retaildemo/eventgen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
