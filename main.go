package main

import (
	"os"

	"github.com/amitn/violino/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
