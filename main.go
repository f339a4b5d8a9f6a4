package main

import (
	"os"

	"github.com/kioku-app/kioku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
