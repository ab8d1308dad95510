package main

import (
	"os"

	"github.com/anything-stack/skillsmith/cmd/skillsmith/cmd"
	"github.com/anything-stack/skillsmith/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.Errorln("Error: %v", err)
		os.Exit(1)
	}
}
