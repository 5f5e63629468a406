package main

import (
	"os"

	"github.com/agentflare-ai/boring-docs/internal/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		ui.NewPrinter(os.Stderr).Error("boring-docs: %v", err)
		os.Exit(1)
	}
}
