package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"yantra-tool/internal/cli"
	"yantra-tool/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		a := app.NewWithID("com.yantra-tool.gui")
		win := ui.BuildMainWindow(a)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := cli.Run(cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
