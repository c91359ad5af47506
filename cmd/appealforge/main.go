package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hshah/appealforge/cmd/appealforge/wizard"
	"github.com/hshah/appealforge/internal/gemini"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	from := flag.String("from", "", "Load a saved draft (YAML) to prefill the forms")
	model := flag.String("model", gemini.DefaultModel, "Gemini model to use")
	logPath := flag.String("log", "", "Log file path (default: ~/.appealforge/appealforge.log)")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("appealforge %s\n", version)
		os.Exit(0)
	}

	if err := wizard.Run(*from, *model, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
