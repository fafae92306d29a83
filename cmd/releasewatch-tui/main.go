package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/releasewatch/releasewatch/internal/config"
	"github.com/releasewatch/releasewatch/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "releasewatch.json", "Path to config file")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings, creds, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
