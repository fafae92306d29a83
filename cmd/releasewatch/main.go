package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/releasewatch/releasewatch/internal/config"
	"github.com/releasewatch/releasewatch/internal/covers"
	"github.com/releasewatch/releasewatch/internal/harvest"
	"github.com/releasewatch/releasewatch/internal/http"
	"github.com/releasewatch/releasewatch/internal/publish"
)

func main() {
	// Command line flags
	var (
		configFlag    = flag.String("config", "releasewatch.json", "Path to config file")
		dataFlag      = flag.String("data", "", "Data directory (overrides config)")
		batchSizeFlag = flag.Int("batch-size", 0, "Artists per batch (overrides config)")
		batchesFlag   = flag.Int("batches", 0, "Batches per run (overrides config)")
		noPublishFlag = flag.Bool("no-publish", false, "Skip the publish step")
		coversFlag    = flag.Bool("covers", false, "Mirror cover art for new releases")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *dataFlag != "" {
		settings.DataDir = *dataFlag
	}
	if *batchSizeFlag > 0 {
		settings.BatchSize = *batchSizeFlag
	}
	if *batchesFlag > 0 {
		settings.BatchesPerRun = *batchesFlag
	}
	if *noPublishFlag {
		settings.Publish = false
	}
	if *coversFlag {
		settings.MirrorCovers = true
	}

	// Credentials must exist before anything touches the network.
	creds, err := config.LoadCredentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := harvest.NewManager(settings, creds, func(event harvest.ProgressEvent) {
		if event.Level == harvest.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case harvest.LevelError:
			prefix = "❌ "
		case harvest.LevelWarning:
			prefix = "⚠️  "
		case harvest.LevelSuccess:
			prefix = "✅ "
		case harvest.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎧 releasewatch")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	report, err := manager.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nHarvest cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during harvest: %v\n", err)
		os.Exit(1)
	}

	// Derived, best-effort steps: cover mirror and publish failures are
	// logged, never fatal, since the state files are already written.
	if settings.MirrorCovers && len(report.NewReleases) > 0 {
		client := http.NewClient(time.Duration(settings.RequestTimeoutSeconds) * time.Second)
		mirror := covers.NewMirror(client, settings.CoversPath(), settings.CoverMaxSize, settings.CoverConcurrency, func(event harvest.ProgressEvent) {
			fmt.Println("   " + event.Message)
		})
		if _, err := mirror.Sync(ctx, report.NewReleases); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Cover mirror failed: %v\n", err)
		}
	}

	if settings.Publish && len(report.ChangedPaths) > 0 {
		publisher := publish.NewPusher(settings.PublishRemote, settings.PublishBranch)
		if err := publisher.Publish(ctx, report.ChangedPaths); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Publish failed: %v\n", err)
		} else {
			fmt.Println("✅ Published updated state")
		}
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Checked %d artists, %d new releases, %d total\n", report.ArtistsChecked, len(report.NewReleases), report.TotalReleases)
}
