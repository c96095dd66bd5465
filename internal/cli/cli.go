package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lassebenni/amsterdam-events-feed/internal/config"
	"github.com/lassebenni/amsterdam-events-feed/internal/dedup"
	"github.com/lassebenni/amsterdam-events-feed/internal/event"
	"github.com/lassebenni/amsterdam-events-feed/internal/feed"
	"github.com/lassebenni/amsterdam-events-feed/internal/logger"
	"github.com/lassebenni/amsterdam-events-feed/internal/publish"
	"github.com/lassebenni/amsterdam-events-feed/internal/scraper"
	"github.com/lassebenni/amsterdam-events-feed/internal/storage"
)

var flagLimit int

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amsterdam-events",
		Short: "Scrape Amsterdam event listings into an RSS feed",
		Long: `Collects event listings from a small set of Amsterdam websites and
writes them as an RSS 2.0 feed (events.xml) plus a JSON dump (events.json).`,
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Maximum number of candidate URLs to process (0 = no limit)")

	return cmd
}

// runScrape is the whole pipeline: scrape, deduplicate, serialize, write,
// optionally publish.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()

	events := scraper.New(cfg, log).Run(ctx, flagLimit)
	return emitFeed(cmd, cfg, log, events)
}

// emitFeed runs everything downstream of scraping: dedup, render, write,
// optional publish. Split from runScrape so the output path is testable
// without network access.
func emitFeed(cmd *cobra.Command, cfg *config.Config, log *zap.Logger, events []*event.Event) error {
	events = dedup.Events(events)
	log.Info("deduplicated events", zap.Int("events", len(events)))

	if len(events) == 0 {
		// No feed files are written: an empty feed is never emitted in place
		// of no feed.
		fmt.Fprintln(cmd.OutOrStdout(), "No events found. Check the scrapers.")
		return nil
	}

	now := time.Now().UTC()
	rss, err := feed.RenderRSS(events, feedMetadata(cfg), now)
	if err != nil {
		return fmt.Errorf("rendering RSS: %w", err)
	}
	jsonData, err := feed.RenderJSON(events)
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}

	store, err := storage.New(cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := store.WriteOutputs(rss, jsonData); err != nil {
		return err
	}

	printSummary(cmd, events, store)

	if cfg.Publish {
		p := publish.New(cfg.OutputDir, cfg.PublishRemote, cfg.PublishBranch, log)
		if err := p.Publish(cmd.Context(), now); err != nil {
			log.Warn("publishing feed failed", zap.Error(err))
		}
	}

	return nil
}

func feedMetadata(cfg *config.Config) feed.Metadata {
	return feed.Metadata{
		Title:       cfg.FeedTitle,
		Link:        cfg.FeedLink,
		Description: cfg.FeedDescription,
		Language:    cfg.FeedLanguage,
		Generator:   cfg.Generator,
	}
}

func printSummary(cmd *cobra.Command, events []*event.Event, store *storage.Storage) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated feed with %d events\n", len(events))
	fmt.Fprintf(out, "Files created: %s, %s\n", store.FeedPath(), store.EventsPath())
}

// Execute runs the CLI until it finishes or ctx is cancelled.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
