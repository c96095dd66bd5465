package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lassebenni/amsterdam-events-feed/internal/config"
	"github.com/lassebenni/amsterdam-events-feed/internal/event"
	"github.com/lassebenni/amsterdam-events-feed/internal/storage"
)

func TestNewRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	limit := cmd.Flags().Lookup("limit")
	if limit == nil {
		t.Fatal("--limit flag should be defined")
	}
	if limit.DefValue != "0" {
		t.Errorf("unexpected default for --limit: %s", limit.DefValue)
	}
}

func TestFeedMetadata(t *testing.T) {
	cfg := &config.Config{
		FeedTitle:       "Amsterdam Events Feed",
		FeedLink:        "https://example.com/events.xml",
		FeedDescription: "desc",
		FeedLanguage:    "en",
		Generator:       "Amsterdam Events Scraper v10.0",
	}

	meta := feedMetadata(cfg)
	if meta.Title != cfg.FeedTitle || meta.Link != cfg.FeedLink || meta.Language != "en" {
		t.Errorf("metadata not mapped from config: %+v", meta)
	}
}

func testEmitConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		FeedTitle:       "Amsterdam Events Feed",
		FeedLink:        "https://example.com/events.xml",
		FeedDescription: "desc",
		FeedLanguage:    "en",
		Generator:       "test",
		OutputDir:       t.TempDir(),
	}
}

func TestEmitFeedWritesOutputs(t *testing.T) {
	cfg := testEmitConfig(t)

	evt, err := event.New("Grachtenfestival 2025", "https://example.com/grachtenfestival", "Test")
	if err != nil {
		t.Fatalf("event.New failed: %v", err)
	}

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := emitFeed(cmd, cfg, zap.NewNop(), []*event.Event{evt}); err != nil {
		t.Fatalf("emitFeed failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, storage.FeedFile)); err != nil {
		t.Errorf("feed file not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, storage.EventsFile)); err != nil {
		t.Errorf("events file not written: %v", err)
	}
	if !strings.Contains(out.String(), "Generated feed with 1 events") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestEmitFeedZeroEventsWritesNothing(t *testing.T) {
	cfg := testEmitConfig(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := emitFeed(cmd, cfg, zap.NewNop(), nil); err != nil {
		t.Fatalf("emitFeed failed: %v", err)
	}

	if !strings.Contains(out.String(), "No events found") {
		t.Errorf("expected the no-events notice, got %q", out.String())
	}
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("no files should be written for an empty run, found %d", len(entries))
	}
}

func TestPrintSummary(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}

	evt, err := event.New("Grachtenfestival 2025", "https://example.com/a", "Test")
	if err != nil {
		t.Fatalf("event.New failed: %v", err)
	}

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	printSummary(cmd, []*event.Event{evt}, store)

	if !strings.Contains(out.String(), "Generated feed with 1 events") {
		t.Errorf("unexpected summary: %q", out.String())
	}
	if !strings.Contains(out.String(), "events.xml") {
		t.Errorf("summary should name the output files: %q", out.String())
	}
}
