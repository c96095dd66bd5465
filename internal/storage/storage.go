package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Output file names, overwritten wholesale on every run.
const (
	FeedFile   = "events.xml"
	EventsFile = "events.json"
)

// Storage writes the run's output files into one directory.
type Storage struct {
	dir string
}

// New creates a Storage rooted at dir, creating the directory if needed.
// A leading ~ is expanded to the user's home directory.
func New(dir string) (*Storage, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{dir: dir}, nil
}

// FeedPath returns the full path of the RSS output file.
func (s *Storage) FeedPath() string {
	return filepath.Join(s.dir, FeedFile)
}

// EventsPath returns the full path of the JSON output file.
func (s *Storage) EventsPath() string {
	return filepath.Join(s.dir, EventsFile)
}

// WriteOutputs writes both output files atomically. A failed write never
// leaves a partial file behind: content lands in a temp file in the same
// directory and is renamed into place.
func (s *Storage) WriteOutputs(rss, events []byte) error {
	if err := s.atomicWrite(s.FeedPath(), rss); err != nil {
		return fmt.Errorf("writing %s: %w", FeedFile, err)
	}
	if err := s.atomicWrite(s.EventsPath(), events); err != nil {
		return fmt.Errorf("writing %s: %w", EventsFile, err)
	}
	return nil
}

func (s *Storage) atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
