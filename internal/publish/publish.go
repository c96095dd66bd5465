// Package publish commits and pushes the generated feed files with the git
// CLI. Publishing is glue around the real output of a run; failures are
// reported to the caller, who logs and moves on.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Publisher pushes the output files of one run to a git remote.
type Publisher struct {
	dir    string
	remote string
	branch string
	log    *zap.Logger
}

// New creates a Publisher operating on the repository at dir.
func New(dir, remote, branch string, log *zap.Logger) *Publisher {
	return &Publisher{dir: dir, remote: remote, branch: branch, log: log}
}

// commands is the fixed publish sequence.
func (p *Publisher) commands(message string) [][]string {
	return [][]string{
		{"git", "-C", p.dir, "add", "events.xml", "events.json"},
		{"git", "-C", p.dir, "commit", "-m", message},
		{"git", "-C", p.dir, "push", p.remote, p.branch},
	}
}

// Publish stages, commits and pushes the feed files. An unchanged feed
// ("nothing to commit") is a no-op, not an error.
func (p *Publisher) Publish(ctx context.Context, now time.Time) error {
	message := fmt.Sprintf("Update events feed %s", now.UTC().Format("2006-01-02 15:04"))

	for _, args := range p.commands(message) {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out

		if err := cmd.Run(); err != nil {
			if strings.Contains(out.String(), "nothing to commit") {
				p.log.Info("feed unchanged, nothing to publish")
				return nil
			}
			return fmt.Errorf("running %q: %w: %s", strings.Join(args, " "), err, out.String())
		}
	}

	p.log.Info("published feed", zap.String("remote", p.remote), zap.String("branch", p.branch))
	return nil
}
