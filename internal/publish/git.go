package publish

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Publisher commits and pushes changed output files.
type Publisher interface {
	Publish(ctx context.Context, paths []string) error
}

// runner executes an external command and returns its combined output.
// It exists so tests can intercept git invocations.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Pusher publishes state files by shelling out to git.
//
// The push is a force-push: the remote branch is overwritten even if it
// moved since the last publish. That can silently discard concurrent
// external changes to the branch, a deliberate choice for a branch this
// tool owns exclusively, not one to copy for shared branches.
type Pusher struct {
	remote string
	branch string
	now    func() time.Time
	run    runner
}

// NewPusher creates a Pusher targeting the given remote and branch.
func NewPusher(remote, branch string) *Pusher {
	return &Pusher{
		remote: remote,
		branch: branch,
		now:    time.Now,
		run:    execRunner,
	}
}

// Publish stages the given paths, commits them labeled with the current
// date, and force-pushes.
//
// With no paths, or when staging produced nothing to commit, Publish is a
// successful no-op. Any git failure is returned for the caller to log;
// per the contract it must not fail the process.
func (p *Pusher) Publish(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	args := append([]string{"add", "--"}, paths...)
	if out, err := p.run(ctx, "git", args...); err != nil {
		return fmt.Errorf("git add: %w: %s", err, strings.TrimSpace(string(out)))
	}

	message := fmt.Sprintf("Update releases %s", p.now().Format("2006-01-02"))
	if out, err := p.run(ctx, "git", "commit", "-m", message); err != nil {
		// Staging may have produced no diff (e.g. mode-only noise);
		// nothing to publish is not a failure.
		if strings.Contains(string(out), "nothing to commit") {
			return nil
		}
		return fmt.Errorf("git commit: %w: %s", err, strings.TrimSpace(string(out)))
	}

	if out, err := p.run(ctx, "git", "push", "--force", p.remote, p.branch); err != nil {
		return fmt.Errorf("git push: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return nil
}
