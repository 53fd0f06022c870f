package notify

import (
	"context"
	"os/exec"
	"sync"
)

// CommandNotifier plays an alert by running a shell command, e.g.
// "afplay /System/Library/Sounds/Sosumi.aiff" or "paplay alert.wav".
// A new alert kills the previous still-running playback first, so
// overlapping fires never stack sounds.
type CommandNotifier struct {
	mu      sync.Mutex
	command string
	current *exec.Cmd
}

// NewCommand creates a CommandNotifier that runs command via "sh -c".
func NewCommand(command string) *CommandNotifier {
	return &CommandNotifier{command: command}
}

// Notify interrupts any in-flight playback, then starts a new one. The
// child is reaped in the background and its exit status is ignored; only
// start failures are reported.
func (n *CommandNotifier) Notify(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.killCurrentLocked()

	cmd := exec.CommandContext(ctx, "sh", "-c", n.command)
	if err := cmd.Start(); err != nil {
		return err
	}
	n.current = cmd
	go cmd.Wait() // reap
	return nil
}

// Stop kills any in-flight playback. Safe to call at shutdown even when
// nothing is playing.
func (n *CommandNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.killCurrentLocked()
}

func (n *CommandNotifier) killCurrentLocked() {
	if n.current != nil && n.current.Process != nil {
		_ = n.current.Process.Kill()
	}
	n.current = nil
}
