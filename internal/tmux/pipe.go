// Package tmux streams a live tmux pane's output so the detector can watch
// a session the user is already working in.
package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// ErrNoTarget is returned when a pane target is empty.
var ErrNoTarget = errors.New("tmux pane target is required")

// PipeWatcher mirrors a pane's output into a FIFO via tmux pipe-pane and
// exposes it as a readable stream. One watcher per pane target.
type PipeWatcher struct {
	mu     sync.Mutex
	target string
	fifo   string
	file   *os.File
	piping bool
}

// NewPipeWatcher validates that the tmux server is reachable and, when the
// target names a session ("session:window.pane"), that the session exists.
func NewPipeWatcher(target string) (*PipeWatcher, error) {
	if target == "" {
		return nil, ErrNoTarget
	}

	tm, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("tmux unavailable: %w", err)
	}
	if name, _, ok := strings.Cut(target, ":"); ok && name != "" {
		session, err := tm.GetSessionByName(name)
		if err != nil || session == nil {
			return nil, fmt.Errorf("tmux session %q not found", name)
		}
	}

	return &PipeWatcher{target: target}, nil
}

// Start creates the FIFO and asks tmux to mirror the pane into it. The
// returned file blocks on Read until pane output arrives.
func (w *PipeWatcher) Start() (*os.File, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fifo := filepath.Join(os.TempDir(), fmt.Sprintf("errbell-%d.fifo", os.Getpid()))
	if err := syscall.Mkfifo(fifo, 0o600); err != nil && !os.IsExist(err) {
		return nil, fmt.Errorf("create fifo: %w", err)
	}
	w.fifo = fifo

	// -o pipes only pane output (not input), appending to the FIFO.
	if err := exec.Command("tmux", "pipe-pane", "-t", w.target, "-o", "cat >> "+fifo).Run(); err != nil {
		os.Remove(fifo)
		return nil, fmt.Errorf("pipe-pane %s: %w", w.target, err)
	}
	w.piping = true

	f, err := os.OpenFile(fifo, os.O_RDONLY, 0)
	if err != nil {
		w.stopPipeLocked()
		os.Remove(fifo)
		return nil, fmt.Errorf("open fifo: %w", err)
	}
	w.file = f
	return f, nil
}

// Stop detaches the pane pipe and removes the FIFO. Closing the file also
// unblocks any in-flight Read.
func (w *PipeWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopPipeLocked()
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}
	if w.fifo != "" {
		os.Remove(w.fifo)
		w.fifo = ""
	}
}

// Target returns the watched pane target.
func (w *PipeWatcher) Target() string {
	return w.target
}

func (w *PipeWatcher) stopPipeLocked() {
	if !w.piping {
		return
	}
	// pipe-pane with no command detaches the pipe.
	exec.Command("tmux", "pipe-pane", "-t", w.target).Run()
	w.piping = false
}
