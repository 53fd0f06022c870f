package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/errbell/errbell/internal/tmux"
)

// TmuxCmd watches a running tmux pane's output for failure signals without
// echoing it; the pane itself stays the user's view of the stream.
type TmuxCmd struct {
	DetectorFlags

	Target string `short:"t" required:"" help:"Pane target, e.g. 'work:0.0'"`
}

// Run executes the tmux command
func (c *TmuxCmd) Run(globals *Globals) error {
	det, err := c.buildDetector(globals)
	if err != nil {
		return err
	}

	watcher, err := tmux.NewPipeWatcher(c.Target)
	if err != nil {
		return outputError(globals, "TMUX_UNAVAILABLE", err.Error())
	}

	stream, err := watcher.Start()
	if err != nil {
		return outputError(globals, "PIPE_PANE_FAILED", err.Error())
	}
	defer watcher.Stop()

	// Stopping the watcher closes the FIFO, which unblocks the read loop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		watcher.Stop()
	}()

	if !globals.Quiet && globals.Format != "ndjson" {
		globals.Stderr.Write([]byte("Watching tmux pane " + watcher.Target() + ", press Ctrl+C to stop\n"))
	}

	buf := make([]byte, 4096)
	for {
		n, readErr := stream.Read(buf)
		if n > 0 {
			det.OnOutputChunk(buf[:n])
		}
		if readErr != nil {
			globals.Debug("pane stream ended: %v", readErr)
			return nil
		}
	}
}
