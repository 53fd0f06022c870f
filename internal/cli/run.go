package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"

	"github.com/errbell/errbell/internal/detect"
)

// RunCmd wraps a command, forwarding its output unchanged while listening
// for failure signals. The process exits with the wrapped command's code.
type RunCmd struct {
	DetectorFlags

	Command []string `arg:"" passthrough:"" help:"Command to run"`
}

// Run executes the run command
func (c *RunCmd) Run(globals *Globals) error {
	if len(c.Command) == 0 {
		return outputError(globals, "NO_COMMAND", "no command given")
	}

	det, err := c.buildDetector(globals)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Forward interrupt signals to the child via the context
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...)
	cmd.Stdin = os.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return outputError(globals, "PIPE_FAILED", err.Error())
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return outputError(globals, "PIPE_FAILED", err.Error())
	}

	globals.Debug("running: %v", c.Command)
	if err := cmd.Start(); err != nil {
		return outputError(globals, "START_FAILED", err.Error())
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go forwardChunks(&wg, stdout, globals.Stdout, det)
	go forwardChunks(&wg, stderr, globals.Stderr, det)
	wg.Wait()

	code, known := exitStatus(cmd.Wait())
	if known {
		det.OnProcessExit(&code)
	} else {
		det.OnProcessExit(nil)
	}
	globals.Debug("command finished: code=%d known=%v", code, known)

	if known && code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// forwardChunks copies the stream to the writer while feeding every chunk
// to the detector. Chunks are forwarded as-is; only the detector sees the
// normalized text.
func forwardChunks(wg *sync.WaitGroup, r io.Reader, w io.Writer, det *detect.Detector) {
	defer wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			w.Write(buf[:n])
			det.OnOutputChunk(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// exitStatus extracts the exit code from cmd.Wait. A command killed by a
// signal never reported a code; that is the unknown case.
func exitStatus(err error) (code int, known bool) {
	if err == nil {
		return 0, true
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ee.ExitCode() >= 0 {
			return ee.ExitCode(), true
		}
		return 0, false
	}
	return 0, false
}
