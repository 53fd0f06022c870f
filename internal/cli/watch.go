package cli

// WatchCmd reads a stream from stdin and rings on failure output. Pipe
// mode: `make 2>&1 | errbell watch`. The stream ends at EOF without exit
// code knowledge, so only the pattern path applies.
type WatchCmd struct {
	DetectorFlags

	NoEcho bool `help:"Do not echo the stream back to stdout"`
}

// Run executes the watch command
func (c *WatchCmd) Run(globals *Globals) error {
	det, err := c.buildDetector(globals)
	if err != nil {
		return err
	}

	buf := make([]byte, 4096)
	for {
		n, readErr := globals.Stdin.Read(buf)
		if n > 0 {
			if !c.NoEcho {
				globals.Stdout.Write(buf[:n])
			}
			det.OnOutputChunk(buf[:n])
		}
		if readErr != nil {
			globals.Debug("stream ended: %v", readErr)
			return nil
		}
	}
}
