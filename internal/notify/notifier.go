// Package notify dispatches failure alerts. Implementations own the
// platform-specific side of making noise; the detector only signals that
// an alert should ring now.
package notify

import (
	"context"
	"io"
)

// Notifier raises one alert. Implementations must tolerate rapid
// successive calls by interrupting the previous alert before starting the
// next one - the caller never waits for playback to finish.
type Notifier interface {
	Notify(ctx context.Context) error
}

// NopNotifier discards alerts. Used by dry runs and tests.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(context.Context) error { return nil }

// Nop returns a Notifier that discards alerts.
func Nop() Notifier { return NopNotifier{} }

// BellNotifier rings the terminal bell by writing BEL to a writer,
// typically stderr. Zero dependencies, works over ssh, and terminal
// multiplexers can forward it to the host bell.
type BellNotifier struct {
	w io.Writer
}

// NewBell creates a BellNotifier writing to w.
func NewBell(w io.Writer) *BellNotifier {
	return &BellNotifier{w: w}
}

// Notify writes a single BEL character.
func (b *BellNotifier) Notify(context.Context) error {
	_, err := b.w.Write([]byte{'\a'})
	return err
}
