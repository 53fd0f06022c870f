package detect

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/errbell/errbell/internal/ansi"
	"github.com/errbell/errbell/internal/notify"
)

// Detector is the front door the host drives. It normalizes and classifies
// output chunks, classifies exit codes, and rings the notifier at most once
// per debounce window across both sources. Classification is synchronous
// and pure; the gate's mutex is the only shared state.
//
// Either input path works without the other being wired: exit-only hosts
// and output-only hosts are both fine.
type Detector struct {
	matcher  *Matcher
	gate     *Gate
	notifier notify.Notifier
	log      *zap.SugaredLogger
}

// Options configures a Detector. Zero values get sensible fallbacks:
// DefaultWindow, a no-op notifier, a no-op logger, and the real clock.
type Options struct {
	Window        time.Duration
	Enabled       bool
	ExtraPatterns []string
	Notifier      notify.Notifier
	Clock         clock.Clock
	Logger        *zap.SugaredLogger
}

// New builds a Detector, compiling the signature table once.
func New(opts Options) (*Detector, error) {
	matcher, err := NewMatcher(opts.ExtraPatterns...)
	if err != nil {
		return nil, err
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Nop()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Detector{
		matcher:  matcher,
		gate:     NewGate(opts.Window, opts.Enabled, opts.Clock),
		notifier: notifier,
		log:      log,
	}, nil
}

// OnOutputChunk classifies one slice of live terminal output. Chunks carry
// no boundary guarantees: they may split lines or escape sequences
// arbitrarily, and each is classified on its own.
func (d *Detector) OnOutputChunk(raw []byte) {
	if len(raw) == 0 {
		return
	}
	if !d.matcher.Match(ansi.Strip(string(raw))) {
		return
	}
	d.dispatch("output")
}

// OnProcessExit classifies a completed monitored process. A nil code means
// the host never learned the exit status.
func (d *Detector) OnProcessExit(code *int) {
	if !FailedExit(code) {
		return
	}
	d.dispatch("exit")
}

// SetEnabled toggles detection, effective immediately for all subsequently
// evaluated events.
func (d *Detector) SetEnabled(v bool) {
	d.gate.SetEnabled(v)
}

// Enabled reports whether detection is on.
func (d *Detector) Enabled() bool {
	return d.gate.Enabled()
}

// Matcher exposes the compiled signature table, e.g. for listings.
func (d *Detector) Matcher() *Matcher {
	return d.matcher
}

// dispatch runs a candidate failure event through the gate and, on Fire,
// rings the notifier. Notifier failures are logged and dropped: they must
// never prevent future Fire decisions.
func (d *Detector) dispatch(source string) {
	if d.gate.Offer() != Fire {
		return
	}
	d.log.Debugw("failure detected", "source", source)
	if err := d.notifier.Notify(context.Background()); err != nil {
		d.log.Debugw("notification dispatch failed", "source", source, "error", err)
	}
}
