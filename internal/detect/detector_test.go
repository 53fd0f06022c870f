package detect

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyNotifier counts notifications and optionally fails every call.
type spyNotifier struct {
	mu    sync.Mutex
	count int
	err   error
}

func (s *spyNotifier) Notify(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.err
}

func (s *spyNotifier) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func newTestDetector(t *testing.T, mock *clock.Mock) (*Detector, *spyNotifier) {
	t.Helper()
	spy := &spyNotifier{}
	det, err := New(Options{
		Window:   2000 * time.Millisecond,
		Enabled:  true,
		Notifier: spy,
		Clock:    mock,
	})
	require.NoError(t, err)
	return det, spy
}

func TestDetector_OnOutputChunk(t *testing.T) {
	t.Run("failure output rings once", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnOutputChunk([]byte("panic: runtime error\n"))
		assert.Equal(t, 1, spy.Count())
	})

	t.Run("clean output stays silent", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnOutputChunk([]byte("all tests passed\n"))
		det.OnOutputChunk([]byte(""))
		det.OnOutputChunk(nil)
		assert.Equal(t, 0, spy.Count())
	})

	t.Run("colored failure output is normalized first", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnOutputChunk([]byte("\x1b[31merror:\x1b[0m boom\n"))
		assert.Equal(t, 1, spy.Count())
	})

	t.Run("burst of failure lines coalesces into one ring", func(t *testing.T) {
		mock := clock.NewMock()
		det, spy := newTestDetector(t, mock)
		for i := 0; i < 10; i++ {
			det.OnOutputChunk([]byte("error: line\n"))
			mock.Add(100 * time.Millisecond)
		}
		assert.Equal(t, 1, spy.Count())
	})
}

func TestDetector_OnProcessExit(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	t.Run("nonzero exit rings", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnProcessExit(intPtr(2))
		assert.Equal(t, 1, spy.Count())
	})

	t.Run("zero exit is silent", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnProcessExit(intPtr(0))
		assert.Equal(t, 0, spy.Count())
	})

	t.Run("unknown exit is silent", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnProcessExit(nil)
		assert.Equal(t, 0, spy.Count())
	})

	t.Run("exit path works without the output path ever firing", func(t *testing.T) {
		det, spy := newTestDetector(t, clock.NewMock())
		det.OnProcessExit(intPtr(1))
		assert.Equal(t, 1, spy.Count())
	})
}

func TestDetector_CrossSourceCoalescing(t *testing.T) {
	mock := clock.NewMock()
	det, spy := newTestDetector(t, mock)
	code := 1

	// Pattern candidate fires at t=0.
	det.OnOutputChunk([]byte("error: broken build\n"))
	assert.Equal(t, 1, spy.Count())

	// Exit candidate at t=100 shares the same gate and is suppressed.
	mock.Add(100 * time.Millisecond)
	det.OnProcessExit(&code)
	assert.Equal(t, 1, spy.Count())

	// Past the window either source may ring again.
	mock.Add(2 * time.Second)
	det.OnProcessExit(&code)
	assert.Equal(t, 2, spy.Count())
}

func TestDetector_SetEnabled(t *testing.T) {
	mock := clock.NewMock()
	det, spy := newTestDetector(t, mock)
	code := 1

	det.SetEnabled(false)
	assert.False(t, det.Enabled())

	det.OnOutputChunk([]byte("error: nope\n"))
	det.OnProcessExit(&code)
	mock.Add(5 * time.Second)
	det.OnOutputChunk([]byte("panic: still nope\n"))
	assert.Equal(t, 0, spy.Count())

	det.SetEnabled(true)
	det.OnOutputChunk([]byte("error: now it rings\n"))
	assert.Equal(t, 1, spy.Count())
}

func TestDetector_NotifierFailureDoesNotStickTheGate(t *testing.T) {
	mock := clock.NewMock()
	spy := &spyNotifier{err: errors.New("no audio device")}
	det, err := New(Options{
		Window:   2000 * time.Millisecond,
		Enabled:  true,
		Notifier: spy,
		Clock:    mock,
	})
	require.NoError(t, err)

	det.OnOutputChunk([]byte("error: first\n"))
	mock.Add(3 * time.Second)
	det.OnOutputChunk([]byte("error: second\n"))

	// Both fires reached the notifier despite it failing each time.
	assert.Equal(t, 2, spy.Count())
}

func TestDetector_ExtraPatterns(t *testing.T) {
	spy := &spyNotifier{}
	det, err := New(Options{
		Enabled:       true,
		ExtraPatterns: []string{`deploy rolled back`},
		Notifier:      spy,
		Clock:         clock.NewMock(),
	})
	require.NoError(t, err)

	det.OnOutputChunk([]byte("deploy rolled back by operator\n"))
	assert.Equal(t, 1, spy.Count())
}

func TestNew_InvalidExtraPattern(t *testing.T) {
	_, err := New(Options{ExtraPatterns: []string{`(unclosed`}})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	det, err := New(Options{Enabled: true})
	require.NoError(t, err)
	// Nop notifier and logger: a fire must not panic.
	det.OnOutputChunk([]byte("error: with defaults\n"))
	assert.NotNil(t, det.Matcher())
}
