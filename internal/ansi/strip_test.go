package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	t.Run("removes color sequences", func(t *testing.T) {
		in := "\x1b[31merror:\x1b[0m something broke"
		assert.Equal(t, "error: something broke", Strip(in))
	})

	t.Run("removes cursor movement sequences", func(t *testing.T) {
		in := "\x1b[2Aline\x1b[10;20Hrest"
		assert.Equal(t, "linerest", Strip(in))
	})

	t.Run("passes plain text through unchanged", func(t *testing.T) {
		in := "build ok\nall tests passed\n"
		assert.Equal(t, in, Strip(in))
	})

	t.Run("preserves non-ASCII text", func(t *testing.T) {
		in := "\x1b[1mこんにちは\x1b[0m 🚀"
		assert.Equal(t, "こんにちは 🚀", Strip(in))
	})

	t.Run("leaves malformed sequences intact", func(t *testing.T) {
		// Missing final letter: not a complete CSI sequence.
		in := "\x1b[31"
		assert.Equal(t, in, Strip(in))

		// Bare ESC without '['.
		in = "\x1bXfoo"
		assert.Equal(t, in, Strip(in))
	})

	t.Run("does not join sequences split across chunks", func(t *testing.T) {
		// Each chunk is normalized independently; the split sequence
		// survives. Accepted limitation, asserted so it stays deliberate.
		first := Strip("before\x1b[3")
		second := Strip("1mafter")
		assert.Equal(t, "before\x1b[3", first)
		assert.Equal(t, "1mafter", second)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Strip(""))
	})
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"\x1b[31mred\x1b[0m",
		"plain text",
		"\x1b[1;32mbold green\x1b[0m with \x1b[4Kerase",
		"",
	}
	for _, in := range inputs {
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "Strip should be idempotent for %q", in)
	}
}
