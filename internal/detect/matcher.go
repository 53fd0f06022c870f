// Package detect classifies streamed process output and exit codes as
// failure signals and coalesces the resulting alerts through a debounce
// gate, so that a burst of related failure output rings at most once.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Matcher tests normalized output text against the failure signature table.
// The whole table is compiled once into a single case-insensitive
// alternation, so classifying a chunk costs one scan regardless of how many
// signatures are loaded. Terminal output can arrive at high volume, so this
// matters.
type Matcher struct {
	re         *regexp.Regexp
	signatures []Signature
}

// NewMatcher compiles the built-in signature table plus any extra
// expressions into a Matcher. Extra expressions become signatures in the
// "custom" category. Each extra expression is validated individually so a
// bad user pattern is reported by name, not as an alternation soup.
func NewMatcher(extra ...string) (*Matcher, error) {
	sigs := make([]Signature, 0, len(Signatures)+len(extra))
	sigs = append(sigs, Signatures...)
	for i, expr := range extra {
		if _, err := regexp.Compile(expr); err != nil {
			return nil, fmt.Errorf("invalid extra pattern %q: %w", expr, err)
		}
		sigs = append(sigs, Signature{
			Name:     fmt.Sprintf("custom-%d", i+1),
			Category: "custom",
			Expr:     expr,
		})
	}

	alts := lo.Map(sigs, func(s Signature, _ int) string {
		return "(?:" + s.Expr + ")"
	})
	re, err := regexp.Compile(`(?i)` + strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile signature table: %w", err)
	}

	return &Matcher{re: re, signatures: sigs}, nil
}

// Match reports whether text contains any failure signature. Overlapping
// matches collapse to a single true; no signature takes precedence.
func (m *Matcher) Match(text string) bool {
	return m.re.MatchString(text)
}

// Signatures returns a copy of the compiled signature table.
func (m *Matcher) Signatures() []Signature {
	out := make([]Signature, len(m.signatures))
	copy(out, m.signatures)
	return out
}
