package extract

import (
	"math"
	"math/rand"
)

// windowRatio divides the block length to produce the window target, so
// blocks up to MaxSnippetLines survive whole.
const windowRatio = 0.7

// Windower selects one bounded contiguous sub-window from each finished code
// block. The random source is injected so tests can be deterministic.
type Windower struct {
	rng *rand.Rand
}

// NewWindower returns a windower drawing offsets from rng.
func NewWindower(rng *rand.Rand) *Windower {
	return &Windower{rng: rng}
}

// Window returns a snippet of length
// clamp(floor(L/0.7), MinSnippetLines, min(MaxSnippetLines, L)) starting at a
// uniformly random offset. Exactly one snippet is produced per block to bound
// quiz-pool growth.
func (w *Windower) Window(lines []string) []string {
	l := len(lines)
	if l == 0 {
		return nil
	}

	n := windowLength(l)
	start := 0
	if l > n {
		start = w.rng.Intn(l - n + 1)
	}

	return append([]string(nil), lines[start:start+n]...)
}

// windowLength clamps the 0.7-ratio target to [MinSnippetLines,
// min(MaxSnippetLines, L)]. Blocks up to MaxSnippetLines come through whole;
// longer blocks are capped at MaxSnippetLines.
func windowLength(l int) int {
	n := int(math.Floor(float64(l) / windowRatio))
	if n < MinSnippetLines {
		n = MinSnippetLines
	}
	hi := MaxSnippetLines
	if l < hi {
		hi = l
	}
	if n > hi {
		n = hi
	}
	return n
}
