package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInsufficientMaterial is returned when a track cannot assemble enough
// questions for a meaningful quiz. It is a content-sufficiency failure, not
// a crash: the run must abort rather than present a degenerate quiz.
var ErrInsufficientMaterial = errors.New("insufficient quiz material")

// selfShareRatio is the desired fraction of self-authored questions.
const selfShareRatio = 0.6

// Mix assembles one track's question sequence from the self- and
// other-authored pools. The desired self share is ceil(target*0.6), capped
// by the self pool; an undersized other pool hands its unused slots back to
// self. Both pools are shuffled before slicing, and the concatenation is
// shuffled again so ownership gives no positional hint.
func Mix[T any](self, other []T, target, minimum int, rng *rand.Rand) ([]T, error) {
	selfShare := int(math.Ceil(float64(target) * selfShareRatio))
	if selfShare > len(self) {
		selfShare = len(self)
	}

	otherShare := target - selfShare
	if otherShare > len(other) {
		otherShare = len(other)
	}

	// Second pass: reclaim slots left open by an undersized other pool.
	selfShare = target - otherShare
	if selfShare > len(self) {
		selfShare = len(self)
	}

	total := selfShare + otherShare
	if total < minimum {
		return nil, fmt.Errorf("%w: assembled %d questions (self pool %d, other pool %d), need at least %d",
			ErrInsufficientMaterial, total, len(self), len(other), minimum)
	}

	selfPool := shuffled(self, rng)
	otherPool := shuffled(other, rng)

	questions := make([]T, 0, total)
	questions = append(questions, selfPool[:selfShare]...)
	questions = append(questions, otherPool[:otherShare]...)
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

func shuffled[T any](items []T, rng *rand.Rand) []T {
	out := append([]T(nil), items...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
