// Package scoring converts answer logs into the 0-100 recognition score.
// Higher means weaker recognition of one's own authorship: the model rewards
// both plain forgetting and false attribution of others' work to oneself as
// two independent signals of the same phenomenon.
package scoring

import (
	"math"

	"github.com/codeamnesia/codeamnesia/internal/quiz"
)

// Weights of the track score terms.
const (
	forgetWeight      = 50.0
	fuzzyWeight       = 30.0
	falseMemoryWeight = 20.0
)

// Composite blend weights and the velocity bonus schedule.
const (
	codeTrackWeight    = 0.5
	commentTrackWeight = 0.35
	bonusPerHighDay    = 3
	bonusCap           = 15
	maxScore           = 100
)

// TrackBreakdown is the derived scoring state for one track.
type TrackBreakdown struct {
	// Self-authored answer tallies.
	Remembered            int
	Familiar              int
	Uncertain             int
	MisidentifiedForeign  int

	// Other-authored answer tallies.
	FalseMemory       int
	CorrectlyRejected int

	ForgetRate      float64
	FuzzyRate       float64
	FalseMemoryRate float64
	Score           int
}

// Breakdown is the full derived result for one quiz session. It is computed
// on demand from the answer logs and never stored.
type Breakdown struct {
	Code           TrackBreakdown
	Comment        TrackBreakdown
	HighOutputDays int
	VelocityBonus  int
	Total          int
}

// ScoreTrack folds one track's answer log into a 0-100 track score.
func ScoreTrack(log []quiz.Answer) TrackBreakdown {
	var b TrackBreakdown
	selfTotal := 0
	otherTotal := 0

	for _, answer := range log {
		if answer.Self {
			selfTotal++
			switch answer.Confidence {
			case quiz.Remember:
				b.Remembered++
			case quiz.Familiar:
				b.Familiar++
			case quiz.Uncertain:
				b.Uncertain++
			case quiz.Foreign:
				b.MisidentifiedForeign++
			}
		} else {
			otherTotal++
			switch answer.Confidence {
			case quiz.Remember, quiz.Familiar:
				// Wrongly claiming someone else's work.
				b.FalseMemory++
			case quiz.Uncertain, quiz.Foreign:
				b.CorrectlyRejected++
			}
		}
	}

	// Guard against a track with no items of one ownership.
	myTotal := max(1, selfTotal)
	othTotal := max(1, otherTotal)

	b.ForgetRate = float64(b.Uncertain+b.MisidentifiedForeign) / float64(myTotal)
	b.FuzzyRate = float64(b.Familiar) / float64(myTotal)
	b.FalseMemoryRate = float64(b.FalseMemory) / float64(othTotal)

	score := int(math.Round(b.ForgetRate*forgetWeight + b.FuzzyRate*fuzzyWeight + b.FalseMemoryRate*falseMemoryWeight))
	if score > maxScore {
		score = maxScore
	}
	b.Score = score

	return b
}

// Compose blends the two track scores with the velocity bonus into the final
// composite, clamped to 100.
func Compose(code, comment TrackBreakdown, highOutputDays int) Breakdown {
	bonus := highOutputDays * bonusPerHighDay
	if bonus > bonusCap {
		bonus = bonusCap
	}

	total := int(math.Round(float64(code.Score)*codeTrackWeight + float64(comment.Score)*commentTrackWeight + float64(bonus)))
	if total > maxScore {
		total = maxScore
	}

	return Breakdown{
		Code:           code,
		Comment:        comment,
		HighOutputDays: highOutputDays,
		VelocityBonus:  bonus,
		Total:          total,
	}
}

// FromSession scores both tracks of a finished session.
func FromSession(session *quiz.Session, highOutputDays int) Breakdown {
	code := ScoreTrack(session.Answers(quiz.TrackCode))
	comment := ScoreTrack(session.Answers(quiz.TrackComment))
	return Compose(code, comment, highOutputDays)
}
