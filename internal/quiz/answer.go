// Package quiz assembles balanced question sets from fragment pools and
// records the user's confidence-graded answers.
package quiz

// Confidence is the user's self-authorship judgment for one fragment,
// adapted from the Remember/Know memory paradigm.
type Confidence int

const (
	// Remember: explicit recollection of writing this.
	Remember Confidence = iota
	// Familiar: it feels like mine but there is no specific memory.
	Familiar
	// Uncertain: cannot tell either way.
	Uncertain
	// Foreign: confident someone else wrote it.
	Foreign
)

// String returns the confidence label used in reports.
func (c Confidence) String() string {
	switch c {
	case Remember:
		return "remember"
	case Familiar:
		return "familiar"
	case Uncertain:
		return "uncertain"
	case Foreign:
		return "foreign"
	default:
		return "unknown"
	}
}

// Answer pairs the user's confidence with the ground truth for one question.
// Answers are appended to an ordered log and never mutated.
type Answer struct {
	Confidence Confidence
	Self       bool
}
