package quiz

import "github.com/google/uuid"

// Track identifies which question pool a quiz sequence draws from.
type Track int

const (
	// TrackCode quizzes on code snippets.
	TrackCode Track = iota
	// TrackComment quizzes on comment blocks.
	TrackComment
)

// String returns the track name used in reports and errors.
func (t Track) String() string {
	if t == TrackComment {
		return "comment"
	}
	return "code"
}

// Session holds the ordered answer logs for one finished quiz run. The logs
// are append-only; scores are derived from them on demand.
type Session struct {
	ID             string
	CodeAnswers    []Answer
	CommentAnswers []Answer
}

// NewSession starts a session with a fresh correlation ID.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// Record appends one answer to the given track's log.
func (s *Session) Record(track Track, answer Answer) {
	switch track {
	case TrackCode:
		s.CodeAnswers = append(s.CodeAnswers, answer)
	case TrackComment:
		s.CommentAnswers = append(s.CommentAnswers, answer)
	}
}

// Answers returns the answer log for a track.
func (s *Session) Answers(track Track) []Answer {
	if track == TrackComment {
		return s.CommentAnswers
	}
	return s.CodeAnswers
}
