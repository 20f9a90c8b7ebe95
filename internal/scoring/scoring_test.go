package scoring

import (
	"testing"

	"github.com/codeamnesia/codeamnesia/internal/quiz"
)

func answers(confidence quiz.Confidence, self bool, n int) []quiz.Answer {
	log := make([]quiz.Answer, n)
	for i := range log {
		log[i] = quiz.Answer{Confidence: confidence, Self: self}
	}
	return log
}

func TestScoreTrack_ReferenceCase(t *testing.T) {
	// 10 self answers {remember:5, familiar:2, uncertain:2, foreign:1} and
	// 10 other answers {falseMemory:3, correctlyRejected:7}:
	// forgetRate=0.3, fuzzyRate=0.2, falseMemoryRate=0.3 -> round(15+6+6)=27.
	var log []quiz.Answer
	log = append(log, answers(quiz.Remember, true, 5)...)
	log = append(log, answers(quiz.Familiar, true, 2)...)
	log = append(log, answers(quiz.Uncertain, true, 2)...)
	log = append(log, answers(quiz.Foreign, true, 1)...)
	log = append(log, answers(quiz.Remember, false, 2)...)
	log = append(log, answers(quiz.Familiar, false, 1)...)
	log = append(log, answers(quiz.Uncertain, false, 3)...)
	log = append(log, answers(quiz.Foreign, false, 4)...)

	b := ScoreTrack(log)

	if b.ForgetRate != 0.3 {
		t.Errorf("forgetRate = %v, want 0.3", b.ForgetRate)
	}
	if b.FuzzyRate != 0.2 {
		t.Errorf("fuzzyRate = %v, want 0.2", b.FuzzyRate)
	}
	if b.FalseMemoryRate != 0.3 {
		t.Errorf("falseMemoryRate = %v, want 0.3", b.FalseMemoryRate)
	}
	if b.Score != 27 {
		t.Errorf("score = %d, want 27", b.Score)
	}
	if b.FalseMemory != 3 || b.CorrectlyRejected != 7 {
		t.Errorf("other tallies = %d/%d, want 3/7", b.FalseMemory, b.CorrectlyRejected)
	}
}

func TestScoreTrack_EmptyOwnershipGuards(t *testing.T) {
	// A track with only self answers must not divide by zero.
	b := ScoreTrack(answers(quiz.Foreign, true, 4))
	if b.ForgetRate != 1.0 {
		t.Errorf("forgetRate = %v, want 1.0", b.ForgetRate)
	}
	if b.FalseMemoryRate != 0 {
		t.Errorf("falseMemoryRate = %v, want 0", b.FalseMemoryRate)
	}

	// And an empty log scores zero.
	empty := ScoreTrack(nil)
	if empty.Score != 0 {
		t.Errorf("empty log score = %d, want 0", empty.Score)
	}
}

func TestScoreTrack_PerfectRecognitionScoresZero(t *testing.T) {
	var log []quiz.Answer
	log = append(log, answers(quiz.Remember, true, 6)...)
	log = append(log, answers(quiz.Foreign, false, 4)...)

	if b := ScoreTrack(log); b.Score != 0 {
		t.Errorf("score = %d, want 0 for perfect recognition", b.Score)
	}
}

func TestCompose_VelocityBonus(t *testing.T) {
	tests := []struct {
		name      string
		highDays  int
		wantBonus int
	}{
		{"no high days", 0, 0},
		{"two high days", 2, 6},
		{"bonus caps at 15", 10, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compose(TrackBreakdown{Score: 20}, TrackBreakdown{Score: 20}, tt.highDays)
			if b.VelocityBonus != tt.wantBonus {
				t.Errorf("bonus = %d, want %d", b.VelocityBonus, tt.wantBonus)
			}
		})
	}
}

func TestCompose_Blend(t *testing.T) {
	// round(40*0.5 + 20*0.35 + 6) = round(20 + 7 + 6) = 33
	b := Compose(TrackBreakdown{Score: 40}, TrackBreakdown{Score: 20}, 2)
	if b.Total != 33 {
		t.Errorf("total = %d, want 33", b.Total)
	}
}

func TestCompose_ClampsToHundred(t *testing.T) {
	// 100*0.5 + 100*0.35 + 15 = 100; push over with max sub-scores plus
	// bonus and verify the clamp holds exactly at 100.
	b := Compose(TrackBreakdown{Score: 100}, TrackBreakdown{Score: 100}, 5)
	if b.Total != 100 {
		t.Errorf("total = %d, want exactly 100", b.Total)
	}

	over := Compose(TrackBreakdown{Score: 100}, TrackBreakdown{Score: 100}, 50)
	if over.Total != 100 {
		t.Errorf("total = %d, want clamp at 100", over.Total)
	}
}
