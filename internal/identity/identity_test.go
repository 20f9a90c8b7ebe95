package identity

import "testing"

func TestTally_Ranked(t *testing.T) {
	dana := Identity{Name: "Dana", Email: "dana@example.com"}
	kim := Identity{Name: "Kim", Email: "kim@example.com"}
	// Same person, different email: a distinct identity by design.
	danaWork := Identity{Name: "Dana", Email: "dana@work.example.com"}

	tally := NewTally()
	for i := 0; i < 5; i++ {
		tally.Record(dana)
	}
	for i := 0; i < 3; i++ {
		tally.Record(kim)
	}
	tally.Record(danaWork)

	if tally.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tally.Len())
	}
	if got := tally.Count(dana); got != 5 {
		t.Errorf("Count(dana) = %d, want 5", got)
	}

	ranked := tally.Ranked()
	if ranked[0].Identity != dana || ranked[0].Commits != 5 {
		t.Errorf("ranked[0] = %v (%d), want dana (5)", ranked[0].Identity, ranked[0].Commits)
	}
	if ranked[1].Identity != kim {
		t.Errorf("ranked[1] = %v, want kim", ranked[1].Identity)
	}
	if ranked[2].Identity != danaWork {
		t.Errorf("ranked[2] = %v, want dana's work identity", ranked[2].Identity)
	}
}

func TestIdentity_Key(t *testing.T) {
	id := Identity{Name: "Dana", Email: "dana@example.com"}
	if got := id.Key(); got != "Dana <dana@example.com>" {
		t.Errorf("Key() = %q", got)
	}
}
