package dedup

import (
	"strings"
	"testing"

	"github.com/codeamnesia/codeamnesia/internal/extract"
)

func TestSet_IdenticalFingerprints(t *testing.T) {
	set := NewSet()
	fp := extract.Fingerprint([]string{"total := sum(invoices)", "emit(total)"})

	if !set.Add(fp) {
		t.Fatal("first add rejected")
	}
	if set.Add(fp) {
		t.Error("identical fingerprint accepted twice")
	}
	if set.Len() != 1 {
		t.Errorf("set length = %d, want 1", set.Len())
	}
}

func TestSet_WhitespaceVariantsCollapse(t *testing.T) {
	// Fingerprinting normalizes whitespace runs, so these two fragments must
	// produce one surviving entry.
	a := extract.Fingerprint([]string{"total :=    sum(invoices)"})
	b := extract.Fingerprint([]string{"total := sum(invoices)"})

	set := NewSet()
	set.Add(a)
	if set.Add(b) {
		t.Error("whitespace variant accepted as distinct")
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "abcdefghij", "abcdefghij", 1.0},
		{"disjoint", "aaaaaaaaaa", "bbbbbbbbbb", 0.0},
		{"ninety percent", "aaaaaaaaaa", "aaaaaaaaab", 0.9},
		{"shorter length governs", "aaaaa", "aaaaabbbbb", 1.0},
		{"empty", "", "anything", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsDuplicate_ThresholdIsExclusive(t *testing.T) {
	// 8 of 10 positions match: ratio is exactly 0.8, which is NOT a
	// duplicate under the strict > threshold convention.
	base := "aaaaaaaaaa"
	eighty := "aaaaaaaabb"
	if got := Similarity(base, eighty); got != 0.8 {
		t.Fatalf("fixture similarity = %v, want 0.8", got)
	}
	if IsDuplicate(base, eighty) {
		t.Error("ratio of exactly 0.8 treated as duplicate; threshold must be exclusive")
	}

	// 9 of 10 positions clears the threshold.
	ninety := "aaaaaaaaab"
	if !IsDuplicate(base, ninety) {
		t.Error("ratio of 0.9 not treated as duplicate")
	}
}

func TestFilter(t *testing.T) {
	items := []string{
		"alpha bravo charlie delta echo",
		"alpha bravo charlie delta echo",
		strings.Repeat("x", 40),
	}

	kept := Filter(items, func(s string) string { return s })
	if len(kept) != 2 {
		t.Fatalf("kept %d items, want 2", len(kept))
	}
	if kept[0] != items[0] || kept[1] != items[2] {
		t.Error("Filter did not preserve input order")
	}
}
