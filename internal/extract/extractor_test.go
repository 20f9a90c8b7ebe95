package extract

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeamnesia/codeamnesia/internal/identity"
)

var testChange = Change{
	ID:     "abc123",
	Author: identity.Identity{Name: "Dana", Email: "dana@example.com"},
	Self:   true,
}

func TestExtractor_Extract(t *testing.T) {
	diff := `diff --git a/internal/ledger/post.go b/internal/ledger/post.go
--- a/internal/ledger/post.go
+++ b/internal/ledger/post.go
@@ -5,0 +6,9 @@
+// postEntry applies a balanced entry to both accounts atomically
+entry := ledger.NewEntry(debit, credit, amountCents)
+entry.Memo = sanitizeMemo(request.Memo)
+if err := tx.Insert(entry); err != nil {
+entries = append(entries, entry)
`
	extractor := NewExtractor(rand.New(rand.NewSource(1)))
	code, comments := extractor.Extract(diff, testChange)

	require.Len(t, code, 1)
	frag := code[0]
	assert.Equal(t, "internal/ledger/post.go", frag.FilePath)
	assert.Equal(t, "abc123", frag.ChangeID)
	assert.True(t, frag.Self)
	assert.Len(t, frag.Lines, 4)
	assert.Equal(t, Fingerprint(frag.Lines), frag.Fingerprint)

	require.Len(t, comments, 1)
	assert.Equal(t, []string{"// postEntry applies a balanced entry to both accounts atomically"},
		comments[0].CommentLines)
	// The comment opens the hunk, so it has no preceding code context.
	assert.Empty(t, comments[0].ContextLines)
}

func TestExtractor_BoilerplateDoesNotBreakBlocks(t *testing.T) {
	// The import line sits mid-block; discarding it must not split the run.
	diff := `diff --git a/worker/pool.go b/worker/pool.go
--- a/worker/pool.go
+++ b/worker/pool.go
@@ -1,0 +2,5 @@
+queue := make(chan job, queueDepth)
+results := make(chan result, queueDepth)
+import "sync/atomic"
+inflight := atomic.Int64{}
+go drainResults(results, &inflight)
`
	extractor := NewExtractor(rand.New(rand.NewSource(1)))
	code, _ := extractor.Extract(diff, testChange)

	require.Len(t, code, 1)
	assert.Len(t, code[0].Lines, 4)
}

func TestExtractor_ShortCommentBlockDropped(t *testing.T) {
	// Every comment line is at or under 20 trimmed characters, so the block
	// must never materialize.
	diff := `diff --git a/worker/pool.go b/worker/pool.go
--- a/worker/pool.go
+++ b/worker/pool.go
@@ -1,0 +2,2 @@
+// short comment one
+// short comment two
`
	extractor := NewExtractor(rand.New(rand.NewSource(1)))
	_, comments := extractor.Extract(diff, testChange)
	assert.Empty(t, comments)
}

func TestFingerprint(t *testing.T) {
	t.Run("collapses whitespace runs", func(t *testing.T) {
		a := Fingerprint([]string{"total  :=   sum(x)", "emit(total)"})
		b := Fingerprint([]string{"total := sum(x)", "emit(total)"})
		assert.Equal(t, a, b)
	})

	t.Run("truncates to 200 characters", func(t *testing.T) {
		long := strings.Repeat("abcdefghij", 50)
		got := Fingerprint([]string{long})
		assert.Len(t, got, 200)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got := Fingerprint([]string{"   padded := value   "})
		assert.Equal(t, "padded := value", got)
	})
}
