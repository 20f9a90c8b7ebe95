// Package extract turns raw unified-diff text into quiz-sized code and
// comment fragments. The pipeline is: Segmenter (diff blob -> per-file added
// lines), Classifier (line -> category), Accumulator (lines -> blocks),
// Windower (code block -> bounded snippet).
package extract

import (
	"regexp"
	"strings"

	"github.com/codeamnesia/codeamnesia/internal/identity"
)

// Snippet size bounds, in lines.
const (
	MinSnippetLines = 4
	MaxSnippetLines = 12

	// fingerprintLen is the truncation length for fragment fingerprints.
	fingerprintLen = 200

	// minCommentFragmentChars gates comment fragments: at least one comment
	// line must exceed this many characters after trimming.
	minCommentFragmentChars = 20

	// maxCommentContextLines caps the code context attached to a comment block.
	maxCommentContextLines = 2
)

// CodeFragment is one quiz-sized window of inserted code from a single change.
// Immutable after creation.
type CodeFragment struct {
	FilePath    string
	Language    string
	Lines       []string
	Author      identity.Identity
	ChangeID    string
	Self        bool
	Fingerprint string
}

// CommentFragment is a whole inserted comment block with up to two lines of
// surrounding code context. Immutable after creation.
type CommentFragment struct {
	FilePath     string
	Language     string
	CommentLines []string
	ContextLines []string
	Author       identity.Identity
	ChangeID     string
	Self         bool
	Fingerprint  string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Fingerprint produces the normalized digest used for duplicate detection:
// lines joined with newlines, whitespace runs collapsed to single spaces,
// trimmed, truncated to 200 characters.
func Fingerprint(lines []string) string {
	joined := strings.Join(lines, "\n")
	collapsed := strings.TrimSpace(whitespaceRun.ReplaceAllString(joined, " "))
	if len(collapsed) > fingerprintLen {
		collapsed = collapsed[:fingerprintLen]
	}
	return collapsed
}

// commentWorthKeeping reports whether a comment block clears the materiality
// gate: at least one line longer than 20 characters after trimming.
func commentWorthKeeping(lines []string) bool {
	for _, line := range lines {
		if len(strings.TrimSpace(line)) > minCommentFragmentChars {
			return true
		}
	}
	return false
}
