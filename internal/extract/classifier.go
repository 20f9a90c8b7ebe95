package extract

import (
	"regexp"
	"strings"
)

// Category is the classification of one added line.
type Category int

const (
	// CategoryBoilerplate lines are discarded without closing any block.
	CategoryBoilerplate Category = iota
	// CategoryComment lines accumulate into comment blocks.
	CategoryComment
	// CategoryNoise lines close an in-progress code block and are dropped.
	CategoryNoise
	// CategoryCode lines are substantive and accumulate into code blocks.
	CategoryCode
)

// String returns the category name for logs and test failures.
func (c Category) String() string {
	switch c {
	case CategoryBoilerplate:
		return "boilerplate"
	case CategoryComment:
		return "comment"
	case CategoryNoise:
		return "noise"
	case CategoryCode:
		return "code"
	default:
		return "unknown"
	}
}

const (
	// minCommentChars is the trimmed length a comment-starter line must
	// exceed to classify as comment; shorter matches degrade to noise.
	minCommentChars = 15

	// minCodeChars is the trimmed length below which a non-comment line
	// is noise.
	minCodeChars = 8
)

// Structural lines that carry no authorship signal: import/export headers,
// package/module/namespace declarations, framework idioms, punctuation-only
// and blank lines. Matched against the trimmed line.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^import[\s("'.]`),
	regexp.MustCompile(`^import$`),
	regexp.MustCompile(`^from\s+\S+\s+import\b`),
	regexp.MustCompile(`^export\s`),
	regexp.MustCompile(`^module\.exports\b`),
	regexp.MustCompile(`^package\s+\S+`),
	regexp.MustCompile(`^namespace\s+\S+`),
	regexp.MustCompile(`^using\s+\S+`),
	regexp.MustCompile(`^use\s+\S+`),
	regexp.MustCompile(`^#include\s`),
	regexp.MustCompile(`^require(_relative)?\s*[('"]`),
	// React state-hook declarations.
	regexp.MustCompile(`^(const|let|var)\s*[\[{][^=]*[\]}]\s*=\s*use[A-Z]\w*\s*\(`),
	regexp.MustCompile(`^'use (strict|client|server)'`),
	regexp.MustCompile(`^"use (strict|client|server)"`),
}

// Comment starters across the supported languages: line comments, block
// comment delimiters, docstring delimiters. Matched against the trimmed line.
var commentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^//`),
	regexp.MustCompile(`^#(?:[^!]|$)`),
	regexp.MustCompile(`^/\*`),
	regexp.MustCompile(`^\*`),
	regexp.MustCompile(`^"""`),
	regexp.MustCompile(`^'''`),
	regexp.MustCompile(`^--(?:[^>]|$)`),
	regexp.MustCompile(`^<!--`),
}

// closingTokens are closing-construct keywords that end a block without
// carrying content of their own.
var closingTokens = map[string]struct{}{
	"else":  {},
	"end":   {},
	"endif": {},
	"fi":    {},
	"done":  {},
	"esac":  {},
}

// Classifier decides, per added line, whether it is boilerplate, comment,
// noise, or substantive code. Rules are evaluated in fixed priority order:
// boilerplate > comment > noise > code.
type Classifier struct{}

// NewClassifier returns a classifier with the default rule tables.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify categorizes one added line (diff marker already stripped).
func (c *Classifier) Classify(line string) Category {
	trimmed := strings.TrimSpace(line)

	if isBoilerplate(trimmed) {
		return CategoryBoilerplate
	}

	if isCommentStart(trimmed) {
		if len(trimmed) > minCommentChars {
			return CategoryComment
		}
		// Short comment starters make for trivial fragments.
		return CategoryNoise
	}

	if isNoise(trimmed) {
		return CategoryNoise
	}

	return CategoryCode
}

func isBoilerplate(trimmed string) bool {
	if trimmed == "" || isPurePunctuation(trimmed) {
		return true
	}
	for _, pat := range boilerplatePatterns {
		if pat.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func isCommentStart(trimmed string) bool {
	for _, pat := range commentPatterns {
		if pat.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func isNoise(trimmed string) bool {
	if len(trimmed) < minCodeChars {
		return true
	}
	// Closing constructs wrapped in punctuation, e.g. "} else {".
	bare := strings.Trim(trimmed, "{}()[];:, \t")
	if _, ok := closingTokens[bare]; ok {
		return true
	}
	return false
}

func isPurePunctuation(trimmed string) bool {
	for _, r := range trimmed {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return false
		}
	}
	return trimmed != ""
}
