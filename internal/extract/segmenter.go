package extract

import (
	"bufio"
	"path"
	"strings"

	"github.com/src-d/enry/v2"
)

// FileSection is one file's worth of a unified diff: the post-change path
// and the ordered stream of added lines and boundary events.
type FileSection struct {
	Path     string
	Language string
	Events   []Event
}

// EventKind tags one entry in a file section's event stream.
type EventKind int

const (
	// EventAdded is an inserted line (leading "+" stripped).
	EventAdded EventKind = iota
	// EventBoundary is a hunk header, context line, or deletion. It closes
	// any in-progress code block.
	EventBoundary
)

// Event is one line-level observation from the diff scan.
type Event struct {
	Kind EventKind
	Text string
}

// Extensions we accept as quiz material. Everything else is configuration,
// data, or markup whose authorship is rarely memorable.
var sourceExtensions = map[string]struct{}{
	".go": {}, ".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".mjs": {}, ".cjs": {},
	".py": {}, ".rb": {}, ".java": {}, ".kt": {}, ".kts": {}, ".scala": {},
	".c": {}, ".h": {}, ".cc": {}, ".cpp": {}, ".hpp": {}, ".cs": {},
	".rs": {}, ".php": {}, ".swift": {}, ".m": {}, ".mm": {},
	".sh": {}, ".bash": {}, ".zsh": {}, ".pl": {}, ".pm": {}, ".lua": {},
	".dart": {}, ".ex": {}, ".exs": {}, ".erl": {}, ".hs": {}, ".clj": {},
	".vue": {}, ".svelte": {}, ".sql": {}, ".r": {}, ".jl": {},
}

// Generated, minified, vendored, and build-output paths that never carry a
// human authorship signal. enry handles the vendor and dotfile conventions;
// these cover the rest.
var ignoredNameFragments = []string{
	".min.js", ".min.css", ".bundle.js",
	"_generated", ".generated.", ".pb.go", "_pb2.py", ".g.dart",
}

var ignoredDirs = map[string]struct{}{
	"dist": {}, "build": {}, "out": {}, "target": {}, "__snapshots__": {},
}

// Segmenter splits one unified-diff blob into per-file added-line streams.
type Segmenter struct{}

// NewSegmenter returns a segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment parses a diff blob into retained file sections. Files matching an
// ignore rule are dropped whole. Only lines inside a hunk are considered;
// added lines (excluding the "+++" file header) become EventAdded, while
// hunk headers, context lines, and deletions become EventBoundary.
func (s *Segmenter) Segment(diff string) []FileSection {
	var sections []FileSection
	var current *FileSection
	inHunk := false
	skipFile := false

	flush := func() {
		if current != nil && !skipFile && len(current.Events) > 0 {
			sections = append(sections, *current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(diff))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "diff --git") {
			flush()
			newPath := parseGitHeaderPath(line)
			skipFile = IgnorePath(newPath)
			current = &FileSection{
				Path:     newPath,
				Language: enry.GetLanguage(path.Base(newPath), nil),
			}
			inHunk = false
			continue
		}

		if current == nil {
			continue
		}

		// The "+++ b/..." header names the post-change path authoritatively
		// (renames). It is never counted as an added line.
		if strings.HasPrefix(line, "+++ ") {
			if newPath := parseFileHeaderPath(line); newPath != "" {
				current.Path = newPath
				current.Language = enry.GetLanguage(path.Base(newPath), nil)
				skipFile = IgnorePath(newPath)
			}
			continue
		}
		if strings.HasPrefix(line, "--- ") {
			continue
		}

		if strings.HasPrefix(line, "@@") {
			inHunk = true
			if !skipFile {
				current.Events = append(current.Events, Event{Kind: EventBoundary})
			}
			continue
		}

		if !inHunk || skipFile {
			continue
		}

		switch {
		case strings.HasPrefix(line, "+"):
			current.Events = append(current.Events, Event{Kind: EventAdded, Text: line[1:]})
		case strings.HasPrefix(line, "\\"):
			// "\ No newline at end of file"
		default:
			// Context or deletion.
			current.Events = append(current.Events, Event{Kind: EventBoundary})
		}
	}

	flush()
	return sections
}

// IgnorePath reports whether a file path should be excluded from fragment
// extraction: vendored or generated material, build outputs, compiled
// artifacts, lockfiles, dotfiles, and anything without a recognized source
// extension.
func IgnorePath(filePath string) bool {
	if filePath == "" || filePath == "/dev/null" {
		return true
	}

	if enry.IsVendor(filePath) || enry.IsDotFile(filePath) {
		return true
	}

	lower := strings.ToLower(filePath)
	for _, frag := range ignoredNameFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}

	parts := strings.Split(lower, "/")
	for _, dir := range parts[:len(parts)-1] {
		if _, ok := ignoredDirs[dir]; ok {
			return true
		}
	}

	ext := strings.ToLower(path.Ext(filePath))
	if _, ok := sourceExtensions[ext]; !ok {
		return true
	}

	return false
}

// parseGitHeaderPath extracts the new path from a "diff --git a/x b/y" line.
func parseGitHeaderPath(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return ""
	}
	return strings.TrimPrefix(fields[3], "b/")
}

// parseFileHeaderPath extracts the path from a "+++ b/path" line.
func parseFileHeaderPath(line string) string {
	p := strings.TrimSpace(strings.TrimPrefix(line, "+++ "))
	if p == "/dev/null" {
		return ""
	}
	p = strings.TrimPrefix(p, "b/")
	// git appends a tab before timestamps in some diff styles.
	if idx := strings.IndexByte(p, '\t'); idx >= 0 {
		p = p[:idx]
	}
	return p
}
