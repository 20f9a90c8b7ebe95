// Package gitio is the history-retrieval collaborator: it shells out to the
// git binary and hands the pipeline raw diff blobs and delimiter-joined
// metadata records. All persistence is delegated to git itself, read-only.
package gitio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/codeamnesia/codeamnesia/internal/identity"
)

var (
	// ErrRepositoryUnavailable means no git repository exists at the
	// working location. Fatal before any pipeline work.
	ErrRepositoryUnavailable = errors.New("not a git repository")

	// ErrNoHistory means the repository has zero commits. Fatal.
	ErrNoHistory = errors.New("no commit history found")
)

// metaDelimiter joins the fields of a commit metadata record. The message
// may itself contain the delimiter and is reassembled from trailing fields.
const metaDelimiter = "|"

// Repo is a handle on one local git repository.
type Repo struct {
	path string
}

// Open verifies that path is inside a git working tree.
func Open(ctx context.Context, path string) (*Repo, error) {
	r := &Repo{path: path}
	if _, err := r.run(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		return nil, fmt.Errorf("%w at %s", ErrRepositoryUnavailable, path)
	}
	return r, nil
}

// Path returns the repository's working location.
func (r *Repo) Path() string {
	return r.path
}

// Identities walks the full history and tallies commits per (name, email)
// pair. Returns ErrNoHistory when the log is empty.
func (r *Repo) Identities(ctx context.Context) (*identity.Tally, error) {
	out, err := r.run(ctx, "log", "--pretty=format:%an"+metaDelimiter+"%ae")
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", ErrNoHistory)
	}

	tally := identity.NewTally()
	for _, line := range strings.Split(out, "\n") {
		id, ok := parseIdentityRecord(line)
		if !ok {
			continue
		}
		tally.Record(id)
	}

	if tally.Len() == 0 {
		return nil, ErrNoHistory
	}
	return tally, nil
}

// ListCommits returns every commit hash reachable from HEAD, newest first.
func (r *Repo) ListCommits(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "log", "--pretty=format:%H")
	if err != nil {
		return nil, fmt.Errorf("listing commits: %w", ErrNoHistory)
	}

	var hashes []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			hashes = append(hashes, line)
		}
	}
	if len(hashes) == 0 {
		return nil, ErrNoHistory
	}
	return hashes, nil
}

// CommitMeta fetches one commit's author, timestamp, and subject as a
// name|email|unixTimestamp|message record.
func (r *Repo) CommitMeta(ctx context.Context, sha string) (CommitMeta, error) {
	out, err := r.run(ctx, "log", "-1",
		"--pretty=format:%an"+metaDelimiter+"%ae"+metaDelimiter+"%at"+metaDelimiter+"%s", sha)
	if err != nil {
		return CommitMeta{}, fmt.Errorf("fetching metadata for %s: %w", sha, err)
	}
	return ParseMetaRecord(out)
}

// Diff fetches one commit's unified diff text, suppressing the log header
// and any color escapes.
func (r *Repo) Diff(ctx context.Context, sha string) (string, error) {
	out, err := r.run(ctx, "show", "--format=", "--no-color", sha)
	if err != nil {
		return "", fmt.Errorf("fetching diff for %s: %w", sha, err)
	}
	return out, nil
}

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.path

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.WithFields(log.Fields{
				"args":   strings.Join(args, " "),
				"stderr": strings.TrimSpace(string(exitErr.Stderr)),
			}).Debug("git command failed")
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}
