// Package app wires the pipeline stages into the top-level program flow:
// identity selection, commit sampling, fragment extraction, deduplication,
// quiz execution, and scoring. Everything runs as a single sequential task;
// the only suspension points are the git boundary calls.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/codeamnesia/codeamnesia/internal/config"
	"github.com/codeamnesia/codeamnesia/internal/extract"
	"github.com/codeamnesia/codeamnesia/internal/gitio"
	"github.com/codeamnesia/codeamnesia/internal/identity"
	"github.com/codeamnesia/codeamnesia/internal/quiz"
	"github.com/codeamnesia/codeamnesia/internal/scoring"
	"github.com/codeamnesia/codeamnesia/internal/velocity"
)

// History is the read-only view of the version-control collaborator the
// runner needs. *gitio.Repo satisfies it.
type History interface {
	Identities(ctx context.Context) (*identity.Tally, error)
	ListCommits(ctx context.Context) ([]string, error)
	CommitMeta(ctx context.Context, sha string) (gitio.CommitMeta, error)
	Diff(ctx context.Context, sha string) (string, error)
}

// Prompter is the interactive presentation collaborator.
type Prompter interface {
	PickIdentity(ranked []identity.Ranked) (identity.Identity, error)
	AskCode(index, total int, frag extract.CodeFragment) (quiz.Confidence, error)
	AskComment(index, total int, frag extract.CommentFragment) (quiz.Confidence, error)
}

// Result is everything the presentation layer renders after a run.
type Result struct {
	Identity  identity.Identity
	Session   *quiz.Session
	Breakdown scoring.Breakdown
	TopDays   []velocity.DailyStat
	Sampled   int
	Skipped   int
}

// Runner executes one full analysis-and-quiz run.
type Runner struct {
	History  History
	Prompter Prompter
	Config   *config.Config

	// AuthorEmail pre-selects the identity and skips the picker when set.
	AuthorEmail string

	rng     *rand.Rand
	sampled int
	skipped int
}

// NewRunner builds a runner. Seed 0 seeds from the current time; any other
// value makes the whole run (sample order, windows, shuffles) reproducible.
func NewRunner(history History, prompter Prompter, cfg *config.Config) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		History:  history,
		Prompter: prompter,
		Config:   cfg,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run drives the full flow and returns the scored result.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	ident, err := r.selectIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pools, stats, err := r.Collect(ctx, ident)
	if err != nil {
		return nil, err
	}

	codeQuestions, err := quiz.Mix(pools.CodeSelf, pools.CodeOther,
		r.Config.QuestionsPerTrack, r.Config.MinQuestions, r.rng)
	if err != nil {
		return nil, fmt.Errorf("%s track: %w", quiz.TrackCode, err)
	}
	commentQuestions, err := quiz.Mix(pools.CommentSelf, pools.CommentOther,
		r.Config.QuestionsPerTrack, r.Config.MinQuestions, r.rng)
	if err != nil {
		return nil, fmt.Errorf("%s track: %w", quiz.TrackComment, err)
	}

	session := quiz.NewSession()
	log.WithFields(log.Fields{
		"session":           session.ID,
		"code_questions":    len(codeQuestions),
		"comment_questions": len(commentQuestions),
	}).Debug("starting quiz session")

	for i, frag := range codeQuestions {
		confidence, err := r.Prompter.AskCode(i+1, len(codeQuestions), frag)
		if err != nil {
			return nil, err
		}
		session.Record(quiz.TrackCode, quiz.Answer{Confidence: confidence, Self: frag.Self})
	}
	for i, frag := range commentQuestions {
		confidence, err := r.Prompter.AskComment(i+1, len(commentQuestions), frag)
		if err != nil {
			return nil, err
		}
		session.Record(quiz.TrackComment, quiz.Answer{Confidence: confidence, Self: frag.Self})
	}

	topDays := stats.TopDays()
	breakdown := scoring.FromSession(session, len(topDays))

	return &Result{
		Identity:  ident,
		Session:   session,
		Breakdown: breakdown,
		TopDays:   topDays,
		Sampled:   r.sampled,
		Skipped:   r.skipped,
	}, nil
}

func (r *Runner) selectIdentity(ctx context.Context) (identity.Identity, error) {
	tally, err := r.History.Identities(ctx)
	if err != nil {
		return identity.Identity{}, err
	}

	ranked := tally.Ranked()
	if r.AuthorEmail != "" {
		for _, entry := range ranked {
			if entry.Identity.Email == r.AuthorEmail {
				return entry.Identity, nil
			}
		}
		return identity.Identity{}, fmt.Errorf("no commits found for author %q", r.AuthorEmail)
	}

	return r.Prompter.PickIdentity(ranked)
}
