package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/codeamnesia/codeamnesia/internal/dedup"
	"github.com/codeamnesia/codeamnesia/internal/extract"
	"github.com/codeamnesia/codeamnesia/internal/identity"
	"github.com/codeamnesia/codeamnesia/internal/velocity"
)

// Pools are the deduplicated fragment pools, split by track and ownership.
type Pools struct {
	CodeSelf     []extract.CodeFragment
	CodeOther    []extract.CodeFragment
	CommentSelf  []extract.CommentFragment
	CommentOther []extract.CommentFragment
}

// Collect samples history, extracts fragments for every sampled change, and
// aggregates velocity for the selected identity. A failure on one change is
// recovered: the change is skipped with a debug log and the run continues.
func (r *Runner) Collect(ctx context.Context, ident identity.Identity) (*Pools, *velocity.Aggregator, error) {
	hashes, err := r.History.ListCommits(ctx)
	if err != nil {
		return nil, nil, err
	}

	// One randomized sample order, fixed for the whole run.
	r.rng.Shuffle(len(hashes), func(i, j int) {
		hashes[i], hashes[j] = hashes[j], hashes[i]
	})
	if len(hashes) > r.Config.SampleSize {
		hashes = hashes[:r.Config.SampleSize]
	}

	extractor := extract.NewExtractor(r.rng)
	stats := velocity.NewAggregator()
	pools := &Pools{}

	for _, sha := range hashes {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		meta, err := r.History.CommitMeta(ctx, sha)
		if err != nil {
			r.skip(sha, err)
			continue
		}
		diff, err := r.History.Diff(ctx, sha)
		if err != nil {
			r.skip(sha, err)
			continue
		}
		r.sampled++

		self := meta.Author == ident
		code, comments := extractor.Extract(diff, extract.Change{
			ID:     sha,
			Author: meta.Author,
			Self:   self,
		})

		for _, frag := range code {
			if self {
				pools.CodeSelf = append(pools.CodeSelf, frag)
			} else {
				pools.CodeOther = append(pools.CodeOther, frag)
			}
		}
		for _, frag := range comments {
			if self {
				pools.CommentSelf = append(pools.CommentSelf, frag)
			} else {
				pools.CommentOther = append(pools.CommentOther, frag)
			}
		}

		// Velocity measures raw volume over the whole diff, unfiltered.
		if self {
			stats.Add(meta.Time, velocity.CountAddedLines(diff))
		}
	}

	pools.dedupe()
	return pools, stats, nil
}

func (r *Runner) skip(sha string, err error) {
	r.skipped++
	log.WithField("commit", sha).WithError(err).Debug("skipping change")
}

func (p *Pools) dedupe() {
	codeKey := func(f extract.CodeFragment) string { return f.Fingerprint }
	commentKey := func(f extract.CommentFragment) string { return f.Fingerprint }

	p.CodeSelf = dedup.Filter(p.CodeSelf, codeKey)
	p.CodeOther = dedup.Filter(p.CodeOther, codeKey)
	p.CommentSelf = dedup.Filter(p.CommentSelf, commentKey)
	p.CommentOther = dedup.Filter(p.CommentOther, commentKey)
}
