package app

import (
	"context"

	"github.com/codeamnesia/codeamnesia/internal/identity"
	"github.com/codeamnesia/codeamnesia/internal/velocity"
)

// VelocityReport runs only the velocity aggregation path: sample commits,
// count raw added lines for the selected identity's changes, and return the
// high-output days.
func (r *Runner) VelocityReport(ctx context.Context) ([]velocity.DailyStat, identity.Identity, error) {
	ident, err := r.selectIdentity(ctx)
	if err != nil {
		return nil, identity.Identity{}, err
	}

	hashes, err := r.History.ListCommits(ctx)
	if err != nil {
		return nil, identity.Identity{}, err
	}

	r.rng.Shuffle(len(hashes), func(i, j int) {
		hashes[i], hashes[j] = hashes[j], hashes[i]
	})
	if len(hashes) > r.Config.SampleSize {
		hashes = hashes[:r.Config.SampleSize]
	}

	stats := velocity.NewAggregator()
	for _, sha := range hashes {
		if err := ctx.Err(); err != nil {
			return nil, identity.Identity{}, err
		}

		meta, err := r.History.CommitMeta(ctx, sha)
		if err != nil {
			r.skip(sha, err)
			continue
		}
		if meta.Author != ident {
			continue
		}
		diff, err := r.History.Diff(ctx, sha)
		if err != nil {
			r.skip(sha, err)
			continue
		}
		stats.Add(meta.Time, velocity.CountAddedLines(diff))
	}

	return stats.TopDays(), ident, nil
}
