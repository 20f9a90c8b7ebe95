// Package velocity aggregates per-day added-line volume to flag unusually
// high-output days. This path measures raw volume: no file-type or pattern
// filtering is applied.
package velocity

import (
	"math"
	"sort"
	"strings"
	"time"
)

const (
	// HighOutputThreshold is the added-line count a day must exceed to be
	// considered high output.
	HighOutputThreshold = 500

	// maxRetainedDays caps the emitted list.
	maxRetainedDays = 10
)

// DailyStat is one calendar day's aggregate for the selected identity.
type DailyStat struct {
	Date              time.Time
	LinesAdded        int
	CommitCount       int
	AvgLinesPerCommit int
}

type dayTotals struct {
	lines   int
	commits int
}

// Aggregator accumulates (linesAdded, commitCount) per UTC calendar day.
type Aggregator struct {
	days map[string]*dayTotals
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{days: make(map[string]*dayTotals)}
}

// Add records one commit's added-line count under its UTC calendar day.
func (a *Aggregator) Add(when time.Time, linesAdded int) {
	key := when.UTC().Format("2006-01-02")
	totals := a.days[key]
	if totals == nil {
		totals = &dayTotals{}
		a.days[key] = totals
	}
	totals.lines += linesAdded
	totals.commits++
}

// TopDays emits days with more than HighOutputThreshold added lines, sorted
// by lines descending, truncated to ten.
func (a *Aggregator) TopDays() []DailyStat {
	var stats []DailyStat
	for key, totals := range a.days {
		if totals.lines <= HighOutputThreshold {
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", key, time.UTC)
		if err != nil {
			continue
		}
		stats = append(stats, DailyStat{
			Date:              date,
			LinesAdded:        totals.lines,
			CommitCount:       totals.commits,
			AvgLinesPerCommit: int(math.Round(float64(totals.lines) / float64(totals.commits))),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].LinesAdded != stats[j].LinesAdded {
			return stats[i].LinesAdded > stats[j].LinesAdded
		}
		return stats[i].Date.Before(stats[j].Date)
	})

	if len(stats) > maxRetainedDays {
		stats = stats[:maxRetainedDays]
	}
	return stats
}

// CountAddedLines counts insertion lines across a whole diff blob, excluding
// the "+++" file-header marker.
func CountAddedLines(diff string) int {
	count := 0
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			count++
		}
	}
	return count
}
