// Package output renders quiz panels, score breakdowns, and velocity tables
// to the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/codeamnesia/codeamnesia/internal/extract"
	"github.com/codeamnesia/codeamnesia/internal/identity"
	"github.com/codeamnesia/codeamnesia/internal/scoring"
	"github.com/codeamnesia/codeamnesia/internal/velocity"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
	contextColor = color.New(color.FgHiBlack)
	commentColor = color.New(color.FgGreen)
)

// CodePanel prints one code snippet question.
func CodePanel(w io.Writer, index, total int, frag extract.CodeFragment) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "[%d/%d] %s", index, total, frag.FilePath)
	if frag.Language != "" {
		dimColor.Fprintf(w, "  (%s)", frag.Language)
	}
	fmt.Fprintln(w)
	dimColor.Fprintln(w, strings.Repeat("-", 60))

	for i, line := range frag.Lines {
		dimColor.Fprintf(w, "%3d ", i+1)
		fmt.Fprintln(w, line)
	}
	dimColor.Fprintln(w, strings.Repeat("-", 60))
}

// CommentPanel prints one comment block question with its code context.
func CommentPanel(w io.Writer, index, total int, frag extract.CommentFragment) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "[%d/%d] %s", index, total, frag.FilePath)
	if frag.Language != "" {
		dimColor.Fprintf(w, "  (%s)", frag.Language)
	}
	fmt.Fprintln(w)
	dimColor.Fprintln(w, strings.Repeat("-", 60))

	for _, line := range frag.ContextLines {
		contextColor.Fprintf(w, "    %s\n", line)
	}
	for _, line := range frag.CommentLines {
		commentColor.Fprintf(w, "    %s\n", line)
	}
	dimColor.Fprintln(w, strings.Repeat("-", 60))
}

// Identities prints the ranked identity list.
func Identities(w io.Writer, ranked []identity.Ranked) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Author", "Email", "Commits"})
	for i, entry := range ranked {
		t.AppendRow(table.Row{i + 1, entry.Identity.Name, entry.Identity.Email,
			humanize.Comma(int64(entry.Commits))})
	}
	t.Render()
}

// Velocity prints the high-output day table.
func Velocity(w io.Writer, days []velocity.DailyStat) {
	if len(days) == 0 {
		dimColor.Fprintln(w, "No high-output days found (threshold: 500 added lines/day).")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Date", "Lines Added", "Commits", "Avg Lines/Commit"})
	for _, day := range days {
		t.AppendRow(table.Row{
			day.Date.Format("2006-01-02"),
			humanize.Comma(int64(day.LinesAdded)),
			day.CommitCount,
			humanize.Comma(int64(day.AvgLinesPerCommit)),
		})
	}
	t.Render()
}

// Breakdown prints the full score report.
func Breakdown(w io.Writer, ident identity.Identity, b scoring.Breakdown, days []velocity.DailyStat) {
	fmt.Fprintln(w)
	headerColor.Fprintf(w, "Recognition report for %s\n", ident)
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Track", "Remembered", "Familiar", "Uncertain", "Missed", "False Memory", "Score"})
	t.AppendRow(trackRow("code", b.Code))
	t.AppendRow(trackRow("comment", b.Comment))
	t.Render()

	fmt.Fprintln(w)
	if len(days) > 0 {
		fmt.Fprintf(w, "High-output days: %d (velocity bonus +%d)\n", b.HighOutputDays, b.VelocityBonus)
		Velocity(w, days)
		fmt.Fprintln(w)
	}

	scoreColor(b.Total).Fprintf(w, "Code amnesia score: %d/100\n", b.Total)
	dimColor.Fprintln(w, "Higher means weaker recognition of your own past work.")
}

func trackRow(name string, tb scoring.TrackBreakdown) table.Row {
	return table.Row{
		name,
		tb.Remembered,
		tb.Familiar,
		tb.Uncertain,
		tb.MisidentifiedForeign,
		tb.FalseMemory,
		fmt.Sprintf("%d/100", tb.Score),
	}
}

func scoreColor(total int) *color.Color {
	switch {
	case total < 30:
		return color.New(color.FgGreen, color.Bold)
	case total < 60:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
