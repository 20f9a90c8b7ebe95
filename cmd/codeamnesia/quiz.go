package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeamnesia/codeamnesia/internal/app"
	"github.com/codeamnesia/codeamnesia/internal/gitio"
	"github.com/codeamnesia/codeamnesia/internal/output"
	"github.com/codeamnesia/codeamnesia/internal/ui"
)

var (
	quizAuthor string
	quizRepo   string
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run the recognition quiz against this repository's history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, err := gitio.Open(ctx, quizRepo)
		if err != nil {
			return err
		}

		runner := app.NewRunner(repo, ui.NewPrompter(), cfg)
		runner.AuthorEmail = quizAuthor

		result, err := runner.Run(ctx)
		if err != nil {
			if errors.Is(err, ui.ErrAborted) {
				fmt.Fprintln(os.Stderr, "Quiz aborted.")
				return nil
			}
			return err
		}

		logger.WithFields(map[string]any{
			"session": result.Session.ID,
			"sampled": result.Sampled,
			"skipped": result.Skipped,
		}).Debug("run finished")

		output.Breakdown(os.Stdout, result.Identity, result.Breakdown, result.TopDays)
		return nil
	},
}

func init() {
	quizCmd.Flags().StringVar(&quizAuthor, "author", "", "author email to quiz (skips the picker)")
	quizCmd.Flags().StringVar(&quizRepo, "repo", ".", "path to the git repository")
}
