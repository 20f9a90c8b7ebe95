package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codeamnesia/codeamnesia/internal/app"
	"github.com/codeamnesia/codeamnesia/internal/gitio"
	"github.com/codeamnesia/codeamnesia/internal/output"
	"github.com/codeamnesia/codeamnesia/internal/ui"
)

var (
	velocityAuthor string
	velocityRepo   string
)

var velocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Show unusually high-output days for an author",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, err := gitio.Open(ctx, velocityRepo)
		if err != nil {
			return err
		}

		runner := app.NewRunner(repo, ui.NewPrompter(), cfg)
		runner.AuthorEmail = velocityAuthor

		days, ident, err := runner.VelocityReport(ctx)
		if err != nil {
			return err
		}

		logger.WithField("author", ident.String()).Debug("velocity report")
		output.Velocity(os.Stdout, days)
		return nil
	},
}

func init() {
	velocityCmd.Flags().StringVar(&velocityAuthor, "author", "", "author email to report on (skips the picker)")
	velocityCmd.Flags().StringVar(&velocityRepo, "repo", ".", "path to the git repository")
}
