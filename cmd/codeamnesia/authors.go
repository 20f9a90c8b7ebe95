package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codeamnesia/codeamnesia/internal/gitio"
	"github.com/codeamnesia/codeamnesia/internal/output"
)

var authorsRepo string

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List commit authors found in history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, err := gitio.Open(ctx, authorsRepo)
		if err != nil {
			return err
		}

		tally, err := repo.Identities(ctx)
		if err != nil {
			return err
		}

		output.Identities(os.Stdout, tally.Ranked())
		return nil
	},
}

func init() {
	authorsCmd.Flags().StringVar(&authorsRepo, "repo", ".", "path to the git repository")
}
