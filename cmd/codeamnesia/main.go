package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/codeamnesia/codeamnesia/internal/config"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"

	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codeamnesia",
	Short: "Codeamnesia - find out how much of your own code you still recognize",
	Long: `Codeamnesia samples your git history, quizzes you on code and comment
fragments from your own and your collaborators' commits, and scores how well
you recognize your own past work. A high score suggests heavy reliance on
generated code.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logger.GetLevel())

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .codeamnesia.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.SetVersionTemplate(`Codeamnesia {{.Version}}
Build time: ` + BuildTime + `
`)

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(configCmd)
}
