package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codecat/pkg/logging"
	"codecat/pkg/version"
)

// logger is shared by all subcommands. It is replaced by a development
// logger when --debug is given.
var logger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:          "codecat",
	Short:        "Codecat aggregates source code and text into a single Markdown file",
	Long:         `Codecat scans a project, selects text files by include/exclude rules and compiles them into one Markdown document, ready to hand to a review or analysis tool.`,
	Version:      version.Get().Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if !debug {
			return nil
		}
		l, err := logging.New(true, "codecat", version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = l
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Write structured debug logs to stderr")
	RootCmd.Flags().BoolP("version", "V", false, "Show the application version and exit")
	RootCmd.SetVersionTemplate("Codecat CLI Version: {{.Version}}\n")
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.ExecuteContext(context.Background())
}
