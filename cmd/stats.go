package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"codecat/pkg/combine"
	"codecat/pkg/console"
)

// statsCmd prints file and line counts per language.
var statsCmd = &cobra.Command{
	Use:   "stats [project-path]",
	Short: "Scan the project and display file count and line count statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readArguments(cmd, args)
		if err != nil {
			return err
		}
		a.Overrides.NoHeader = true

		con := console.New(os.Stderr, false, false)
		err = combine.ExecuteStats(cmd.Context(), a, logger, con)
		if errors.Is(err, combine.ErrNoFiles) {
			con.Warn("\nNo files found to aggregate based on the current configuration.")
			return nil
		}
		return err
	},
}

func init() {
	addScanFlags(statsCmd)
	RootCmd.AddCommand(statsCmd)
}
