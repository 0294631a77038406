package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"codecat/pkg/combine"
	"codecat/pkg/console"
)

// runCmd scans a project and writes the aggregated Markdown file.
var runCmd = &cobra.Command{
	Use:   "run [project-path]",
	Short: "Scan a project and compile its files into a single Markdown file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readArguments(cmd, args)
		if err != nil {
			return err
		}

		con := console.New(os.Stderr, a.Silent, a.Verbose)
		err = combine.Execute(cmd.Context(), a, logger, con)
		if errors.Is(err, combine.ErrNoFiles) {
			con.Warn("\nNo files found to aggregate based on the current configuration.")
			return nil
		}
		return err
	},
}

func init() {
	addScanFlags(runCmd)
	runCmd.Flags().StringP("output-file", "o", "", "Name for the output Markdown file (overrides config)")
	runCmd.Flags().BoolP("verbose", "v", false, "Enable detailed, step-by-step output; disables the progress line")
	runCmd.Flags().BoolP("silent", "s", false, "Suppress all informational output; only errors are shown")
	runCmd.Flags().Bool("dry-run", false, "Scan and process files but do not write the output file")
	runCmd.Flags().Bool("no-header", false, "Do not include the title header in the output file")
	runCmd.Flags().Bool("tree", false, "Include a project structure tree in the output file")
	RootCmd.AddCommand(runCmd)
}
