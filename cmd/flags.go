package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"codecat/pkg/combine"
)

// addScanFlags registers the flags shared by commands that scan a project.
func addScanFlags(c *cobra.Command) {
	c.Flags().StringP("config", "c", "", "Path to a custom config file (default: .codecat_config.yaml in the project path)")
	c.Flags().StringArrayP("include", "i", nil, `Glob pattern for files to include; repeat for multiple patterns (e.g. -i "*.py" -i "*.js")`)
	c.Flags().StringArrayP("exclude", "e", nil, `Glob pattern to exclude files or directories; repeat for multiple patterns (e.g. -e "dist/*")`)
	c.Flags().Int("max-workers", 0, "Maximum number of parallel workers (default: number of CPUs)")
}

// readArguments collects the combine arguments from whichever flags the
// command defines.
func readArguments(c *cobra.Command, args []string) (combine.Arguments, error) {
	a := combine.Arguments{ProjectPath: "."}
	if len(args) > 0 {
		a.ProjectPath = args[0]
	}

	var err error
	flags := c.Flags()
	if a.ConfigPath, err = flags.GetString("config"); err != nil {
		return a, fmt.Errorf("error reading flags: %w", err)
	}
	if a.Overrides.IncludePatterns, err = flags.GetStringArray("include"); err != nil {
		return a, fmt.Errorf("error reading flags: %w", err)
	}
	if a.Overrides.ExcludePatterns, err = flags.GetStringArray("exclude"); err != nil {
		return a, fmt.Errorf("error reading flags: %w", err)
	}
	if a.MaxWorkers, err = flags.GetInt("max-workers"); err != nil {
		return a, fmt.Errorf("error reading flags: %w", err)
	}

	optional := func(name string, dst *bool) error {
		if flags.Lookup(name) == nil {
			return nil
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		*dst = v
		return nil
	}
	for name, dst := range map[string]*bool{
		"verbose":   &a.Verbose,
		"silent":    &a.Silent,
		"dry-run":   &a.DryRun,
		"no-header": &a.Overrides.NoHeader,
		"tree":      &a.Overrides.Tree,
	} {
		if err := optional(name, dst); err != nil {
			return a, err
		}
	}

	if flags.Lookup("output-file") != nil {
		if a.Overrides.OutputFile, err = flags.GetString("output-file"); err != nil {
			return a, fmt.Errorf("error reading flags: %w", err)
		}
	}
	return a, nil
}
