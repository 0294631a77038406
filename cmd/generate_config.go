package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codecat/pkg/config"
)

// generateConfigCmd writes a documented default configuration file.
var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Generate a well-documented default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		name, err := cmd.Flags().GetString("config-file-name")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		dir, err = filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			return fmt.Errorf("output path '%s' exists but is not a directory", dir)
		}

		out := cmd.ErrOrStderr()
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil && !force {
			color.New(color.FgYellow).Fprintf(out, "Config file '%s' already exists.\n", path)
			overwrite, err := promptUser(cmd.InOrStdin(), out, "Do you want to overwrite it? (y/n): ")
			if err != nil {
				return fmt.Errorf("failed to read user input: %w", err)
			}
			if !overwrite {
				return fmt.Errorf("config file generation aborted by user")
			}
		}

		if err := config.WriteDefault(path); err != nil {
			logger.Error("Failed to write config file", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("error writing config file '%s': %w", path, err)
		}
		fmt.Fprint(out, "Successfully generated config file: ")
		color.New(color.FgGreen).Fprintln(out, path)
		return nil
	},
}

func init() {
	generateConfigCmd.Flags().StringP("output-dir", "o", ".", "Directory to generate the config file in")
	generateConfigCmd.Flags().String("config-file-name", config.DefaultConfigFilename, "Name of the config file")
	generateConfigCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file without asking")
	RootCmd.AddCommand(generateConfigCmd)
}

// promptUser displays a message and waits for the user to enter 'y' or 'n'.
// Returns true if the user enters 'y' or 'yes' (case-insensitive), false otherwise.
func promptUser(in io.Reader, out io.Writer, message string) (bool, error) {
	fmt.Fprint(out, message)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
