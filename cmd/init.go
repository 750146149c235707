package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spritegen/spritegen/internal/config"
)

// forceInit allows overwriting an existing configuration file.
var forceInit bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default " + config.DefaultFile,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path, err := runInit(dir, forceInit)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

const configHeader = `# spritegen configuration.
# Every key can be overridden with a SPRITEGEN_ environment variable,
# e.g. SPRITEGEN_OUTPUT_VARIANT=renderer, or with the matching flag.
`

// runInit writes the default configuration into dir.
//
// Returns:
//   - string: The path of the written file.
//   - error: An error if the file exists (and force is false) or cannot be written.
func runInit(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.Default()); err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
