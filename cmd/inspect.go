package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spritegen/spritegen/internal/assets"
	"github.com/spritegen/spritegen/internal/config"
	"github.com/spritegen/spritegen/internal/generator"
)

// inspectCmd prints the indexed tree and path table.
var inspectCmd = &cobra.Command{
	Use:   "inspect <assets_dir>",
	Short: "Print the indexed asset tree and path table as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		return runInspect(cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	addTreeFlags(inspectCmd.Flags())
	rootCmd.AddCommand(inspectCmd)
}

// inspection is the YAML document printed by inspect.
type inspection struct {
	Root  assets.IndexedGroup `yaml:"root"`
	Paths assets.PathTable    `yaml:"paths"`
}

func runInspect(w io.Writer, cfg *config.Config, assetsDir string) error {
	plan, err := generator.BuildPlan(cfg, assetsDir)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inspection{Root: plan.Indexed, Paths: plan.Paths}); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	return enc.Close()
}
