package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spritegen/spritegen/internal/config"
	"github.com/spritegen/spritegen/pkg/log"
)

var (
	// cfgFile is set via the --config flag.
	cfgFile string
	// v collects defaults, the config file, SPRITEGEN_* variables and flags.
	v = config.NewViper()
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":      "logging.level",
	"log-file":       "logging.path",
	"ext":            "input.extensions",
	"include-hidden": "input.include_hidden",
	"root-name":      "naming.root",
	"on-collision":   "naming.on_collision",
	"strict":         "naming.strict",
	"variant":        "output.variant",
	"header":         "output.header",
	"source":         "output.source",
	"templates":      "templates.dir",
}

// rootCmd represents the base command. Called with two arguments it behaves
// like "generate".
var rootCmd = &cobra.Command{
	Use:   "spritegen <assets_dir> <output_dir>",
	Short: "Generate a C sprite table from a directory of image assets",
	Long: `spritegen scans a directory of image assets and generates a C header and
implementation exposing them as a nested, statically initialized sprite table
plus a flat index-to-path table.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runGenerateCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file instead of stderr")
	addGenerateFlags(rootCmd.Flags())
}

// setup binds the flags of cmd, loads the configuration and initializes
// logging. Usage has been validated once this runs, so later errors do not
// print usage.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cmd.SilenceUsage = true

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level, cmd.ErrOrStderr()); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	return cfg, nil
}
