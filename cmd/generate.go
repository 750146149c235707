package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spritegen/spritegen/internal/config"
	"github.com/spritegen/spritegen/internal/generator"
	"github.com/spritegen/spritegen/internal/ui"
)

// dryRun prints the generated documents instead of writing them.
// This is set via the --dry-run flag.
var dryRun bool

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <assets_dir> <output_dir>",
	Short: "Generate the sprite table header and implementation",
	Args:  cobra.ExactArgs(2),
	RunE:  runGenerateCmd,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
	rootCmd.AddCommand(generateCmd)
}

// addTreeFlags registers the flags that shape the asset tree.
func addTreeFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringSlice("ext", def.Input.Extensions, "asset file extensions")
	fs.Bool("include-hidden", false, "include files and directories starting with a dot")
	fs.String("root-name", def.Naming.Root, "name of the root group")
	fs.String("on-collision", def.Naming.OnCollision, "identifier collision policy (error, last-wins, ignore)")
	fs.Bool("strict", false, "reject names that are not valid C identifiers")
}

func addGenerateFlags(fs *pflag.FlagSet) {
	def := config.Default()
	addTreeFlags(fs)
	fs.String("variant", def.Output.Variant, "template variant (stub, texture, renderer)")
	fs.String("header", def.Output.Header, "declaration file name")
	fs.String("source", def.Output.Source, "implementation file name")
	fs.String("templates", "", "directory with template overrides")
	fs.BoolVar(&dryRun, "dry-run", false, "print the generated files instead of writing them")
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	return runGenerate(cmd.OutOrStdout(), cfg, args[0], args[1], dryRun)
}

// runGenerate executes the code generation process and reports the result.
//
// Returns:
//   - error: An error if generation fails at any step.
func runGenerate(w io.Writer, cfg *config.Config, assetsDir, outDir string, dry bool) error {
	res, err := generator.Generate(cfg, assetsDir, outDir, generator.Options{DryRun: dry})
	if err != nil {
		return err
	}

	if dry {
		fmt.Fprintf(w, "// ---- %s\n%s", cfg.Output.Header, res.Declaration)
		fmt.Fprintf(w, "// ---- %s\n%s", cfg.Output.Source, res.Definition)
		return nil
	}

	ui.PrintHeader(w, "Generated:")
	for _, f := range res.Files {
		ui.PrintSuccess(w, "Wrote", f)
	}
	ui.PrintSuccess(w, "Groups", strconv.Itoa(res.Groups))
	ui.PrintSuccess(w, "Sprites", strconv.Itoa(res.Sprites))
	return nil
}
