package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spritegen/spritegen/internal/assets"
	"github.com/spritegen/spritegen/internal/config"
	"github.com/spritegen/spritegen/internal/generator"
	"github.com/spritegen/spritegen/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor <assets_dir>",
	Short: "Check an asset tree for names that would produce invalid code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		return runDoctor(cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	addTreeFlags(doctorCmd.Flags())
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor builds the tree without failing on collisions and reports every
// problem found.
//
// Returns:
//   - error: An error if the tree cannot be read or has error-level problems.
func runDoctor(w io.Writer, cfg *config.Config, assetsDir string) error {
	lenient := *cfg
	lenient.Naming.OnCollision = config.CollisionIgnore
	lenient.Naming.Strict = false

	plan, err := generator.BuildPlan(&lenient, assetsDir)
	if err != nil {
		return err
	}

	ui.PrintHeader(w, "Asset tree:")
	ui.PrintSuccess(w, "Groups", strconv.Itoa(assets.CountGroups(plan.Root)))
	ui.PrintSuccess(w, "Sprites", strconv.Itoa(len(plan.Paths)))

	problems := assets.Lint(plan.Root)
	ui.PrintHeader(w, "Identifiers:")
	if len(problems) == 0 {
		ui.PrintSuccess(w, "OK", "no problems found")
		return nil
	}

	for _, p := range problems {
		if p.Severity == assets.SeverityError {
			ui.PrintError(w, p.Group, p.Message)
		} else {
			ui.PrintWarning(w, p.Group, p.Message)
		}
	}
	if errCount := assets.ErrorCount(problems); errCount > 0 {
		return fmt.Errorf("found %d problem(s) that would produce invalid code", errCount)
	}
	return nil
}
