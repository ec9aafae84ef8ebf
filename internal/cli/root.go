// Package cli wires the command surface: flag parsing, environment
// resolution and dependency construction for the generation service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rsscripter",
	Short: "Script a live Redshift database into a versionable file tree",
	Long: `rsscripter connects to a live Redshift database and converts its catalog
into a reproducible tree of DDL and data scripts: one file per table and
view, schema and database bootstrap scripts, batched INSERT exports, and a
master script that replays the whole tree against a new target.

Rerunning the tool regenerates every file and then reconciles the output
directory: files left over from dropped objects are detected and resolved
interactively or through a forced policy.

Exit Codes:
  0  - Success
  1  - General error (invalid arguments, connection or generation failure)
  3  - Panic or unexpected system error`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
