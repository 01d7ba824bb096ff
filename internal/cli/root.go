package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdconv",
	Short: "Metadata format registry and record converter",
	Long: `mdconv validates, transforms and converts metadata records.

Formats are declared in mdconv.yaml. XML formats carry the location of their
XSD schema, which is downloaded and patched before validation.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or format descriptor
  11 - Schema download failed
  12 - Record content is not well-formed
  13 - Schema could not be compiled
  14 - Record does not satisfy its schema
  15 - XSL transformation failed
  16 - Format not registered`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".", "Directory containing mdconv.yaml")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	if f == nil {
		fmt.Fprintln(os.Stderr, "Warning: verbose flag is not defined")
		return false
	}
	return f.Value.String() == "true"
}

// getConfigDir returns the --config directory, "." when unset.
func getConfigDir(cmd *cobra.Command) string {
	f := cmd.Flag("config")
	if f == nil || f.Value.String() == "" {
		return "."
	}
	return f.Value.String()
}
