package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/internal/record"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

var transformCmd = &cobra.Command{
	Use:   "transform <file>",
	Short: "Apply an XSL stylesheet to an XML record",
	Long: `Apply an XSLT stylesheet to an XML record and print the pretty-printed result.

Examples:
  # Crosswalk a DDI codebook to DataCite
  mdconv transform codebook.xml --xsl ddi2datacite.xsl

  # Write the result to a file
  mdconv transform codebook.xml --xsl ddi2datacite.xsl --output datacite.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

type transformFlagValues struct {
	xsl      string
	format   string
	version  string
	encoding string
	output   string
}

var transformFlags transformFlagValues

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVar(&transformFlags.xsl, "xsl", "", "Path to the XSL stylesheet (required)")
	transformCmd.Flags().StringVarP(&transformFlags.format, "format", "f", "", "Configured format of the input record")
	transformCmd.Flags().StringVar(&transformFlags.version, "version", "", "Exact format version (default: newest)")
	transformCmd.Flags().StringVar(&transformFlags.encoding, "encoding", mdconv.DefaultEncoding, "Character encoding used to build the document tree")
	transformCmd.Flags().StringVarP(&transformFlags.output, "output", "o", "", "Output file (default: stdout)")
	_ = transformCmd.MarkFlagRequired("xsl")
}

func runTransform(cmd *cobra.Command, args []string) error {
	path := args[0]
	verbose := getVerboseFlag(cmd)

	if transformFlags.xsl == "" {
		return fmt.Errorf("required flag \"xsl\" not set")
	}

	descriptor := adhocFormat(path, format.TypeXML)
	if transformFlags.format != "" {
		_, reg, err := loadRegistry(getConfigDir(cmd))
		if err != nil {
			return err
		}
		descriptor, err = resolveFormat(reg, transformFlags.format, transformFlags.version)
		if err != nil {
			return err
		}
	}

	content, err := readInput(path)
	if err != nil {
		return err
	}
	rec, err := record.NewXML(descriptor, content)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Transforming %s with %s\n", path, transformFlags.xsl)
	}

	out, err := rec.Transform(contextOrBackground(cmd), transformFlags.xsl,
		record.WithEncoding(transformFlags.encoding),
		record.WithLogger(newLogger(verbose)))
	if err != nil {
		return err
	}
	return writeOutput(transformFlags.output, out)
}
