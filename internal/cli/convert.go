package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/internal/record"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a record between XML and JSON",
	Long: `Convert a record between XML and JSON.

XML attributes become keys prefixed with "-", element text next to attributes
is stored under "#text" and repeated elements become arrays. Converting JSON
to XML requires an object with a single root key.

Examples:
  # XML to canonical JSON
  mdconv convert record.xml --to json

  # JSON to XML, labelled with a configured format
  mdconv convert record.json --to xml --format datacite --output record.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

type convertFlagValues struct {
	to      string
	format  string
	version string
	output  string
}

var convertFlags convertFlagValues

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFlags.to, "to", "", "Target representation: json or xml (required)")
	convertCmd.Flags().StringVarP(&convertFlags.format, "format", "f", "", "Configured format of the output record")
	convertCmd.Flags().StringVar(&convertFlags.version, "version", "", "Exact format version (default: newest)")
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "", "Output file (default: stdout)")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	var target format.Type
	switch strings.ToLower(convertFlags.to) {
	case "json":
		target = format.TypeJSON
	case "xml":
		target = format.TypeXML
	default:
		return fmt.Errorf("invalid argument %q for --to: expected json or xml", convertFlags.to)
	}

	descriptor := adhocFormat(path, target)
	if convertFlags.format != "" {
		_, reg, err := loadRegistry(getConfigDir(cmd))
		if err != nil {
			return err
		}
		descriptor, err = resolveFormat(reg, convertFlags.format, convertFlags.version)
		if err != nil {
			return err
		}
	}

	content, err := readInput(path)
	if err != nil {
		return err
	}

	if getVerboseFlag(cmd) {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Converting %s to %s as %s\n", path, target, descriptor)
	}

	out, err := convertContent(path, content, target, descriptor)
	if err != nil {
		return err
	}
	return writeOutput(convertFlags.output, out)
}

// convertContent converts XML content to JSON or JSON content to XML.
func convertContent(path, content string, target format.Type, descriptor *format.Descriptor) (string, error) {
	if target == format.TypeJSON {
		src, err := record.XMLFromRecord(record.New(adhocFormat(path, format.TypeXML), content))
		if err != nil {
			return "", err
		}
		out, err := record.JSONFromXML(descriptor, src)
		if err != nil {
			return "", err
		}
		return out.Content(), nil
	}

	src, err := record.JSONFromRecord(record.New(adhocFormat(path, format.TypeJSON), content))
	if err != nil {
		return "", err
	}
	out, err := record.XMLFromJSON(descriptor, src)
	if err != nil {
		return "", err
	}
	return out.Content(), nil
}
