package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/internal/ui"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Inspect configured metadata formats",
	Long: `Inspect the metadata formats declared in mdconv.yaml.

Examples:
  # List every format, newest version first
  mdconv formats list

  # Show all versions of a format as JSON
  mdconv formats lookup datacite --json`,
}

var formatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured formats",
	Args:  cobra.NoArgs,
	RunE:  runFormatsList,
}

var formatsLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Show the versions registered for a format",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormatsLookup,
}

var (
	formatsJSON   bool
	lookupVersion  string
)

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.AddCommand(formatsListCmd)
	formatsCmd.AddCommand(formatsLookupCmd)

	formatsCmd.PersistentFlags().BoolVar(&formatsJSON, "json", false, "Output formats as JSON")
	formatsLookupCmd.Flags().StringVar(&lookupVersion, "version", "", "Exact version to look up")
}

// descriptorJSON is the machine-readable form of a descriptor.
type descriptorJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Type        string `json:"type"`
	Extension   string `json:"extension"`
	MimeType    string `json:"mimetype"`
	Description string `json:"description,omitempty"`
	XSDURL      string `json:"xsd_url,omitempty"`
	Namespace   string `json:"namespace,omitempty"`
}

func toDescriptorJSON(d *format.Descriptor) descriptorJSON {
	return descriptorJSON{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Version:     d.Version(),
		Type:        d.Type().Value(),
		Extension:   d.Extension(),
		MimeType:    d.MimeType(),
		Description: d.Description(),
		XSDURL:      d.XSDURL(),
		Namespace:   d.Namespace(),
	}
}

func printDescriptors(descriptors []*format.Descriptor, asJSON bool) error {
	if asJSON {
		out := make([]descriptorJSON, 0, len(descriptors))
		for _, d := range descriptors {
			out = append(out, toDescriptorJSON(d))
		}
		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	ui.NewPrinter(os.Stdout).FormatTable(descriptors)
	return nil
}

func runFormatsList(cmd *cobra.Command, args []string) error {
	_, reg, err := loadRegistry(getConfigDir(cmd))
	if err != nil {
		return err
	}

	if getVerboseFlag(cmd) {
		fmt.Fprintf(os.Stderr, "[VERBOSE] %s\n", reg)
	}
	return printDescriptors(reg.All(), formatsJSON)
}

func runFormatsLookup(cmd *cobra.Command, args []string) error {
	_, reg, err := loadRegistry(getConfigDir(cmd))
	if err != nil {
		return err
	}

	matches := reg.Lookup(args[0], lookupVersion)
	if len(matches) == 0 {
		_, err := resolveFormat(reg, args[0], lookupVersion)
		return err
	}
	return printDescriptors(matches, formatsJSON)
}
