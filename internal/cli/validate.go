package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/internal/record"
	"github.com/vvka-141/mdconv/internal/ui"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an XML record against its format's schema",
	Long: `Validate an XML record against the XSD of a configured format.

The schema is downloaded from the format's xsd_url. Relative include paths are
rewritten to absolute URLs before compiling unless --replace pairs are given,
in which case only those replacements are applied. --xsd validates against a
local schema file instead and skips the download.

Examples:
  # Validate against the newest configured datacite version
  mdconv validate record.xml --format datacite

  # Validate against a local schema
  mdconv validate record.xml --xsd metadata.xsd

  # Fix a broken import in the downloaded schema
  mdconv validate record.xml --format ddi --replace 'xml.xsd=http://www.w3.org/2001/xml.xsd'`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

type validateFlagValues struct {
	format   string
	version  string
	xsd      string
	replace  []string
	encoding string
	json     bool
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.format, "format", "f", "", "Configured format name")
	validateCmd.Flags().StringVar(&validateFlags.version, "version", "", "Exact format version (default: newest)")
	validateCmd.Flags().StringVar(&validateFlags.xsd, "xsd", "", "Validate against a local XSD file")
	validateCmd.Flags().StringArrayVar(&validateFlags.replace, "replace", nil, "Schema text replacement old=new (repeatable)")
	validateCmd.Flags().StringVar(&validateFlags.encoding, "encoding", mdconv.DefaultEncoding, "Character encoding used to build the document tree")
	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false, "Output the result as JSON")
}

type validateResult struct {
	File    string `json:"file"`
	Format  string `json:"format"`
	Version string `json:"version"`
	Schema  string `json:"schema"`
	Valid   bool   `json:"valid"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	verbose := getVerboseFlag(cmd)

	if validateFlags.format == "" && validateFlags.xsd == "" {
		return fmt.Errorf("required flag \"format\" not set (or pass --xsd)")
	}

	replacements, err := parseReplacements(validateFlags.replace)
	if err != nil {
		return err
	}

	cfg, reg, err := loadRegistry(getConfigDir(cmd))
	if err != nil {
		return err
	}

	var descriptor *format.Descriptor
	if validateFlags.format != "" {
		descriptor, err = resolveFormat(reg, validateFlags.format, validateFlags.version)
		if err != nil {
			return err
		}
	} else {
		descriptor = adhocFormat(path, format.TypeXML)
	}

	content, err := readInput(path)
	if err != nil {
		return err
	}
	rec, err := record.NewXML(descriptor, content)
	if err != nil {
		return err
	}

	logger := newLogger(verbose)
	opts := []record.Option{
		record.WithLogger(logger),
		record.WithEncoding(validateFlags.encoding),
		record.WithReplacements(replacements...),
	}

	schema := descriptor.XSDURL()
	if validateFlags.xsd != "" {
		xsd, err := os.ReadFile(validateFlags.xsd)
		if err != nil {
			return fmt.Errorf("failed to read schema %s: %w", validateFlags.xsd, err)
		}
		opts = append(opts, record.WithCustomXSD(xsd))
		schema = validateFlags.xsd
	} else {
		fetcher, err := newSchemaFetcher(cfg, logger)
		if err != nil {
			return err
		}
		opts = append(opts, record.WithFetcher(fetcher))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Validating %s as %s\n", path, descriptor)
	}

	valid, err := rec.Validate(contextOrBackground(cmd), opts...)
	if err != nil {
		return err
	}

	if validateFlags.json {
		jsonBytes, err := json.MarshalIndent(validateResult{
			File:    path,
			Format:  descriptor.Name(),
			Version: descriptor.Version(),
			Schema:  schema,
			Valid:   valid,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		printer := ui.NewPrinter(os.Stderr)
		if valid {
			printer.Success("%s is valid %s %s", path, descriptor.Name(), descriptor.Version())
		} else {
			printer.Failure("%s is not valid %s %s", path, descriptor.Name(), descriptor.Version())
		}
	}

	if !valid {
		return fmt.Errorf("%w: %s", mdconv.ErrValidationFailed, path)
	}
	return nil
}
