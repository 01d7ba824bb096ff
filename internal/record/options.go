package record

import (
	"github.com/vvka-141/mdconv/internal/fetch"
	"github.com/vvka-141/mdconv/internal/logging"
	"github.com/vvka-141/mdconv/internal/xmlschema"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Option configures XMLRecord.Validate and XMLRecord.Transform.
// Transform only honours WithEncoding and WithLogger.
type Option func(*options)

type options struct {
	customXSD    []byte
	replacements []xmlschema.Replacement
	rules        []xmlschema.Rule
	encoding     string
	fetcher      mdconv.Fetcher
	logger       mdconv.Logger
}

// WithCustomXSD validates against the given schema bytes instead of the
// descriptor's schema URL. Nothing is fetched and no patching is applied.
func WithCustomXSD(xsd []byte) Option {
	return func(o *options) {
		o.customXSD = xsd
	}
}

// WithReplacements patches a fetched schema with the given pairs, in order,
// instead of the patch rules.
func WithReplacements(replacements ...xmlschema.Replacement) Option {
	return func(o *options) {
		o.replacements = append(o.replacements, replacements...)
	}
}

// WithRules replaces the built-in patch rules applied to fetched schemas.
func WithRules(rules ...xmlschema.Rule) Option {
	return func(o *options) {
		o.rules = rules
	}
}

// WithEncoding sets the character encoding used when building the DOM.
func WithEncoding(encoding string) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}

// WithFetcher sets the schema fetcher.
func WithFetcher(f mdconv.Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithLogger sets the logger that receives validation diagnostics.
func WithLogger(l mdconv.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) *options {
	o := &options{encoding: mdconv.DefaultEncoding}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNullLogger()
	}
	if o.encoding == "" {
		o.encoding = mdconv.DefaultEncoding
	}
	return o
}

// schemaFetcher returns the configured fetcher, creating an HTTP fetcher on
// first use.
func (o *options) schemaFetcher() mdconv.Fetcher {
	if o.fetcher == nil {
		o.fetcher = fetch.New(fetch.DefaultConfig())
	}
	return o.fetcher
}

func (o *options) patchRules() []xmlschema.Rule {
	if len(o.replacements) > 0 {
		return xmlschema.ReplacementRules(o.replacements)
	}
	if o.rules != nil {
		return o.rules
	}
	return xmlschema.DefaultRules()
}
