package format

import (
	"fmt"
	"strings"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Descriptor identifies a named, versioned metadata format.
// The zero value is not usable; build descriptors with New or NewXML.
type Descriptor struct {
	name        string
	version     string
	formatType  Type
	extension   string
	mimeType    string
	description string

	// schema is set only for descriptors built with NewXML.
	schema *xmlSchema
}

type xmlSchema struct {
	xsdURL    string
	namespace string
}

// Option configures optional Descriptor attributes.
type Option func(*Descriptor)

// WithType sets the format type (default TypeOther).
func WithType(t Type) Option {
	return func(d *Descriptor) {
		d.formatType = t
	}
}

// WithExtension sets the file extension. Empty means the type's value.
func WithExtension(ext string) Option {
	return func(d *Descriptor) {
		d.extension = ext
	}
}

// WithMimeType sets the MIME type. Empty means the type's default MIME type.
func WithMimeType(mimeType string) Option {
	return func(d *Descriptor) {
		d.mimeType = mimeType
	}
}

// WithDescription sets the human readable description.
func WithDescription(description string) Option {
	return func(d *Descriptor) {
		d.description = description
	}
}

// New creates a descriptor. Name and version are required; extension and MIME
// type fall back to the defaults of the format type.
//
// Example:
//
//	d, err := format.New("datacite", "4.1",
//	    format.WithType(format.TypeJSON),
//	    format.WithDescription("DataCite JSON"),
//	)
func New(name, version string, opts ...Option) (*Descriptor, error) {
	d := &Descriptor{
		name:       name,
		version:    version,
		formatType: TypeOther,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.check(); err != nil {
		return nil, err
	}
	d.resolveDefaults()
	return d, nil
}

// NewXML creates a descriptor for an XML format validated by the XSD at xsdURL.
// The format type is always TypeXML.
func NewXML(name, version, xsdURL, namespace, description string) (*Descriptor, error) {
	d := &Descriptor{
		name:        name,
		version:     version,
		formatType:  TypeXML,
		description: description,
		schema: &xmlSchema{
			xsdURL:    xsdURL,
			namespace: namespace,
		},
	}
	if err := d.check(); err != nil {
		return nil, err
	}
	d.resolveDefaults()
	return d, nil
}

// MustNew is like New but panics on error. Intended for package-level tables.
func MustNew(name, version string, opts ...Option) *Descriptor {
	d, err := New(name, version, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Descriptor) check() error {
	if d.name == "" {
		return fmt.Errorf("%w: format name is required", mdconv.ErrInvalidDescriptor)
	}
	if d.version == "" {
		return fmt.Errorf("%w: version is required for format %q", mdconv.ErrInvalidDescriptor, d.name)
	}
	if !d.formatType.Valid() {
		return fmt.Errorf("%w: unknown type %d for format %q", mdconv.ErrInvalidDescriptor, int(d.formatType), d.name)
	}
	return nil
}

func (d *Descriptor) resolveDefaults() {
	if d.extension == "" {
		d.extension = d.formatType.Value()
	}
	if d.mimeType == "" {
		d.mimeType = d.formatType.MimeType()
	}
}

// Name, Version, Type, Extension, MimeType and Description return the
// descriptor's resolved fields.
func (d *Descriptor) Name() string        { return d.name }
func (d *Descriptor) Version() string     { return d.version }
func (d *Descriptor) Type() Type          { return d.formatType }
func (d *Descriptor) Extension() string   { return d.extension }
func (d *Descriptor) MimeType() string    { return d.mimeType }
func (d *Descriptor) Description() string { return d.description }

// IsXML reports whether the descriptor carries an XSD location and namespace.
func (d *Descriptor) IsXML() bool { return d.schema != nil }

// XSDURL returns the schema location, or "" for non-XML descriptors.
func (d *Descriptor) XSDURL() string {
	if d.schema == nil {
		return ""
	}
	return d.schema.xsdURL
}

// Namespace returns the XML namespace, or "" for non-XML descriptors.
func (d *Descriptor) Namespace() string {
	if d.schema == nil {
		return ""
	}
	return d.schema.namespace
}

// Equal reports whether both descriptors have identical attributes, including
// resolved defaults and XML schema details.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.name != other.name ||
		d.version != other.version ||
		d.formatType != other.formatType ||
		d.extension != other.extension ||
		d.mimeType != other.mimeType ||
		d.description != other.description {
		return false
	}
	if (d.schema == nil) != (other.schema == nil) {
		return false
	}
	return d.schema == nil || *d.schema == *other.schema
}

// IsCompatible reports whether other describes the same format. Equal
// descriptors are always compatible; otherwise names must match ignoring case
// and, when checkVersion is set, versions must match ignoring case as well.
func (d *Descriptor) IsCompatible(other *Descriptor, checkVersion bool) bool {
	if d.Equal(other) {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if !strings.EqualFold(d.name, other.name) {
		return false
	}
	return !checkVersion || strings.EqualFold(d.version, other.version)
}

func (d *Descriptor) String() string {
	if d == nil {
		return "Format <nil>"
	}
	s := fmt.Sprintf("Format %s v.%s, %s, %s (.%s): %s",
		d.name, d.version, d.formatType, d.mimeType, d.extension, d.description)
	if d.schema != nil {
		s += fmt.Sprintf(", xsd = %s, namespace = %s", d.schema.xsdURL, d.schema.namespace)
	}
	return s
}
