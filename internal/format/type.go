package format

import (
	"fmt"
	"strings"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Type classifies the physical representation of a metadata format.
type Type int

const (
	TypeXML Type = iota
	TypeJSON
	TypeText
	TypeHTML
	TypeBinary
	TypeCSV
	TypeRDF
	TypeOther

	typeCount
)

type typeInfo struct {
	name     string
	value    string
	mimeType string
}

// typeTable is indexed by Type and sized by typeCount. Every row must be filled.
var typeTable = [typeCount]typeInfo{
	TypeXML:    {name: "XML", value: "xml", mimeType: "application/xml"},
	TypeJSON:   {name: "JSON", value: "json", mimeType: "application/json"},
	TypeText:   {name: "TEXT", value: "txt", mimeType: "text/plain"},
	TypeHTML:   {name: "HTML", value: "html", mimeType: "text/html"},
	TypeBinary: {name: "BINARY", value: "bin", mimeType: "application/octet-stream"},
	TypeCSV:    {name: "CSV", value: "csv", mimeType: "text/csv"},
	TypeRDF:    {name: "RDF", value: "rdf", mimeType: "application/xml"},
	TypeOther:  {name: "OTHER", value: "other", mimeType: "application/octet-stream"},
}

// Types returns every format type in declaration order.
func Types() []Type {
	types := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is one of the declared format types.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

func (t Type) info() typeInfo {
	if !t.Valid() {
		return typeTable[TypeOther]
	}
	return typeTable[t]
}

// String returns the upper-case type name, e.g. "XML".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return t.info().name
}

// Value returns the short type value, which doubles as the default file extension.
func (t Type) Value() string { return t.info().value }

// MimeType returns the MIME type assumed for the type when none is given.
func (t Type) MimeType() string { return t.info().mimeType }

// ParseType resolves a type from its name ("XML") or value ("xml"), ignoring case.
func ParseType(s string) (Type, error) {
	needle := strings.TrimSpace(s)
	for t := Type(0); t < typeCount; t++ {
		info := typeTable[t]
		if strings.EqualFold(needle, info.name) || strings.EqualFold(needle, info.value) {
			return t, nil
		}
	}
	return TypeOther, fmt.Errorf("%w: unknown format type %q", mdconv.ErrInvalidDescriptor, s)
}
