package record

import (
	"fmt"

	"github.com/vvka-141/mdconv/internal/format"
)

// Record pairs a format descriptor with raw content. The descriptor is
// shared and never modified.
type Record struct {
	format  *format.Descriptor
	content string
}

// New creates a record. Content is not inspected.
func New(f *format.Descriptor, content string) *Record {
	return &Record{format: f, content: content}
}

// Format returns the record's descriptor.
func (r *Record) Format() *format.Descriptor { return r.format }

// Content returns the raw content.
func (r *Record) Content() string { return r.content }

func (r *Record) String() string {
	return fmt.Sprintf("Record (%s): %s", r.format, r.content)
}

func (r *Record) formatName() string {
	if r.format == nil {
		return ""
	}
	return r.format.Name()
}
