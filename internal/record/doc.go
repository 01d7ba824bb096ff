// Package record pairs a format descriptor with document content.
//
// Record is the plain pairing. XMLRecord and JSONRecord embed it and add a
// parsed representation built once at construction:
//
//	r := record.New(ddi, content)
//	x, err := record.XMLFromRecord(r)
//	ok, err := x.Validate(ctx, record.WithLogger(logger))
//
// Records are immutable. Converting or changing content always builds a new
// value.
package record
