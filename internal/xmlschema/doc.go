// Package xmlschema wraps the XML engines used for validation and transformation.
//
// Documents are parsed into libxml2 DOM trees with a lenient, recovering parser
// that also cleans up redundant namespace declarations. Schemas are compiled
// from XSD bytes and stylesheets from XSLT files.
//
// Schemas published with relative include paths only resolve next to their
// origin URL. Patch rewrites such locations into absolute URLs before the schema
// is compiled, using a pluggable set of Rules:
//
//	patched := xmlschema.Patch(raw, xsdURL, xmlschema.DefaultRules()...)
//	schema, err := xmlschema.CompileSchema(patched, xsdURL)
//	if err != nil {
//	    return err // matches mdconv.ErrSchema
//	}
//	defer schema.Free()
//
// All handles returned by this package own C memory and must be freed.
package xmlschema
