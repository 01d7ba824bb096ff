// Package format describes metadata formats and keeps a registry of them.
//
// # Descriptors
//
// A Descriptor identifies a named, versioned metadata format together with its
// type classification, file extension, MIME type and a free-form description.
// Descriptors built with NewXML additionally carry the location of an XSD schema
// and the XML namespace of the format:
//
//	ddi, err := format.NewXML("ddi", "2.5",
//	    "https://ddialliance.org/Specification/DDI-Codebook/2.5/XMLSchema/codebook.xsd",
//	    "ddi:codebook:2_5", "DDI Codebook")
//
// Descriptors are immutable. Equality is structural (Equal) and a looser
// compatibility relation (IsCompatible) matches on name and, optionally, version
// without regard to case.
//
// # Registry
//
// A Registry maps format names to the descriptors registered under them, newest
// first. Hosts construct one registry and pass it to whatever needs lookups:
//
//	reg := format.NewRegistry()
//	_ = reg.Add(ddi)
//	latest := reg.Lookup("ddi", "")      // every version, newest first
//	exact := reg.Lookup("ddi", "2.5")    // at most one descriptor
//
// A Registry is safe for concurrent use.
package format
