package xmlschema

import (
	"bytes"
	"strings"
)

// Rule rewrites schema bytes fetched from schemaURL.
type Rule interface {
	Apply(schema []byte, schemaURL string) []byte
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(schema []byte, schemaURL string) []byte

// Apply calls f.
func (f RuleFunc) Apply(schema []byte, schemaURL string) []byte { return f(schema, schemaURL) }

// Replacement substitutes every occurrence of Old with New, regardless of URL.
type Replacement struct {
	Old []byte
	New []byte
}

// Apply implements Rule.
func (r Replacement) Apply(schema []byte, _ string) []byte {
	if len(r.Old) == 0 {
		return schema
	}
	return bytes.ReplaceAll(schema, r.Old, r.New)
}

// LocationRule turns a relative location into an absolute one. Every
// occurrence of Find becomes Prefix + base + Suffix, where base is the schema
// URL with its last Levels path segments removed.
type LocationRule struct {
	Find   string
	Prefix string
	Levels int
	Suffix string
}

// Apply implements Rule.
func (r LocationRule) Apply(schema []byte, schemaURL string) []byte {
	if r.Find == "" {
		return schema
	}
	base := trimSegments(schemaURL, r.Levels)
	return bytes.ReplaceAll(schema, []byte(r.Find), []byte(r.Prefix+base+r.Suffix))
}

// IncludeDirRule resolves schemaLocation="include/..." against the schema's directory.
func IncludeDirRule() Rule {
	return LocationRule{
		Find:   `schemaLocation="include/`,
		Prefix: `schemaLocation="`,
		Levels: 1,
		Suffix: "/include/",
	}
}

// ParentIncludeRule resolves xs:include schemaLocation="../..." against the
// directory above the schema's directory.
func ParentIncludeRule() Rule {
	return LocationRule{
		Find:   `xs:include schemaLocation="..`,
		Prefix: `xs:include schemaLocation="`,
		Levels: 2,
	}
}

// DefaultRules returns the rules applied to remotely fetched schemas when the
// caller supplies no replacements.
func DefaultRules() []Rule {
	return []Rule{IncludeDirRule(), ParentIncludeRule()}
}

// Patch applies rules to schema in order.
func Patch(schema []byte, schemaURL string, rules ...Rule) []byte {
	out := schema
	for _, rule := range rules {
		out = rule.Apply(out, schemaURL)
	}
	return out
}

// ReplacementRules converts replacements to rules.
func ReplacementRules(replacements []Replacement) []Rule {
	rules := make([]Rule, 0, len(replacements))
	for _, r := range replacements {
		rules = append(rules, r)
	}
	return rules
}

// trimSegments drops the last n "/"-separated segments of u. A URL with fewer
// separators is returned unchanged.
func trimSegments(u string, n int) string {
	out := u
	for i := 0; i < n; i++ {
		idx := strings.LastIndex(out, "/")
		if idx < 0 {
			return out
		}
		out = out[:idx]
	}
	return out
}
