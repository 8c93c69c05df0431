// File: internal/parser/syntax/prefix.go
package syntax

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

// Prefixes maps prefix names (without the colon) to namespace IRIs.
type Prefixes map[string]string

// StandardPrefixes returns the prefixes every OWL 2 document may use undeclared.
func StandardPrefixes() Prefixes {
	return Prefixes{
		"owl":  owl.NamespaceOWL,
		"rdf":  owl.NamespaceRDF,
		"rdfs": owl.NamespaceRDFS,
		"xsd":  owl.NamespaceXSD,
		"xml":  "http://www.w3.org/XML/1998/namespace",
	}
}

// Expand resolves an abbreviated IRI such as "ex:Pizza" or ":Pizza".
func (p Prefixes) Expand(abbrev string) (string, error) {
	name, local, ok := strings.Cut(abbrev, ":")
	if !ok {
		return "", fmt.Errorf("%q is not a prefixed name", abbrev)
	}
	ns, ok := p[name]
	if !ok {
		return "", fmt.Errorf("undeclared prefix %q in %q", name, abbrev)
	}
	return ns + local, nil
}

// Resolve makes ref absolute against base. An absolute ref or an empty base
// leaves ref as is.
func Resolve(base, ref string) string {
	if base == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
