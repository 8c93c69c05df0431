// File: internal/owl/facet.go
package owl

import "fmt"

// Facet is one of the constraining facets allowed in a DatatypeRestriction.
type Facet int

const (
	FacetLength Facet = iota
	FacetMinLength
	FacetMaxLength
	FacetPattern
	FacetMinInclusive
	FacetMinExclusive
	FacetMaxInclusive
	FacetMaxExclusive
	FacetTotalDigits
	FacetFractionDigits
	FacetLangRange
)

const (
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
)

var facetNames = [...]string{
	FacetLength:         "length",
	FacetMinLength:      "minLength",
	FacetMaxLength:      "maxLength",
	FacetPattern:        "pattern",
	FacetMinInclusive:   "minInclusive",
	FacetMinExclusive:   "minExclusive",
	FacetMaxInclusive:   "maxInclusive",
	FacetMaxExclusive:   "maxExclusive",
	FacetTotalDigits:    "totalDigits",
	FacetFractionDigits: "fractionDigits",
	FacetLangRange:      "langRange",
}

func (f Facet) String() string {
	if f < 0 || int(f) >= len(facetNames) {
		return fmt.Sprintf("Facet(%d)", int(f))
	}
	return facetNames[f]
}

// IRI returns the full facet IRI. langRange lives in the rdf namespace, the rest in xsd.
func (f Facet) IRI() IRI {
	if f == FacetLangRange {
		return IRI(NamespaceRDF + facetNames[f])
	}
	return IRI(NamespaceXSD + f.String())
}

// FacetFromIRI resolves a facet IRI. The second result is false for unknown IRIs.
func FacetFromIRI(iri IRI) (Facet, bool) {
	for i := range facetNames {
		f := Facet(i)
		if f.IRI() == iri {
			return f, true
		}
	}
	return 0, false
}
