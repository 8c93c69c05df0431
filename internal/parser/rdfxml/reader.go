// File: internal/parser/rdfxml/reader.go

// Package rdfxml reads the RDF/XML serialization of OWL 2 ontologies.
//
// The document is decoded into triples, which are then mapped back to
// functional-style terms and handed to the shared builder. SWRL rules
// stored as RDF are skipped.
package rdfxml

import (
	"io"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

// Format names this syntax in errors.
const Format = "rdfxml"

// Read parses an RDF/XML document.
func Read(r io.Reader) (*owl.Document, error) {
	triples, err := decode(r)
	if err != nil {
		return nil, err
	}
	m := newMapper(newGraph(triples))
	ont, err := m.document(syntax.Pos{Path: "/RDF"})
	if err != nil {
		return nil, err
	}
	return syntax.NewBuilder(Format).Document(ont)
}
