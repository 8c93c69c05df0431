// File: internal/parser/syntax/term.go

// Package syntax holds what the concrete ontology readers share: a neutral
// term tree, IRI prefix handling, positioned errors and the builder that turns
// a term tree into an owl.Document.
//
// The functional-style and OWL/XML syntaxes use the same construct names, so
// both readers lower their input to Terms named after those constructs. The
// one structural difference is entity typing: OWL/XML wraps every entity in a
// typed element while functional syntax types a bare IRI by its position. The
// builder accepts either form wherever an entity is expected.
package syntax

import (
	"fmt"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

// Pos locates a term in its source. Line and Column are 1-based and set by
// text readers; Path is set by tree readers.
type Pos struct {
	Line   int
	Column int
	Path   string
}

func (p Pos) String() string {
	switch {
	case p.Path != "":
		return p.Path
	case p.Line > 0:
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return "-"
}

// TermKind distinguishes leaf terms from compounds.
type TermKind int

const (
	TermCompound TermKind = iota
	TermIRI
	TermNodeID
	TermLiteral
	TermNumber
)

func (k TermKind) String() string {
	switch k {
	case TermCompound:
		return "construct"
	case TermIRI:
		return "IRI"
	case TermNodeID:
		return "node ID"
	case TermLiteral:
		return "literal"
	case TermNumber:
		return "number"
	}
	return fmt.Sprintf("TermKind(%d)", int(k))
}

// Term is one node of the neutral tree.
//
// For a compound, Value is the construct name and Args its arguments; an
// empty name is a bare parenthesised group. For leaves, Value is the expanded
// IRI, the node ID, the lexical form or the digits.
type Term struct {
	Kind     TermKind
	Pos      Pos
	Value    string
	Lang     string
	Datatype owl.IRI
	Args     []Term
}

// Compound builds a named compound term.
func Compound(pos Pos, name string, args ...Term) Term {
	return Term{Kind: TermCompound, Pos: pos, Value: name, Args: args}
}

// IRITerm builds an IRI leaf.
func IRITerm(pos Pos, iri string) Term {
	return Term{Kind: TermIRI, Pos: pos, Value: iri}
}

// NodeIDTerm builds an anonymous individual leaf.
func NodeIDTerm(pos Pos, id string) Term {
	return Term{Kind: TermNodeID, Pos: pos, Value: id}
}

// LiteralTerm builds a literal leaf.
func LiteralTerm(pos Pos, value, lang string, datatype owl.IRI) Term {
	return Term{Kind: TermLiteral, Pos: pos, Value: value, Lang: lang, Datatype: datatype}
}

// NumberTerm builds a non-negative integer leaf.
func NumberTerm(pos Pos, digits string) Term {
	return Term{Kind: TermNumber, Pos: pos, Value: digits}
}

// Is reports whether t is a compound with the given name.
func (t Term) Is(name string) bool {
	return t.Kind == TermCompound && t.Value == name
}

func (t Term) describe() string {
	if t.Kind == TermCompound {
		if t.Value == "" {
			return "group"
		}
		return t.Value
	}
	return t.Kind.String()
}
