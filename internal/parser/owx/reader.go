// File: internal/parser/owx/reader.go

// Package owx reads the OWL 2 XML serialization.
package owx

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

// Format names this syntax in errors.
const Format = "owx"

const plainLiteral = owl.NamespaceRDF + "PlainLiteral"

// entityTags are the elements that name an entity through an IRI attribute.
var entityTags = map[string]bool{
	"Class":              true,
	"Datatype":           true,
	"ObjectProperty":     true,
	"DataProperty":       true,
	"AnnotationProperty": true,
	"NamedIndividual":    true,
}

// Read parses an OWL/XML document.
func Read(r io.Reader) (*owl.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &syntax.ParseError{Format: Format, Msg: fmt.Sprintf("malformed XML: %v", err)}
	}
	root := doc.Root()
	if root == nil {
		return nil, &syntax.ParseError{Format: Format, Msg: "document has no root element"}
	}
	if root.Tag != "Ontology" {
		return nil, syntax.Errorf(Format, pos(root), "root element is %s, expected Ontology", root.Tag)
	}

	rd := &reader{prefixes: syntax.StandardPrefixes()}
	rd.base = root.SelectAttrValue("xml:base", root.SelectAttrValue("ontologyIRI", ""))

	ont, err := rd.ontology(root)
	if err != nil {
		return nil, err
	}
	return syntax.NewBuilder(Format).Document(ont)
}

type reader struct {
	prefixes syntax.Prefixes
	base     string
	depth    int
}

func pos(el *etree.Element) syntax.Pos {
	return syntax.Pos{Path: el.GetPath()}
}

// ontology lowers the root element. Prefix declarations are read first so
// they apply to the whole document regardless of where they appear.
func (rd *reader) ontology(root *etree.Element) (syntax.Term, error) {
	for _, el := range root.SelectElements("Prefix") {
		name := el.SelectAttrValue("name", "")
		iri := el.SelectAttr("IRI")
		if iri == nil {
			return syntax.Term{}, syntax.Errorf(Format, pos(el), "Prefix %q has no IRI", name)
		}
		rd.prefixes[name] = iri.Value
	}

	var args []syntax.Term
	if iri := root.SelectAttrValue("ontologyIRI", ""); iri != "" {
		args = append(args, syntax.IRITerm(pos(root), iri))
		if v := root.SelectAttrValue("versionIRI", ""); v != "" {
			args = append(args, syntax.IRITerm(pos(root), v))
		}
	}
	for _, el := range root.ChildElements() {
		if el.Tag == "Prefix" {
			continue
		}
		if el.Tag == "Import" {
			iri, err := rd.textIRI(el)
			if err != nil {
				return syntax.Term{}, err
			}
			args = append(args, syntax.Compound(pos(el), "Import", syntax.IRITerm(pos(el), iri)))
			continue
		}
		t, err := rd.term(el)
		if err != nil {
			return syntax.Term{}, err
		}
		args = append(args, t)
	}
	return syntax.Compound(pos(root), "Ontology", args...), nil
}

// term lowers one element and its children.
func (rd *reader) term(el *etree.Element) (syntax.Term, error) {
	p := pos(el)
	switch {
	case entityTags[el.Tag]:
		iri, err := rd.attrIRI(el)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(p, el.Tag, syntax.IRITerm(p, iri)), nil
	case el.Tag == "AnonymousIndividual":
		id := el.SelectAttrValue("nodeID", "")
		if id == "" {
			return syntax.Term{}, syntax.Errorf(Format, p, "AnonymousIndividual has no nodeID")
		}
		return syntax.NodeIDTerm(p, id), nil
	case el.Tag == "IRI":
		return syntax.IRITerm(p, syntax.Resolve(rd.base, el.Text())), nil
	case el.Tag == "AbbreviatedIRI":
		iri, err := rd.prefixes.Expand(el.Text())
		if err != nil {
			return syntax.Term{}, syntax.Errorf(Format, p, "%v", err)
		}
		return syntax.IRITerm(p, iri), nil
	case el.Tag == "Literal":
		return rd.literal(el)
	case el.Tag == "Variable":
		iri, err := rd.attrIRI(el)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(p, "Variable", syntax.IRITerm(p, iri)), nil
	case el.Tag == "FacetRestriction":
		facet := el.SelectAttrValue("facet", "")
		if facet == "" {
			return syntax.Term{}, syntax.Errorf(Format, p, "FacetRestriction has no facet")
		}
		children, err := rd.children(el)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(p, "FacetRestriction", append([]syntax.Term{syntax.IRITerm(p, facet)}, children...)...), nil
	case el.Tag == "BuiltInAtom":
		iri, err := rd.attrIRI(el)
		if err != nil {
			return syntax.Term{}, err
		}
		children, err := rd.children(el)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(p, "BuiltInAtom", append([]syntax.Term{syntax.IRITerm(p, iri)}, children...)...), nil
	}

	children, err := rd.children(el)
	if err != nil {
		return syntax.Term{}, err
	}
	if n := el.SelectAttr("cardinality"); n != nil {
		children = append([]syntax.Term{syntax.NumberTerm(p, n.Value)}, children...)
	}
	return syntax.Compound(p, el.Tag, children...), nil
}

func (rd *reader) children(el *etree.Element) ([]syntax.Term, error) {
	if rd.depth >= syntax.MaxNesting {
		return nil, syntax.Errorf(Format, pos(el), "elements nest deeper than %d", syntax.MaxNesting)
	}
	rd.depth++
	defer func() { rd.depth-- }()

	kids := el.ChildElements()
	out := make([]syntax.Term, 0, len(kids))
	for _, c := range kids {
		t, err := rd.term(c)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// attrIRI reads the IRI or abbreviatedIRI attribute.
func (rd *reader) attrIRI(el *etree.Element) (string, error) {
	if a := el.SelectAttr("IRI"); a != nil {
		return syntax.Resolve(rd.base, a.Value), nil
	}
	if a := el.SelectAttr("abbreviatedIRI"); a != nil {
		iri, err := rd.prefixes.Expand(a.Value)
		if err != nil {
			return "", syntax.Errorf(Format, pos(el), "%v", err)
		}
		return iri, nil
	}
	return "", syntax.Errorf(Format, pos(el), "%s has no IRI", el.Tag)
}

// textIRI reads an IRI held as element text, as in Import.
func (rd *reader) textIRI(el *etree.Element) (string, error) {
	text := el.Text()
	if text == "" {
		return "", syntax.Errorf(Format, pos(el), "%s is empty", el.Tag)
	}
	return syntax.Resolve(rd.base, text), nil
}

// literal lowers a Literal element. rdf:PlainLiteral is folded into the
// simple and language-tagged shapes.
func (rd *reader) literal(el *etree.Element) (syntax.Term, error) {
	lang := el.SelectAttrValue("xml:lang", "")
	dt := el.SelectAttrValue("datatypeIRI", "")
	if dt != "" {
		dt = syntax.Resolve(rd.base, dt)
	}
	if dt == plainLiteral || lang != "" {
		dt = ""
	}
	return syntax.LiteralTerm(pos(el), el.Text(), lang, owl.IRI(dt)), nil
}
