// File: internal/parser/rdfxml/decode.go
package rdfxml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

type nodeKind int

const (
	nodeIRI nodeKind = iota
	nodeBlank
	nodeLiteral
)

// node is an RDF term: an IRI, a blank node ID including its "_:" prefix,
// or a literal.
type node struct {
	kind     nodeKind
	value    string
	lang     string
	datatype string
}

func iriNode(iri string) node {
	return node{kind: nodeIRI, value: iri}
}

func (n node) key() string {
	return fmt.Sprintf("%d|%s|%s|%s", n.kind, n.value, n.lang, n.datatype)
}

func (n node) String() string {
	switch n.kind {
	case nodeIRI:
		return "<" + n.value + ">"
	case nodeLiteral:
		return fmt.Sprintf("%q", n.value)
	}
	return n.value
}

// triple is one statement, positioned at the element that produced it.
type triple struct {
	s   node
	p   string
	o   node
	pos syntax.Pos
}

func tripleKey(s node, p string, o node) string {
	return s.key() + " " + p + " " + o.key()
}

// rdfSyntaxAttrs are rdf: attributes that carry syntax rather than properties.
var rdfSyntaxAttrs = map[string]bool{
	"about":     true,
	"ID":        true,
	"nodeID":    true,
	"resource":  true,
	"datatype":  true,
	"parseType": true,
	"bagID":     true,
	"aboutEach": true,
}

// scope is the inherited xml:base and xml:lang.
type scope struct {
	base string
	lang string
}

func (sc scope) enter(el *etree.Element) scope {
	if b := el.SelectAttr("xml:base"); b != nil {
		sc.base = syntax.Resolve(sc.base, b.Value)
	}
	if l := el.SelectAttr("xml:lang"); l != nil {
		sc.lang = l.Value
	}
	return sc
}

func pos(el *etree.Element) syntax.Pos {
	return syntax.Pos{Path: el.GetPath()}
}

type decoder struct {
	triples []triple
	blanks  int
	depth   int
}

// decode reads an RDF/XML document into triples in document order.
func decode(r io.Reader) ([]triple, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &syntax.ParseError{Format: Format, Msg: fmt.Sprintf("malformed XML: %v", err)}
	}
	root := doc.Root()
	if root == nil {
		return nil, &syntax.ParseError{Format: Format, Msg: "document has no root element"}
	}

	d := &decoder{}
	sc := scope{}.enter(root)
	if root.NamespaceURI() == nsRDF && root.Tag == "RDF" {
		for _, el := range root.ChildElements() {
			if err := d.nodeElement(el, sc); err != nil {
				return nil, err
			}
		}
		return d.triples, nil
	}
	// A lone node element may stand in for rdf:RDF.
	if err := d.nodeElement(root, scope{}); err != nil {
		return nil, err
	}
	return d.triples, nil
}

func (d *decoder) emit(s node, p string, o node, at syntax.Pos) {
	d.triples = append(d.triples, triple{s: s, p: p, o: o, pos: at})
}

func (d *decoder) fresh() node {
	d.blanks++
	return node{kind: nodeBlank, value: fmt.Sprintf("_:genid-%d", d.blanks)}
}

func elementIRI(el *etree.Element) (string, error) {
	ns := el.NamespaceURI()
	if ns == "" {
		return "", syntax.Errorf(Format, pos(el), "element %s has no namespace", el.Tag)
	}
	return ns + el.Tag, nil
}

func rdfAttr(el *etree.Element, local string) (string, bool) {
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Key == local && a.NamespaceURI() == nsRDF {
			return a.Value, true
		}
	}
	return "", false
}

type property struct {
	iri   string
	value string
}

// propertyAttrs lists the attributes that abbreviate property elements.
func propertyAttrs(el *etree.Element) []property {
	var out []property
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") || a.Space == "xml" {
			continue
		}
		ns := a.NamespaceURI()
		if ns == "" || (ns == nsRDF && rdfSyntaxAttrs[a.Key]) {
			continue
		}
		out = append(out, property{iri: ns + a.Key, value: a.Value})
	}
	return out
}

// subject names the node an element describes.
func (d *decoder) subject(el *etree.Element, sc scope) node {
	if v, ok := rdfAttr(el, "about"); ok {
		return iriNode(syntax.Resolve(sc.base, v))
	}
	if v, ok := rdfAttr(el, "ID"); ok {
		return iriNode(syntax.Resolve(sc.base, "#"+v))
	}
	if v, ok := rdfAttr(el, "nodeID"); ok {
		return node{kind: nodeBlank, value: "_:" + v}
	}
	return d.fresh()
}

func (d *decoder) nodeElement(el *etree.Element, sc scope) error {
	sc = sc.enter(el)
	_, err := d.describe(el, d.subject(el, sc), sc, true)
	return err
}

// describe emits the triples of a node element about subj. When typed is
// set, an element other than rdf:Description also types subj.
func (d *decoder) describe(el *etree.Element, subj node, sc scope, typed bool) (node, error) {
	if d.depth >= syntax.MaxNesting {
		return node{}, syntax.Errorf(Format, pos(el), "elements nest deeper than %d", syntax.MaxNesting)
	}
	d.depth++
	defer func() { d.depth-- }()

	if typed {
		typ, err := elementIRI(el)
		if err != nil {
			return node{}, err
		}
		if typ != rdfDescription {
			d.emit(subj, rdfType, iriNode(typ), pos(el))
		}
	}
	d.attributeProperties(el, subj, sc)

	li := 0
	for _, pel := range el.ChildElements() {
		if err := d.propertyElement(pel, subj, sc, &li); err != nil {
			return node{}, err
		}
	}
	return subj, nil
}

func (d *decoder) attributeProperties(el *etree.Element, subj node, sc scope) {
	for _, p := range propertyAttrs(el) {
		if p.iri == rdfType {
			d.emit(subj, rdfType, iriNode(syntax.Resolve(sc.base, p.value)), pos(el))
			continue
		}
		d.emit(subj, p.iri, node{kind: nodeLiteral, value: p.value, lang: sc.lang}, pos(el))
	}
}

func (d *decoder) propertyElement(pel *etree.Element, subj node, sc scope, li *int) error {
	sc = sc.enter(pel)
	pred, err := elementIRI(pel)
	if err != nil {
		return err
	}
	if pred == rdfLi {
		*li++
		pred = fmt.Sprintf("%s_%d", nsRDF, *li)
	}
	at := pos(pel)

	if parseType, ok := rdfAttr(pel, "parseType"); ok {
		switch parseType {
		case "Resource":
			obj := d.fresh()
			d.emit(subj, pred, obj, at)
			_, err := d.describe(pel, obj, sc, false)
			return err
		case "Collection":
			var items []node
			for _, c := range pel.ChildElements() {
				csc := sc.enter(c)
				item, err := d.describe(c, d.subject(c, csc), csc, true)
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			d.emit(subj, pred, d.list(items, at), at)
			return nil
		}
		// Literal, and any other value, keeps the content as XML.
		xml, err := innerXML(pel)
		if err != nil {
			return syntax.Errorf(Format, at, "%v", err)
		}
		d.emit(subj, pred, node{kind: nodeLiteral, value: xml, datatype: rdfXMLLiteral}, at)
		return nil
	}

	if kids := pel.ChildElements(); len(kids) > 0 {
		if len(kids) > 1 {
			return syntax.Errorf(Format, at, "property %s holds %d node elements, expected one", pel.Tag, len(kids))
		}
		c := kids[0]
		csc := sc.enter(c)
		obj := d.subject(c, csc)
		d.emit(subj, pred, obj, at)
		_, err := d.describe(c, obj, csc, true)
		return err
	}

	res, hasRes := rdfAttr(pel, "resource")
	nodeID, hasNodeID := rdfAttr(pel, "nodeID")
	props := propertyAttrs(pel)
	if hasRes || hasNodeID || len(props) > 0 {
		var obj node
		switch {
		case hasRes:
			obj = iriNode(syntax.Resolve(sc.base, res))
		case hasNodeID:
			obj = node{kind: nodeBlank, value: "_:" + nodeID}
		default:
			obj = d.fresh()
		}
		d.emit(subj, pred, obj, at)
		d.attributeProperties(pel, obj, sc)
		return nil
	}

	lit := node{kind: nodeLiteral, value: pel.Text(), lang: sc.lang}
	if dt, ok := rdfAttr(pel, "datatype"); ok {
		lit.datatype = syntax.Resolve(sc.base, dt)
		lit.lang = ""
	}
	d.emit(subj, pred, lit, at)
	return nil
}

// list emits an rdf:first/rdf:rest chain and returns its head.
func (d *decoder) list(items []node, at syntax.Pos) node {
	head := iriNode(rdfNil)
	for i := len(items) - 1; i >= 0; i-- {
		cell := d.fresh()
		d.emit(cell, rdfFirst, items[i], at)
		d.emit(cell, rdfRest, head, at)
		head = cell
	}
	return head
}

func innerXML(el *etree.Element) (string, error) {
	out := etree.NewDocument()
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			out.AddChild(t.Copy())
		case *etree.CharData:
			out.CreateText(t.Data)
		}
	}
	return out.WriteToString()
}
