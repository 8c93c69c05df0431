// File: internal/parser/rdfxml/mapping.go
package rdfxml

import (
	"slices"
	"strings"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

// graph indexes the decoded triples.
type graph struct {
	triples    []triple
	bySubject  map[string][]triple
	types      map[string]map[string]bool
	structural map[string]bool

	// annotations holds axiom annotations read from owl:Axiom nodes, keyed
	// by the annotated triple.
	annotations map[string][]syntax.Term
}

func newGraph(triples []triple) *graph {
	g := &graph{
		triples:     triples,
		bySubject:   make(map[string][]triple),
		types:       make(map[string]map[string]bool),
		structural:  make(map[string]bool),
		annotations: make(map[string][]syntax.Term),
	}
	for _, t := range triples {
		k := t.s.key()
		g.bySubject[k] = append(g.bySubject[k], t)
		if t.p == rdfType && t.o.kind == nodeIRI {
			if g.types[k] == nil {
				g.types[k] = make(map[string]bool)
			}
			g.types[k][t.o.value] = true
		}
	}
	for _, t := range triples {
		if t.s.kind != nodeBlank {
			continue
		}
		_, facet := owl.FacetFromIRI(owl.IRI(t.p))
		if structuralPredicates[t.p] || facet ||
			(t.p == rdfType && t.o.kind == nodeIRI && (structuralTypes[t.o.value] || isSWRL(t.o.value))) {
			g.structural[t.s.key()] = true
		}
	}
	return g
}

func (g *graph) hasType(n node, typ string) bool {
	return g.types[n.key()][typ]
}

// object returns the first triple about n with predicate p.
func (g *graph) object(n node, p string) (triple, bool) {
	for _, t := range g.bySubject[n.key()] {
		if t.p == p {
			return t, true
		}
	}
	return triple{}, false
}

// mapper lowers the graph to a functional-style Ontology term.
type mapper struct {
	g        *graph
	ontology *node
	out      []syntax.Term
	depth    int
}

func newMapper(g *graph) *mapper {
	m := &mapper{g: g}
	for _, t := range g.triples {
		if t.p == rdfType && t.o.kind == nodeIRI && t.o.value == owlOntology {
			s := t.s
			m.ontology = &s
			break
		}
	}
	return m
}

func (m *mapper) descend(at syntax.Pos) error {
	if m.depth >= syntax.MaxNesting {
		return syntax.Errorf(Format, at, "expressions nest deeper than %d", syntax.MaxNesting)
	}
	m.depth++
	return nil
}

func (m *mapper) ascend() { m.depth-- }

// document builds the Ontology term: header first, then one axiom per
// mapped triple in document order.
func (m *mapper) document(at syntax.Pos) (syntax.Term, error) {
	if err := m.collectAxiomAnnotations(); err != nil {
		return syntax.Term{}, err
	}
	var args []syntax.Term
	if m.ontology != nil {
		args = m.header()
	}
	for _, t := range m.g.triples {
		if err := m.triple(t); err != nil {
			return syntax.Term{}, err
		}
	}
	return syntax.Compound(at, "Ontology", append(args, m.out...)...), nil
}

func (m *mapper) header() []syntax.Term {
	ont := *m.ontology
	var ids, rest []syntax.Term
	if ont.kind == nodeIRI {
		ids = append(ids, syntax.IRITerm(syntax.Pos{}, ont.value))
	}
	for _, t := range m.g.bySubject[ont.key()] {
		switch t.p {
		case rdfType:
		case owlVersionIRI:
			if len(ids) == 1 && t.o.kind == nodeIRI {
				ids = append(ids, syntax.IRITerm(t.pos, t.o.value))
			}
		case owlImports:
			rest = append(rest, syntax.Compound(t.pos, "Import", syntax.IRITerm(t.pos, t.o.value)))
		default:
			rest = append(rest, syntax.Compound(t.pos, "Annotation", syntax.IRITerm(t.pos, t.p), m.value(t.o, t.pos)))
		}
	}
	if len(ids) > 0 {
		ids[0].Pos = m.g.bySubject[ont.key()][0].pos
	}
	return append(ids, rest...)
}

// collectAxiomAnnotations reads owl:Axiom reifications.
func (m *mapper) collectAxiomAnnotations() error {
	for _, t := range m.g.triples {
		if t.p != rdfType || t.o.kind != nodeIRI || (t.o.value != owlAxiom && t.o.value != owlAnnotation) {
			continue
		}
		src, ok1 := m.g.object(t.s, owlAnnotatedSource)
		prop, ok2 := m.g.object(t.s, owlAnnotatedProperty)
		tgt, ok3 := m.g.object(t.s, owlAnnotatedTarget)
		if !ok1 || !ok2 || !ok3 || prop.o.kind != nodeIRI {
			return syntax.Errorf(Format, t.pos, "%s needs an annotated source, property and target", t.s)
		}
		key := tripleKey(src.o, prop.o.value, tgt.o)
		m.g.annotations[key] = append(m.g.annotations[key], m.annotationsOn(t.s)...)
	}
	return nil
}

// annotationsOn turns the annotation triples about n into Annotation terms.
func (m *mapper) annotationsOn(n node) []syntax.Term {
	var out []syntax.Term
	for _, t := range m.g.bySubject[n.key()] {
		switch t.p {
		case rdfType, owlAnnotatedSource, owlAnnotatedProperty, owlAnnotatedTarget,
			owlMembers, owlDistinctMembers, owlSourceIndividual, owlAssertionProperty,
			owlTargetIndividual, owlTargetValue:
			continue
		}
		out = append(out, syntax.Compound(t.pos, "Annotation", syntax.IRITerm(t.pos, t.p), m.value(t.o, t.pos)))
	}
	return out
}

// add appends an axiom carrying the annotations reified for t.
func (m *mapper) add(name string, t triple, args ...syntax.Term) {
	anns := m.g.annotations[tripleKey(t.s, t.p, t.o)]
	m.out = append(m.out, syntax.Compound(t.pos, name, slices.Concat(anns, args)...))
}

func (m *mapper) triple(t triple) error {
	s := t.s
	if m.ontology != nil && s.key() == m.ontology.key() {
		return nil
	}
	if s.kind == nodeBlank && m.g.structural[s.key()] {
		switch t.p {
		case rdfType:
			return m.structuralAxiom(t)
		case rdfsSubClassOf, owlEquivalentClass, owlDisjointWith:
			// A general class axiom: the subject is an expression.
		default:
			return nil
		}
	}

	switch t.p {
	case rdfType:
		return m.typeTriple(t)
	case rdfsSubClassOf:
		return m.classPair("SubClassOf", t)
	case owlEquivalentClass:
		if m.isDatatype(s) {
			dr, err := m.dataRange(t.o, t.pos)
			if err != nil {
				return err
			}
			m.add("DatatypeDefinition", t, syntax.IRITerm(t.pos, s.value), dr)
			return nil
		}
		return m.classPair("EquivalentClasses", t)
	case owlDisjointWith:
		return m.classPair("DisjointClasses", t)
	case owlDisjointUnionOf:
		items, err := m.list(t.o, t.pos)
		if err != nil {
			return err
		}
		ces, err := m.classExpressions(items, t.pos)
		if err != nil {
			return err
		}
		m.add("DisjointUnion", t, append([]syntax.Term{syntax.IRITerm(t.pos, s.value)}, ces...)...)
		return nil
	case rdfsSubPropertyOf:
		return m.subProperty(t)
	case owlPropertyChainAxiom:
		items, err := m.list(t.o, t.pos)
		if err != nil {
			return err
		}
		chain := make([]syntax.Term, 0, len(items))
		for _, it := range items {
			pe, err := m.propertyExpression(it, t.pos)
			if err != nil {
				return err
			}
			chain = append(chain, pe)
		}
		sup, err := m.propertyExpression(s, t.pos)
		if err != nil {
			return err
		}
		m.add("SubObjectPropertyOf", t, syntax.Compound(t.pos, "ObjectPropertyChain", chain...), sup)
		return nil
	case owlEquivalentProperty:
		return m.propertyPair("EquivalentDataProperties", "EquivalentObjectProperties", t)
	case owlPropertyDisjointWith:
		return m.propertyPair("DisjointDataProperties", "DisjointObjectProperties", t)
	case owlInverseOf:
		if s.kind != nodeIRI || t.o.kind != nodeIRI {
			return syntax.Errorf(Format, t.pos, "owl:inverseOf between %s and %s needs two named properties", s, t.o)
		}
		m.add("InverseObjectProperties", t, syntax.IRITerm(t.pos, s.value), syntax.IRITerm(t.pos, t.o.value))
		return nil
	case rdfsDomain:
		return m.domain(t)
	case rdfsRange:
		return m.rangeAxiom(t)
	case owlSameAs:
		m.add("SameIndividual", t, m.individual(s, t.pos), m.individual(t.o, t.pos))
		return nil
	case owlDifferentFrom:
		m.add("DifferentIndividuals", t, m.individual(s, t.pos), m.individual(t.o, t.pos))
		return nil
	case owlHasKey:
		return m.hasKey(t)
	}
	return m.assertion(t)
}

func (m *mapper) typeTriple(t triple) error {
	s, o := t.s, t.o
	if o.kind == nodeBlank {
		ce, err := m.classExpression(o, t.pos)
		if err != nil {
			return err
		}
		m.add("ClassAssertion", t, ce, m.individual(s, t.pos))
		return nil
	}
	if o.kind != nodeIRI {
		return syntax.Errorf(Format, t.pos, "rdf:type of %s is a literal", s)
	}

	typ := o.value
	if name, ok := declarations[typ]; ok {
		if s.kind == nodeIRI {
			m.add("Declaration", t, syntax.Compound(t.pos, name, syntax.IRITerm(t.pos, s.value)))
		}
		return nil
	}
	if name, ok := characteristics[typ]; ok {
		pe, err := m.propertyExpression(s, t.pos)
		if err != nil {
			return err
		}
		m.add(name, t, pe)
		return nil
	}
	if typ == owlFunctionalProperty {
		if m.isDataProperty(s) {
			m.add("FunctionalDataProperty", t, syntax.IRITerm(t.pos, s.value))
			return nil
		}
		pe, err := m.propertyExpression(s, t.pos)
		if err != nil {
			return err
		}
		m.add("FunctionalObjectProperty", t, pe)
		return nil
	}
	if reserved(typ) && typ != nsOWL+"Thing" {
		return nil
	}
	m.add("ClassAssertion", t, syntax.IRITerm(t.pos, typ), m.individual(s, t.pos))
	return nil
}

// structuralAxiom maps the blank nodes that stand for n-ary axioms.
func (m *mapper) structuralAxiom(t triple) error {
	if t.o.kind != nodeIRI {
		return nil
	}
	anns := m.annotationsOn(t.s)
	emit := func(name string, args ...syntax.Term) {
		m.out = append(m.out, syntax.Compound(t.pos, name, slices.Concat(anns, args)...))
	}
	members := func() ([]node, error) {
		mt, ok := m.g.object(t.s, owlMembers)
		if !ok {
			mt, ok = m.g.object(t.s, owlDistinctMembers)
		}
		if !ok {
			return nil, syntax.Errorf(Format, t.pos, "%s has no members", t.s)
		}
		return m.list(mt.o, mt.pos)
	}

	switch t.o.value {
	case owlAllDisjointClasses:
		items, err := members()
		if err != nil {
			return err
		}
		ces, err := m.classExpressions(items, t.pos)
		if err != nil {
			return err
		}
		emit("DisjointClasses", ces...)
	case owlAllDisjointProperties:
		items, err := members()
		if err != nil {
			return err
		}
		if len(items) > 0 && m.isDataProperty(items[0]) {
			emit("DisjointDataProperties", m.iris(items, t.pos)...)
			return nil
		}
		pes := make([]syntax.Term, 0, len(items))
		for _, it := range items {
			pe, err := m.propertyExpression(it, t.pos)
			if err != nil {
				return err
			}
			pes = append(pes, pe)
		}
		emit("DisjointObjectProperties", pes...)
	case owlAllDifferent:
		items, err := members()
		if err != nil {
			return err
		}
		inds := make([]syntax.Term, 0, len(items))
		for _, it := range items {
			inds = append(inds, m.individual(it, t.pos))
		}
		emit("DifferentIndividuals", inds...)
	case owlNegativePropertyAssertion:
		src, ok1 := m.g.object(t.s, owlSourceIndividual)
		prop, ok2 := m.g.object(t.s, owlAssertionProperty)
		if !ok1 || !ok2 {
			return syntax.Errorf(Format, t.pos, "negative assertion %s needs a source and a property", t.s)
		}
		if v, ok := m.g.object(t.s, owlTargetValue); ok {
			emit("NegativeDataPropertyAssertion",
				syntax.IRITerm(t.pos, prop.o.value), m.individual(src.o, t.pos), m.value(v.o, v.pos))
			return nil
		}
		tgt, ok := m.g.object(t.s, owlTargetIndividual)
		if !ok {
			return syntax.Errorf(Format, t.pos, "negative assertion %s has no target", t.s)
		}
		pe, err := m.propertyExpression(prop.o, t.pos)
		if err != nil {
			return err
		}
		emit("NegativeObjectPropertyAssertion", pe, m.individual(src.o, t.pos), m.individual(tgt.o, t.pos))
	}
	return nil
}

func (m *mapper) classPair(name string, t triple) error {
	sub, err := m.classExpression(t.s, t.pos)
	if err != nil {
		return err
	}
	sup, err := m.classExpression(t.o, t.pos)
	if err != nil {
		return err
	}
	m.add(name, t, sub, sup)
	return nil
}

func (m *mapper) propertyPair(dataName, objectName string, t triple) error {
	if m.isDataProperty(t.s) || m.isDataProperty(t.o) {
		m.add(dataName, t, syntax.IRITerm(t.pos, t.s.value), syntax.IRITerm(t.pos, t.o.value))
		return nil
	}
	first, err := m.propertyExpression(t.s, t.pos)
	if err != nil {
		return err
	}
	second, err := m.propertyExpression(t.o, t.pos)
	if err != nil {
		return err
	}
	m.add(objectName, t, first, second)
	return nil
}

func (m *mapper) subProperty(t triple) error {
	switch {
	case m.isAnnotationProperty(t.s):
		m.add("SubAnnotationPropertyOf", t, syntax.IRITerm(t.pos, t.s.value), syntax.IRITerm(t.pos, t.o.value))
		return nil
	case m.isDataProperty(t.s) || m.isDataProperty(t.o):
		m.add("SubDataPropertyOf", t, syntax.IRITerm(t.pos, t.s.value), syntax.IRITerm(t.pos, t.o.value))
		return nil
	}
	return m.propertyPair("SubDataPropertyOf", "SubObjectPropertyOf", t)
}

func (m *mapper) domain(t triple) error {
	switch {
	case m.isAnnotationProperty(t.s):
		m.add("AnnotationPropertyDomain", t, syntax.IRITerm(t.pos, t.s.value), syntax.IRITerm(t.pos, t.o.value))
		return nil
	case m.isDataProperty(t.s):
		ce, err := m.classExpression(t.o, t.pos)
		if err != nil {
			return err
		}
		m.add("DataPropertyDomain", t, syntax.IRITerm(t.pos, t.s.value), ce)
		return nil
	}
	pe, err := m.propertyExpression(t.s, t.pos)
	if err != nil {
		return err
	}
	ce, err := m.classExpression(t.o, t.pos)
	if err != nil {
		return err
	}
	m.add("ObjectPropertyDomain", t, pe, ce)
	return nil
}

func (m *mapper) rangeAxiom(t triple) error {
	switch {
	case m.isAnnotationProperty(t.s):
		m.add("AnnotationPropertyRange", t, syntax.IRITerm(t.pos, t.s.value), syntax.IRITerm(t.pos, t.o.value))
		return nil
	case m.isDataProperty(t.s) || (!m.isObjectProperty(t.s) && m.isDatatype(t.o)):
		dr, err := m.dataRange(t.o, t.pos)
		if err != nil {
			return err
		}
		m.add("DataPropertyRange", t, syntax.IRITerm(t.pos, t.s.value), dr)
		return nil
	}
	pe, err := m.propertyExpression(t.s, t.pos)
	if err != nil {
		return err
	}
	ce, err := m.classExpression(t.o, t.pos)
	if err != nil {
		return err
	}
	m.add("ObjectPropertyRange", t, pe, ce)
	return nil
}

func (m *mapper) hasKey(t triple) error {
	items, err := m.list(t.o, t.pos)
	if err != nil {
		return err
	}
	ce, err := m.classExpression(t.s, t.pos)
	if err != nil {
		return err
	}
	var opes, dps []syntax.Term
	for _, it := range items {
		if m.isDataProperty(it) {
			dps = append(dps, syntax.IRITerm(t.pos, it.value))
			continue
		}
		pe, err := m.propertyExpression(it, t.pos)
		if err != nil {
			return err
		}
		opes = append(opes, pe)
	}
	m.add("HasKey", t, ce, syntax.Compound(t.pos, "", opes...), syntax.Compound(t.pos, "", dps...))
	return nil
}

// assertion maps a triple whose predicate is an ontology property.
func (m *mapper) assertion(t triple) error {
	p := iriNode(t.p)
	switch {
	case m.isAnnotationProperty(p):
	case reserved(t.p):
		return nil
	case t.o.kind == nodeLiteral && (m.isDataProperty(p) || (!m.isObjectProperty(p) && m.isIndividual(t.s))):
		m.add("DataPropertyAssertion", t, syntax.IRITerm(t.pos, t.p), m.individual(t.s, t.pos), m.value(t.o, t.pos))
		return nil
	case t.o.kind != nodeLiteral && (m.isObjectProperty(p) || (!m.isDataProperty(p) && m.isIndividual(t.s))):
		m.add("ObjectPropertyAssertion", t, syntax.IRITerm(t.pos, t.p), m.individual(t.s, t.pos), m.individual(t.o, t.pos))
		return nil
	}
	m.add("AnnotationAssertion", t, syntax.IRITerm(t.pos, t.p), m.value(t.s, t.pos), m.value(t.o, t.pos))
	return nil
}

// -- Node kinds --

func (m *mapper) isDataProperty(n node) bool {
	return n.kind == nodeIRI && m.g.hasType(n, owlDatatypeProperty)
}

func (m *mapper) isObjectProperty(n node) bool {
	if n.kind == nodeBlank {
		_, ok := m.g.object(n, owlInverseOf)
		return ok
	}
	if m.g.hasType(n, owlObjectProperty) {
		return true
	}
	for typ := range characteristics {
		if m.g.hasType(n, typ) {
			return true
		}
	}
	return false
}

func (m *mapper) isAnnotationProperty(n node) bool {
	return n.kind == nodeIRI && (builtinAnnotations[n.value] || m.g.hasType(n, owlAnnotationProperty))
}

func (m *mapper) isDatatype(n node) bool {
	switch n.kind {
	case nodeIRI:
		return strings.HasPrefix(n.value, nsXSD) || builtinDatatypes[n.value] || m.g.hasType(n, rdfsDatatype)
	case nodeBlank:
		if m.g.hasType(n, rdfsDatatype) {
			return true
		}
		for _, p := range []string{owlOnDatatype, owlDatatypeComplementOf} {
			if _, ok := m.g.object(n, p); ok {
				return true
			}
		}
		if one, ok := m.g.object(n, owlOneOf); ok {
			if first, ok := m.g.object(one.o, rdfFirst); ok {
				return first.o.kind == nodeLiteral
			}
		}
	}
	return false
}

// isIndividual reports whether n is typed as an individual, or is a blank
// node that encodes no expression.
func (m *mapper) isIndividual(n node) bool {
	switch n.kind {
	case nodeBlank:
		return !m.g.structural[n.key()]
	case nodeIRI:
		for typ := range m.g.types[n.key()] {
			if typ == owlNamedIndividual || !reserved(typ) || typ == nsOWL+"Thing" {
				return true
			}
		}
	}
	return false
}

// -- Terms --

func (m *mapper) value(n node, at syntax.Pos) syntax.Term {
	switch n.kind {
	case nodeIRI:
		return syntax.IRITerm(at, n.value)
	case nodeBlank:
		return syntax.NodeIDTerm(at, n.value)
	}
	return syntax.LiteralTerm(at, n.value, n.lang, owl.IRI(n.datatype))
}

func (m *mapper) individual(n node, at syntax.Pos) syntax.Term {
	return m.value(n, at)
}

func (m *mapper) iris(ns []node, at syntax.Pos) []syntax.Term {
	out := make([]syntax.Term, 0, len(ns))
	for _, n := range ns {
		out = append(out, syntax.IRITerm(at, n.value))
	}
	return out
}

// list follows an rdf:first/rdf:rest chain to rdf:nil.
func (m *mapper) list(head node, at syntax.Pos) ([]node, error) {
	var items []node
	seen := make(map[string]bool)
	for n := head; n.kind != nodeIRI || n.value != rdfNil; {
		if n.kind != nodeBlank {
			return nil, syntax.Errorf(Format, at, "%s is not a list", n)
		}
		if seen[n.key()] {
			return nil, syntax.Errorf(Format, at, "list %s is cyclic", head)
		}
		seen[n.key()] = true
		first, ok := m.g.object(n, rdfFirst)
		if !ok {
			return nil, syntax.Errorf(Format, at, "list cell %s has no rdf:first", n)
		}
		rest, ok := m.g.object(n, rdfRest)
		if !ok {
			return nil, syntax.Errorf(Format, at, "list cell %s has no rdf:rest", n)
		}
		items = append(items, first.o)
		n = rest.o
	}
	return items, nil
}

func (m *mapper) propertyExpression(n node, at syntax.Pos) (syntax.Term, error) {
	switch n.kind {
	case nodeIRI:
		return syntax.IRITerm(at, n.value), nil
	case nodeBlank:
		if inv, ok := m.g.object(n, owlInverseOf); ok && inv.o.kind == nodeIRI {
			return syntax.Compound(at, "ObjectInverseOf", syntax.IRITerm(at, inv.o.value)), nil
		}
	}
	return syntax.Term{}, syntax.Errorf(Format, at, "%s is not a property expression", n)
}

func (m *mapper) classExpressions(ns []node, at syntax.Pos) ([]syntax.Term, error) {
	out := make([]syntax.Term, 0, len(ns))
	for _, n := range ns {
		ce, err := m.classExpression(n, at)
		if err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, nil
}

func (m *mapper) classExpression(n node, at syntax.Pos) (syntax.Term, error) {
	switch n.kind {
	case nodeIRI:
		return syntax.IRITerm(at, n.value), nil
	case nodeLiteral:
		return syntax.Term{}, syntax.Errorf(Format, at, "literal %s where a class expression is expected", n)
	}
	if err := m.descend(at); err != nil {
		return syntax.Term{}, err
	}
	defer m.ascend()

	for _, c := range []struct{ pred, name string }{
		{owlIntersectionOf, "ObjectIntersectionOf"},
		{owlUnionOf, "ObjectUnionOf"},
	} {
		if t, ok := m.g.object(n, c.pred); ok {
			items, err := m.list(t.o, t.pos)
			if err != nil {
				return syntax.Term{}, err
			}
			ces, err := m.classExpressions(items, t.pos)
			if err != nil {
				return syntax.Term{}, err
			}
			return syntax.Compound(t.pos, c.name, ces...), nil
		}
	}
	if t, ok := m.g.object(n, owlComplementOf); ok {
		ce, err := m.classExpression(t.o, t.pos)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(t.pos, "ObjectComplementOf", ce), nil
	}
	if t, ok := m.g.object(n, owlOneOf); ok {
		items, err := m.list(t.o, t.pos)
		if err != nil {
			return syntax.Term{}, err
		}
		inds := make([]syntax.Term, 0, len(items))
		for _, it := range items {
			inds = append(inds, m.individual(it, t.pos))
		}
		return syntax.Compound(t.pos, "ObjectOneOf", inds...), nil
	}
	if t, ok := m.g.object(n, owlOnProperty); ok {
		return m.restriction(n, t)
	}
	return syntax.Term{}, syntax.Errorf(Format, at, "%s is not a class expression", n)
}

type cardinality struct {
	pred      string
	name      string
	qualified bool
}

var cardinalities = []cardinality{
	{owlMinCardinality, "MinCardinality", false},
	{owlMaxCardinality, "MaxCardinality", false},
	{owlCardinality, "ExactCardinality", false},
	{owlMinQualifiedCardinality, "MinCardinality", true},
	{owlMaxQualifiedCardinality, "MaxCardinality", true},
	{owlQualifiedCardinality, "ExactCardinality", true},
}

func (m *mapper) restriction(n node, on triple) (syntax.Term, error) {
	at := on.pos
	prop := on.o
	pe, err := m.propertyExpression(prop, at)
	if err != nil {
		return syntax.Term{}, err
	}
	data := m.isDataProperty(prop)

	for _, q := range []struct{ pred, name string }{
		{owlSomeValuesFrom, "SomeValuesFrom"},
		{owlAllValuesFrom, "AllValuesFrom"},
	} {
		t, ok := m.g.object(n, q.pred)
		if !ok {
			continue
		}
		if data || (!m.isObjectProperty(prop) && m.isDatatype(t.o)) {
			dr, err := m.dataRange(t.o, t.pos)
			if err != nil {
				return syntax.Term{}, err
			}
			return syntax.Compound(at, "Data"+q.name, pe, dr), nil
		}
		ce, err := m.classExpression(t.o, t.pos)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(at, "Object"+q.name, pe, ce), nil
	}

	if t, ok := m.g.object(n, owlHasValue); ok {
		if t.o.kind == nodeLiteral {
			return syntax.Compound(at, "DataHasValue", pe, m.value(t.o, t.pos)), nil
		}
		return syntax.Compound(at, "ObjectHasValue", pe, m.individual(t.o, t.pos)), nil
	}
	if _, ok := m.g.object(n, owlHasSelf); ok {
		return syntax.Compound(at, "ObjectHasSelf", pe), nil
	}

	for _, c := range cardinalities {
		t, ok := m.g.object(n, c.pred)
		if !ok {
			continue
		}
		if t.o.kind != nodeLiteral {
			return syntax.Term{}, syntax.Errorf(Format, t.pos, "cardinality of %s is not a literal", n)
		}
		args := []syntax.Term{syntax.NumberTerm(t.pos, strings.TrimSpace(t.o.value)), pe}
		prefix := "Object"
		if data {
			prefix = "Data"
		}
		if c.qualified {
			if f, ok := m.g.object(n, owlOnDataRange); ok {
				dr, err := m.dataRange(f.o, f.pos)
				if err != nil {
					return syntax.Term{}, err
				}
				prefix = "Data"
				args = append(args, dr)
			} else if f, ok := m.g.object(n, owlOnClass); ok {
				ce, err := m.classExpression(f.o, f.pos)
				if err != nil {
					return syntax.Term{}, err
				}
				args = append(args, ce)
			}
		}
		return syntax.Compound(at, prefix+c.name, args...), nil
	}
	return syntax.Term{}, syntax.Errorf(Format, at, "restriction %s on %s has no filler", n, prop)
}

func (m *mapper) dataRange(n node, at syntax.Pos) (syntax.Term, error) {
	switch n.kind {
	case nodeIRI:
		return syntax.IRITerm(at, n.value), nil
	case nodeLiteral:
		return syntax.Term{}, syntax.Errorf(Format, at, "literal %s where a data range is expected", n)
	}
	if err := m.descend(at); err != nil {
		return syntax.Term{}, err
	}
	defer m.ascend()

	for _, c := range []struct{ pred, name string }{
		{owlIntersectionOf, "DataIntersectionOf"},
		{owlUnionOf, "DataUnionOf"},
	} {
		if t, ok := m.g.object(n, c.pred); ok {
			items, err := m.list(t.o, t.pos)
			if err != nil {
				return syntax.Term{}, err
			}
			drs := make([]syntax.Term, 0, len(items))
			for _, it := range items {
				dr, err := m.dataRange(it, t.pos)
				if err != nil {
					return syntax.Term{}, err
				}
				drs = append(drs, dr)
			}
			return syntax.Compound(t.pos, c.name, drs...), nil
		}
	}
	if t, ok := m.g.object(n, owlDatatypeComplementOf); ok {
		dr, err := m.dataRange(t.o, t.pos)
		if err != nil {
			return syntax.Term{}, err
		}
		return syntax.Compound(t.pos, "DataComplementOf", dr), nil
	}
	if t, ok := m.g.object(n, owlOneOf); ok {
		items, err := m.list(t.o, t.pos)
		if err != nil {
			return syntax.Term{}, err
		}
		lits := make([]syntax.Term, 0, len(items))
		for _, it := range items {
			lits = append(lits, m.value(it, t.pos))
		}
		return syntax.Compound(t.pos, "DataOneOf", lits...), nil
	}
	if t, ok := m.g.object(n, owlOnDatatype); ok {
		args := []syntax.Term{m.value(t.o, t.pos)}
		if wr, ok := m.g.object(n, owlWithRestrictions); ok {
			items, err := m.list(wr.o, wr.pos)
			if err != nil {
				return syntax.Term{}, err
			}
			for _, it := range items {
				fr, err := m.facetRestriction(it, wr.pos)
				if err != nil {
					return syntax.Term{}, err
				}
				args = append(args, fr)
			}
		}
		return syntax.Compound(t.pos, "DatatypeRestriction", args...), nil
	}
	return syntax.Term{}, syntax.Errorf(Format, at, "%s is not a data range", n)
}

func (m *mapper) facetRestriction(n node, at syntax.Pos) (syntax.Term, error) {
	for _, t := range m.g.bySubject[n.key()] {
		if _, ok := owl.FacetFromIRI(owl.IRI(t.p)); ok {
			return syntax.Compound(t.pos, "FacetRestriction", syntax.IRITerm(t.pos, t.p), m.value(t.o, t.pos)), nil
		}
	}
	return syntax.Term{}, syntax.Errorf(Format, at, "%s names no facet", n)
}
