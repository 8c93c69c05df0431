// File: internal/parser/syntax/build.go
package syntax

import (
	"strconv"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

var (
	owlThing    = owl.Class{IRI: owl.IRI(owl.NamespaceOWL + "Thing")}
	rdfsLiteral = owl.Datatype{IRI: owl.IRI(owl.NamespaceRDFS + "Literal")}
)

// Builder turns term trees into grammar values. The zero value is not usable;
// create one with NewBuilder.
type Builder struct {
	format string
}

// NewBuilder returns a Builder whose errors name format.
func NewBuilder(format string) *Builder {
	return &Builder{format: format}
}

func (b *Builder) errorf(t Term, msg string, args ...any) error {
	return Errorf(b.format, t.Pos, msg, args...)
}

func (b *Builder) arity(t Term, n int) error {
	if len(t.Args) != n {
		return b.errorf(t, "%s takes %d arguments, got %d", t.describe(), n, len(t.Args))
	}
	return nil
}

func (b *Builder) atLeast(t Term, n int) error {
	if len(t.Args) < n {
		return b.errorf(t, "%s takes at least %d arguments, got %d", t.describe(), n, len(t.Args))
	}
	return nil
}

// Document builds a document from an Ontology term. Its leading IRI leaves
// are the ontology IRI and version IRI; Import and Annotation compounds apply
// to the ontology; everything else is an axiom.
func (b *Builder) Document(ont Term) (*owl.Document, error) {
	if !ont.Is("Ontology") {
		return nil, b.errorf(ont, "expected Ontology, found %s", ont.describe())
	}
	doc := &owl.Document{}
	args := ont.Args
	if len(args) > 0 && args[0].Kind == TermIRI {
		doc.ID.IRI = owl.IRI(args[0].Value)
		args = args[1:]
		if len(args) > 0 && args[0].Kind == TermIRI {
			doc.ID.VersionIRI = owl.IRI(args[0].Value)
			args = args[1:]
		}
	}

	for _, t := range args {
		switch {
		case t.Is("Import"):
			if err := b.arity(t, 1); err != nil {
				return nil, err
			}
			iri, err := b.iri(t.Args[0])
			if err != nil {
				return nil, err
			}
			doc.Add(owl.Import{IRI: iri})
		case t.Is("Annotation"):
			ann, err := b.annotation(t)
			if err != nil {
				return nil, err
			}
			doc.Add(owl.OntologyAnnotation{Annotation: ann})
		default:
			ac, err := b.Axiom(t)
			if err != nil {
				return nil, err
			}
			doc.Components = append(doc.Components, ac)
		}
	}
	return doc, nil
}

// splitAnnotations separates leading axiom annotations from the operands.
func (b *Builder) splitAnnotations(args []Term) ([]owl.Annotation, []Term, error) {
	var anns []owl.Annotation
	for len(args) > 0 && args[0].Is("Annotation") {
		ann, err := b.annotation(args[0])
		if err != nil {
			return nil, nil, err
		}
		anns = append(anns, ann)
		args = args[1:]
	}
	return anns, args, nil
}

// Axiom builds one annotated component.
func (b *Builder) Axiom(t Term) (owl.AnnotatedComponent, error) {
	if t.Kind != TermCompound {
		return owl.AnnotatedComponent{}, b.errorf(t, "expected an axiom, found %s", t.describe())
	}
	anns, args, err := b.splitAnnotations(t.Args)
	if err != nil {
		return owl.AnnotatedComponent{}, err
	}
	body := Term{Kind: TermCompound, Pos: t.Pos, Value: t.Value, Args: args}
	c, err := b.component(body)
	if err != nil {
		return owl.AnnotatedComponent{}, err
	}
	return owl.AnnotatedComponent{Component: c, Annotations: anns}, nil
}

func (b *Builder) component(t Term) (owl.Component, error) {
	switch t.Value {
	case "Declaration":
		return b.declaration(t)

	case "SubClassOf":
		ces, err := b.classExpressionsN(t, 2)
		if err != nil {
			return nil, err
		}
		return owl.SubClassOf{Sub: ces[0], Sup: ces[1]}, nil
	case "EquivalentClasses":
		ces, err := b.classExpressionList(t, 2)
		return owl.EquivalentClasses{Classes: ces}, err
	case "DisjointClasses":
		ces, err := b.classExpressionList(t, 2)
		return owl.DisjointClasses{Classes: ces}, err
	case "DisjointUnion":
		if err := b.atLeast(t, 3); err != nil {
			return nil, err
		}
		c, err := b.class(t.Args[0])
		if err != nil {
			return nil, err
		}
		ces, err := b.classExpressions(t.Args[1:])
		return owl.DisjointUnion{Class: c, Classes: ces}, err

	case "SubObjectPropertyOf":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		sub, err := b.subObjectPropertyExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		sup, err := b.objectPropertyExpression(t.Args[1])
		return owl.SubObjectPropertyOf{Sub: sub, Sup: sup}, err
	case "EquivalentObjectProperties":
		opes, err := b.objectPropertyExpressionList(t, 2)
		return owl.EquivalentObjectProperties{Properties: opes}, err
	case "DisjointObjectProperties":
		opes, err := b.objectPropertyExpressionList(t, 2)
		return owl.DisjointObjectProperties{Properties: opes}, err
	case "InverseObjectProperties":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		first, err := b.objectProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		second, err := b.objectProperty(t.Args[1])
		return owl.InverseObjectProperties{First: first, Second: second}, err
	case "ObjectPropertyDomain", "ObjectPropertyRange":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		ope, err := b.objectPropertyExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		ce, err := b.ClassExpression(t.Args[1])
		if err != nil {
			return nil, err
		}
		if t.Value == "ObjectPropertyDomain" {
			return owl.ObjectPropertyDomain{Property: ope, Domain: ce}, nil
		}
		return owl.ObjectPropertyRange{Property: ope, Range: ce}, nil
	case "FunctionalObjectProperty", "InverseFunctionalObjectProperty", "ReflexiveObjectProperty",
		"IrreflexiveObjectProperty", "SymmetricObjectProperty", "AsymmetricObjectProperty",
		"TransitiveObjectProperty":
		return b.characteristic(t)

	case "SubDataPropertyOf":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		sub, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		sup, err := b.dataProperty(t.Args[1])
		return owl.SubDataPropertyOf{Sub: sub, Sup: sup}, err
	case "EquivalentDataProperties":
		dps, err := b.dataPropertyList(t, 2)
		return owl.EquivalentDataProperties{Properties: dps}, err
	case "DisjointDataProperties":
		dps, err := b.dataPropertyList(t, 2)
		return owl.DisjointDataProperties{Properties: dps}, err
	case "DataPropertyDomain":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		ce, err := b.ClassExpression(t.Args[1])
		return owl.DataPropertyDomain{Property: dp, Domain: ce}, err
	case "DataPropertyRange":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		dr, err := b.DataRange(t.Args[1])
		return owl.DataPropertyRange{Property: dp, Range: dr}, err
	case "FunctionalDataProperty":
		if err := b.arity(t, 1); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		return owl.FunctionalDataProperty{Property: dp}, err
	case "DatatypeDefinition":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		dt, err := b.datatype(t.Args[0])
		if err != nil {
			return nil, err
		}
		dr, err := b.DataRange(t.Args[1])
		return owl.DatatypeDefinition{Datatype: dt, Range: dr}, err
	case "HasKey":
		return b.hasKey(t)

	case "SameIndividual":
		inds, err := b.individualList(t, 2)
		return owl.SameIndividual{Individuals: inds}, err
	case "DifferentIndividuals":
		inds, err := b.individualList(t, 2)
		return owl.DifferentIndividuals{Individuals: inds}, err
	case "ClassAssertion":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		ce, err := b.ClassExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		ind, err := b.individual(t.Args[1])
		return owl.ClassAssertion{Class: ce, Individual: ind}, err
	case "ObjectPropertyAssertion", "NegativeObjectPropertyAssertion":
		if err := b.arity(t, 3); err != nil {
			return nil, err
		}
		ope, err := b.objectPropertyExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		from, err := b.individual(t.Args[1])
		if err != nil {
			return nil, err
		}
		to, err := b.individual(t.Args[2])
		if err != nil {
			return nil, err
		}
		if t.Value == "ObjectPropertyAssertion" {
			return owl.ObjectPropertyAssertion{Property: ope, From: from, To: to}, nil
		}
		return owl.NegativeObjectPropertyAssertion{Property: ope, From: from, To: to}, nil
	case "DataPropertyAssertion", "NegativeDataPropertyAssertion":
		if err := b.arity(t, 3); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		from, err := b.individual(t.Args[1])
		if err != nil {
			return nil, err
		}
		to, err := b.literal(t.Args[2])
		if err != nil {
			return nil, err
		}
		if t.Value == "DataPropertyAssertion" {
			return owl.DataPropertyAssertion{Property: dp, From: from, To: to}, nil
		}
		return owl.NegativeDataPropertyAssertion{Property: dp, From: from, To: to}, nil

	case "AnnotationAssertion":
		if err := b.arity(t, 3); err != nil {
			return nil, err
		}
		ap, err := b.annotationProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		subj, err := b.annotationSubject(t.Args[1])
		if err != nil {
			return nil, err
		}
		val, err := b.annotationValue(t.Args[2])
		if err != nil {
			return nil, err
		}
		return owl.AnnotationAssertion{Subject: subj, Annotation: owl.Annotation{Property: ap, Value: val}}, nil
	case "SubAnnotationPropertyOf":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		sub, err := b.annotationProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		sup, err := b.annotationProperty(t.Args[1])
		return owl.SubAnnotationPropertyOf{Sub: sub, Sup: sup}, err
	case "AnnotationPropertyDomain", "AnnotationPropertyRange":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		ap, err := b.annotationProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		iri, err := b.iri(t.Args[1])
		if err != nil {
			return nil, err
		}
		if t.Value == "AnnotationPropertyDomain" {
			return owl.AnnotationPropertyDomain{Property: ap, IRI: iri}, nil
		}
		return owl.AnnotationPropertyRange{Property: ap, IRI: iri}, nil

	case "DLSafeRule":
		return b.rule(t)
	}
	return nil, b.errorf(t, "unknown axiom %s", t.describe())
}

func (b *Builder) declaration(t Term) (owl.Component, error) {
	if err := b.arity(t, 1); err != nil {
		return nil, err
	}
	e := t.Args[0]
	if e.Kind != TermCompound || len(e.Args) != 1 {
		return nil, b.errorf(e, "declaration needs a typed entity, found %s", e.describe())
	}
	iri, err := b.iri(e.Args[0])
	if err != nil {
		return nil, err
	}
	switch e.Value {
	case "Class":
		return owl.DeclareClass{Class: owl.Class{IRI: iri}}, nil
	case "ObjectProperty":
		return owl.DeclareObjectProperty{Property: owl.ObjectProperty{IRI: iri}}, nil
	case "DataProperty":
		return owl.DeclareDataProperty{Property: owl.DataProperty{IRI: iri}}, nil
	case "AnnotationProperty":
		return owl.DeclareAnnotationProperty{Property: owl.AnnotationProperty{IRI: iri}}, nil
	case "NamedIndividual":
		return owl.DeclareNamedIndividual{Individual: owl.NamedIndividual{IRI: iri}}, nil
	case "Datatype":
		return owl.DeclareDatatype{Datatype: owl.Datatype{IRI: iri}}, nil
	}
	return nil, b.errorf(e, "cannot declare %s", e.describe())
}

func (b *Builder) characteristic(t Term) (owl.Component, error) {
	if err := b.arity(t, 1); err != nil {
		return nil, err
	}
	p, err := b.objectPropertyExpression(t.Args[0])
	if err != nil {
		return nil, err
	}
	switch t.Value {
	case "FunctionalObjectProperty":
		return owl.FunctionalObjectProperty{Property: p}, nil
	case "InverseFunctionalObjectProperty":
		return owl.InverseFunctionalObjectProperty{Property: p}, nil
	case "ReflexiveObjectProperty":
		return owl.ReflexiveObjectProperty{Property: p}, nil
	case "IrreflexiveObjectProperty":
		return owl.IrreflexiveObjectProperty{Property: p}, nil
	case "SymmetricObjectProperty":
		return owl.SymmetricObjectProperty{Property: p}, nil
	case "AsymmetricObjectProperty":
		return owl.AsymmetricObjectProperty{Property: p}, nil
	}
	return owl.TransitiveObjectProperty{Property: p}, nil
}

// hasKey accepts the functional form, two bare groups of object and data
// properties, and the OWL/XML form, a flat run of typed properties.
func (b *Builder) hasKey(t Term) (owl.Component, error) {
	if err := b.atLeast(t, 1); err != nil {
		return nil, err
	}
	ce, err := b.ClassExpression(t.Args[0])
	if err != nil {
		return nil, err
	}
	hk := owl.HasKey{Class: ce}
	rest := t.Args[1:]
	if len(rest) == 2 && rest[0].Is("") && rest[1].Is("") {
		for _, a := range rest[0].Args {
			ope, err := b.objectPropertyExpression(a)
			if err != nil {
				return nil, err
			}
			hk.Properties = append(hk.Properties, ope.(owl.PropertyExpression))
		}
		for _, a := range rest[1].Args {
			dp, err := b.dataProperty(a)
			if err != nil {
				return nil, err
			}
			hk.Properties = append(hk.Properties, dp)
		}
		return hk, nil
	}
	for _, a := range rest {
		switch {
		case a.Is("DataProperty"):
			dp, err := b.dataProperty(a)
			if err != nil {
				return nil, err
			}
			hk.Properties = append(hk.Properties, dp)
		default:
			ope, err := b.objectPropertyExpression(a)
			if err != nil {
				return nil, err
			}
			hk.Properties = append(hk.Properties, ope.(owl.PropertyExpression))
		}
	}
	return hk, nil
}

// -- Entities --

func (b *Builder) iri(t Term) (owl.IRI, error) {
	if t.Kind != TermIRI {
		return "", b.errorf(t, "expected an IRI, found %s", t.describe())
	}
	return owl.IRI(t.Value), nil
}

// entity accepts a bare IRI or a compound of the given type wrapping one.
func (b *Builder) entity(t Term, typ string) (owl.IRI, error) {
	if t.Is(typ) {
		if err := b.arity(t, 1); err != nil {
			return "", err
		}
		return b.iri(t.Args[0])
	}
	if t.Kind == TermIRI {
		return owl.IRI(t.Value), nil
	}
	return "", b.errorf(t, "expected %s, found %s", typ, t.describe())
}

func (b *Builder) class(t Term) (owl.Class, error) {
	iri, err := b.entity(t, "Class")
	return owl.Class{IRI: iri}, err
}

func (b *Builder) datatype(t Term) (owl.Datatype, error) {
	iri, err := b.entity(t, "Datatype")
	return owl.Datatype{IRI: iri}, err
}

func (b *Builder) objectProperty(t Term) (owl.ObjectProperty, error) {
	iri, err := b.entity(t, "ObjectProperty")
	return owl.ObjectProperty{IRI: iri}, err
}

func (b *Builder) dataProperty(t Term) (owl.DataProperty, error) {
	iri, err := b.entity(t, "DataProperty")
	return owl.DataProperty{IRI: iri}, err
}

func (b *Builder) annotationProperty(t Term) (owl.AnnotationProperty, error) {
	iri, err := b.entity(t, "AnnotationProperty")
	return owl.AnnotationProperty{IRI: iri}, err
}

func (b *Builder) individual(t Term) (owl.Individual, error) {
	switch {
	case t.Kind == TermNodeID:
		return owl.AnonymousIndividual{ID: t.Value}, nil
	case t.Is("AnonymousIndividual"):
		if err := b.arity(t, 1); err != nil {
			return nil, err
		}
		if t.Args[0].Kind != TermNodeID {
			return nil, b.errorf(t, "anonymous individual needs a node ID")
		}
		return owl.AnonymousIndividual{ID: t.Args[0].Value}, nil
	}
	iri, err := b.entity(t, "NamedIndividual")
	if err != nil {
		return nil, err
	}
	return owl.NamedIndividual{IRI: iri}, nil
}

func (b *Builder) individualList(t Term, least int) ([]owl.Individual, error) {
	if err := b.atLeast(t, least); err != nil {
		return nil, err
	}
	out := make([]owl.Individual, 0, len(t.Args))
	for _, a := range t.Args {
		ind, err := b.individual(a)
		if err != nil {
			return nil, err
		}
		out = append(out, ind)
	}
	return out, nil
}

// -- Annotations and literals --

func (b *Builder) literal(t Term) (owl.Literal, error) {
	if t.Kind != TermLiteral {
		return owl.Literal{}, b.errorf(t, "expected a literal, found %s", t.describe())
	}
	return owl.Literal{Value: t.Value, Lang: t.Lang, Datatype: t.Datatype}, nil
}

func (b *Builder) annotation(t Term) (owl.Annotation, error) {
	// Annotations on annotations are accepted and dropped.
	_, args, err := b.splitAnnotations(t.Args)
	if err != nil {
		return owl.Annotation{}, err
	}
	if len(args) != 2 {
		return owl.Annotation{}, b.errorf(t, "Annotation takes a property and a value")
	}
	ap, err := b.annotationProperty(args[0])
	if err != nil {
		return owl.Annotation{}, err
	}
	val, err := b.annotationValue(args[1])
	if err != nil {
		return owl.Annotation{}, err
	}
	return owl.Annotation{Property: ap, Value: val}, nil
}

func (b *Builder) annotationValue(t Term) (owl.AnnotationValue, error) {
	switch t.Kind {
	case TermLiteral:
		return b.literal(t)
	case TermIRI:
		return owl.IRI(t.Value), nil
	case TermNodeID:
		return owl.AnonymousIndividual{ID: t.Value}, nil
	}
	if t.Is("AnonymousIndividual") {
		ind, err := b.individual(t)
		if err != nil {
			return nil, err
		}
		return ind.(owl.AnonymousIndividual), nil
	}
	return nil, b.errorf(t, "expected an annotation value, found %s", t.describe())
}

func (b *Builder) annotationSubject(t Term) (owl.AnnotationSubject, error) {
	switch t.Kind {
	case TermIRI:
		return owl.IRI(t.Value), nil
	case TermNodeID:
		return owl.AnonymousIndividual{ID: t.Value}, nil
	}
	if t.Is("AnonymousIndividual") {
		ind, err := b.individual(t)
		if err != nil {
			return nil, err
		}
		return ind.(owl.AnonymousIndividual), nil
	}
	return nil, b.errorf(t, "expected an annotation subject, found %s", t.describe())
}

// -- Property expressions --

func (b *Builder) objectPropertyExpression(t Term) (owl.ObjectPropertyExpression, error) {
	if t.Is("ObjectInverseOf") {
		if err := b.arity(t, 1); err != nil {
			return nil, err
		}
		p, err := b.objectProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		return owl.InverseObjectProperty{Property: p}, nil
	}
	return b.objectProperty(t)
}

func (b *Builder) subObjectPropertyExpression(t Term) (owl.SubObjectPropertyExpression, error) {
	if t.Is("ObjectPropertyChain") {
		opes, err := b.objectPropertyExpressionList(t, 2)
		if err != nil {
			return nil, err
		}
		return owl.ObjectPropertyChain{Properties: opes}, nil
	}
	return b.objectPropertyExpression(t)
}

func (b *Builder) objectPropertyExpressionList(t Term, least int) ([]owl.ObjectPropertyExpression, error) {
	if err := b.atLeast(t, least); err != nil {
		return nil, err
	}
	out := make([]owl.ObjectPropertyExpression, 0, len(t.Args))
	for _, a := range t.Args {
		ope, err := b.objectPropertyExpression(a)
		if err != nil {
			return nil, err
		}
		out = append(out, ope)
	}
	return out, nil
}

func (b *Builder) dataPropertyList(t Term, least int) ([]owl.DataProperty, error) {
	if err := b.atLeast(t, least); err != nil {
		return nil, err
	}
	out := make([]owl.DataProperty, 0, len(t.Args))
	for _, a := range t.Args {
		dp, err := b.dataProperty(a)
		if err != nil {
			return nil, err
		}
		out = append(out, dp)
	}
	return out, nil
}

// -- Data ranges --

// DataRange builds a data range.
func (b *Builder) DataRange(t Term) (owl.DataRange, error) {
	if t.Kind == TermIRI || t.Is("Datatype") {
		return b.datatype(t)
	}
	if t.Kind != TermCompound {
		return nil, b.errorf(t, "expected a data range, found %s", t.describe())
	}
	switch t.Value {
	case "DataIntersectionOf", "DataUnionOf":
		drs, err := b.dataRangeList(t, 2)
		if err != nil {
			return nil, err
		}
		if t.Value == "DataIntersectionOf" {
			return owl.DataIntersectionOf{Ranges: drs}, nil
		}
		return owl.DataUnionOf{Ranges: drs}, nil
	case "DataComplementOf":
		if err := b.arity(t, 1); err != nil {
			return nil, err
		}
		dr, err := b.DataRange(t.Args[0])
		if err != nil {
			return nil, err
		}
		return owl.DataComplementOf{Range: dr}, nil
	case "DataOneOf":
		if err := b.atLeast(t, 1); err != nil {
			return nil, err
		}
		lits := make([]owl.Literal, 0, len(t.Args))
		for _, a := range t.Args {
			lit, err := b.literal(a)
			if err != nil {
				return nil, err
			}
			lits = append(lits, lit)
		}
		return owl.DataOneOf{Literals: lits}, nil
	case "DatatypeRestriction":
		return b.datatypeRestriction(t)
	}
	return nil, b.errorf(t, "unknown data range %s", t.describe())
}

// datatypeRestriction accepts facet/literal pairs and FacetRestriction compounds.
func (b *Builder) datatypeRestriction(t Term) (owl.DataRange, error) {
	if err := b.atLeast(t, 2); err != nil {
		return nil, err
	}
	dt, err := b.datatype(t.Args[0])
	if err != nil {
		return nil, err
	}
	dr := owl.DatatypeRestriction{Datatype: dt}
	rest := t.Args[1:]
	for len(rest) > 0 {
		var facetTerm, litTerm Term
		if rest[0].Is("FacetRestriction") {
			if err := b.arity(rest[0], 2); err != nil {
				return nil, err
			}
			facetTerm, litTerm = rest[0].Args[0], rest[0].Args[1]
			rest = rest[1:]
		} else {
			if len(rest) < 2 {
				return nil, b.errorf(rest[0], "facet without a value")
			}
			facetTerm, litTerm = rest[0], rest[1]
			rest = rest[2:]
		}
		iri, err := b.iri(facetTerm)
		if err != nil {
			return nil, err
		}
		facet, ok := owl.FacetFromIRI(iri)
		if !ok {
			return nil, b.errorf(facetTerm, "unknown facet %s", iri)
		}
		lit, err := b.literal(litTerm)
		if err != nil {
			return nil, err
		}
		dr.Restrictions = append(dr.Restrictions, owl.FacetRestriction{Facet: facet, Value: lit})
	}
	return dr, nil
}

func (b *Builder) dataRangeList(t Term, least int) ([]owl.DataRange, error) {
	if err := b.atLeast(t, least); err != nil {
		return nil, err
	}
	out := make([]owl.DataRange, 0, len(t.Args))
	for _, a := range t.Args {
		dr, err := b.DataRange(a)
		if err != nil {
			return nil, err
		}
		out = append(out, dr)
	}
	return out, nil
}

// -- Class expressions --

// ClassExpression builds a class expression.
func (b *Builder) ClassExpression(t Term) (owl.ClassExpression, error) {
	if t.Kind == TermIRI || t.Is("Class") {
		return b.class(t)
	}
	if t.Kind != TermCompound {
		return nil, b.errorf(t, "expected a class expression, found %s", t.describe())
	}

	switch t.Value {
	case "ObjectIntersectionOf":
		ces, err := b.classExpressionList(t, 2)
		return owl.ObjectIntersectionOf{Classes: ces}, err
	case "ObjectUnionOf":
		ces, err := b.classExpressionList(t, 2)
		return owl.ObjectUnionOf{Classes: ces}, err
	case "ObjectComplementOf":
		if err := b.arity(t, 1); err != nil {
			return nil, err
		}
		ce, err := b.ClassExpression(t.Args[0])
		return owl.ObjectComplementOf{Class: ce}, err
	case "ObjectOneOf":
		inds, err := b.individualList(t, 1)
		return owl.ObjectOneOf{Individuals: inds}, err
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		ope, err := b.objectPropertyExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		filler, err := b.ClassExpression(t.Args[1])
		if err != nil {
			return nil, err
		}
		if t.Value == "ObjectSomeValuesFrom" {
			return owl.ObjectSomeValuesFrom{Property: ope, Filler: filler}, nil
		}
		return owl.ObjectAllValuesFrom{Property: ope, Filler: filler}, nil
	case "ObjectHasValue":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		ope, err := b.objectPropertyExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		ind, err := b.individual(t.Args[1])
		return owl.ObjectHasValue{Property: ope, Individual: ind}, err
	case "ObjectHasSelf":
		if err := b.arity(t, 1); err != nil {
			return nil, err
		}
		ope, err := b.objectPropertyExpression(t.Args[0])
		return owl.ObjectHasSelf{Property: ope}, err
	case "ObjectMinCardinality", "ObjectMaxCardinality", "ObjectExactCardinality":
		return b.objectCardinality(t)
	case "DataSomeValuesFrom", "DataAllValuesFrom":
		// n-ary data properties are not part of the model
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		dr, err := b.DataRange(t.Args[1])
		if err != nil {
			return nil, err
		}
		if t.Value == "DataSomeValuesFrom" {
			return owl.DataSomeValuesFrom{Property: dp, Range: dr}, nil
		}
		return owl.DataAllValuesFrom{Property: dp, Range: dr}, nil
	case "DataHasValue":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		lit, err := b.literal(t.Args[1])
		return owl.DataHasValue{Property: dp, Value: lit}, err
	case "DataMinCardinality", "DataMaxCardinality", "DataExactCardinality":
		return b.dataCardinality(t)
	}
	return nil, b.errorf(t, "unknown class expression %s", t.describe())
}

func (b *Builder) cardinality(t Term) (uint32, error) {
	if err := b.atLeast(t, 2); err != nil {
		return 0, err
	}
	if len(t.Args) > 3 {
		return 0, b.errorf(t, "%s takes at most 3 arguments, got %d", t.describe(), len(t.Args))
	}
	n := t.Args[0]
	if n.Kind != TermNumber {
		return 0, b.errorf(n, "expected a cardinality, found %s", n.describe())
	}
	v, err := strconv.ParseUint(n.Value, 10, 32)
	if err != nil {
		return 0, b.errorf(n, "invalid cardinality %q", n.Value)
	}
	return uint32(v), nil
}

// objectCardinality defaults an absent filler to owl:Thing.
func (b *Builder) objectCardinality(t Term) (owl.ClassExpression, error) {
	n, err := b.cardinality(t)
	if err != nil {
		return nil, err
	}
	ope, err := b.objectPropertyExpression(t.Args[1])
	if err != nil {
		return nil, err
	}
	var filler owl.ClassExpression = owlThing
	if len(t.Args) == 3 {
		if filler, err = b.ClassExpression(t.Args[2]); err != nil {
			return nil, err
		}
	}
	switch t.Value {
	case "ObjectMinCardinality":
		return owl.ObjectMinCardinality{N: n, Property: ope, Filler: filler}, nil
	case "ObjectMaxCardinality":
		return owl.ObjectMaxCardinality{N: n, Property: ope, Filler: filler}, nil
	}
	return owl.ObjectExactCardinality{N: n, Property: ope, Filler: filler}, nil
}

// dataCardinality defaults an absent range to rdfs:Literal.
func (b *Builder) dataCardinality(t Term) (owl.ClassExpression, error) {
	n, err := b.cardinality(t)
	if err != nil {
		return nil, err
	}
	dp, err := b.dataProperty(t.Args[1])
	if err != nil {
		return nil, err
	}
	var dr owl.DataRange = rdfsLiteral
	if len(t.Args) == 3 {
		if dr, err = b.DataRange(t.Args[2]); err != nil {
			return nil, err
		}
	}
	switch t.Value {
	case "DataMinCardinality":
		return owl.DataMinCardinality{N: n, Property: dp, Range: dr}, nil
	case "DataMaxCardinality":
		return owl.DataMaxCardinality{N: n, Property: dp, Range: dr}, nil
	}
	return owl.DataExactCardinality{N: n, Property: dp, Range: dr}, nil
}

func (b *Builder) classExpressions(args []Term) ([]owl.ClassExpression, error) {
	out := make([]owl.ClassExpression, 0, len(args))
	for _, a := range args {
		ce, err := b.ClassExpression(a)
		if err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, nil
}

func (b *Builder) classExpressionList(t Term, least int) ([]owl.ClassExpression, error) {
	if err := b.atLeast(t, least); err != nil {
		return nil, err
	}
	return b.classExpressions(t.Args)
}

func (b *Builder) classExpressionsN(t Term, n int) ([]owl.ClassExpression, error) {
	if err := b.arity(t, n); err != nil {
		return nil, err
	}
	return b.classExpressions(t.Args)
}

// -- Rules --

func (b *Builder) rule(t Term) (owl.Component, error) {
	var r owl.Rule
	var sawBody, sawHead bool
	for _, part := range t.Args {
		atoms, err := b.atoms(part)
		if err != nil {
			return nil, err
		}
		switch part.Value {
		case "Body":
			r.Body, sawBody = atoms, true
		case "Head":
			r.Head, sawHead = atoms, true
		}
	}
	if !sawBody || !sawHead {
		return nil, b.errorf(t, "DLSafeRule needs a Body and a Head")
	}
	return r, nil
}

func (b *Builder) atoms(t Term) ([]owl.Atom, error) {
	if !t.Is("Body") && !t.Is("Head") {
		return nil, b.errorf(t, "expected Body or Head, found %s", t.describe())
	}
	out := make([]owl.Atom, 0, len(t.Args))
	for _, a := range t.Args {
		atom, err := b.atom(a)
		if err != nil {
			return nil, err
		}
		out = append(out, atom)
	}
	return out, nil
}

func (b *Builder) atom(t Term) (owl.Atom, error) {
	if t.Kind != TermCompound {
		return nil, b.errorf(t, "expected an atom, found %s", t.describe())
	}
	switch t.Value {
	case "ClassAtom":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		ce, err := b.ClassExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		arg, err := b.iArgument(t.Args[1])
		return owl.ClassAtom{Predicate: ce, Arg: arg}, err
	case "DataRangeAtom":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		dr, err := b.DataRange(t.Args[0])
		if err != nil {
			return nil, err
		}
		arg, err := b.dArgument(t.Args[1])
		return owl.DataRangeAtom{Predicate: dr, Arg: arg}, err
	case "ObjectPropertyAtom":
		if err := b.arity(t, 3); err != nil {
			return nil, err
		}
		ope, err := b.objectPropertyExpression(t.Args[0])
		if err != nil {
			return nil, err
		}
		s, err := b.iArgument(t.Args[1])
		if err != nil {
			return nil, err
		}
		o, err := b.iArgument(t.Args[2])
		return owl.ObjectPropertyAtom{Predicate: ope, Subject: s, Object: o}, err
	case "DataPropertyAtom":
		if err := b.arity(t, 3); err != nil {
			return nil, err
		}
		dp, err := b.dataProperty(t.Args[0])
		if err != nil {
			return nil, err
		}
		s, err := b.dArgument(t.Args[1])
		if err != nil {
			return nil, err
		}
		o, err := b.dArgument(t.Args[2])
		return owl.DataPropertyAtom{Predicate: dp, Subject: s, Object: o}, err
	case "BuiltInAtom":
		if err := b.atLeast(t, 1); err != nil {
			return nil, err
		}
		pred, err := b.iri(t.Args[0])
		if err != nil {
			return nil, err
		}
		atom := owl.BuiltInAtom{Predicate: pred}
		for _, a := range t.Args[1:] {
			d, err := b.dArgument(a)
			if err != nil {
				return nil, err
			}
			atom.Args = append(atom.Args, d)
		}
		return atom, nil
	case "SameIndividualAtom", "DifferentIndividualsAtom":
		if err := b.arity(t, 2); err != nil {
			return nil, err
		}
		first, err := b.iArgument(t.Args[0])
		if err != nil {
			return nil, err
		}
		second, err := b.iArgument(t.Args[1])
		if err != nil {
			return nil, err
		}
		if t.Value == "SameIndividualAtom" {
			return owl.SameIndividualAtom{First: first, Second: second}, nil
		}
		return owl.DifferentIndividualsAtom{First: first, Second: second}, nil
	}
	return nil, b.errorf(t, "unknown atom %s", t.describe())
}

func (b *Builder) variable(t Term) (owl.Variable, error) {
	if err := b.arity(t, 1); err != nil {
		return owl.Variable{}, err
	}
	iri, err := b.iri(t.Args[0])
	return owl.Variable{IRI: iri}, err
}

func (b *Builder) iArgument(t Term) (owl.IArgument, error) {
	if t.Is("Variable") {
		return b.variable(t)
	}
	ind, err := b.individual(t)
	if err != nil {
		return nil, err
	}
	return ind.(owl.IArgument), nil
}

func (b *Builder) dArgument(t Term) (owl.DArgument, error) {
	if t.Is("Variable") {
		return b.variable(t)
	}
	return b.literal(t)
}
