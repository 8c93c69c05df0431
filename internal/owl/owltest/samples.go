// File: internal/owl/owltest/samples.go

// Package owltest provides shared ontology fixtures for tests.
package owltest

import "github.com/WebVOWL/horned-owl-serializer/internal/owl"

const base = "http://example.org/test#"

// IRI returns an IRI in the fixture namespace.
func IRI(local string) owl.IRI { return owl.IRI(base + local) }

func Class(local string) owl.Class                   { return owl.Class{IRI: IRI(local)} }
func ObjectProperty(local string) owl.ObjectProperty { return owl.ObjectProperty{IRI: IRI(local)} }
func DataProperty(local string) owl.DataProperty     { return owl.DataProperty{IRI: IRI(local)} }
func Datatype(local string) owl.Datatype             { return owl.Datatype{IRI: IRI(local)} }
func Individual(local string) owl.NamedIndividual    { return owl.NamedIndividual{IRI: IRI(local)} }
func AnnotationProperty(local string) owl.AnnotationProperty {
	return owl.AnnotationProperty{IRI: IRI(local)}
}

// Label is an rdfs:label annotation with a plain literal.
func Label(text string) owl.Annotation {
	return owl.Annotation{
		Property: owl.AnnotationProperty{IRI: owl.IRI(owl.NamespaceRDFS + "label")},
		Value:    owl.Literal{Value: text},
	}
}

// SampleComponent returns one small, fully populated component of the given kind.
// It panics on an unknown kind so that a new kind cannot silently go untested.
func SampleComponent(kind owl.ComponentKind) owl.Component {
	a, b := Class("A"), Class("B")
	p, q := ObjectProperty("p"), ObjectProperty("q")
	d, e := DataProperty("d"), DataProperty("e")
	i, j := Individual("i"), Individual("j")
	lit := owl.Literal{Value: "42", Datatype: owl.IRI(owl.NamespaceXSD + "integer")}
	ap := AnnotationProperty("note")

	switch kind {
	case owl.KindOntologyID:
		return owl.OntologyID{IRI: IRI("ont"), VersionIRI: IRI("ont/1.0")}
	case owl.KindDocIRI:
		return owl.DocIRI{IRI: IRI("doc")}
	case owl.KindImport:
		return owl.Import{IRI: IRI("imported")}
	case owl.KindOntologyAnnotation:
		return owl.OntologyAnnotation{Annotation: Label("ontology")}
	case owl.KindDeclareClass:
		return owl.DeclareClass{Class: a}
	case owl.KindDeclareObjectProperty:
		return owl.DeclareObjectProperty{Property: p}
	case owl.KindDeclareAnnotationProperty:
		return owl.DeclareAnnotationProperty{Property: ap}
	case owl.KindDeclareDataProperty:
		return owl.DeclareDataProperty{Property: d}
	case owl.KindDeclareNamedIndividual:
		return owl.DeclareNamedIndividual{Individual: i}
	case owl.KindDeclareDatatype:
		return owl.DeclareDatatype{Datatype: Datatype("dt")}
	case owl.KindSubClassOf:
		return owl.SubClassOf{Sub: a, Sup: b}
	case owl.KindEquivalentClasses:
		return owl.EquivalentClasses{Classes: []owl.ClassExpression{a, owl.ObjectComplementOf{Class: b}}}
	case owl.KindDisjointClasses:
		return owl.DisjointClasses{Classes: []owl.ClassExpression{a, b}}
	case owl.KindDisjointUnion:
		return owl.DisjointUnion{Class: Class("U"), Classes: []owl.ClassExpression{a, b}}
	case owl.KindSubObjectPropertyOf:
		return owl.SubObjectPropertyOf{Sub: owl.ObjectPropertyChain{Properties: []owl.ObjectPropertyExpression{p, q}}, Sup: ObjectProperty("r")}
	case owl.KindEquivalentObjectProperties:
		return owl.EquivalentObjectProperties{Properties: []owl.ObjectPropertyExpression{p, q}}
	case owl.KindDisjointObjectProperties:
		return owl.DisjointObjectProperties{Properties: []owl.ObjectPropertyExpression{p, q}}
	case owl.KindInverseObjectProperties:
		return owl.InverseObjectProperties{First: p, Second: q}
	case owl.KindObjectPropertyDomain:
		return owl.ObjectPropertyDomain{Property: p, Domain: a}
	case owl.KindObjectPropertyRange:
		return owl.ObjectPropertyRange{Property: p, Range: b}
	case owl.KindFunctionalObjectProperty:
		return owl.FunctionalObjectProperty{Property: p}
	case owl.KindInverseFunctionalObjectProperty:
		return owl.InverseFunctionalObjectProperty{Property: owl.InverseObjectProperty{Property: p}}
	case owl.KindReflexiveObjectProperty:
		return owl.ReflexiveObjectProperty{Property: p}
	case owl.KindIrreflexiveObjectProperty:
		return owl.IrreflexiveObjectProperty{Property: p}
	case owl.KindSymmetricObjectProperty:
		return owl.SymmetricObjectProperty{Property: p}
	case owl.KindAsymmetricObjectProperty:
		return owl.AsymmetricObjectProperty{Property: p}
	case owl.KindTransitiveObjectProperty:
		return owl.TransitiveObjectProperty{Property: p}
	case owl.KindSubDataPropertyOf:
		return owl.SubDataPropertyOf{Sub: d, Sup: e}
	case owl.KindEquivalentDataProperties:
		return owl.EquivalentDataProperties{Properties: []owl.DataProperty{d, e}}
	case owl.KindDisjointDataProperties:
		return owl.DisjointDataProperties{Properties: []owl.DataProperty{d, e}}
	case owl.KindDataPropertyDomain:
		return owl.DataPropertyDomain{Property: d, Domain: a}
	case owl.KindDataPropertyRange:
		return owl.DataPropertyRange{Property: d, Range: owl.Datatype{IRI: owl.IRI(owl.NamespaceXSD + "string")}}
	case owl.KindFunctionalDataProperty:
		return owl.FunctionalDataProperty{Property: d}
	case owl.KindDatatypeDefinition:
		return owl.DatatypeDefinition{
			Datatype: Datatype("adult"),
			Range: owl.DatatypeRestriction{
				Datatype:     owl.Datatype{IRI: owl.IRI(owl.NamespaceXSD + "integer")},
				Restrictions: []owl.FacetRestriction{{Facet: owl.FacetMinInclusive, Value: owl.Literal{Value: "18"}}},
			},
		}
	case owl.KindHasKey:
		return owl.HasKey{Class: a, Properties: []owl.PropertyExpression{p, d}}
	case owl.KindSameIndividual:
		return owl.SameIndividual{Individuals: []owl.Individual{i, j}}
	case owl.KindDifferentIndividuals:
		return owl.DifferentIndividuals{Individuals: []owl.Individual{i, owl.AnonymousIndividual{ID: "_:b0"}}}
	case owl.KindClassAssertion:
		return owl.ClassAssertion{Class: a, Individual: i}
	case owl.KindObjectPropertyAssertion:
		return owl.ObjectPropertyAssertion{Property: p, From: i, To: j}
	case owl.KindNegativeObjectPropertyAssertion:
		return owl.NegativeObjectPropertyAssertion{Property: p, From: i, To: j}
	case owl.KindDataPropertyAssertion:
		return owl.DataPropertyAssertion{Property: d, From: i, To: lit}
	case owl.KindNegativeDataPropertyAssertion:
		return owl.NegativeDataPropertyAssertion{Property: d, From: i, To: lit}
	case owl.KindAnnotationAssertion:
		return owl.AnnotationAssertion{Subject: a.IRI, Annotation: Label("A")}
	case owl.KindSubAnnotationPropertyOf:
		return owl.SubAnnotationPropertyOf{Sub: ap, Sup: AnnotationProperty("comment")}
	case owl.KindAnnotationPropertyDomain:
		return owl.AnnotationPropertyDomain{Property: ap, IRI: a.IRI}
	case owl.KindAnnotationPropertyRange:
		return owl.AnnotationPropertyRange{Property: ap, IRI: owl.IRI(owl.NamespaceXSD + "string")}
	case owl.KindRule:
		x := owl.Variable{IRI: IRI("x")}
		y := owl.Variable{IRI: IRI("y")}
		return owl.Rule{
			Body: []owl.Atom{
				owl.ClassAtom{Predicate: a, Arg: x},
				owl.ObjectPropertyAtom{Predicate: p, Subject: x, Object: y},
			},
			Head: []owl.Atom{owl.ClassAtom{Predicate: b, Arg: y}},
		}
	}
	panic("owltest: no sample for " + kind.String())
}

// AllSamples returns a document holding one sample of every component kind.
func AllSamples() *owl.Document {
	doc := &owl.Document{}
	for _, k := range owl.AllComponentKinds() {
		doc.Add(SampleComponent(k))
	}
	return doc
}

// Pizza is a small ontology in the shape of the classic tutorial: a class
// hierarchy, a restriction, a property with domain and range, and individuals.
func Pizza() *owl.Document {
	pizza, margherita, topping := Class("Pizza"), Class("Margherita"), Class("Topping")
	hasTopping := ObjectProperty("hasTopping")
	calories := DataProperty("calories")
	m1, tomato := Individual("m1"), Individual("tomato")

	doc := &owl.Document{ID: owl.OntologyID{IRI: IRI("pizza")}}
	doc.Add(owl.DeclareClass{Class: pizza}, Label("Pizza"))
	doc.Add(owl.DeclareClass{Class: margherita})
	doc.Add(owl.DeclareClass{Class: topping})
	doc.Add(owl.DeclareObjectProperty{Property: hasTopping})
	doc.Add(owl.DeclareDataProperty{Property: calories})
	doc.Add(owl.SubClassOf{Sub: margherita, Sup: pizza})
	doc.Add(owl.SubClassOf{Sub: margherita, Sup: owl.ObjectSomeValuesFrom{Property: hasTopping, Filler: topping}})
	doc.Add(owl.ObjectPropertyDomain{Property: hasTopping, Domain: pizza})
	doc.Add(owl.ObjectPropertyRange{Property: hasTopping, Range: topping})
	doc.Add(owl.ClassAssertion{Class: margherita, Individual: m1})
	doc.Add(owl.ClassAssertion{Class: topping, Individual: tomato})
	doc.Add(owl.ObjectPropertyAssertion{Property: hasTopping, From: m1, To: tomato})
	doc.Add(owl.DataPropertyAssertion{Property: calories, From: m1, To: owl.Literal{Value: "800", Datatype: owl.IRI(owl.NamespaceXSD + "integer")}})
	return doc
}
