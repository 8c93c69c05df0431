// File: internal/entity/entity.go

// Package entity collects identifiers from an ontology document with the
// context-free walker. Nothing here depends on where in the tree an identifier
// appears, only on the order in which it is reached.
package entity

import (
	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/walker"
)

// Kind is the grammar kind an identifier was found under.
type Kind string

const (
	KindClass               Kind = "class"
	KindDatatype            Kind = "datatype"
	KindObjectProperty      Kind = "objectProperty"
	KindDataProperty        Kind = "dataProperty"
	KindAnnotationProperty  Kind = "annotationProperty"
	KindNamedIndividual     Kind = "namedIndividual"
	KindAnonymousIndividual Kind = "anonymousIndividual"
)

// Entity is one identifier occurrence together with its kind.
type Entity struct {
	Kind Kind
	ID   string
}

// IRICollector records every IRI occurrence in traversal order, including the
// ontology IRI, annotation subjects and datatype IRIs of literals.
type IRICollector struct {
	walker.BaseVisitor
	iris []owl.IRI
}

func (c *IRICollector) VisitIRI(iri owl.IRI) {
	c.iris = append(c.iris, iri)
}

// IRIs returns the recorded occurrences. Repeats are kept.
func (c *IRICollector) IRIs() []owl.IRI {
	return c.iris
}

// EntityCollector records every entity occurrence and every anonymous
// individual in traversal order.
type EntityCollector struct {
	walker.BaseVisitor
	entities []Entity
}

func (c *EntityCollector) add(kind Kind, id string) {
	c.entities = append(c.entities, Entity{Kind: kind, ID: id})
}

func (c *EntityCollector) VisitClass(x owl.Class)       { c.add(KindClass, string(x.IRI)) }
func (c *EntityCollector) VisitDatatype(x owl.Datatype) { c.add(KindDatatype, string(x.IRI)) }
func (c *EntityCollector) VisitDataProperty(x owl.DataProperty) {
	c.add(KindDataProperty, string(x.IRI))
}
func (c *EntityCollector) VisitObjectProperty(x owl.ObjectProperty) {
	c.add(KindObjectProperty, string(x.IRI))
}
func (c *EntityCollector) VisitAnnotationProperty(x owl.AnnotationProperty) {
	c.add(KindAnnotationProperty, string(x.IRI))
}
func (c *EntityCollector) VisitNamedIndividual(x owl.NamedIndividual) {
	c.add(KindNamedIndividual, string(x.IRI))
}
func (c *EntityCollector) VisitAnonymousIndividual(x owl.AnonymousIndividual) {
	c.add(KindAnonymousIndividual, x.ID)
}

// Entities returns the recorded occurrences. Repeats are kept.
func (c *EntityCollector) Entities() []Entity {
	return c.entities
}

// CollectIRIs walks doc and returns its distinct IRIs in first-seen order.
func CollectIRIs(doc *owl.Document, opts ...walker.Opt) ([]owl.IRI, error) {
	c := &IRICollector{}
	err := walker.Walk(doc, c, opts...)
	return Distinct(c.IRIs()), err
}

// CollectEntities walks doc and returns its distinct entities in first-seen order.
// An IRI used as two different kinds (punning) appears once per kind.
func CollectEntities(doc *owl.Document, opts ...walker.Opt) ([]Entity, error) {
	c := &EntityCollector{}
	err := walker.Walk(doc, c, opts...)
	return Distinct(c.Entities()), err
}

// Distinct drops repeated values, keeping the first occurrence of each.
func Distinct[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}
