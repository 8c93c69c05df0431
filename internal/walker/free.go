// File: internal/walker/free.go
package walker

import "github.com/WebVOWL/horned-owl-serializer/internal/owl"

// Visitor is the context-free hook set: each hook sees only its node.
// It is driven by the same dispatch table as ContextVisitor, so the visiting
// order is identical.
type Visitor interface {
	VisitDocument(doc *owl.Document)
	VisitOntologyID(id owl.OntologyID)
	VisitAnnotatedComponent(ac owl.AnnotatedComponent)
	VisitComponent(c owl.Component)
	VisitAnnotations(anns []owl.Annotation)
	VisitIRI(iri owl.IRI)
	VisitString(s string)
	VisitCardinality(n uint32)
	VisitAnonymousIndividual(ai owl.AnonymousIndividual)
	VisitIndividual(ind owl.Individual)
	VisitAnnotationSubject(subj owl.AnnotationSubject)
	VisitClass(c owl.Class)
	VisitDatatype(dt owl.Datatype)
	VisitObjectProperty(op owl.ObjectProperty)
	VisitDataProperty(dp owl.DataProperty)
	VisitAnnotationProperty(ap owl.AnnotationProperty)
	VisitNamedIndividual(ni owl.NamedIndividual)
	VisitDocIRI(ax owl.DocIRI)
	VisitImport(ax owl.Import)
	VisitOntologyAnnotation(ax owl.OntologyAnnotation)
	VisitDeclareClass(ax owl.DeclareClass)
	VisitDeclareObjectProperty(ax owl.DeclareObjectProperty)
	VisitDeclareAnnotationProperty(ax owl.DeclareAnnotationProperty)
	VisitDeclareDataProperty(ax owl.DeclareDataProperty)
	VisitDeclareNamedIndividual(ax owl.DeclareNamedIndividual)
	VisitDeclareDatatype(ax owl.DeclareDatatype)
	VisitSubClassOf(ax owl.SubClassOf)
	VisitEquivalentClasses(ax owl.EquivalentClasses)
	VisitDisjointClasses(ax owl.DisjointClasses)
	VisitDisjointUnion(ax owl.DisjointUnion)
	VisitSubObjectPropertyOf(ax owl.SubObjectPropertyOf)
	VisitEquivalentObjectProperties(ax owl.EquivalentObjectProperties)
	VisitDisjointObjectProperties(ax owl.DisjointObjectProperties)
	VisitInverseObjectProperties(ax owl.InverseObjectProperties)
	VisitObjectPropertyDomain(ax owl.ObjectPropertyDomain)
	VisitObjectPropertyRange(ax owl.ObjectPropertyRange)
	VisitFunctionalObjectProperty(ax owl.FunctionalObjectProperty)
	VisitInverseFunctionalObjectProperty(ax owl.InverseFunctionalObjectProperty)
	VisitReflexiveObjectProperty(ax owl.ReflexiveObjectProperty)
	VisitIrreflexiveObjectProperty(ax owl.IrreflexiveObjectProperty)
	VisitSymmetricObjectProperty(ax owl.SymmetricObjectProperty)
	VisitAsymmetricObjectProperty(ax owl.AsymmetricObjectProperty)
	VisitTransitiveObjectProperty(ax owl.TransitiveObjectProperty)
	VisitSubDataPropertyOf(ax owl.SubDataPropertyOf)
	VisitEquivalentDataProperties(ax owl.EquivalentDataProperties)
	VisitDisjointDataProperties(ax owl.DisjointDataProperties)
	VisitDataPropertyDomain(ax owl.DataPropertyDomain)
	VisitDataPropertyRange(ax owl.DataPropertyRange)
	VisitFunctionalDataProperty(ax owl.FunctionalDataProperty)
	VisitDatatypeDefinition(ax owl.DatatypeDefinition)
	VisitHasKey(ax owl.HasKey)
	VisitSameIndividual(ax owl.SameIndividual)
	VisitDifferentIndividuals(ax owl.DifferentIndividuals)
	VisitClassAssertion(ax owl.ClassAssertion)
	VisitObjectPropertyAssertion(ax owl.ObjectPropertyAssertion)
	VisitNegativeObjectPropertyAssertion(ax owl.NegativeObjectPropertyAssertion)
	VisitDataPropertyAssertion(ax owl.DataPropertyAssertion)
	VisitNegativeDataPropertyAssertion(ax owl.NegativeDataPropertyAssertion)
	VisitAnnotationAssertion(ax owl.AnnotationAssertion)
	VisitSubAnnotationPropertyOf(ax owl.SubAnnotationPropertyOf)
	VisitAnnotationPropertyDomain(ax owl.AnnotationPropertyDomain)
	VisitAnnotationPropertyRange(ax owl.AnnotationPropertyRange)
	VisitRule(r owl.Rule)
	VisitAtom(a owl.Atom)
	VisitVariable(v owl.Variable)
	VisitIArgument(arg owl.IArgument)
	VisitDArgument(arg owl.DArgument)
	VisitLiteral(lit owl.Literal)
	VisitAnnotation(ann owl.Annotation)
	VisitAnnotationValue(av owl.AnnotationValue)
	VisitObjectPropertyExpression(ope owl.ObjectPropertyExpression)
	VisitSubObjectPropertyExpression(sope owl.SubObjectPropertyExpression)
	VisitPropertyExpression(pe owl.PropertyExpression)
	VisitFacetRestriction(fr owl.FacetRestriction)
	VisitFacet(f owl.Facet)
	VisitDataRange(dr owl.DataRange)
	VisitClassExpression(ce owl.ClassExpression)
	VisitClassExpressions(ces []owl.ClassExpression)
	VisitObjectPropertyExpressions(opes []owl.ObjectPropertyExpression)
	VisitDataProperties(dps []owl.DataProperty)
	VisitDataRanges(drs []owl.DataRange)
	VisitIndividuals(inds []owl.Individual)
	VisitLiterals(lits []owl.Literal)
	VisitFacetRestrictions(frs []owl.FacetRestriction)
	VisitAtoms(atoms []owl.Atom)
	VisitDArguments(args []owl.DArgument)
}

// BaseVisitor implements every Visitor hook as a no-op.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*owl.Document)                                              {}
func (BaseVisitor) VisitOntologyID(owl.OntologyID)                                           {}
func (BaseVisitor) VisitAnnotatedComponent(owl.AnnotatedComponent)                           {}
func (BaseVisitor) VisitComponent(owl.Component)                                             {}
func (BaseVisitor) VisitAnnotations([]owl.Annotation)                                        {}
func (BaseVisitor) VisitIRI(owl.IRI)                                                         {}
func (BaseVisitor) VisitString(string)                                                       {}
func (BaseVisitor) VisitCardinality(uint32)                                                  {}
func (BaseVisitor) VisitAnonymousIndividual(owl.AnonymousIndividual)                         {}
func (BaseVisitor) VisitIndividual(owl.Individual)                                           {}
func (BaseVisitor) VisitAnnotationSubject(owl.AnnotationSubject)                             {}
func (BaseVisitor) VisitClass(owl.Class)                                                     {}
func (BaseVisitor) VisitDatatype(owl.Datatype)                                               {}
func (BaseVisitor) VisitObjectProperty(owl.ObjectProperty)                                   {}
func (BaseVisitor) VisitDataProperty(owl.DataProperty)                                       {}
func (BaseVisitor) VisitAnnotationProperty(owl.AnnotationProperty)                           {}
func (BaseVisitor) VisitNamedIndividual(owl.NamedIndividual)                                 {}
func (BaseVisitor) VisitDocIRI(owl.DocIRI)                                                   {}
func (BaseVisitor) VisitImport(owl.Import)                                                   {}
func (BaseVisitor) VisitOntologyAnnotation(owl.OntologyAnnotation)                           {}
func (BaseVisitor) VisitDeclareClass(owl.DeclareClass)                                       {}
func (BaseVisitor) VisitDeclareObjectProperty(owl.DeclareObjectProperty)                     {}
func (BaseVisitor) VisitDeclareAnnotationProperty(owl.DeclareAnnotationProperty)             {}
func (BaseVisitor) VisitDeclareDataProperty(owl.DeclareDataProperty)                         {}
func (BaseVisitor) VisitDeclareNamedIndividual(owl.DeclareNamedIndividual)                   {}
func (BaseVisitor) VisitDeclareDatatype(owl.DeclareDatatype)                                 {}
func (BaseVisitor) VisitSubClassOf(owl.SubClassOf)                                           {}
func (BaseVisitor) VisitEquivalentClasses(owl.EquivalentClasses)                             {}
func (BaseVisitor) VisitDisjointClasses(owl.DisjointClasses)                                 {}
func (BaseVisitor) VisitDisjointUnion(owl.DisjointUnion)                                     {}
func (BaseVisitor) VisitSubObjectPropertyOf(owl.SubObjectPropertyOf)                         {}
func (BaseVisitor) VisitEquivalentObjectProperties(owl.EquivalentObjectProperties)           {}
func (BaseVisitor) VisitDisjointObjectProperties(owl.DisjointObjectProperties)               {}
func (BaseVisitor) VisitInverseObjectProperties(owl.InverseObjectProperties)                 {}
func (BaseVisitor) VisitObjectPropertyDomain(owl.ObjectPropertyDomain)                       {}
func (BaseVisitor) VisitObjectPropertyRange(owl.ObjectPropertyRange)                         {}
func (BaseVisitor) VisitFunctionalObjectProperty(owl.FunctionalObjectProperty)               {}
func (BaseVisitor) VisitInverseFunctionalObjectProperty(owl.InverseFunctionalObjectProperty) {}
func (BaseVisitor) VisitReflexiveObjectProperty(owl.ReflexiveObjectProperty)                 {}
func (BaseVisitor) VisitIrreflexiveObjectProperty(owl.IrreflexiveObjectProperty)             {}
func (BaseVisitor) VisitSymmetricObjectProperty(owl.SymmetricObjectProperty)                 {}
func (BaseVisitor) VisitAsymmetricObjectProperty(owl.AsymmetricObjectProperty)               {}
func (BaseVisitor) VisitTransitiveObjectProperty(owl.TransitiveObjectProperty)               {}
func (BaseVisitor) VisitSubDataPropertyOf(owl.SubDataPropertyOf)                             {}
func (BaseVisitor) VisitEquivalentDataProperties(owl.EquivalentDataProperties)               {}
func (BaseVisitor) VisitDisjointDataProperties(owl.DisjointDataProperties)                   {}
func (BaseVisitor) VisitDataPropertyDomain(owl.DataPropertyDomain)                           {}
func (BaseVisitor) VisitDataPropertyRange(owl.DataPropertyRange)                             {}
func (BaseVisitor) VisitFunctionalDataProperty(owl.FunctionalDataProperty)                   {}
func (BaseVisitor) VisitDatatypeDefinition(owl.DatatypeDefinition)                           {}
func (BaseVisitor) VisitHasKey(owl.HasKey)                                                   {}
func (BaseVisitor) VisitSameIndividual(owl.SameIndividual)                                   {}
func (BaseVisitor) VisitDifferentIndividuals(owl.DifferentIndividuals)                       {}
func (BaseVisitor) VisitClassAssertion(owl.ClassAssertion)                                   {}
func (BaseVisitor) VisitObjectPropertyAssertion(owl.ObjectPropertyAssertion)                 {}
func (BaseVisitor) VisitNegativeObjectPropertyAssertion(owl.NegativeObjectPropertyAssertion) {}
func (BaseVisitor) VisitDataPropertyAssertion(owl.DataPropertyAssertion)                     {}
func (BaseVisitor) VisitNegativeDataPropertyAssertion(owl.NegativeDataPropertyAssertion)     {}
func (BaseVisitor) VisitAnnotationAssertion(owl.AnnotationAssertion)                         {}
func (BaseVisitor) VisitSubAnnotationPropertyOf(owl.SubAnnotationPropertyOf)                 {}
func (BaseVisitor) VisitAnnotationPropertyDomain(owl.AnnotationPropertyDomain)               {}
func (BaseVisitor) VisitAnnotationPropertyRange(owl.AnnotationPropertyRange)                 {}
func (BaseVisitor) VisitRule(owl.Rule)                                                       {}
func (BaseVisitor) VisitAtom(owl.Atom)                                                       {}
func (BaseVisitor) VisitVariable(owl.Variable)                                               {}
func (BaseVisitor) VisitIArgument(owl.IArgument)                                             {}
func (BaseVisitor) VisitDArgument(owl.DArgument)                                             {}
func (BaseVisitor) VisitLiteral(owl.Literal)                                                 {}
func (BaseVisitor) VisitAnnotation(owl.Annotation)                                           {}
func (BaseVisitor) VisitAnnotationValue(owl.AnnotationValue)                                 {}
func (BaseVisitor) VisitObjectPropertyExpression(owl.ObjectPropertyExpression)               {}
func (BaseVisitor) VisitSubObjectPropertyExpression(owl.SubObjectPropertyExpression)         {}
func (BaseVisitor) VisitPropertyExpression(owl.PropertyExpression)                           {}
func (BaseVisitor) VisitFacetRestriction(owl.FacetRestriction)                               {}
func (BaseVisitor) VisitFacet(owl.Facet)                                                     {}
func (BaseVisitor) VisitDataRange(owl.DataRange)                                             {}
func (BaseVisitor) VisitClassExpression(owl.ClassExpression)                                 {}
func (BaseVisitor) VisitClassExpressions([]owl.ClassExpression)                              {}
func (BaseVisitor) VisitObjectPropertyExpressions([]owl.ObjectPropertyExpression)            {}
func (BaseVisitor) VisitDataProperties([]owl.DataProperty)                                   {}
func (BaseVisitor) VisitDataRanges([]owl.DataRange)                                          {}
func (BaseVisitor) VisitIndividuals([]owl.Individual)                                        {}
func (BaseVisitor) VisitLiterals([]owl.Literal)                                              {}
func (BaseVisitor) VisitFacetRestrictions([]owl.FacetRestriction)                            {}
func (BaseVisitor) VisitAtoms([]owl.Atom)                                                    {}
func (BaseVisitor) VisitDArguments([]owl.DArgument)                                          {}

// Walk traverses doc with a context-free visitor.
func Walk(doc *owl.Document, v Visitor, opts ...Opt) error {
	return New[struct{}](freeVisitor{v: v}, opts...).Document(doc)
}

// freeVisitor lifts a Visitor into a ContextVisitor that never synthesizes a value.
type freeVisitor struct {
	v Visitor
}

type none = Option[struct{}]

func (f freeVisitor) VisitDocument(_ none, doc *owl.Document) none {
	f.v.VisitDocument(doc)
	return none{}
}

func (f freeVisitor) VisitOntologyID(_ none, id owl.OntologyID) none {
	f.v.VisitOntologyID(id)
	return none{}
}

func (f freeVisitor) VisitAnnotatedComponent(_ none, ac owl.AnnotatedComponent) none {
	f.v.VisitAnnotatedComponent(ac)
	return none{}
}

func (f freeVisitor) VisitComponent(_ none, c owl.Component) none {
	f.v.VisitComponent(c)
	return none{}
}

func (f freeVisitor) VisitAnnotations(_ none, anns []owl.Annotation) none {
	f.v.VisitAnnotations(anns)
	return none{}
}

func (f freeVisitor) VisitIRI(_ none, iri owl.IRI) none {
	f.v.VisitIRI(iri)
	return none{}
}

func (f freeVisitor) VisitString(_ none, s string) none {
	f.v.VisitString(s)
	return none{}
}

func (f freeVisitor) VisitCardinality(_ none, n uint32) none {
	f.v.VisitCardinality(n)
	return none{}
}

func (f freeVisitor) VisitAnonymousIndividual(_ none, ai owl.AnonymousIndividual) none {
	f.v.VisitAnonymousIndividual(ai)
	return none{}
}

func (f freeVisitor) VisitIndividual(_ none, ind owl.Individual) none {
	f.v.VisitIndividual(ind)
	return none{}
}

func (f freeVisitor) VisitAnnotationSubject(_ none, subj owl.AnnotationSubject) none {
	f.v.VisitAnnotationSubject(subj)
	return none{}
}

func (f freeVisitor) VisitClass(_ none, c owl.Class) none {
	f.v.VisitClass(c)
	return none{}
}

func (f freeVisitor) VisitDatatype(_ none, dt owl.Datatype) none {
	f.v.VisitDatatype(dt)
	return none{}
}

func (f freeVisitor) VisitObjectProperty(_ none, op owl.ObjectProperty) none {
	f.v.VisitObjectProperty(op)
	return none{}
}

func (f freeVisitor) VisitDataProperty(_ none, dp owl.DataProperty) none {
	f.v.VisitDataProperty(dp)
	return none{}
}

func (f freeVisitor) VisitAnnotationProperty(_ none, ap owl.AnnotationProperty) none {
	f.v.VisitAnnotationProperty(ap)
	return none{}
}

func (f freeVisitor) VisitNamedIndividual(_ none, ni owl.NamedIndividual) none {
	f.v.VisitNamedIndividual(ni)
	return none{}
}

func (f freeVisitor) VisitDocIRI(_ none, ax owl.DocIRI) none {
	f.v.VisitDocIRI(ax)
	return none{}
}

func (f freeVisitor) VisitImport(_ none, ax owl.Import) none {
	f.v.VisitImport(ax)
	return none{}
}

func (f freeVisitor) VisitOntologyAnnotation(_ none, ax owl.OntologyAnnotation) none {
	f.v.VisitOntologyAnnotation(ax)
	return none{}
}

func (f freeVisitor) VisitDeclareClass(_ none, ax owl.DeclareClass) none {
	f.v.VisitDeclareClass(ax)
	return none{}
}

func (f freeVisitor) VisitDeclareObjectProperty(_ none, ax owl.DeclareObjectProperty) none {
	f.v.VisitDeclareObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitDeclareAnnotationProperty(_ none, ax owl.DeclareAnnotationProperty) none {
	f.v.VisitDeclareAnnotationProperty(ax)
	return none{}
}

func (f freeVisitor) VisitDeclareDataProperty(_ none, ax owl.DeclareDataProperty) none {
	f.v.VisitDeclareDataProperty(ax)
	return none{}
}

func (f freeVisitor) VisitDeclareNamedIndividual(_ none, ax owl.DeclareNamedIndividual) none {
	f.v.VisitDeclareNamedIndividual(ax)
	return none{}
}

func (f freeVisitor) VisitDeclareDatatype(_ none, ax owl.DeclareDatatype) none {
	f.v.VisitDeclareDatatype(ax)
	return none{}
}

func (f freeVisitor) VisitSubClassOf(_ none, ax owl.SubClassOf) none {
	f.v.VisitSubClassOf(ax)
	return none{}
}

func (f freeVisitor) VisitEquivalentClasses(_ none, ax owl.EquivalentClasses) none {
	f.v.VisitEquivalentClasses(ax)
	return none{}
}

func (f freeVisitor) VisitDisjointClasses(_ none, ax owl.DisjointClasses) none {
	f.v.VisitDisjointClasses(ax)
	return none{}
}

func (f freeVisitor) VisitDisjointUnion(_ none, ax owl.DisjointUnion) none {
	f.v.VisitDisjointUnion(ax)
	return none{}
}

func (f freeVisitor) VisitSubObjectPropertyOf(_ none, ax owl.SubObjectPropertyOf) none {
	f.v.VisitSubObjectPropertyOf(ax)
	return none{}
}

func (f freeVisitor) VisitEquivalentObjectProperties(_ none, ax owl.EquivalentObjectProperties) none {
	f.v.VisitEquivalentObjectProperties(ax)
	return none{}
}

func (f freeVisitor) VisitDisjointObjectProperties(_ none, ax owl.DisjointObjectProperties) none {
	f.v.VisitDisjointObjectProperties(ax)
	return none{}
}

func (f freeVisitor) VisitInverseObjectProperties(_ none, ax owl.InverseObjectProperties) none {
	f.v.VisitInverseObjectProperties(ax)
	return none{}
}

func (f freeVisitor) VisitObjectPropertyDomain(_ none, ax owl.ObjectPropertyDomain) none {
	f.v.VisitObjectPropertyDomain(ax)
	return none{}
}

func (f freeVisitor) VisitObjectPropertyRange(_ none, ax owl.ObjectPropertyRange) none {
	f.v.VisitObjectPropertyRange(ax)
	return none{}
}

func (f freeVisitor) VisitFunctionalObjectProperty(_ none, ax owl.FunctionalObjectProperty) none {
	f.v.VisitFunctionalObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitInverseFunctionalObjectProperty(_ none, ax owl.InverseFunctionalObjectProperty) none {
	f.v.VisitInverseFunctionalObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitReflexiveObjectProperty(_ none, ax owl.ReflexiveObjectProperty) none {
	f.v.VisitReflexiveObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitIrreflexiveObjectProperty(_ none, ax owl.IrreflexiveObjectProperty) none {
	f.v.VisitIrreflexiveObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitSymmetricObjectProperty(_ none, ax owl.SymmetricObjectProperty) none {
	f.v.VisitSymmetricObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitAsymmetricObjectProperty(_ none, ax owl.AsymmetricObjectProperty) none {
	f.v.VisitAsymmetricObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitTransitiveObjectProperty(_ none, ax owl.TransitiveObjectProperty) none {
	f.v.VisitTransitiveObjectProperty(ax)
	return none{}
}

func (f freeVisitor) VisitSubDataPropertyOf(_ none, ax owl.SubDataPropertyOf) none {
	f.v.VisitSubDataPropertyOf(ax)
	return none{}
}

func (f freeVisitor) VisitEquivalentDataProperties(_ none, ax owl.EquivalentDataProperties) none {
	f.v.VisitEquivalentDataProperties(ax)
	return none{}
}

func (f freeVisitor) VisitDisjointDataProperties(_ none, ax owl.DisjointDataProperties) none {
	f.v.VisitDisjointDataProperties(ax)
	return none{}
}

func (f freeVisitor) VisitDataPropertyDomain(_ none, ax owl.DataPropertyDomain) none {
	f.v.VisitDataPropertyDomain(ax)
	return none{}
}

func (f freeVisitor) VisitDataPropertyRange(_ none, ax owl.DataPropertyRange) none {
	f.v.VisitDataPropertyRange(ax)
	return none{}
}

func (f freeVisitor) VisitFunctionalDataProperty(_ none, ax owl.FunctionalDataProperty) none {
	f.v.VisitFunctionalDataProperty(ax)
	return none{}
}

func (f freeVisitor) VisitDatatypeDefinition(_ none, ax owl.DatatypeDefinition) none {
	f.v.VisitDatatypeDefinition(ax)
	return none{}
}

func (f freeVisitor) VisitHasKey(_ none, ax owl.HasKey) none {
	f.v.VisitHasKey(ax)
	return none{}
}

func (f freeVisitor) VisitSameIndividual(_ none, ax owl.SameIndividual) none {
	f.v.VisitSameIndividual(ax)
	return none{}
}

func (f freeVisitor) VisitDifferentIndividuals(_ none, ax owl.DifferentIndividuals) none {
	f.v.VisitDifferentIndividuals(ax)
	return none{}
}

func (f freeVisitor) VisitClassAssertion(_ none, ax owl.ClassAssertion) none {
	f.v.VisitClassAssertion(ax)
	return none{}
}

func (f freeVisitor) VisitObjectPropertyAssertion(_ none, ax owl.ObjectPropertyAssertion) none {
	f.v.VisitObjectPropertyAssertion(ax)
	return none{}
}

func (f freeVisitor) VisitNegativeObjectPropertyAssertion(_ none, ax owl.NegativeObjectPropertyAssertion) none {
	f.v.VisitNegativeObjectPropertyAssertion(ax)
	return none{}
}

func (f freeVisitor) VisitDataPropertyAssertion(_ none, ax owl.DataPropertyAssertion) none {
	f.v.VisitDataPropertyAssertion(ax)
	return none{}
}

func (f freeVisitor) VisitNegativeDataPropertyAssertion(_ none, ax owl.NegativeDataPropertyAssertion) none {
	f.v.VisitNegativeDataPropertyAssertion(ax)
	return none{}
}

func (f freeVisitor) VisitAnnotationAssertion(_ none, ax owl.AnnotationAssertion) none {
	f.v.VisitAnnotationAssertion(ax)
	return none{}
}

func (f freeVisitor) VisitSubAnnotationPropertyOf(_ none, ax owl.SubAnnotationPropertyOf) none {
	f.v.VisitSubAnnotationPropertyOf(ax)
	return none{}
}

func (f freeVisitor) VisitAnnotationPropertyDomain(_ none, ax owl.AnnotationPropertyDomain) none {
	f.v.VisitAnnotationPropertyDomain(ax)
	return none{}
}

func (f freeVisitor) VisitAnnotationPropertyRange(_ none, ax owl.AnnotationPropertyRange) none {
	f.v.VisitAnnotationPropertyRange(ax)
	return none{}
}

func (f freeVisitor) VisitRule(_ none, r owl.Rule) none {
	f.v.VisitRule(r)
	return none{}
}

func (f freeVisitor) VisitAtom(_ none, a owl.Atom) none {
	f.v.VisitAtom(a)
	return none{}
}

func (f freeVisitor) VisitVariable(_ none, v owl.Variable) none {
	f.v.VisitVariable(v)
	return none{}
}

func (f freeVisitor) VisitIArgument(_ none, arg owl.IArgument) none {
	f.v.VisitIArgument(arg)
	return none{}
}

func (f freeVisitor) VisitDArgument(_ none, arg owl.DArgument) none {
	f.v.VisitDArgument(arg)
	return none{}
}

func (f freeVisitor) VisitLiteral(_ none, lit owl.Literal) none {
	f.v.VisitLiteral(lit)
	return none{}
}

func (f freeVisitor) VisitAnnotation(_ none, ann owl.Annotation) none {
	f.v.VisitAnnotation(ann)
	return none{}
}

func (f freeVisitor) VisitAnnotationValue(_ none, av owl.AnnotationValue) none {
	f.v.VisitAnnotationValue(av)
	return none{}
}

func (f freeVisitor) VisitObjectPropertyExpression(_ none, ope owl.ObjectPropertyExpression) none {
	f.v.VisitObjectPropertyExpression(ope)
	return none{}
}

func (f freeVisitor) VisitSubObjectPropertyExpression(_ none, sope owl.SubObjectPropertyExpression) none {
	f.v.VisitSubObjectPropertyExpression(sope)
	return none{}
}

func (f freeVisitor) VisitPropertyExpression(_ none, pe owl.PropertyExpression) none {
	f.v.VisitPropertyExpression(pe)
	return none{}
}

func (f freeVisitor) VisitFacetRestriction(_ none, fr owl.FacetRestriction) none {
	f.v.VisitFacetRestriction(fr)
	return none{}
}

func (f freeVisitor) VisitFacet(_ none, facet owl.Facet) none {
	f.v.VisitFacet(facet)
	return none{}
}

func (f freeVisitor) VisitDataRange(_ none, dr owl.DataRange) none {
	f.v.VisitDataRange(dr)
	return none{}
}

func (f freeVisitor) VisitClassExpression(_ none, ce owl.ClassExpression) none {
	f.v.VisitClassExpression(ce)
	return none{}
}

func (f freeVisitor) VisitClassExpressions(_ none, ces []owl.ClassExpression) none {
	f.v.VisitClassExpressions(ces)
	return none{}
}

func (f freeVisitor) VisitObjectPropertyExpressions(_ none, opes []owl.ObjectPropertyExpression) none {
	f.v.VisitObjectPropertyExpressions(opes)
	return none{}
}

func (f freeVisitor) VisitDataProperties(_ none, dps []owl.DataProperty) none {
	f.v.VisitDataProperties(dps)
	return none{}
}

func (f freeVisitor) VisitDataRanges(_ none, drs []owl.DataRange) none {
	f.v.VisitDataRanges(drs)
	return none{}
}

func (f freeVisitor) VisitIndividuals(_ none, inds []owl.Individual) none {
	f.v.VisitIndividuals(inds)
	return none{}
}

func (f freeVisitor) VisitLiterals(_ none, lits []owl.Literal) none {
	f.v.VisitLiterals(lits)
	return none{}
}

func (f freeVisitor) VisitFacetRestrictions(_ none, frs []owl.FacetRestriction) none {
	f.v.VisitFacetRestrictions(frs)
	return none{}
}

func (f freeVisitor) VisitAtoms(_ none, atoms []owl.Atom) none {
	f.v.VisitAtoms(atoms)
	return none{}
}

func (f freeVisitor) VisitDArguments(_ none, args []owl.DArgument) none {
	f.v.VisitDArguments(args)
	return none{}
}
