// File: internal/walker/visitor.go
package walker

import "github.com/WebVOWL/horned-owl-serializer/internal/owl"

// ContextVisitor receives one hook call per grammar node, in traversal order.
//
// parent is the value returned by the hook of the node's immediate parent, or None
// at the document root. Whatever a hook returns is handed to every immediate child
// of that node, and to nothing else. Returning None does not stop the descent; the
// Walker always visits the full subtree.
type ContextVisitor[T any] interface {
	// Document structure.
	// VisitDocument is called for the whole ontology document; the root of every traversal.
	VisitDocument(parent Option[T], doc *owl.Document) Option[T]
	VisitOntologyID(parent Option[T], id owl.OntologyID) Option[T]
	VisitAnnotatedComponent(parent Option[T], ac owl.AnnotatedComponent) Option[T]
	// VisitComponent is called for every component before its kind-specific hook.
	VisitComponent(parent Option[T], c owl.Component) Option[T]
	VisitAnnotations(parent Option[T], anns []owl.Annotation) Option[T]

	// Leaves and entities.
	// VisitIRI is called for every IRI occurrence, including those inside entities.
	VisitIRI(parent Option[T], iri owl.IRI) Option[T]
	// VisitString is called for the lexical form and language tag of literals.
	VisitString(parent Option[T], s string) Option[T]
	VisitCardinality(parent Option[T], n uint32) Option[T]
	VisitAnonymousIndividual(parent Option[T], ai owl.AnonymousIndividual) Option[T]
	VisitIndividual(parent Option[T], ind owl.Individual) Option[T]
	VisitAnnotationSubject(parent Option[T], subj owl.AnnotationSubject) Option[T]
	VisitClass(parent Option[T], c owl.Class) Option[T]
	VisitDatatype(parent Option[T], dt owl.Datatype) Option[T]
	VisitObjectProperty(parent Option[T], op owl.ObjectProperty) Option[T]
	VisitDataProperty(parent Option[T], dp owl.DataProperty) Option[T]
	VisitAnnotationProperty(parent Option[T], ap owl.AnnotationProperty) Option[T]
	VisitNamedIndividual(parent Option[T], ni owl.NamedIndividual) Option[T]

	// Ontology-level components and declarations.
	VisitDocIRI(parent Option[T], ax owl.DocIRI) Option[T]
	VisitImport(parent Option[T], ax owl.Import) Option[T]
	VisitOntologyAnnotation(parent Option[T], ax owl.OntologyAnnotation) Option[T]
	VisitDeclareClass(parent Option[T], ax owl.DeclareClass) Option[T]
	VisitDeclareObjectProperty(parent Option[T], ax owl.DeclareObjectProperty) Option[T]
	VisitDeclareAnnotationProperty(parent Option[T], ax owl.DeclareAnnotationProperty) Option[T]
	VisitDeclareDataProperty(parent Option[T], ax owl.DeclareDataProperty) Option[T]
	VisitDeclareNamedIndividual(parent Option[T], ax owl.DeclareNamedIndividual) Option[T]
	VisitDeclareDatatype(parent Option[T], ax owl.DeclareDatatype) Option[T]

	// Class axioms.
	VisitSubClassOf(parent Option[T], ax owl.SubClassOf) Option[T]
	VisitEquivalentClasses(parent Option[T], ax owl.EquivalentClasses) Option[T]
	VisitDisjointClasses(parent Option[T], ax owl.DisjointClasses) Option[T]
	VisitDisjointUnion(parent Option[T], ax owl.DisjointUnion) Option[T]

	// Object property axioms.
	VisitSubObjectPropertyOf(parent Option[T], ax owl.SubObjectPropertyOf) Option[T]
	VisitEquivalentObjectProperties(parent Option[T], ax owl.EquivalentObjectProperties) Option[T]
	VisitDisjointObjectProperties(parent Option[T], ax owl.DisjointObjectProperties) Option[T]
	VisitInverseObjectProperties(parent Option[T], ax owl.InverseObjectProperties) Option[T]
	VisitObjectPropertyDomain(parent Option[T], ax owl.ObjectPropertyDomain) Option[T]
	VisitObjectPropertyRange(parent Option[T], ax owl.ObjectPropertyRange) Option[T]
	VisitFunctionalObjectProperty(parent Option[T], ax owl.FunctionalObjectProperty) Option[T]
	VisitInverseFunctionalObjectProperty(parent Option[T], ax owl.InverseFunctionalObjectProperty) Option[T]
	VisitReflexiveObjectProperty(parent Option[T], ax owl.ReflexiveObjectProperty) Option[T]
	VisitIrreflexiveObjectProperty(parent Option[T], ax owl.IrreflexiveObjectProperty) Option[T]
	VisitSymmetricObjectProperty(parent Option[T], ax owl.SymmetricObjectProperty) Option[T]
	VisitAsymmetricObjectProperty(parent Option[T], ax owl.AsymmetricObjectProperty) Option[T]
	VisitTransitiveObjectProperty(parent Option[T], ax owl.TransitiveObjectProperty) Option[T]

	// Data property axioms.
	VisitSubDataPropertyOf(parent Option[T], ax owl.SubDataPropertyOf) Option[T]
	VisitEquivalentDataProperties(parent Option[T], ax owl.EquivalentDataProperties) Option[T]
	VisitDisjointDataProperties(parent Option[T], ax owl.DisjointDataProperties) Option[T]
	VisitDataPropertyDomain(parent Option[T], ax owl.DataPropertyDomain) Option[T]
	VisitDataPropertyRange(parent Option[T], ax owl.DataPropertyRange) Option[T]
	VisitFunctionalDataProperty(parent Option[T], ax owl.FunctionalDataProperty) Option[T]
	VisitDatatypeDefinition(parent Option[T], ax owl.DatatypeDefinition) Option[T]
	VisitHasKey(parent Option[T], ax owl.HasKey) Option[T]

	// Assertions.
	VisitSameIndividual(parent Option[T], ax owl.SameIndividual) Option[T]
	VisitDifferentIndividuals(parent Option[T], ax owl.DifferentIndividuals) Option[T]
	VisitClassAssertion(parent Option[T], ax owl.ClassAssertion) Option[T]
	VisitObjectPropertyAssertion(parent Option[T], ax owl.ObjectPropertyAssertion) Option[T]
	VisitNegativeObjectPropertyAssertion(parent Option[T], ax owl.NegativeObjectPropertyAssertion) Option[T]
	VisitDataPropertyAssertion(parent Option[T], ax owl.DataPropertyAssertion) Option[T]
	VisitNegativeDataPropertyAssertion(parent Option[T], ax owl.NegativeDataPropertyAssertion) Option[T]

	// Annotation axioms.
	VisitAnnotationAssertion(parent Option[T], ax owl.AnnotationAssertion) Option[T]
	VisitSubAnnotationPropertyOf(parent Option[T], ax owl.SubAnnotationPropertyOf) Option[T]
	VisitAnnotationPropertyDomain(parent Option[T], ax owl.AnnotationPropertyDomain) Option[T]
	VisitAnnotationPropertyRange(parent Option[T], ax owl.AnnotationPropertyRange) Option[T]

	// SWRL rules.
	VisitRule(parent Option[T], r owl.Rule) Option[T]
	VisitAtom(parent Option[T], a owl.Atom) Option[T]
	VisitVariable(parent Option[T], v owl.Variable) Option[T]
	VisitIArgument(parent Option[T], arg owl.IArgument) Option[T]
	VisitDArgument(parent Option[T], arg owl.DArgument) Option[T]

	// Expressions.
	VisitLiteral(parent Option[T], lit owl.Literal) Option[T]
	VisitAnnotation(parent Option[T], ann owl.Annotation) Option[T]
	VisitAnnotationValue(parent Option[T], av owl.AnnotationValue) Option[T]
	VisitObjectPropertyExpression(parent Option[T], ope owl.ObjectPropertyExpression) Option[T]
	VisitSubObjectPropertyExpression(parent Option[T], sope owl.SubObjectPropertyExpression) Option[T]
	VisitPropertyExpression(parent Option[T], pe owl.PropertyExpression) Option[T]
	VisitFacetRestriction(parent Option[T], fr owl.FacetRestriction) Option[T]
	VisitFacet(parent Option[T], f owl.Facet) Option[T]
	VisitDataRange(parent Option[T], dr owl.DataRange) Option[T]
	// VisitClassExpression is called for every class expression, atomic or composite.
	VisitClassExpression(parent Option[T], ce owl.ClassExpression) Option[T]

	// Collections. Each is visited before its members.
	VisitClassExpressions(parent Option[T], ces []owl.ClassExpression) Option[T]
	VisitObjectPropertyExpressions(parent Option[T], opes []owl.ObjectPropertyExpression) Option[T]
	VisitDataProperties(parent Option[T], dps []owl.DataProperty) Option[T]
	VisitDataRanges(parent Option[T], drs []owl.DataRange) Option[T]
	VisitIndividuals(parent Option[T], inds []owl.Individual) Option[T]
	VisitLiterals(parent Option[T], lits []owl.Literal) Option[T]
	VisitFacetRestrictions(parent Option[T], frs []owl.FacetRestriction) Option[T]
	VisitAtoms(parent Option[T], atoms []owl.Atom) Option[T]
	VisitDArguments(parent Option[T], args []owl.DArgument) Option[T]
}

// BaseContextVisitor implements every ContextVisitor hook as a no-op returning None.
// Embed it and override only the hooks you need.
type BaseContextVisitor[T any] struct{}

func (BaseContextVisitor[T]) VisitDocument(Option[T], *owl.Document) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitOntologyID(Option[T], owl.OntologyID) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotatedComponent(Option[T], owl.AnnotatedComponent) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitComponent(Option[T], owl.Component) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitAnnotations(Option[T], []owl.Annotation) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitIRI(Option[T], owl.IRI) Option[T]        { return None[T]() }
func (BaseContextVisitor[T]) VisitString(Option[T], string) Option[T]      { return None[T]() }
func (BaseContextVisitor[T]) VisitCardinality(Option[T], uint32) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitAnonymousIndividual(Option[T], owl.AnonymousIndividual) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitIndividual(Option[T], owl.Individual) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotationSubject(Option[T], owl.AnnotationSubject) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitClass(Option[T], owl.Class) Option[T]       { return None[T]() }
func (BaseContextVisitor[T]) VisitDatatype(Option[T], owl.Datatype) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitObjectProperty(Option[T], owl.ObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDataProperty(Option[T], owl.DataProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotationProperty(Option[T], owl.AnnotationProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitNamedIndividual(Option[T], owl.NamedIndividual) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDocIRI(Option[T], owl.DocIRI) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitImport(Option[T], owl.Import) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitOntologyAnnotation(Option[T], owl.OntologyAnnotation) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDeclareClass(Option[T], owl.DeclareClass) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDeclareObjectProperty(Option[T], owl.DeclareObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDeclareAnnotationProperty(Option[T], owl.DeclareAnnotationProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDeclareDataProperty(Option[T], owl.DeclareDataProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDeclareNamedIndividual(Option[T], owl.DeclareNamedIndividual) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDeclareDatatype(Option[T], owl.DeclareDatatype) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitSubClassOf(Option[T], owl.SubClassOf) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitEquivalentClasses(Option[T], owl.EquivalentClasses) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDisjointClasses(Option[T], owl.DisjointClasses) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDisjointUnion(Option[T], owl.DisjointUnion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitSubObjectPropertyOf(Option[T], owl.SubObjectPropertyOf) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitEquivalentObjectProperties(Option[T], owl.EquivalentObjectProperties) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDisjointObjectProperties(Option[T], owl.DisjointObjectProperties) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitInverseObjectProperties(Option[T], owl.InverseObjectProperties) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitObjectPropertyDomain(Option[T], owl.ObjectPropertyDomain) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitObjectPropertyRange(Option[T], owl.ObjectPropertyRange) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitFunctionalObjectProperty(Option[T], owl.FunctionalObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitInverseFunctionalObjectProperty(Option[T], owl.InverseFunctionalObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitReflexiveObjectProperty(Option[T], owl.ReflexiveObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitIrreflexiveObjectProperty(Option[T], owl.IrreflexiveObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitSymmetricObjectProperty(Option[T], owl.SymmetricObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAsymmetricObjectProperty(Option[T], owl.AsymmetricObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitTransitiveObjectProperty(Option[T], owl.TransitiveObjectProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitSubDataPropertyOf(Option[T], owl.SubDataPropertyOf) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitEquivalentDataProperties(Option[T], owl.EquivalentDataProperties) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDisjointDataProperties(Option[T], owl.DisjointDataProperties) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDataPropertyDomain(Option[T], owl.DataPropertyDomain) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDataPropertyRange(Option[T], owl.DataPropertyRange) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitFunctionalDataProperty(Option[T], owl.FunctionalDataProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDatatypeDefinition(Option[T], owl.DatatypeDefinition) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitHasKey(Option[T], owl.HasKey) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitSameIndividual(Option[T], owl.SameIndividual) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDifferentIndividuals(Option[T], owl.DifferentIndividuals) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitClassAssertion(Option[T], owl.ClassAssertion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitObjectPropertyAssertion(Option[T], owl.ObjectPropertyAssertion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitNegativeObjectPropertyAssertion(Option[T], owl.NegativeObjectPropertyAssertion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDataPropertyAssertion(Option[T], owl.DataPropertyAssertion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitNegativeDataPropertyAssertion(Option[T], owl.NegativeDataPropertyAssertion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotationAssertion(Option[T], owl.AnnotationAssertion) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitSubAnnotationPropertyOf(Option[T], owl.SubAnnotationPropertyOf) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotationPropertyDomain(Option[T], owl.AnnotationPropertyDomain) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotationPropertyRange(Option[T], owl.AnnotationPropertyRange) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitRule(Option[T], owl.Rule) Option[T]           { return None[T]() }
func (BaseContextVisitor[T]) VisitAtom(Option[T], owl.Atom) Option[T]           { return None[T]() }
func (BaseContextVisitor[T]) VisitVariable(Option[T], owl.Variable) Option[T]   { return None[T]() }
func (BaseContextVisitor[T]) VisitIArgument(Option[T], owl.IArgument) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitDArgument(Option[T], owl.DArgument) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitLiteral(Option[T], owl.Literal) Option[T]     { return None[T]() }
func (BaseContextVisitor[T]) VisitAnnotation(Option[T], owl.Annotation) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAnnotationValue(Option[T], owl.AnnotationValue) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitObjectPropertyExpression(Option[T], owl.ObjectPropertyExpression) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitSubObjectPropertyExpression(Option[T], owl.SubObjectPropertyExpression) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitPropertyExpression(Option[T], owl.PropertyExpression) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitFacetRestriction(Option[T], owl.FacetRestriction) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitFacet(Option[T], owl.Facet) Option[T]         { return None[T]() }
func (BaseContextVisitor[T]) VisitDataRange(Option[T], owl.DataRange) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitClassExpression(Option[T], owl.ClassExpression) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitClassExpressions(Option[T], []owl.ClassExpression) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitObjectPropertyExpressions(Option[T], []owl.ObjectPropertyExpression) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDataProperties(Option[T], []owl.DataProperty) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitDataRanges(Option[T], []owl.DataRange) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitIndividuals(Option[T], []owl.Individual) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitLiterals(Option[T], []owl.Literal) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitFacetRestrictions(Option[T], []owl.FacetRestriction) Option[T] {
	return None[T]()
}
func (BaseContextVisitor[T]) VisitAtoms(Option[T], []owl.Atom) Option[T] { return None[T]() }
func (BaseContextVisitor[T]) VisitDArguments(Option[T], []owl.DArgument) Option[T] {
	return None[T]()
}
