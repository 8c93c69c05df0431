// File: internal/owl/component.go
package owl

// Component is one unit of ontological assertion: an axiom, a declaration,
// an import, an ontology annotation or a rule.
type Component interface {
	Kind() ComponentKind
}

// OntologyID names an ontology and, optionally, one version of it.
// An empty IRI means the field is absent.
type OntologyID struct {
	IRI        IRI
	VersionIRI IRI
}

// IsAnonymous reports whether the ontology has no IRI.
func (id OntologyID) IsAnonymous() bool {
	return id.IRI == ""
}

// DocIRI is the location the document was loaded from.
type DocIRI struct{ IRI IRI }

// Import references another ontology by IRI.
type Import struct{ IRI IRI }

// OntologyAnnotation annotates the ontology itself.
type OntologyAnnotation struct{ Annotation Annotation }

// Declarations.
type (
	DeclareClass              struct{ Class Class }
	DeclareObjectProperty     struct{ Property ObjectProperty }
	DeclareAnnotationProperty struct{ Property AnnotationProperty }
	DeclareDataProperty       struct{ Property DataProperty }
	DeclareNamedIndividual    struct{ Individual NamedIndividual }
	DeclareDatatype           struct{ Datatype Datatype }
)

// Class axioms.
type (
	SubClassOf struct {
		Sub ClassExpression
		Sup ClassExpression
	}
	EquivalentClasses struct{ Classes []ClassExpression }
	DisjointClasses   struct{ Classes []ClassExpression }
	DisjointUnion     struct {
		Class   Class
		Classes []ClassExpression
	}
)

// Object property axioms.
type (
	SubObjectPropertyOf struct {
		Sub SubObjectPropertyExpression
		Sup ObjectPropertyExpression
	}
	EquivalentObjectProperties struct{ Properties []ObjectPropertyExpression }
	DisjointObjectProperties   struct{ Properties []ObjectPropertyExpression }
	InverseObjectProperties    struct {
		First  ObjectProperty
		Second ObjectProperty
	}
	ObjectPropertyDomain struct {
		Property ObjectPropertyExpression
		Domain   ClassExpression
	}
	ObjectPropertyRange struct {
		Property ObjectPropertyExpression
		Range    ClassExpression
	}
	FunctionalObjectProperty        struct{ Property ObjectPropertyExpression }
	InverseFunctionalObjectProperty struct{ Property ObjectPropertyExpression }
	ReflexiveObjectProperty         struct{ Property ObjectPropertyExpression }
	IrreflexiveObjectProperty       struct{ Property ObjectPropertyExpression }
	SymmetricObjectProperty         struct{ Property ObjectPropertyExpression }
	AsymmetricObjectProperty        struct{ Property ObjectPropertyExpression }
	TransitiveObjectProperty        struct{ Property ObjectPropertyExpression }
)

// Data property axioms.
type (
	SubDataPropertyOf struct {
		Sub DataProperty
		Sup DataProperty
	}
	EquivalentDataProperties struct{ Properties []DataProperty }
	DisjointDataProperties   struct{ Properties []DataProperty }
	DataPropertyDomain       struct {
		Property DataProperty
		Domain   ClassExpression
	}
	DataPropertyRange struct {
		Property DataProperty
		Range    DataRange
	}
	FunctionalDataProperty struct{ Property DataProperty }
	DatatypeDefinition     struct {
		Datatype Datatype
		Range    DataRange
	}
	HasKey struct {
		Class      ClassExpression
		Properties []PropertyExpression
	}
)

// Assertions.
type (
	SameIndividual       struct{ Individuals []Individual }
	DifferentIndividuals struct{ Individuals []Individual }
	ClassAssertion       struct {
		Class      ClassExpression
		Individual Individual
	}
	ObjectPropertyAssertion struct {
		Property ObjectPropertyExpression
		From     Individual
		To       Individual
	}
	NegativeObjectPropertyAssertion struct {
		Property ObjectPropertyExpression
		From     Individual
		To       Individual
	}
	DataPropertyAssertion struct {
		Property DataProperty
		From     Individual
		To       Literal
	}
	NegativeDataPropertyAssertion struct {
		Property DataProperty
		From     Individual
		To       Literal
	}
)

// Annotation axioms.
type (
	AnnotationAssertion struct {
		Subject    AnnotationSubject
		Annotation Annotation
	}
	SubAnnotationPropertyOf struct {
		Sub AnnotationProperty
		Sup AnnotationProperty
	}
	AnnotationPropertyDomain struct {
		Property AnnotationProperty
		IRI      IRI
	}
	AnnotationPropertyRange struct {
		Property AnnotationProperty
		IRI      IRI
	}
)

func (OntologyID) Kind() ComponentKind                 { return KindOntologyID }
func (DocIRI) Kind() ComponentKind                     { return KindDocIRI }
func (Import) Kind() ComponentKind                     { return KindImport }
func (OntologyAnnotation) Kind() ComponentKind         { return KindOntologyAnnotation }
func (DeclareClass) Kind() ComponentKind               { return KindDeclareClass }
func (DeclareObjectProperty) Kind() ComponentKind      { return KindDeclareObjectProperty }
func (DeclareAnnotationProperty) Kind() ComponentKind  { return KindDeclareAnnotationProperty }
func (DeclareDataProperty) Kind() ComponentKind        { return KindDeclareDataProperty }
func (DeclareNamedIndividual) Kind() ComponentKind     { return KindDeclareNamedIndividual }
func (DeclareDatatype) Kind() ComponentKind            { return KindDeclareDatatype }
func (SubClassOf) Kind() ComponentKind                 { return KindSubClassOf }
func (EquivalentClasses) Kind() ComponentKind          { return KindEquivalentClasses }
func (DisjointClasses) Kind() ComponentKind            { return KindDisjointClasses }
func (DisjointUnion) Kind() ComponentKind              { return KindDisjointUnion }
func (SubObjectPropertyOf) Kind() ComponentKind        { return KindSubObjectPropertyOf }
func (EquivalentObjectProperties) Kind() ComponentKind { return KindEquivalentObjectProperties }
func (DisjointObjectProperties) Kind() ComponentKind   { return KindDisjointObjectProperties }
func (InverseObjectProperties) Kind() ComponentKind    { return KindInverseObjectProperties }
func (ObjectPropertyDomain) Kind() ComponentKind       { return KindObjectPropertyDomain }
func (ObjectPropertyRange) Kind() ComponentKind        { return KindObjectPropertyRange }
func (FunctionalObjectProperty) Kind() ComponentKind   { return KindFunctionalObjectProperty }
func (InverseFunctionalObjectProperty) Kind() ComponentKind {
	return KindInverseFunctionalObjectProperty
}
func (ReflexiveObjectProperty) Kind() ComponentKind   { return KindReflexiveObjectProperty }
func (IrreflexiveObjectProperty) Kind() ComponentKind { return KindIrreflexiveObjectProperty }
func (SymmetricObjectProperty) Kind() ComponentKind   { return KindSymmetricObjectProperty }
func (AsymmetricObjectProperty) Kind() ComponentKind  { return KindAsymmetricObjectProperty }
func (TransitiveObjectProperty) Kind() ComponentKind  { return KindTransitiveObjectProperty }
func (SubDataPropertyOf) Kind() ComponentKind         { return KindSubDataPropertyOf }
func (EquivalentDataProperties) Kind() ComponentKind  { return KindEquivalentDataProperties }
func (DisjointDataProperties) Kind() ComponentKind    { return KindDisjointDataProperties }
func (DataPropertyDomain) Kind() ComponentKind        { return KindDataPropertyDomain }
func (DataPropertyRange) Kind() ComponentKind         { return KindDataPropertyRange }
func (FunctionalDataProperty) Kind() ComponentKind    { return KindFunctionalDataProperty }
func (DatatypeDefinition) Kind() ComponentKind        { return KindDatatypeDefinition }
func (HasKey) Kind() ComponentKind                    { return KindHasKey }
func (SameIndividual) Kind() ComponentKind            { return KindSameIndividual }
func (DifferentIndividuals) Kind() ComponentKind      { return KindDifferentIndividuals }
func (ClassAssertion) Kind() ComponentKind            { return KindClassAssertion }
func (ObjectPropertyAssertion) Kind() ComponentKind   { return KindObjectPropertyAssertion }
func (NegativeObjectPropertyAssertion) Kind() ComponentKind {
	return KindNegativeObjectPropertyAssertion
}
func (DataPropertyAssertion) Kind() ComponentKind { return KindDataPropertyAssertion }
func (NegativeDataPropertyAssertion) Kind() ComponentKind {
	return KindNegativeDataPropertyAssertion
}
func (AnnotationAssertion) Kind() ComponentKind      { return KindAnnotationAssertion }
func (SubAnnotationPropertyOf) Kind() ComponentKind  { return KindSubAnnotationPropertyOf }
func (AnnotationPropertyDomain) Kind() ComponentKind { return KindAnnotationPropertyDomain }
func (AnnotationPropertyRange) Kind() ComponentKind  { return KindAnnotationPropertyRange }
func (Rule) Kind() ComponentKind                     { return KindRule }
