// File: internal/owl/kind.go
package owl

import "fmt"

// ComponentKind identifies the variant of a Component.
type ComponentKind int

const (
	KindOntologyID ComponentKind = iota
	KindDocIRI
	KindImport
	KindOntologyAnnotation
	KindDeclareClass
	KindDeclareObjectProperty
	KindDeclareAnnotationProperty
	KindDeclareDataProperty
	KindDeclareNamedIndividual
	KindDeclareDatatype
	KindSubClassOf
	KindEquivalentClasses
	KindDisjointClasses
	KindDisjointUnion
	KindSubObjectPropertyOf
	KindEquivalentObjectProperties
	KindDisjointObjectProperties
	KindInverseObjectProperties
	KindObjectPropertyDomain
	KindObjectPropertyRange
	KindFunctionalObjectProperty
	KindInverseFunctionalObjectProperty
	KindReflexiveObjectProperty
	KindIrreflexiveObjectProperty
	KindSymmetricObjectProperty
	KindAsymmetricObjectProperty
	KindTransitiveObjectProperty
	KindSubDataPropertyOf
	KindEquivalentDataProperties
	KindDisjointDataProperties
	KindDataPropertyDomain
	KindDataPropertyRange
	KindFunctionalDataProperty
	KindDatatypeDefinition
	KindHasKey
	KindSameIndividual
	KindDifferentIndividuals
	KindClassAssertion
	KindObjectPropertyAssertion
	KindNegativeObjectPropertyAssertion
	KindDataPropertyAssertion
	KindNegativeDataPropertyAssertion
	KindAnnotationAssertion
	KindSubAnnotationPropertyOf
	KindAnnotationPropertyDomain
	KindAnnotationPropertyRange
	KindRule

	numComponentKinds
)

var kindNames = [numComponentKinds]string{
	KindOntologyID:                      "OntologyID",
	KindDocIRI:                          "DocIRI",
	KindImport:                          "Import",
	KindOntologyAnnotation:              "OntologyAnnotation",
	KindDeclareClass:                    "DeclareClass",
	KindDeclareObjectProperty:           "DeclareObjectProperty",
	KindDeclareAnnotationProperty:       "DeclareAnnotationProperty",
	KindDeclareDataProperty:             "DeclareDataProperty",
	KindDeclareNamedIndividual:          "DeclareNamedIndividual",
	KindDeclareDatatype:                 "DeclareDatatype",
	KindSubClassOf:                      "SubClassOf",
	KindEquivalentClasses:               "EquivalentClasses",
	KindDisjointClasses:                 "DisjointClasses",
	KindDisjointUnion:                   "DisjointUnion",
	KindSubObjectPropertyOf:             "SubObjectPropertyOf",
	KindEquivalentObjectProperties:      "EquivalentObjectProperties",
	KindDisjointObjectProperties:        "DisjointObjectProperties",
	KindInverseObjectProperties:         "InverseObjectProperties",
	KindObjectPropertyDomain:            "ObjectPropertyDomain",
	KindObjectPropertyRange:             "ObjectPropertyRange",
	KindFunctionalObjectProperty:        "FunctionalObjectProperty",
	KindInverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	KindReflexiveObjectProperty:         "ReflexiveObjectProperty",
	KindIrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	KindSymmetricObjectProperty:         "SymmetricObjectProperty",
	KindAsymmetricObjectProperty:        "AsymmetricObjectProperty",
	KindTransitiveObjectProperty:        "TransitiveObjectProperty",
	KindSubDataPropertyOf:               "SubDataPropertyOf",
	KindEquivalentDataProperties:        "EquivalentDataProperties",
	KindDisjointDataProperties:          "DisjointDataProperties",
	KindDataPropertyDomain:              "DataPropertyDomain",
	KindDataPropertyRange:               "DataPropertyRange",
	KindFunctionalDataProperty:          "FunctionalDataProperty",
	KindDatatypeDefinition:              "DatatypeDefinition",
	KindHasKey:                          "HasKey",
	KindSameIndividual:                  "SameIndividual",
	KindDifferentIndividuals:            "DifferentIndividuals",
	KindClassAssertion:                  "ClassAssertion",
	KindObjectPropertyAssertion:         "ObjectPropertyAssertion",
	KindNegativeObjectPropertyAssertion: "NegativeObjectPropertyAssertion",
	KindDataPropertyAssertion:           "DataPropertyAssertion",
	KindNegativeDataPropertyAssertion:   "NegativeDataPropertyAssertion",
	KindAnnotationAssertion:             "AnnotationAssertion",
	KindSubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	KindAnnotationPropertyDomain:        "AnnotationPropertyDomain",
	KindAnnotationPropertyRange:         "AnnotationPropertyRange",
	KindRule:                            "Rule",
}

func (k ComponentKind) String() string {
	if k < 0 || k >= numComponentKinds {
		return fmt.Sprintf("ComponentKind(%d)", int(k))
	}
	return kindNames[k]
}

// AllComponentKinds lists every component kind in declaration order.
func AllComponentKinds() []ComponentKind {
	kinds := make([]ComponentKind, numComponentKinds)
	for i := range kinds {
		kinds[i] = ComponentKind(i)
	}
	return kinds
}
