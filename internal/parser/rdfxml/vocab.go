// File: internal/parser/rdfxml/vocab.go
package rdfxml

import (
	"strings"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

const (
	nsRDF  = owl.NamespaceRDF
	nsRDFS = owl.NamespaceRDFS
	nsOWL  = owl.NamespaceOWL
	nsXSD  = owl.NamespaceXSD
	nsSWRL = "http://www.w3.org/2003/11/swrl#"

	rdfType        = nsRDF + "type"
	rdfFirst       = nsRDF + "first"
	rdfRest        = nsRDF + "rest"
	rdfNil         = nsRDF + "nil"
	rdfList        = nsRDF + "List"
	rdfDescription = nsRDF + "Description"
	rdfLi          = nsRDF + "li"
	rdfXMLLiteral  = nsRDF + "XMLLiteral"

	rdfsClass         = nsRDFS + "Class"
	rdfsDatatype      = nsRDFS + "Datatype"
	rdfsSubClassOf    = nsRDFS + "subClassOf"
	rdfsSubPropertyOf = nsRDFS + "subPropertyOf"
	rdfsDomain        = nsRDFS + "domain"
	rdfsRange         = nsRDFS + "range"

	owlOntology                  = nsOWL + "Ontology"
	owlImports                   = nsOWL + "imports"
	owlVersionIRI                = nsOWL + "versionIRI"
	owlClass                     = nsOWL + "Class"
	owlObjectProperty            = nsOWL + "ObjectProperty"
	owlDatatypeProperty          = nsOWL + "DatatypeProperty"
	owlAnnotationProperty        = nsOWL + "AnnotationProperty"
	owlNamedIndividual           = nsOWL + "NamedIndividual"
	owlRestriction               = nsOWL + "Restriction"
	owlAxiom                     = nsOWL + "Axiom"
	owlAnnotation                = nsOWL + "Annotation"
	owlAllDisjointClasses        = nsOWL + "AllDisjointClasses"
	owlAllDisjointProperties     = nsOWL + "AllDisjointProperties"
	owlAllDifferent              = nsOWL + "AllDifferent"
	owlNegativePropertyAssertion = nsOWL + "NegativePropertyAssertion"
	owlFunctionalProperty        = nsOWL + "FunctionalProperty"

	owlEquivalentClass         = nsOWL + "equivalentClass"
	owlDisjointWith            = nsOWL + "disjointWith"
	owlDisjointUnionOf         = nsOWL + "disjointUnionOf"
	owlEquivalentProperty      = nsOWL + "equivalentProperty"
	owlPropertyDisjointWith    = nsOWL + "propertyDisjointWith"
	owlPropertyChainAxiom      = nsOWL + "propertyChainAxiom"
	owlInverseOf               = nsOWL + "inverseOf"
	owlSameAs                  = nsOWL + "sameAs"
	owlDifferentFrom           = nsOWL + "differentFrom"
	owlHasKey                  = nsOWL + "hasKey"
	owlMembers                 = nsOWL + "members"
	owlDistinctMembers         = nsOWL + "distinctMembers"
	owlAnnotatedSource         = nsOWL + "annotatedSource"
	owlAnnotatedProperty       = nsOWL + "annotatedProperty"
	owlAnnotatedTarget         = nsOWL + "annotatedTarget"
	owlSourceIndividual        = nsOWL + "sourceIndividual"
	owlAssertionProperty       = nsOWL + "assertionProperty"
	owlTargetIndividual        = nsOWL + "targetIndividual"
	owlTargetValue             = nsOWL + "targetValue"
	owlIntersectionOf          = nsOWL + "intersectionOf"
	owlUnionOf                 = nsOWL + "unionOf"
	owlComplementOf            = nsOWL + "complementOf"
	owlOneOf                   = nsOWL + "oneOf"
	owlDatatypeComplementOf    = nsOWL + "datatypeComplementOf"
	owlOnDatatype              = nsOWL + "onDatatype"
	owlWithRestrictions        = nsOWL + "withRestrictions"
	owlOnProperty              = nsOWL + "onProperty"
	owlSomeValuesFrom          = nsOWL + "someValuesFrom"
	owlAllValuesFrom           = nsOWL + "allValuesFrom"
	owlHasValue                = nsOWL + "hasValue"
	owlHasSelf                 = nsOWL + "hasSelf"
	owlMinCardinality          = nsOWL + "minCardinality"
	owlMaxCardinality          = nsOWL + "maxCardinality"
	owlCardinality             = nsOWL + "cardinality"
	owlMinQualifiedCardinality = nsOWL + "minQualifiedCardinality"
	owlMaxQualifiedCardinality = nsOWL + "maxQualifiedCardinality"
	owlQualifiedCardinality    = nsOWL + "qualifiedCardinality"
	owlOnClass                 = nsOWL + "onClass"
	owlOnDataRange             = nsOWL + "onDataRange"
)

// declarations maps the rdf:type objects that declare an entity to the
// functional-syntax entity name.
var declarations = map[string]string{
	owlClass:              "Class",
	owlObjectProperty:     "ObjectProperty",
	owlDatatypeProperty:   "DataProperty",
	owlAnnotationProperty: "AnnotationProperty",
	owlNamedIndividual:    "NamedIndividual",
	rdfsDatatype:          "Datatype",
}

// characteristics maps property types to their axiom. owl:FunctionalProperty
// is absent because it depends on the kind of property.
var characteristics = map[string]string{
	nsOWL + "InverseFunctionalProperty": "InverseFunctionalObjectProperty",
	nsOWL + "ReflexiveProperty":         "ReflexiveObjectProperty",
	nsOWL + "IrreflexiveProperty":       "IrreflexiveObjectProperty",
	nsOWL + "SymmetricProperty":         "SymmetricObjectProperty",
	nsOWL + "AsymmetricProperty":        "AsymmetricObjectProperty",
	nsOWL + "TransitiveProperty":        "TransitiveObjectProperty",
}

// builtinAnnotations are the annotation properties OWL 2 predefines.
var builtinAnnotations = map[string]bool{
	nsRDFS + "label":                 true,
	nsRDFS + "comment":               true,
	nsRDFS + "seeAlso":               true,
	nsRDFS + "isDefinedBy":           true,
	nsOWL + "deprecated":             true,
	nsOWL + "versionInfo":            true,
	nsOWL + "priorVersion":           true,
	nsOWL + "backwardCompatibleWith": true,
	nsOWL + "incompatibleWith":       true,
}

// structuralTypes mark blank nodes that encode an expression or an axiom
// rather than an individual.
var structuralTypes = map[string]bool{
	owlRestriction:               true,
	owlAxiom:                     true,
	owlAnnotation:                true,
	owlAllDisjointClasses:        true,
	owlAllDisjointProperties:     true,
	owlAllDifferent:              true,
	owlNegativePropertyAssertion: true,
	owlClass:                     true,
	rdfsDatatype:                 true,
	rdfList:                      true,
}

// structuralPredicates mark their blank subject as structural.
var structuralPredicates = map[string]bool{
	rdfFirst:                true,
	rdfRest:                 true,
	owlOnProperty:           true,
	owlIntersectionOf:       true,
	owlUnionOf:              true,
	owlComplementOf:         true,
	owlOneOf:                true,
	owlDatatypeComplementOf: true,
	owlOnDatatype:           true,
	owlWithRestrictions:     true,
	owlInverseOf:            true,
	owlAnnotatedSource:      true,
	owlMembers:              true,
	owlDistinctMembers:      true,
	owlSourceIndividual:     true,
}

// builtinDatatypes are datatype IRIs outside the xsd namespace.
var builtinDatatypes = map[string]bool{
	nsRDFS + "Literal":     true,
	nsRDF + "PlainLiteral": true,
	nsRDF + "XMLLiteral":   true,
	nsRDF + "langString":   true,
	nsOWL + "real":         true,
	nsOWL + "rational":     true,
}

func isSWRL(iri string) bool {
	return strings.HasPrefix(iri, nsSWRL)
}

// reserved reports whether iri belongs to one of the vocabularies whose
// terms are structure rather than ontology entities.
func reserved(iri string) bool {
	return strings.HasPrefix(iri, nsRDF) || strings.HasPrefix(iri, nsRDFS) ||
		strings.HasPrefix(iri, nsOWL) || isSWRL(iri)
}
