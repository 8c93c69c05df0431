// File: internal/owl/expression.go
package owl

// LiteralKind distinguishes the three literal shapes.
type LiteralKind int

const (
	LiteralSimple LiteralKind = iota
	LiteralLanguage
	LiteralDatatype
)

// Literal is a lexical value, optionally language tagged or typed.
// Lang and Datatype are mutually exclusive.
type Literal struct {
	Value    string
	Lang     string
	Datatype IRI
}

// Kind reports which literal shape l has.
func (l Literal) Kind() LiteralKind {
	switch {
	case l.Lang != "":
		return LiteralLanguage
	case l.Datatype != "":
		return LiteralDatatype
	default:
		return LiteralSimple
	}
}

func (Literal) isAnnotationValue() {}
func (Literal) isDArgument()       {}

// AnnotationValue is a Literal, an IRI or an AnonymousIndividual.
type AnnotationValue interface {
	isAnnotationValue()
}

// Annotation attaches a value to an axiom, an ontology or an annotation subject.
type Annotation struct {
	Property AnnotationProperty
	Value    AnnotationValue
}

// ObjectPropertyExpression is an ObjectProperty or an InverseObjectProperty.
type ObjectPropertyExpression interface {
	SubObjectPropertyExpression
	isObjectPropertyExpression()
}

// InverseObjectProperty is the inverse of a named object property.
type InverseObjectProperty struct {
	Property ObjectProperty
}

func (ObjectProperty) isObjectPropertyExpression()           {}
func (InverseObjectProperty) isObjectPropertyExpression()    {}
func (ObjectProperty) isSubObjectPropertyExpression()        {}
func (InverseObjectProperty) isSubObjectPropertyExpression() {}

// SubObjectPropertyExpression is the sub side of SubObjectPropertyOf: either a plain
// object property expression or a property chain.
type SubObjectPropertyExpression interface {
	isSubObjectPropertyExpression()
}

// ObjectPropertyChain is an ordered composition of object property expressions.
type ObjectPropertyChain struct {
	Properties []ObjectPropertyExpression
}

func (ObjectPropertyChain) isSubObjectPropertyExpression() {}

// PropertyExpression is any property usable as a HasKey member.
type PropertyExpression interface {
	isPropertyExpression()
}

func (ObjectProperty) isPropertyExpression()        {}
func (InverseObjectProperty) isPropertyExpression() {}
func (DataProperty) isPropertyExpression()          {}
func (AnnotationProperty) isPropertyExpression()    {}

// FacetRestriction constrains a datatype by one facet.
type FacetRestriction struct {
	Facet Facet
	Value Literal
}

// DataRange is a datatype or a composite over datatypes and literals.
type DataRange interface {
	isDataRange()
}

type (
	DataIntersectionOf struct{ Ranges []DataRange }
	DataUnionOf        struct{ Ranges []DataRange }
	DataComplementOf   struct{ Range DataRange }
	DataOneOf          struct{ Literals []Literal }

	DatatypeRestriction struct {
		Datatype     Datatype
		Restrictions []FacetRestriction
	}
)

func (Datatype) isDataRange()            {}
func (DataIntersectionOf) isDataRange()  {}
func (DataUnionOf) isDataRange()         {}
func (DataComplementOf) isDataRange()    {}
func (DataOneOf) isDataRange()           {}
func (DatatypeRestriction) isDataRange() {}

// ClassExpression is a named class or a composite description of a set of individuals.
type ClassExpression interface {
	isClassExpression()
}

type (
	ObjectIntersectionOf struct{ Classes []ClassExpression }
	ObjectUnionOf        struct{ Classes []ClassExpression }
	ObjectComplementOf   struct{ Class ClassExpression }
	ObjectOneOf          struct{ Individuals []Individual }

	ObjectSomeValuesFrom struct {
		Property ObjectPropertyExpression
		Filler   ClassExpression
	}
	ObjectAllValuesFrom struct {
		Property ObjectPropertyExpression
		Filler   ClassExpression
	}
	ObjectHasValue struct {
		Property   ObjectPropertyExpression
		Individual Individual
	}
	ObjectHasSelf struct {
		Property ObjectPropertyExpression
	}
	ObjectMinCardinality struct {
		N        uint32
		Property ObjectPropertyExpression
		Filler   ClassExpression
	}
	ObjectMaxCardinality struct {
		N        uint32
		Property ObjectPropertyExpression
		Filler   ClassExpression
	}
	ObjectExactCardinality struct {
		N        uint32
		Property ObjectPropertyExpression
		Filler   ClassExpression
	}

	DataSomeValuesFrom struct {
		Property DataProperty
		Range    DataRange
	}
	DataAllValuesFrom struct {
		Property DataProperty
		Range    DataRange
	}
	DataHasValue struct {
		Property DataProperty
		Value    Literal
	}
	DataMinCardinality struct {
		N        uint32
		Property DataProperty
		Range    DataRange
	}
	DataMaxCardinality struct {
		N        uint32
		Property DataProperty
		Range    DataRange
	}
	DataExactCardinality struct {
		N        uint32
		Property DataProperty
		Range    DataRange
	}
)

func (Class) isClassExpression()                  {}
func (ObjectIntersectionOf) isClassExpression()   {}
func (ObjectUnionOf) isClassExpression()          {}
func (ObjectComplementOf) isClassExpression()     {}
func (ObjectOneOf) isClassExpression()            {}
func (ObjectSomeValuesFrom) isClassExpression()   {}
func (ObjectAllValuesFrom) isClassExpression()    {}
func (ObjectHasValue) isClassExpression()         {}
func (ObjectHasSelf) isClassExpression()          {}
func (ObjectMinCardinality) isClassExpression()   {}
func (ObjectMaxCardinality) isClassExpression()   {}
func (ObjectExactCardinality) isClassExpression() {}
func (DataSomeValuesFrom) isClassExpression()     {}
func (DataAllValuesFrom) isClassExpression()      {}
func (DataHasValue) isClassExpression()           {}
func (DataMinCardinality) isClassExpression()     {}
func (DataMaxCardinality) isClassExpression()     {}
func (DataExactCardinality) isClassExpression()   {}

// AsClass reports whether ce is a plain class reference and returns it if so.
// Composite expressions have no identifier of their own.
func AsClass(ce ClassExpression) (Class, bool) {
	c, ok := ce.(Class)
	return c, ok
}
