// File: internal/owl/entity.go
package owl

// IRI is the globally unique identifier of a named entity.
type IRI string

func (IRI) isAnnotationSubject() {}
func (IRI) isAnnotationValue()   {}

// Class is a named class.
type Class struct {
	IRI IRI
}

// Datatype is a named datatype such as xsd:string.
type Datatype struct {
	IRI IRI
}

// ObjectProperty relates individuals to individuals.
type ObjectProperty struct {
	IRI IRI
}

// DataProperty relates individuals to literals.
type DataProperty struct {
	IRI IRI
}

// AnnotationProperty is used in annotations only.
type AnnotationProperty struct {
	IRI IRI
}

// NamedIndividual is an individual with a global IRI.
type NamedIndividual struct {
	IRI IRI
}

// AnonymousIndividual is a blank node. The ID is local to the document it came from.
type AnonymousIndividual struct {
	ID string
}

func (AnonymousIndividual) isAnnotationSubject() {}
func (AnonymousIndividual) isAnnotationValue()   {}

// Individual is either a NamedIndividual or an AnonymousIndividual.
type Individual interface {
	isIndividual()
}

func (NamedIndividual) isIndividual()     {}
func (AnonymousIndividual) isIndividual() {}

// IndividualKey returns the raw identifier of an individual: the IRI of a named
// individual or the local ID of an anonymous one. Both share one namespace.
func IndividualKey(i Individual) string {
	switch v := i.(type) {
	case NamedIndividual:
		return string(v.IRI)
	case AnonymousIndividual:
		return v.ID
	}
	return ""
}

// AnnotationSubject is an IRI or an AnonymousIndividual.
type AnnotationSubject interface {
	isAnnotationSubject()
}

// Variable is a SWRL rule variable.
type Variable struct {
	IRI IRI
}
