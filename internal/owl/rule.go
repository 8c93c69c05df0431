// File: internal/owl/rule.go
package owl

// IArgument is an individual-valued rule argument.
type IArgument interface {
	isIArgument()
}

// DArgument is a data-valued rule argument.
type DArgument interface {
	isDArgument()
}

func (NamedIndividual) isIArgument()     {}
func (AnonymousIndividual) isIArgument() {}
func (Variable) isIArgument()            {}
func (Variable) isDArgument()            {}

// Atom is one SWRL atom in a rule head or body.
type Atom interface {
	isAtom()
}

type (
	BuiltInAtom struct {
		Predicate IRI
		Args      []DArgument
	}
	ClassAtom struct {
		Predicate ClassExpression
		Arg       IArgument
	}
	DataPropertyAtom struct {
		Predicate DataProperty
		Subject   DArgument
		Object    DArgument
	}
	DataRangeAtom struct {
		Predicate DataRange
		Arg       DArgument
	}
	DifferentIndividualsAtom struct {
		First  IArgument
		Second IArgument
	}
	ObjectPropertyAtom struct {
		Predicate ObjectPropertyExpression
		Subject   IArgument
		Object    IArgument
	}
	SameIndividualAtom struct {
		First  IArgument
		Second IArgument
	}
)

func (BuiltInAtom) isAtom()              {}
func (ClassAtom) isAtom()                {}
func (DataPropertyAtom) isAtom()         {}
func (DataRangeAtom) isAtom()            {}
func (DifferentIndividualsAtom) isAtom() {}
func (ObjectPropertyAtom) isAtom()       {}
func (SameIndividualAtom) isAtom()       {}

// Rule is a SWRL rule: when every body atom holds, every head atom holds.
type Rule struct {
	Head []Atom
	Body []Atom
}
