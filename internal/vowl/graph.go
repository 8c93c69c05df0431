// File: internal/vowl/graph.go
package vowl

import "fmt"

// Index is a dense identifier index assigned by the Cache.
type Index uint32

// NodeKind is the vertex type of a Node.
type NodeKind int

const (
	NodeClass NodeKind = iota
	NodeExternalClass
	NodeThing
	NodeEquivalentClass
	NodeUnion
	NodeDisjointUnion
	NodeIntersection
	NodeComplement
	NodeDeprecatedClass
	NodeAnonymousClass
	NodeLiteral
	NodeRdfsClass
	NodeRdfsResource
)

var nodeKindNames = [...]string{
	NodeClass:           "class",
	NodeExternalClass:   "externalClass",
	NodeThing:           "thing",
	NodeEquivalentClass: "equivalentClass",
	NodeUnion:           "union",
	NodeDisjointUnion:   "disjointUnion",
	NodeIntersection:    "intersection",
	NodeComplement:      "complement",
	NodeDeprecatedClass: "deprecatedClass",
	NodeAnonymousClass:  "anonymousClass",
	NodeLiteral:         "literal",
	NodeRdfsClass:       "rdfsClass",
	NodeRdfsResource:    "rdfsResource",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// MarshalText renders the kind by name in JSON output.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *NodeKind) UnmarshalText(b []byte) error {
	for i, name := range nodeKindNames {
		if name == string(b) {
			*k = NodeKind(i)
			return nil
		}
	}
	return fmt.Errorf("vowl: unknown node kind %q", b)
}

// EdgeKind is the relation type of an Edge.
type EdgeKind int

const (
	EdgeDatatype EdgeKind = iota
	EdgeObjectProperty
	EdgeDatatypeProperty
	EdgeSubclassOf
	EdgeInverseProperty
	EdgeDisjointWith
	EdgeRdfProperty
	EdgeDeprecatedProperty
	EdgeExternalProperty
	EdgeValuesFrom
	// EdgeNoDraw exists in the domain model but must not be rendered.
	EdgeNoDraw
)

var edgeKindNames = [...]string{
	EdgeDatatype:           "datatype",
	EdgeObjectProperty:     "objectProperty",
	EdgeDatatypeProperty:   "datatypeProperty",
	EdgeSubclassOf:         "subclassOf",
	EdgeInverseProperty:    "inverseProperty",
	EdgeDisjointWith:       "disjointWith",
	EdgeRdfProperty:        "rdfProperty",
	EdgeDeprecatedProperty: "deprecatedProperty",
	EdgeExternalProperty:   "externalProperty",
	EdgeValuesFrom:         "valuesFrom",
	EdgeNoDraw:             "noDraw",
}

func (k EdgeKind) String() string {
	if k >= 0 && int(k) < len(edgeKindNames) {
		return edgeKindNames[k]
	}
	return fmt.Sprintf("EdgeKind(%d)", int(k))
}

// MarshalText renders the kind by name in JSON output.
func (k EdgeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *EdgeKind) UnmarshalText(b []byte) error {
	for i, name := range edgeKindNames {
		if name == string(b) {
			*k = EdgeKind(i)
			return nil
		}
	}
	return fmt.Errorf("vowl: unknown edge kind %q", b)
}

// Drawable reports whether a renderer should draw edges of this kind.
func (k EdgeKind) Drawable() bool {
	return k != EdgeNoDraw
}

// Element is a Node or an Edge. It is the context the Extractor hands down to
// the children of a component it emitted something for.
type Element interface {
	isElement()
}

// Node is a graph vertex. Every kind except NodeEquivalentClass refers to
// exactly one identifier through Index. An equivalent-class node carries its
// members in Group and repeats the first member in Index.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Index Index    `json:"index"`
	Group []Index  `json:"group,omitempty"`
}

// Edge is a directed, typed relation between identifier indices. Predicate is
// only meaningful for EdgeObjectProperty, where it holds the property index.
type Edge struct {
	Kind      EdgeKind `json:"kind"`
	From      Index    `json:"from"`
	Predicate Index    `json:"predicate"`
	To        Index    `json:"to"`
}

func (Node) isElement() {}
func (Edge) isElement() {}

func (n Node) String() string {
	if n.Kind == NodeEquivalentClass {
		return fmt.Sprintf("%s%v", n.Kind, n.Group)
	}
	return fmt.Sprintf("%s(%d)", n.Kind, n.Index)
}

func (e Edge) String() string {
	if e.Kind == EdgeObjectProperty {
		return fmt.Sprintf("%s(%d,%d,%d)", e.Kind, e.From, e.Predicate, e.To)
	}
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.From, e.To)
}
