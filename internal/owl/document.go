// File: internal/owl/document.go
package owl

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoDocument is returned when a traversal or extraction is handed a nil document.
var ErrNoDocument = errors.New("owl: document is absent")

// AnnotatedComponent is a component together with the annotations on it.
type AnnotatedComponent struct {
	Component   Component
	Annotations []Annotation
}

// Document is an ontology: an identifier plus a collection of annotated components.
// Components are kept in the order the reader produced them.
type Document struct {
	ID         OntologyID
	Components []AnnotatedComponent
}

// NewDocument builds a document from bare components.
func NewDocument(components ...Component) *Document {
	doc := &Document{Components: make([]AnnotatedComponent, 0, len(components))}
	for _, c := range components {
		doc.Add(c)
	}
	return doc
}

// Add appends a component with the given annotations.
func (d *Document) Add(c Component, annotations ...Annotation) {
	d.Components = append(d.Components, AnnotatedComponent{Component: c, Annotations: annotations})
}

// Len returns the number of components.
func (d *Document) Len() int {
	return len(d.Components)
}

// Validate reports whether d can be traversed at all. Structural well-formedness
// is the reader's job, and an empty component slot is reported by the traversal
// itself, so this only catches the absent document.
func (d *Document) Validate() error {
	if d == nil {
		return ErrNoDocument
	}
	return nil
}

// CountByKind tallies components per kind. Empty slots are not counted.
func (d *Document) CountByKind() map[ComponentKind]int {
	counts := make(map[ComponentKind]int)
	for _, ac := range d.Components {
		if ac.Component != nil {
			counts[ac.Component.Kind()]++
		}
	}
	return counts
}

// Sorted returns a shallow copy of d whose components are ordered by a canonical
// key: component kind first, then the rendered value. Two documents holding the
// same components in different orders sort identically. Empty slots go last.
func (d *Document) Sorted() *Document {
	type keyed struct {
		key string
		ac  AnnotatedComponent
	}
	items := make([]keyed, len(d.Components))
	for i, ac := range d.Components {
		items[i] = keyed{key: CanonicalKey(ac), ac: ac}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ni, nj := items[i].ac.Component == nil, items[j].ac.Component == nil
		if ni || nj {
			return !ni && nj
		}
		ki, kj := items[i].ac.Component.Kind(), items[j].ac.Component.Kind()
		if ki != kj {
			return ki < kj
		}
		return items[i].key < items[j].key
	})

	out := &Document{ID: d.ID, Components: make([]AnnotatedComponent, len(items))}
	for i, it := range items {
		out.Components[i] = it.ac
	}
	return out
}

// CanonicalKey renders an annotated component to a string that is stable across runs.
// The grammar holds no maps, so the %#v rendering is deterministic.
func CanonicalKey(ac AnnotatedComponent) string {
	if ac.Component == nil {
		return fmt.Sprintf("<nil>|%#v", ac.Annotations)
	}
	return fmt.Sprintf("%s|%#v|%#v", ac.Component.Kind(), ac.Component, ac.Annotations)
}
