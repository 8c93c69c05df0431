// File: internal/owl/document_test.go
package owl_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/owl/owltest"
)

func TestSampleComponentKinds(t *testing.T) {
	for _, k := range owl.AllComponentKinds() {
		t.Run(k.String(), func(t *testing.T) {
			assert.Equal(t, k, owltest.SampleComponent(k).Kind())
		})
	}
}

func TestCountByKind(t *testing.T) {
	doc := owltest.AllSamples()
	counts := doc.CountByKind()

	assert.Len(t, counts, len(owl.AllComponentKinds()))
	for k, n := range counts {
		assert.Equal(t, 1, n, "kind %s", k)
	}
	assert.Equal(t, len(owl.AllComponentKinds()), doc.Len())
}

func TestValidate(t *testing.T) {
	var nilDoc *owl.Document
	assert.ErrorIs(t, nilDoc.Validate(), owl.ErrNoDocument)

	doc := owl.NewDocument(owl.DeclareClass{Class: owltest.Class("A")})
	require.NoError(t, doc.Validate())

	// An empty slot is left for the traversal to report.
	doc.Components = append(doc.Components, owl.AnnotatedComponent{})
	assert.NoError(t, doc.Validate())
	assert.Equal(t, map[owl.ComponentKind]int{owl.KindDeclareClass: 1}, doc.CountByKind())

	sorted := doc.Sorted()
	require.Len(t, sorted.Components, 2)
	assert.Nil(t, sorted.Components[1].Component)
}

func TestSortedIgnoresInputOrder(t *testing.T) {
	doc := owltest.Pizza()
	reversed := &owl.Document{ID: doc.ID, Components: slices.Clone(doc.Components)}
	slices.Reverse(reversed.Components)

	a, b := doc.Sorted(), reversed.Sorted()
	assert.Equal(t, a, b)
	assert.Equal(t, doc.ID, a.ID)
	assert.Len(t, a.Components, doc.Len())

	// The source document keeps its reader order.
	assert.Equal(t, owl.KindDeclareClass, doc.Components[0].Component.Kind())
}

func TestFacetIRIRoundTrip(t *testing.T) {
	for f := owl.FacetLength; f <= owl.FacetLangRange; f++ {
		got, ok := owl.FacetFromIRI(f.IRI())
		require.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}

	assert.Equal(t, owl.IRI(owl.NamespaceRDF+"langRange"), owl.FacetLangRange.IRI())
	assert.Equal(t, owl.IRI(owl.NamespaceXSD+"pattern"), owl.FacetPattern.IRI())

	_, ok := owl.FacetFromIRI(owl.IRI(owl.NamespaceXSD + "nope"))
	assert.False(t, ok)
}

func TestKindStringOutOfRange(t *testing.T) {
	assert.Equal(t, "SubClassOf", owl.KindSubClassOf.String())
	assert.Equal(t, "ComponentKind(-1)", owl.ComponentKind(-1).String())
	assert.Equal(t, "Facet(99)", owl.Facet(99).String())
}
