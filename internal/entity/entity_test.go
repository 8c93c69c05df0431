// internal/entity/entity_test.go
package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/owl/owltest"
)

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Distinct([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, Distinct[string](nil))
}

func TestCollectIRIs_FirstSeenOrder(t *testing.T) {
	doc := owl.NewDocument(
		owl.SubClassOf{Sub: owltest.Class("A"), Sup: owltest.Class("B")},
		owl.DeclareClass{Class: owltest.Class("A")},
		owl.AnnotationAssertion{Subject: owltest.IRI("C"), Annotation: owltest.Label("c")},
	)
	doc.ID = owl.OntologyID{IRI: owltest.IRI("ont")}

	iris, err := CollectIRIs(doc)
	require.NoError(t, err)

	want := []owl.IRI{
		owltest.IRI("ont"),
		owltest.IRI("B"), // super class first
		owltest.IRI("A"),
		owltest.IRI("C"),
		owl.IRI(owl.NamespaceRDFS + "label"),
	}
	if diff := cmp.Diff(want, iris); diff != "" {
		t.Errorf("IRIs mismatch (-want +got):\n%s", diff)
	}
}

func TestIRICollector_KeepsRepeats(t *testing.T) {
	c := &IRICollector{}
	c.VisitIRI("x")
	c.VisitIRI("x")
	assert.Len(t, c.IRIs(), 2)
}

func TestCollectEntities(t *testing.T) {
	doc := owl.NewDocument(
		owl.ObjectPropertyAssertion{
			Property: owltest.ObjectProperty("p"),
			From:     owltest.Individual("i"),
			To:       owl.AnonymousIndividual{ID: "_:b1"},
		},
		owl.DataPropertyAssertion{
			Property: owltest.DataProperty("d"),
			From:     owltest.Individual("i"),
			To:       owl.Literal{Value: "x"},
		},
		// punning: the same IRI as a class
		owl.DeclareClass{Class: owl.Class{IRI: owltest.IRI("i")}},
	)

	got, err := CollectEntities(doc)
	require.NoError(t, err)

	want := []Entity{
		{Kind: KindObjectProperty, ID: string(owltest.IRI("p"))},
		{Kind: KindNamedIndividual, ID: string(owltest.IRI("i"))},
		{Kind: KindAnonymousIndividual, ID: "_:b1"},
		{Kind: KindDataProperty, ID: string(owltest.IRI("d"))},
		{Kind: KindClass, ID: string(owltest.IRI("i"))},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectEntities_EveryKindReachable(t *testing.T) {
	got, err := CollectEntities(owltest.AllSamples())
	require.NoError(t, err)

	kinds := map[Kind]bool{}
	for _, e := range got {
		kinds[e.Kind] = true
	}
	for _, k := range []Kind{
		KindClass, KindDatatype, KindObjectProperty, KindDataProperty,
		KindAnnotationProperty, KindNamedIndividual, KindAnonymousIndividual,
	} {
		assert.True(t, kinds[k], "no %s collected", k)
	}
}

func TestCollectIRIs_NilDocument(t *testing.T) {
	_, err := CollectIRIs(nil)
	assert.ErrorIs(t, err, owl.ErrNoDocument)
}
