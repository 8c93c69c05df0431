// internal/vowl/fuzz_test.go
package vowl

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/owl/owltest"
)

// fuzzDocument builds a document from a small vocabulary so that identifiers
// collide often.
func fuzzDocument(c *fuzz.ConsumeFuzzer) *owl.Document {
	pick := func(n int) int {
		v, err := c.GetInt()
		if err != nil {
			return 0
		}
		return int(uint(v) % uint(n))
	}
	names := []string{"A", "B", "C", "D", "i", "j", "p", "q"}
	name := func() string { return names[pick(len(names))] }
	class := func() owl.ClassExpression {
		if pick(4) == 0 {
			return owl.ObjectComplementOf{Class: owltest.Class(name())}
		}
		return owltest.Class(name())
	}
	individual := func() owl.Individual {
		if pick(5) == 0 {
			return owl.AnonymousIndividual{ID: "_:" + name()}
		}
		return owltest.Individual(name())
	}

	doc := &owl.Document{}
	for n := pick(48); n > 0; n-- {
		switch pick(6) {
		case 0:
			doc.Add(owl.DeclareClass{Class: owltest.Class(name())})
		case 1:
			doc.Add(owl.DeclareNamedIndividual{Individual: owltest.Individual(name())})
		case 2:
			doc.Add(owl.SubClassOf{Sub: class(), Sup: class()})
		case 3:
			doc.Add(owl.EquivalentClasses{Classes: []owl.ClassExpression{class(), class(), class()}})
		case 4:
			var p owl.ObjectPropertyExpression = owltest.ObjectProperty(name())
			if pick(3) == 0 {
				p = owl.InverseObjectProperty{Property: owltest.ObjectProperty(name())}
			}
			doc.Add(owl.ObjectPropertyAssertion{Property: p, From: individual(), To: individual()})
		default:
			doc.Add(owltest.SampleComponent(owl.AllComponentKinds()[pick(len(owl.AllComponentKinds()))]))
		}
	}
	return doc
}

// FuzzExtract checks the cache and output invariants on generated documents.
func FuzzExtract(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("subclass and equivalent classes over a tiny vocabulary"))
	f.Add([]byte{0x10, 2, 0, 1, 3, 0, 2, 2, 4, 1, 5, 6, 7, 3, 3, 3, 0, 1, 2})

	f.Fuzz(func(t *testing.T, data []byte) {
		doc := fuzzDocument(fuzz.NewConsumer(data))

		res, err := Extract(doc)
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		assertDense(t, res)

		// A vertex index is used by at most one node, group members included.
		used := make(map[Index]bool)
		for _, n := range res.Nodes {
			members := n.Group
			if n.Kind != NodeEquivalentClass {
				members = []Index{n.Index}
			}
			for _, m := range members {
				if used[m] {
					t.Fatalf("index %d appears in more than one node", m)
				}
				used[m] = true
			}
		}

		again, err := Extract(doc)
		if err != nil {
			t.Fatalf("second extract failed: %v", err)
		}
		if len(again.Nodes) != len(res.Nodes) || len(again.Edges) != len(res.Edges) || len(again.Identifiers) != len(res.Identifiers) {
			t.Fatalf("extraction is not deterministic")
		}
	})
}
