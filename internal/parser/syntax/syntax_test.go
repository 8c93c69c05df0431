// internal/parser/syntax/syntax_test.go
package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

func TestPrefixes_Expand(t *testing.T) {
	p := StandardPrefixes()
	p[""] = "http://e.org/#"

	got, err := p.Expand(":Pizza")
	require.NoError(t, err)
	assert.Equal(t, "http://e.org/#Pizza", got)

	got, err = p.Expand("xsd:integer")
	require.NoError(t, err)
	assert.Equal(t, owl.NamespaceXSD+"integer", got)

	_, err = p.Expand("Pizza")
	assert.ErrorContains(t, err, "not a prefixed name")

	_, err = p.Expand("ex:Pizza")
	assert.ErrorContains(t, err, `undeclared prefix "ex"`)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"http://e.org/o", "#A", "http://e.org/o#A"},
		{"http://e.org/dir/o", "other", "http://e.org/dir/other"},
		{"http://e.org/o", "http://x.org/B", "http://x.org/B"},
		{"", "#A", "#A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.base, tt.ref), "Resolve(%q, %q)", tt.base, tt.ref)
	}
}

func TestPos_String(t *testing.T) {
	assert.Equal(t, "3:7", Pos{Line: 3, Column: 7}.String())
	assert.Equal(t, "/Ontology/SubClassOf", Pos{Path: "/Ontology/SubClassOf"}.String())
	assert.Equal(t, "-", Pos{}.String())
}

func TestParseError(t *testing.T) {
	err := Errorf("ofn", Pos{Line: 2, Column: 4}, "unknown axiom %s", "Foo")
	assert.Equal(t, "ofn: 2:4: unknown axiom Foo", err.Error())
	assert.True(t, errors.Is(err, ErrSyntax))
}

// -- Builder --

func iri(v string) Term { return IRITerm(Pos{}, v) }

func TestBuilder_EntityForms(t *testing.T) {
	b := NewBuilder("test")

	// A bare IRI is typed by position; a typed compound carries its own type.
	bare, err := b.ClassExpression(iri("http://e.org/A"))
	require.NoError(t, err)
	typed, err := b.ClassExpression(Compound(Pos{}, "Class", iri("http://e.org/A")))
	require.NoError(t, err)
	assert.Equal(t, owl.Class{IRI: "http://e.org/A"}, bare)
	assert.Equal(t, bare, typed)

	_, err = b.ClassExpression(Compound(Pos{}, "Datatype", iri("http://e.org/A")))
	assert.True(t, errors.Is(err, ErrSyntax))
}

func TestBuilder_DataRange(t *testing.T) {
	b := NewBuilder("test")
	dr, err := b.DataRange(Compound(Pos{}, "DataUnionOf",
		iri(owl.NamespaceXSD+"string"),
		Compound(Pos{}, "DataOneOf", LiteralTerm(Pos{}, "a", "", ""), LiteralTerm(Pos{}, "b", "en", "")),
	))
	require.NoError(t, err)
	assert.Equal(t, owl.DataUnionOf{Ranges: []owl.DataRange{
		owl.Datatype{IRI: owl.IRI(owl.NamespaceXSD + "string")},
		owl.DataOneOf{Literals: []owl.Literal{{Value: "a"}, {Value: "b", Lang: "en"}}},
	}}, dr)
}

func TestBuilder_DocumentRejectsNonOntology(t *testing.T) {
	_, err := NewBuilder("test").Document(Compound(Pos{Line: 1, Column: 1}, "Prefix"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "expected Ontology, found Prefix", perr.Msg)
}

func TestBuilder_AxiomRejectsLeaf(t *testing.T) {
	_, err := NewBuilder("test").Axiom(iri("http://e.org/A"))
	assert.ErrorContains(t, err, "expected an axiom, found IRI")
}

func TestBuilder_RuleNeedsBodyAndHead(t *testing.T) {
	_, err := NewBuilder("test").Axiom(Compound(Pos{}, "DLSafeRule", Compound(Pos{}, "Body")))
	assert.ErrorContains(t, err, "DLSafeRule needs a Body and a Head")
}
