// File: internal/parser/rdfxml/reader_test.go
package rdfxml

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/owl/owltest"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

const header = `<?xml version="1.0"?>
<rdf:RDF xmlns="http://example.org/test#"
     xml:base="http://example.org/test"
     xmlns:owl="http://www.w3.org/2002/07/owl#"
     xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
     xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
     xmlns:xsd="http://www.w3.org/2001/XMLSchema#">
`

func parse(t *testing.T, src string) *owl.Document {
	t.Helper()
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestRead_Pizza(t *testing.T) {
	f, err := os.Open("../testdata/pizza.owl")
	require.NoError(t, err)
	defer f.Close()

	doc, err := Read(f)
	require.NoError(t, err)
	if diff := cmp.Diff(owltest.Pizza(), doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Constructs(t *testing.T) {
	src := header + `
    <owl:Ontology rdf:about="http://example.org/test#ont">
        <owl:versionIRI rdf:resource="http://example.org/test#ont/1.0"/>
        <owl:imports rdf:resource="http://example.org/test#imported"/>
        <rdfs:label>ontology</rdfs:label>
    </owl:Ontology>
    <owl:ObjectProperty rdf:about="#p">
        <rdf:type rdf:resource="http://www.w3.org/2002/07/owl#TransitiveProperty"/>
    </owl:ObjectProperty>
    <owl:DatatypeProperty rdf:about="#d">
        <rdf:type rdf:resource="http://www.w3.org/2002/07/owl#FunctionalProperty"/>
        <rdfs:range rdf:resource="http://www.w3.org/2001/XMLSchema#integer"/>
    </owl:DatatypeProperty>
    <owl:Class rdf:about="#A">
        <owl:equivalentClass>
            <owl:Class>
                <owl:intersectionOf rdf:parseType="Collection">
                    <rdf:Description rdf:about="#B"/>
                    <owl:Restriction>
                        <owl:onProperty rdf:resource="#p"/>
                        <owl:minCardinality rdf:datatype="http://www.w3.org/2001/XMLSchema#nonNegativeInteger">2</owl:minCardinality>
                    </owl:Restriction>
                </owl:intersectionOf>
            </owl:Class>
        </owl:equivalentClass>
        <owl:disjointWith>
            <owl:Class>
                <owl:complementOf rdf:resource="#B"/>
            </owl:Class>
        </owl:disjointWith>
        <owl:hasKey rdf:parseType="Collection">
            <rdf:Description rdf:about="#p"/>
            <rdf:Description rdf:about="#d"/>
        </owl:hasKey>
    </owl:Class>
    <rdfs:Datatype rdf:about="#adult">
        <owl:equivalentClass>
            <rdfs:Datatype>
                <owl:onDatatype rdf:resource="http://www.w3.org/2001/XMLSchema#integer"/>
                <owl:withRestrictions rdf:parseType="Collection">
                    <rdf:Description>
                        <xsd:minInclusive rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">18</xsd:minInclusive>
                    </rdf:Description>
                </owl:withRestrictions>
            </rdfs:Datatype>
        </owl:equivalentClass>
    </rdfs:Datatype>
    <owl:NamedIndividual rdf:about="#i">
        <rdf:type rdf:resource="#A"/>
        <p rdf:resource="#j"/>
        <d rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">42</d>
        <owl:sameAs rdf:resource="#k"/>
    </owl:NamedIndividual>
    <owl:AllDifferent>
        <owl:distinctMembers rdf:parseType="Collection">
            <rdf:Description rdf:about="#i"/>
            <rdf:Description rdf:about="#j"/>
        </owl:distinctMembers>
    </owl:AllDifferent>
    <owl:NegativePropertyAssertion>
        <owl:sourceIndividual rdf:resource="#i"/>
        <owl:assertionProperty rdf:resource="#p"/>
        <owl:targetIndividual rdf:resource="#k"/>
    </owl:NegativePropertyAssertion>
    <rdf:Description rdf:about="#q">
        <owl:propertyChainAxiom rdf:parseType="Collection">
            <rdf:Description rdf:about="#p"/>
            <rdf:Description rdf:about="#p"/>
        </owl:propertyChainAxiom>
        <owl:inverseOf rdf:resource="#p"/>
    </rdf:Description>
    <rdf:Description rdf:about="#A" xml:lang="en">
        <rdfs:comment>A thing</rdfs:comment>
    </rdf:Description>
</rdf:RDF>`
	doc := parse(t, src)

	a, b := owltest.Class("A"), owltest.Class("B")
	p, q, d := owltest.ObjectProperty("p"), owltest.ObjectProperty("q"), owltest.DataProperty("d")
	i, j, k := owltest.Individual("i"), owltest.Individual("j"), owltest.Individual("k")
	xsdInteger := owl.Datatype{IRI: owl.IRI(owl.NamespaceXSD + "integer")}

	want := &owl.Document{ID: owl.OntologyID{IRI: owltest.IRI("ont"), VersionIRI: owltest.IRI("ont/1.0")}}
	want.Add(owl.Import{IRI: owltest.IRI("imported")})
	want.Add(owl.OntologyAnnotation{Annotation: owltest.Label("ontology")})
	want.Add(owl.DeclareObjectProperty{Property: p})
	want.Add(owl.TransitiveObjectProperty{Property: p})
	want.Add(owl.DeclareDataProperty{Property: d})
	want.Add(owl.FunctionalDataProperty{Property: d})
	want.Add(owl.DataPropertyRange{Property: d, Range: xsdInteger})
	want.Add(owl.DeclareClass{Class: a})
	want.Add(owl.EquivalentClasses{Classes: []owl.ClassExpression{a, owl.ObjectIntersectionOf{Classes: []owl.ClassExpression{
		b,
		owl.ObjectMinCardinality{N: 2, Property: p, Filler: owl.Class{IRI: owl.IRI(owl.NamespaceOWL + "Thing")}},
	}}}})
	want.Add(owl.DisjointClasses{Classes: []owl.ClassExpression{a, owl.ObjectComplementOf{Class: b}}})
	want.Add(owl.HasKey{Class: a, Properties: []owl.PropertyExpression{p, d}})
	want.Add(owl.DeclareDatatype{Datatype: owltest.Datatype("adult")})
	want.Add(owl.DatatypeDefinition{Datatype: owltest.Datatype("adult"), Range: owl.DatatypeRestriction{
		Datatype: xsdInteger,
		Restrictions: []owl.FacetRestriction{
			{Facet: owl.FacetMinInclusive, Value: owl.Literal{Value: "18", Datatype: xsdInteger.IRI}},
		},
	}})
	want.Add(owl.DeclareNamedIndividual{Individual: i})
	want.Add(owl.ClassAssertion{Class: a, Individual: i})
	want.Add(owl.ObjectPropertyAssertion{Property: p, From: i, To: j})
	want.Add(owl.DataPropertyAssertion{Property: d, From: i, To: owl.Literal{Value: "42", Datatype: xsdInteger.IRI}})
	want.Add(owl.SameIndividual{Individuals: []owl.Individual{i, k}})
	want.Add(owl.DifferentIndividuals{Individuals: []owl.Individual{i, j}})
	want.Add(owl.NegativeObjectPropertyAssertion{Property: p, From: i, To: k})
	want.Add(owl.SubObjectPropertyOf{
		Sub: owl.ObjectPropertyChain{Properties: []owl.ObjectPropertyExpression{p, p}},
		Sup: q,
	})
	want.Add(owl.InverseObjectProperties{First: q, Second: p})
	want.Add(owl.AnnotationAssertion{
		Subject: owltest.IRI("A"),
		Annotation: owl.Annotation{
			Property: owl.AnnotationProperty{IRI: owl.IRI(owl.NamespaceRDFS + "comment")},
			Value:    owl.Literal{Value: "A thing", Lang: "en"},
		},
	})

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_AxiomAnnotationsAndBlankIndividuals(t *testing.T) {
	doc := parse(t, header+`
    <owl:Class rdf:about="#A"/>
    <rdf:Description rdf:about="#A">
        <rdfs:subClassOf rdf:resource="#B"/>
    </rdf:Description>
    <owl:Axiom>
        <owl:annotatedSource rdf:resource="#A"/>
        <owl:annotatedProperty rdf:resource="http://www.w3.org/2000/01/rdf-schema#subClassOf"/>
        <owl:annotatedTarget rdf:resource="#B"/>
        <rdfs:comment>asserted</rdfs:comment>
    </owl:Axiom>
    <A rdf:nodeID="x"/>
</rdf:RDF>`)

	require.Equal(t, 3, doc.Len())
	sub := doc.Components[1]
	assert.Equal(t, owl.SubClassOf{Sub: owltest.Class("A"), Sup: owltest.Class("B")}, sub.Component)
	require.Len(t, sub.Annotations, 1)
	assert.Equal(t, owl.Literal{Value: "asserted"}, sub.Annotations[0].Value)

	assert.Equal(t, owl.ClassAssertion{Class: owltest.Class("A"), Individual: owl.AnonymousIndividual{ID: "_:x"}}, doc.Components[2].Component)
}

func TestRead_LoneNodeElement(t *testing.T) {
	doc := parse(t, `<owl:Class xmlns:owl="http://www.w3.org/2002/07/owl#"
    xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" rdf:about="http://e.org/A"/>`)
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, owl.DeclareClass{Class: owl.Class{IRI: "http://e.org/A"}}, doc.Components[0].Component)
	assert.True(t, doc.ID.IsAnonymous())
}

func TestRead_Errors(t *testing.T) {
	const ns = `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:owl="http://www.w3.org/2002/07/owl#" xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"`
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"malformed", `<rdf:RDF><owl:Class>`, "malformed XML"},
		{"empty", ``, "no root element"},
		{"no namespace", `<rdf:RDF ` + ns + `><Thing/></rdf:RDF>`, "has no namespace"},
		{"two objects", `<rdf:RDF ` + ns + `><rdf:Description rdf:about="http://e.org/A"><rdfs:subClassOf>` +
			`<owl:Class/><owl:Class/></rdfs:subClassOf></rdf:Description></rdf:RDF>`, "expected one"},
		{"cyclic list", `<rdf:RDF ` + ns + `><rdf:Description rdf:about="http://e.org/A">` +
			`<owl:disjointUnionOf rdf:nodeID="l"/></rdf:Description>` +
			`<rdf:Description rdf:nodeID="l"><rdf:first rdf:resource="http://e.org/B"/><rdf:rest rdf:nodeID="l"/>` +
			`</rdf:Description></rdf:RDF>`, "list _:l is cyclic"},
		{"axiom without target", `<rdf:RDF ` + ns + `><owl:Axiom>` +
			`<owl:annotatedSource rdf:resource="http://e.org/A"/></owl:Axiom></rdf:RDF>`, "needs an annotated source"},
		{"restriction without filler", `<rdf:RDF ` + ns + `><rdf:Description rdf:about="http://e.org/A"><rdfs:subClassOf>` +
			`<owl:Restriction><owl:onProperty rdf:resource="http://e.org/p"/></owl:Restriction>` +
			`</rdfs:subClassOf></rdf:Description></rdf:RDF>`, "has no filler"},
		{"cyclic expression", `<rdf:RDF ` + ns + `><rdf:Description rdf:about="http://e.org/A">` +
			`<rdfs:subClassOf rdf:nodeID="c"/></rdf:Description>` +
			`<rdf:Description rdf:nodeID="c"><owl:complementOf rdf:nodeID="c"/></rdf:Description></rdf:RDF>`,
			"expressions nest deeper than"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, syntax.ErrSyntax))

			var perr *syntax.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, Format, perr.Format)
			assert.Contains(t, perr.Msg, tt.msg)
		})
	}
}

func nestedComplements(n int) string {
	return `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" ` +
		`xmlns:owl="http://www.w3.org/2002/07/owl#" xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#">` +
		`<rdf:Description rdf:about="http://e.org/A"><rdfs:subClassOf>` +
		strings.Repeat("<owl:Class><owl:complementOf>", n) + `<rdf:Description rdf:about="http://e.org/B"/>` +
		strings.Repeat("</owl:complementOf></owl:Class>", n) + `</rdfs:subClassOf></rdf:Description></rdf:RDF>`
}

func TestRead_NestingLimit(t *testing.T) {
	doc := parse(t, nestedComplements(600))
	require.Equal(t, 1, doc.Len())
	_, ok := doc.Components[0].Component.(owl.SubClassOf)
	assert.True(t, ok)

	_, err := Read(strings.NewReader(nestedComplements(syntax.MaxNesting)))
	require.Error(t, err)
	var perr *syntax.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Msg, "elements nest deeper than")
	assert.True(t, strings.HasPrefix(perr.Pos.Path, "/RDF/Description/subClassOf/Class"))
}
