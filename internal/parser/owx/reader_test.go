// internal/parser/owx/reader_test.go
package owx

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

func parse(t *testing.T, src string) *owl.Document {
	t.Helper()
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestRead_Pizza(t *testing.T) {
	f, err := os.Open("../testdata/pizza.owx")
	require.NoError(t, err)
	defer f.Close()

	doc, err := Read(f)
	require.NoError(t, err)
	if diff := cmp.Diff(owltest.Pizza(), doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Constructs(t *testing.T) {
	src := `<?xml version="1.0"?>
<Ontology xmlns="http://www.w3.org/2002/07/owl#"
     ontologyIRI="http://example.org/test#ont" versionIRI="http://example.org/test#ont/1.0">
    <Prefix name="" IRI="http://example.org/test#"/>
    <Import>http://example.org/test#imported</Import>
    <Annotation>
        <AnnotationProperty abbreviatedIRI="rdfs:label"/>
        <Literal datatypeIRI="http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral">ontology</Literal>
    </Annotation>
    <SubClassOf>
        <Class abbreviatedIRI=":A"/>
        <ObjectMinCardinality cardinality="2">
            <ObjectProperty abbreviatedIRI=":p"/>
        </ObjectMinCardinality>
    </SubClassOf>
    <DatatypeDefinition>
        <Datatype abbreviatedIRI=":adult"/>
        <DatatypeRestriction>
            <Datatype abbreviatedIRI="xsd:integer"/>
            <FacetRestriction facet="http://www.w3.org/2001/XMLSchema#minInclusive">
                <Literal>18</Literal>
            </FacetRestriction>
        </DatatypeRestriction>
    </DatatypeDefinition>
    <HasKey>
        <Class abbreviatedIRI=":A"/>
        <ObjectProperty abbreviatedIRI=":p"/>
        <DataProperty abbreviatedIRI=":d"/>
    </HasKey>
    <DifferentIndividuals>
        <NamedIndividual abbreviatedIRI=":i"/>
        <AnonymousIndividual nodeID="_:b0"/>
    </DifferentIndividuals>
    <AnnotationAssertion>
        <AnnotationProperty abbreviatedIRI="rdfs:label"/>
        <AbbreviatedIRI>:A</AbbreviatedIRI>
        <Literal xml:lang="it">Pizza</Literal>
    </AnnotationAssertion>
    <AnnotationPropertyRange>
        <AnnotationProperty abbreviatedIRI=":note"/>
        <IRI>http://www.w3.org/2001/XMLSchema#string</IRI>
    </AnnotationPropertyRange>
    <DLSafeRule>
        <Body>
            <ClassAtom>
                <Class abbreviatedIRI=":A"/>
                <Variable abbreviatedIRI=":x"/>
            </ClassAtom>
            <ObjectPropertyAtom>
                <ObjectProperty abbreviatedIRI=":p"/>
                <Variable abbreviatedIRI=":x"/>
                <Variable abbreviatedIRI=":y"/>
            </ObjectPropertyAtom>
        </Body>
        <Head>
            <ClassAtom>
                <Class abbreviatedIRI=":B"/>
                <Variable abbreviatedIRI=":y"/>
            </ClassAtom>
        </Head>
    </DLSafeRule>
</Ontology>`
	doc := parse(t, src)

	want := &owl.Document{ID: owl.OntologyID{IRI: owltest.IRI("ont"), VersionIRI: owltest.IRI("ont/1.0")}}
	want.Add(owltest.SampleComponent(owl.KindImport))
	want.Add(owltest.SampleComponent(owl.KindOntologyAnnotation))
	want.Add(owl.SubClassOf{
		Sub: owltest.Class("A"),
		Sup: owl.ObjectMinCardinality{N: 2, Property: owltest.ObjectProperty("p"), Filler: owl.Class{IRI: owl.IRI(owl.NamespaceOWL + "Thing")}},
	})
	want.Add(owltest.SampleComponent(owl.KindDatatypeDefinition))
	want.Add(owltest.SampleComponent(owl.KindHasKey))
	want.Add(owltest.SampleComponent(owl.KindDifferentIndividuals))
	want.Add(owl.AnnotationAssertion{
		Subject: owltest.IRI("A"),
		Annotation: owl.Annotation{
			Property: owl.AnnotationProperty{IRI: owl.IRI(owl.NamespaceRDFS + "label")},
			Value:    owl.Literal{Value: "Pizza", Lang: "it"},
		},
	})
	want.Add(owltest.SampleComponent(owl.KindAnnotationPropertyRange))
	want.Add(owltest.SampleComponent(owl.KindRule))

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_ResolvesAgainstOntologyIRI(t *testing.T) {
	doc := parse(t, `<Ontology xmlns="http://www.w3.org/2002/07/owl#" ontologyIRI="http://e.org/o">
    <Declaration><Class IRI="#A"/></Declaration>
</Ontology>`)
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, owl.DeclareClass{Class: owl.Class{IRI: "http://e.org/o#A"}}, doc.Components[0].Component)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"malformed", `<Ontology><Declaration>`, "malformed XML"},
		{"empty", ``, "no root element"},
		{"wrong root", `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"/>`, "expected Ontology"},
		{"entity without IRI", `<Ontology><Declaration><Class/></Declaration></Ontology>`, "Class has no IRI"},
		{"undeclared prefix", `<Ontology><Declaration><Class abbreviatedIRI="ex:A"/></Declaration></Ontology>`, `undeclared prefix "ex"`},
		{"prefix without IRI", `<Ontology><Prefix name="ex"/></Ontology>`, `Prefix "ex" has no IRI`},
		{"anonymous without id", `<Ontology><DifferentIndividuals><AnonymousIndividual/></DifferentIndividuals></Ontology>`, "has no nodeID"},
		{"empty import", `<Ontology><Import/></Ontology>`, "Import is empty"},
		{"unknown axiom", `<Ontology><Frobnicate/></Ontology>`, "unknown axiom Frobnicate"},
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
	return `<Ontology><SubClassOf><Class IRI="http://e.org/A"/>` +
		strings.Repeat("<ObjectComplementOf>", n) + `<Class IRI="http://e.org/B"/>` +
		strings.Repeat("</ObjectComplementOf>", n) + `</SubClassOf></Ontology>`
}

func TestRead_NestingLimit(t *testing.T) {
	doc := parse(t, nestedComplements(600))
	require.Equal(t, 1, doc.Len())

	_, err := Read(strings.NewReader(nestedComplements(syntax.MaxNesting)))
	require.Error(t, err)
	var perr *syntax.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Msg, "elements nest deeper than")
	assert.True(t, strings.HasPrefix(perr.Pos.Path, "/Ontology/SubClassOf/ObjectComplementOf"))
}

func TestRead_ErrorCarriesElementPath(t *testing.T) {
	_, err := Read(strings.NewReader(`<Ontology><SubClassOf><Class IRI="http://e.org/A"/></SubClassOf></Ontology>`))
	var perr *syntax.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "/Ontology/SubClassOf", perr.Pos.Path)
}
