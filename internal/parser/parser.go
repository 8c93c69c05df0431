// File: internal/parser/parser.go

// Package parser picks a reader for an ontology file and runs it.
package parser

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/ofn"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/owx"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/rdfxml"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

// ParseError is the positioned error every reader returns for bad input.
type ParseError = syntax.ParseError

// ErrUnknownFormat is returned for a file extension no reader claims.
var ErrUnknownFormat = errors.New("unknown ontology format")

// Format is an ontology serialization.
type Format int

const (
	FormatUnknown Format = iota
	FormatFunctional
	FormatOWX
	FormatRDFXML
)

func (f Format) String() string {
	switch f {
	case FormatFunctional:
		return "functional"
	case FormatOWX:
		return "owl/xml"
	case FormatRDFXML:
		return "rdf/xml"
	}
	return "unknown"
}

// DetectFormat decides the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofn":
		return FormatFunctional, nil
	case ".owx":
		return FormatOWX, nil
	case ".owl", ".rdf":
		return FormatRDFXML, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Read parses r in the given format.
func Read(r io.Reader, f Format) (*owl.Document, error) {
	switch f {
	case FormatFunctional:
		return ofn.Read(r)
	case FormatOWX:
		return owx.Read(r)
	case FormatRDFXML:
		return rdfxml.Read(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// ParseFile reads and parses the ontology at path. The returned document
// starts with a DocIRI component naming the file.
func ParseFile(path string) (*owl.Document, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ontology: %w", err)
	}
	defer file.Close()

	doc, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		loc := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		doc.Components = append([]owl.AnnotatedComponent{{Component: owl.DocIRI{IRI: owl.IRI(loc.String())}}}, doc.Components...)
	}
	return doc, nil
}
