// File: internal/parser/ofn/reader.go

// Package ofn reads OWL 2 Functional-Style Syntax.
package ofn

import (
	"fmt"
	"io"
	"strings"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

// Format names this syntax in errors.
const Format = "ofn"

// Read parses a functional-syntax document.
func Read(r io.Reader) (*owl.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading functional syntax: %w", err)
	}
	return Parse(string(src))
}

// Parse parses a functional-syntax document held in memory.
func Parse(src string) (*owl.Document, error) {
	p := &parser{lex: newLexer(src), prefixes: syntax.StandardPrefixes()}
	if err := p.advance(); err != nil {
		return nil, err
	}
	ont, err := p.document()
	if err != nil {
		return nil, err
	}
	return syntax.NewBuilder(Format).Document(ont)
}

type parser struct {
	lex      *lexer
	tok      token
	prefixes syntax.Prefixes
	depth    int
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) errorf(msg string, args ...any) error {
	return syntax.Errorf(Format, p.tok.pos, msg, args...)
}

// descend enters one level of compound nesting; callers undo it with ascend.
func (p *parser) descend(pos syntax.Pos) error {
	if p.depth >= syntax.MaxNesting {
		return syntax.Errorf(Format, pos, "terms nest deeper than %d", syntax.MaxNesting)
	}
	p.depth++
	return nil
}

func (p *parser) ascend() { p.depth-- }

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.tok
	if t.kind != kind {
		return t, p.errorf("expected %s, found %s %q", kind, t.kind, t.text)
	}
	return t, p.advance()
}

// document reads the prefix declarations and the Ontology term.
func (p *parser) document() (syntax.Term, error) {
	for p.tok.kind == tokName && p.tok.text == "Prefix" {
		if err := p.prefix(); err != nil {
			return syntax.Term{}, err
		}
	}
	if p.tok.kind != tokName || p.tok.text != "Ontology" {
		return syntax.Term{}, p.errorf("expected Ontology, found %s %q", p.tok.kind, p.tok.text)
	}
	ont, err := p.term()
	if err != nil {
		return syntax.Term{}, err
	}
	if p.tok.kind != tokEOF {
		return syntax.Term{}, p.errorf("unexpected %s after the ontology", p.tok.kind)
	}
	return ont, nil
}

// prefix reads Prefix(name:=<iri>).
func (p *parser) prefix() error {
	if err := p.advance(); err != nil {
		return err
	}
	if _, err := p.expect(tokLParen); err != nil {
		return err
	}
	name, err := p.expect(tokName)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(name.text, ":") {
		return syntax.Errorf(Format, name.pos, "prefix name %q must end in ':'", name.text)
	}
	if _, err := p.expect(tokEquals); err != nil {
		return err
	}
	iri, err := p.expect(tokFullIRI)
	if err != nil {
		return err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return err
	}
	p.prefixes[strings.TrimSuffix(name.text, ":")] = iri.text
	return nil
}

func (p *parser) term() (syntax.Term, error) {
	t := p.tok
	switch t.kind {
	case tokLParen:
		if err := p.descend(t.pos); err != nil {
			return syntax.Term{}, err
		}
		defer p.ascend()
		if err := p.advance(); err != nil {
			return syntax.Term{}, err
		}
		args, err := p.args()
		return syntax.Compound(t.pos, "", args...), err
	case tokFullIRI:
		return syntax.IRITerm(t.pos, t.text), p.advance()
	case tokNumber:
		return syntax.NumberTerm(t.pos, t.text), p.advance()
	case tokString:
		return p.literal()
	case tokName:
		if err := p.advance(); err != nil {
			return syntax.Term{}, err
		}
		if strings.HasPrefix(t.text, "_:") {
			return syntax.NodeIDTerm(t.pos, t.text), nil
		}
		if strings.Contains(t.text, ":") {
			iri, err := p.prefixes.Expand(t.text)
			if err != nil {
				return syntax.Term{}, syntax.Errorf(Format, t.pos, "%v", err)
			}
			return syntax.IRITerm(t.pos, iri), nil
		}
		if err := p.descend(t.pos); err != nil {
			return syntax.Term{}, err
		}
		defer p.ascend()
		if _, err := p.expect(tokLParen); err != nil {
			return syntax.Term{}, err
		}
		args, err := p.args()
		return syntax.Compound(t.pos, t.text, args...), err
	}
	return syntax.Term{}, p.errorf("unexpected %s", t.kind)
}

// args reads terms up to and including the closing parenthesis.
func (p *parser) args() ([]syntax.Term, error) {
	var args []syntax.Term
	for p.tok.kind != tokRParen {
		if p.tok.kind == tokEOF {
			return nil, p.errorf("missing ')'")
		}
		a, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, p.advance()
}

func (p *parser) literal() (syntax.Term, error) {
	lex := p.tok
	if err := p.advance(); err != nil {
		return syntax.Term{}, err
	}
	switch p.tok.kind {
	case tokLang:
		lang := p.tok.text
		return syntax.LiteralTerm(lex.pos, lex.text, lang, ""), p.advance()
	case tokCaret:
		if err := p.advance(); err != nil {
			return syntax.Term{}, err
		}
		dt, err := p.term()
		if err != nil {
			return syntax.Term{}, err
		}
		if dt.Kind != syntax.TermIRI {
			return syntax.Term{}, syntax.Errorf(Format, dt.Pos, "literal datatype must be an IRI")
		}
		return syntax.LiteralTerm(lex.pos, lex.text, "", owl.IRI(dt.Value)), nil
	}
	return syntax.LiteralTerm(lex.pos, lex.text, "", ""), nil
}
