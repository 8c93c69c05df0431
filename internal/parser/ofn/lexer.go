// File: internal/parser/ofn/lexer.go
package ofn

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/WebVOWL/horned-owl-serializer/internal/parser/syntax"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokEquals
	tokFullIRI // <...>, without the brackets
	tokName    // keyword, prefixed name or node ID
	tokString  // quoted lexical form, unescaped
	tokCaret   // ^^
	tokLang    // @tag, without the @
	tokNumber
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokEquals:
		return "'='"
	case tokFullIRI:
		return "IRI"
	case tokName:
		return "name"
	case tokString:
		return "string"
	case tokCaret:
		return "'^^'"
	case tokLang:
		return "language tag"
	case tokNumber:
		return "number"
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

type token struct {
	kind tokenKind
	text string
	pos  syntax.Pos
}

type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peekRune() rune {
	if l.off >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return r
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) pos() syntax.Pos {
	return syntax.Pos{Line: l.line, Column: l.col}
}

func (l *lexer) skipSpaceAndComments() {
	for l.off < len(l.src) {
		r := l.peekRune()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '#':
			for l.off < len(l.src) && l.peekRune() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '=', '<', '"', '^', '@', '#', -1:
		return true
	}
	return unicode.IsSpace(r)
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	start := l.pos()
	if l.off >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}

	switch r := l.peekRune(); r {
	case '(':
		l.advance()
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case ')':
		l.advance()
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case '=':
		l.advance()
		return token{kind: tokEquals, text: "=", pos: start}, nil
	case '<':
		l.advance()
		var sb strings.Builder
		for {
			c := l.peekRune()
			if c == -1 || c == '\n' {
				return token{}, syntax.Errorf(Format, start, "unterminated IRI")
			}
			l.advance()
			if c == '>' {
				return token{kind: tokFullIRI, text: sb.String(), pos: start}, nil
			}
			sb.WriteRune(c)
		}
	case '"':
		l.advance()
		var sb strings.Builder
		for {
			c := l.peekRune()
			if c == -1 {
				return token{}, syntax.Errorf(Format, start, "unterminated string")
			}
			l.advance()
			switch c {
			case '"':
				return token{kind: tokString, text: sb.String(), pos: start}, nil
			case '\\':
				esc := l.peekRune()
				if esc != '"' && esc != '\\' {
					return token{}, syntax.Errorf(Format, l.pos(), "invalid escape \\%c", esc)
				}
				l.advance()
				sb.WriteRune(esc)
			default:
				sb.WriteRune(c)
			}
		}
	case '^':
		l.advance()
		if l.peekRune() != '^' {
			return token{}, syntax.Errorf(Format, start, "expected '^^'")
		}
		l.advance()
		return token{kind: tokCaret, text: "^^", pos: start}, nil
	case '@':
		l.advance()
		tag := l.word()
		if tag == "" {
			return token{}, syntax.Errorf(Format, start, "empty language tag")
		}
		return token{kind: tokLang, text: tag, pos: start}, nil
	}

	w := l.word()
	if w == "" {
		return token{}, syntax.Errorf(Format, start, "unexpected character %q", l.peekRune())
	}
	if isNumber(w) {
		return token{kind: tokNumber, text: w, pos: start}, nil
	}
	return token{kind: tokName, text: w, pos: start}, nil
}

func (l *lexer) word() string {
	begin := l.off
	for !isDelimiter(l.peekRune()) {
		l.advance()
	}
	return l.src[begin:l.off]
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
