package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cmmoran/copytogen/internal/model"
)

// SyntaxError reports a type name that does not follow the Java type grammar.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse type %q: %s at offset %d", e.Input, e.Msg, e.Offset)
}

// ParseType parses a Java type reference such as
//
//	int[]
//	java.util.List<java.lang.String>
//	java.util.Map<String, java.util.List<? extends Number>>
//
// into a TypeExpr tree. Whitespace between tokens is ignored.
func ParseType(raw string) (*model.TypeExpr, error) {
	p := &typeParser{src: raw}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return t, nil
}

type typeParser struct {
	src string
	pos int
}

// parseType: wildcard | reference
func (p *typeParser) parseType() (*model.TypeExpr, error) {
	p.skipSpace()
	if p.peek() == '?' {
		return p.parseWildcard()
	}
	return p.parseReference()
}

// parseWildcard: "?" [ ("extends" | "super") type ]
func (p *typeParser) parseWildcard() (*model.TypeExpr, error) {
	p.pos++
	t := &model.TypeExpr{Name: model.Wildcard}
	p.skipSpace()
	for _, kw := range []string{"extends", "super"} {
		if !p.acceptKeyword(kw) {
			continue
		}
		bound, err := p.parseType()
		if err != nil {
			return nil, err
		}
		t.Bound = kw
		t.Params = []*model.TypeExpr{bound}
		break
	}
	return t, nil
}

// parseReference: qualified [ "<" [ type { "," type } ] ">" ] { "[" "]" }
func (p *typeParser) parseReference() (*model.TypeExpr, error) {
	name, err := p.parseQualified()
	if err != nil {
		return nil, err
	}
	t := &model.TypeExpr{Name: name}

	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		if t.Params, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}

	for {
		p.skipSpace()
		if p.peek() != '[' {
			break
		}
		p.pos++
		p.skipSpace()
		if p.peek() != ']' {
			return nil, p.errorf("expected ']'")
		}
		p.pos++
		t.Dims++
	}
	return t, nil
}

// parseArguments parses the generic argument list after the opening '<',
// consuming the closing '>'. An empty list (diamond) yields no arguments.
func (p *typeParser) parseArguments() ([]*model.TypeExpr, error) {
	p.skipSpace()
	if p.peek() == '>' {
		p.pos++
		return nil, nil
	}

	var args []*model.TypeExpr
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return args, nil
		default:
			return nil, p.errorf("expected ',' or '>'")
		}
	}
}

// parseQualified: ident { "." ident }
func (p *typeParser) parseQualified() (string, error) {
	var parts []string
	for {
		p.skipSpace()
		id := p.ident()
		if id == "" {
			return "", p.errorf("expected identifier")
		}
		parts = append(parts, id)

		p.skipSpace()
		if p.peek() != '.' {
			return strings.Join(parts, "."), nil
		}
		p.pos++
	}
}

func (p *typeParser) ident() string {
	start := p.pos
	for i, r := range p.src[p.pos:] {
		if !isIdentRune(r, i == 0) {
			break
		}
		p.pos = start + i + len(string(r))
	}
	return p.src[start:p.pos]
}

func (p *typeParser) acceptKeyword(kw string) bool {
	if !strings.HasPrefix(p.src[p.pos:], kw) {
		return false
	}
	rest := p.src[p.pos+len(kw):]
	if rest != "" && isIdentRune([]rune(rest)[0], false) {
		return false
	}
	p.pos += len(kw)
	return true
}

func (p *typeParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *typeParser) errorf(format string, args ...any) error {
	return &SyntaxError{Input: p.src, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || r == '$' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}
