package parse

import (
	"strconv"
	"strings"

	"github.com/lindqvist-dev/svalid/internal/textlit"
	"github.com/lindqvist-dev/svalid/schema"
	"github.com/lindqvist-dev/svalid/value"
)

// primitiveKeywords maps the construction-rule keywords to
// the primitive kind they produce. Several keywords share a kind: every
// one of string/char/symbol/date/time/datetime/binary produces
// Primitive(String), since none of those textual flavors are
// distinguished at the structural-validation layer this parser targets.
var primitiveKeywords = map[string]schema.PrimitiveKind{
	"int":      schema.KindInt,
	"float":    schema.KindFloat,
	"decimal":  schema.KindDecimal,
	"number":   schema.KindNumber,
	"string":   schema.KindString,
	"char":     schema.KindString,
	"symbol":   schema.KindString,
	"date":     schema.KindString,
	"time":     schema.KindString,
	"datetime": schema.KindString,
	"binary":   schema.KindString,
	"bool":     schema.KindBool,
	"true":     schema.KindBool,
	"false":    schema.KindBool,
	"null":     schema.KindNull,
	"any":      schema.KindAny,
}

// ParseSource parses a complete schema source fragment:
// zero or more `type NAME = expr` bindings, installed into reg as they
// are parsed, followed by a trailing expression returned as the root
// SchemaType.
//
// On a lexical or grammatical failure, ParseSource returns a
// *SyntaxError and the root SchemaType parsed so far is the zero value;
// bindings successfully installed before the failure remain in reg, per
// "already-installed earlier bindings remain".
func ParseSource(src string, reg *schema.Registry) (schema.SchemaType, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokenKeyword && p.cur.Text == "type" {
		name, node, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		reg.Set(name, node)
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, &SyntaxError{Pos: p.cur.Pos, Message: "unexpected trailing input after schema expression"}
	}
	return root, nil
}

type parser struct {
	lex  *lexer
	cur  Token
	peek Token
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts peek into cur and lexes a new peek token.
func (p *parser) advance() error {
	p.cur = p.peek
	next, err := p.lex.next()
	if err != nil {
		return err
	}
	p.peek = next
	return nil
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.cur.Kind != kind {
		return Token{}, &SyntaxError{Pos: p.cur.Pos, Message: "expected " + kind.String() + ", got " + p.cur.String()}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// parseBinding handles: "type" IDENT "=" expr
func (p *parser) parseBinding() (string, schema.SchemaType, error) {
	if _, err := p.expect(TokenKeyword); err != nil {
		return "", nil, err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(TokenEquals); err != nil {
		return "", nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	return name.Text, schema.WithName(node, name.Text), nil
}

// parseExpr handles: expr := union
func (p *parser) parseExpr() (schema.SchemaType, error) {
	return p.parseUnion()
}

// parseUnion handles: union := occ ("|" occ)*
func (p *parser) parseUnion() (schema.SchemaType, error) {
	first, err := p.parseOcc()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenPipe {
		return first, nil
	}
	alternatives := []schema.SchemaType{first}
	for p.cur.Kind == TokenPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseOcc()
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, next)
	}
	return schema.NewUnion(alternatives), nil
}

// parseOcc handles: occ := atom ("?" | "+" | "*")?
func (p *parser) parseOcc() (schema.SchemaType, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case TokenQuestion:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return applyOccurrence(base, schema.Optional), nil
	case TokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return applyOccurrence(base, schema.OneOrMore), nil
	case TokenStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return applyOccurrence(base, schema.ZeroOrMore), nil
	default:
		return base, nil
	}
}

// applyOccurrence folds a postfix qualifier into a List base (producing a
// qualified List rather than an Occurrence-wrapping-a-List, since the
// validator's List routine already understands an occurrence bound) and
// wraps every other base in an OccurrenceNode.
func applyOccurrence(base schema.SchemaType, mod schema.Occurrence) schema.SchemaType {
	if list, ok := base.(schema.List); ok {
		return schema.NewListWithOccurrence(list.Element(), mod)
	}
	return schema.NewOccurrence(base, mod)
}

// parseAtom handles: atom := IDENT | PRIMITIVE | list | map | element | literal | "(" expr ")"
func (p *parser) parseAtom() (schema.SchemaType, error) {
	switch p.cur.Kind {
	case TokenIdent:
		if kind, ok := primitiveKeywords[p.cur.Text]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return schema.NewPrimitive(kind), nil
		}
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return schema.NewReference(name), nil
	case TokenKeyword:
		if p.cur.Text == "list" {
			if err := p.advance(); err != nil {
				return nil, err
			}
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return schema.NewList(elem), nil
		}
		return nil, &SyntaxError{Pos: p.cur.Pos, Message: "unexpected keyword " + p.cur.Text}
	case TokenLBracket:
		return p.parseList()
	case TokenLBrace:
		return p.parseMap()
	case TokenLAngle:
		return p.parseElement()
	case TokenString:
		return p.parseStringLiteral()
	case TokenNumber:
		return p.parseNumberLiteral()
	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, &SyntaxError{Pos: p.cur.Pos, Message: "unexpected token " + p.cur.String()}
	}
}

// parseList handles: list := "[" expr "]"
//
// A postfix qualifier written inside the brackets (`[string+]`) folds
// into the list's own occurrence bound exactly like the same qualifier
// written outside them (`[string]+`), rather than becoming a modifier on
// every individual element: `[string+]` means "a list of strings, one or
// more of them", not "a list whose elements are each optionally
// repeated".
func (p *parser) parseList() (schema.SchemaType, error) {
	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}
	elem, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}
	if occ, ok := elem.(schema.OccurrenceNode); ok {
		return schema.NewListWithOccurrence(occ.Base(), occ.Modifier()), nil
	}
	return schema.NewList(elem), nil
}

// parseMap handles: map := "{" field ("," field)* ","? "}"
func (p *parser) parseMap() (schema.SchemaType, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	var fields []schema.Field
	for p.cur.Kind != TokenRBrace {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if p.cur.Kind == TokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return schema.NewMap(fields), nil
}

// parseField handles: field := IDENT ("?")? ":" expr
func (p *parser) parseField() (schema.Field, error) {
	name, err := p.expect(TokenIdent)
	if err != nil {
		return schema.Field{}, err
	}
	required := true
	if p.cur.Kind == TokenQuestion {
		required = false
		if err := p.advance(); err != nil {
			return schema.Field{}, err
		}
	}
	if _, err := p.expect(TokenColon); err != nil {
		return schema.Field{}, err
	}
	typ, err := p.parseExpr()
	if err != nil {
		return schema.Field{}, err
	}
	return schema.Field{Name: name.Text, Type: typ, Required: required}, nil
}

// parseElement handles:
//
//	element := "<" IDENT (attr ("," attr)*)? (expr ("," expr)*)? ">"
//	attr     := IDENT ":" expr
//
// Each comma-separated item after the tag is classified by one-token
// lookahead: IDENT immediately followed by ':' is an attribute, anything
// else is parsed as a positional content expression.
func (p *parser) parseElement() (schema.SchemaType, error) {
	if _, err := p.expect(TokenLAngle); err != nil {
		return nil, err
	}
	tagTok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}

	var attrs []schema.Field
	var content []schema.SchemaType
	for p.cur.Kind != TokenRAngle {
		if p.cur.Kind == TokenIdent && p.peek.Kind == TokenColon {
			attr, err := p.parseField()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		} else {
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			content = append(content, item)
		}
		if p.cur.Kind == TokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(TokenRAngle); err != nil {
		return nil, err
	}
	return schema.NewElement(tagTok.Text, attrs, content), nil
}

func (p *parser) parseStringLiteral() (schema.SchemaType, error) {
	tok := p.cur
	unescaped, err := textlit.ConvertString(tok.Text)
	if err != nil {
		return nil, &SyntaxError{Pos: tok.Pos, Message: err.Error()}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return schema.NewLiteral(value.StringValue(unescaped)), nil
}

func (p *parser) parseNumberLiteral() (schema.SchemaType, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if strings.Contains(tok.Text, ".") {
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.Pos, Message: "invalid float literal " + tok.Text}
		}
		return schema.NewLiteral(value.FloatValue(f)), nil
	}
	i, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, &SyntaxError{Pos: tok.Pos, Message: "invalid integer literal " + tok.Text}
	}
	return schema.NewLiteral(value.IntValue(i)), nil
}
