package cel

import (
	"fmt"
	"strconv"
	"strings"
)

// parser is a recursive-descent parser with one token of lookahead. A
// formula body is exactly one top-level function call; bare literals and
// references are not valid roots.
type parser struct {
	l *lexer

	curToken  Token
	peekToken Token
}

func newParser(input string) *parser {
	p := &parser{l: newLexer(input)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// parseFormula parses the whole formula body and requires it to be fully
// consumed; trailing tokens after the closing parenthesis are an error.
func (p *parser) parseFormula() (*CallExpr, error) {
	call, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != tokenEOF {
		return nil, p.errorExpected("end of formula")
	}
	return call, nil
}

func (p *parser) parseCall() (*CallExpr, error) {
	if err := p.checkIllegal(); err != nil {
		return nil, err
	}
	if p.curToken.Type != tokenIdent {
		return nil, p.errorExpected("function name")
	}
	call := &CallExpr{Name: p.curToken.Literal, offset: p.curToken.Offset}
	p.nextToken()

	if p.curToken.Type != tokenLParen {
		return nil, p.errorExpected("'('")
	}
	p.nextToken()

	args, err := p.parseArgList(tokenRParen, "')'")
	if err != nil {
		return nil, err
	}
	call.Args = args
	return call, nil
}

// parseArgList consumes semicolon-separated arguments up to and including
// the closing token. The opening token has already been consumed.
func (p *parser) parseArgList(closing TokenType, closingDesc string) ([]Expr, error) {
	args := []Expr{}

	if p.curToken.Type == closing {
		p.nextToken()
		return args, nil
	}

	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if err := p.checkIllegal(); err != nil {
			return nil, err
		}
		switch p.curToken.Type {
		case tokenSemicolon:
			p.nextToken()
		case closing:
			p.nextToken()
			return args, nil
		default:
			return nil, p.errorExpected("';' or " + closingDesc)
		}
	}
}

func (p *parser) parseArg() (Expr, error) {
	if err := p.checkIllegal(); err != nil {
		return nil, err
	}
	switch p.curToken.Type {
	case tokenIdent:
		return p.parseCall()
	case tokenCellRef:
		return p.parseCellRef()
	case tokenNumber:
		return p.parseNumber()
	case tokenString:
		expr := &LiteralExpr{Value: NewString(p.curToken.Literal), offset: p.curToken.Offset}
		p.nextToken()
		return expr, nil
	case tokenTrue, tokenFalse:
		expr := &LiteralExpr{Value: NewBool(p.curToken.Type == tokenTrue), offset: p.curToken.Offset}
		p.nextToken()
		return expr, nil
	case tokenLBracket:
		return p.parseArray()
	default:
		return nil, p.errorExpected("argument")
	}
}

func (p *parser) parseCellRef() (Expr, error) {
	addr, err := ParseAddress(p.curToken.Literal)
	if err != nil {
		return nil, &ParseError{
			Expected: "cell reference",
			Found:    strconv.Quote(p.curToken.Literal),
			Offset:   p.curToken.Offset,
		}
	}
	expr := &RefExpr{Addr: addr, offset: p.curToken.Offset}
	p.nextToken()
	return expr, nil
}

func (p *parser) parseNumber() (Expr, error) {
	literal := p.curToken.Literal
	offset := p.curToken.Offset

	var value Value
	if strings.ContainsRune(literal, '.') {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, &ParseError{Expected: "number", Found: strconv.Quote(literal), Offset: offset}
		}
		value = NewFloat(f)
	} else {
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, &ParseError{Expected: "number", Found: strconv.Quote(literal), Offset: offset}
		}
		value = NewInt(n)
	}

	p.nextToken()
	return &LiteralExpr{Value: value, offset: offset}, nil
}

func (p *parser) parseArray() (Expr, error) {
	expr := &ArrayExpr{offset: p.curToken.Offset}
	p.nextToken()

	elems, err := p.parseArgList(tokenRBracket, "']'")
	if err != nil {
		return nil, err
	}
	expr.Elements = elems
	return expr, nil
}

// checkIllegal surfaces lexer failures through the parser: an illegal token
// carries its reason in the literal and becomes a LexError.
func (p *parser) checkIllegal() error {
	if p.curToken.Type == tokenIllegal {
		return &LexError{Offset: p.curToken.Offset, Reason: p.curToken.Literal}
	}
	return nil
}

func (p *parser) errorExpected(expected string) error {
	found := fmt.Sprintf("%q", p.curToken.Literal)
	if p.curToken.Type == tokenEOF {
		found = "end of formula"
	}
	return &ParseError{Expected: expected, Found: found, Offset: p.curToken.Offset}
}
