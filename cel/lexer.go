package cel

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// lexer produces tokens from a formula body. Formulas are single fields, so
// positions are plain byte offsets rather than line/column pairs.
type lexer struct {
	input string

	offset int
	width  int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w
	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Offset: l.currentOffset()}
}

func (l *lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Offset: l.currentOffset()}

	switch {
	case l.ch == 0:
		tok.Type = tokenEOF
		tok.Literal = ""
	case l.ch == ';':
		tok = l.makeToken(tokenSemicolon, ";")
		l.readRune()
	case l.ch == '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case l.ch == ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case l.ch == '[':
		tok = l.makeToken(tokenLBracket, "[")
		l.readRune()
	case l.ch == ']':
		tok = l.makeToken(tokenRBracket, "]")
		l.readRune()
	case l.ch == '"':
		literal, err := l.readString()
		if err != "" {
			tok.Type = tokenIllegal
			tok.Literal = err
		} else {
			tok.Type = tokenString
			tok.Literal = literal
		}
	case l.ch == '-' || unicode.IsDigit(l.ch):
		literal, err := l.readNumber()
		if err != "" {
			tok.Type = tokenIllegal
			tok.Literal = err
		} else {
			tok.Type = tokenNumber
			tok.Literal = literal
		}
	case isIdentifierStart(l.ch):
		literal := l.readIdentifier()
		tok.Type = classifyIdent(literal)
		tok.Literal = literal
	default:
		tok = l.makeToken(tokenIllegal, fmt.Sprintf("unexpected character %q", l.ch))
		l.readRune()
	}

	return tok
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readRune()
	}
}

// readString consumes a double-quoted string. The opening quote is the
// current rune. No escape sequences: the string runs to the next quote.
func (l *lexer) readString() (string, string) {
	l.readRune()
	start := l.currentOffset()
	for l.ch != '"' {
		if l.ch == 0 {
			return "", "unterminated string"
		}
		l.readRune()
	}
	literal := l.input[start:l.currentOffset()]
	l.readRune()
	return literal, ""
}

// readNumber consumes an optional leading minus, digits, and at most one
// decimal point followed by digits. Whitespace inside a number is a break,
// not an error: `- 1` fails here because the minus has no digits.
func (l *lexer) readNumber() (string, string) {
	start := l.currentOffset()
	if l.ch == '-' {
		l.readRune()
	}

	digits := 0
	for unicode.IsDigit(l.ch) {
		digits++
		l.readRune()
	}
	if digits == 0 {
		return "", "malformed number: expected digits"
	}

	if l.ch == '.' {
		l.readRune()
		digits = 0
		for unicode.IsDigit(l.ch) {
			digits++
			l.readRune()
		}
		if digits == 0 {
			return "", "malformed number: expected digits after decimal point"
		}
	}

	return l.input[start:l.currentOffset()], ""
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

// classifyIdent splits identifier-shaped text into boolean literals, cell
// references (uppercase letters followed by digits, nothing else), and
// plain identifiers.
func classifyIdent(literal string) TokenType {
	switch literal {
	case "true":
		return tokenTrue
	case "false":
		return tokenFalse
	}
	if isCellRef(literal) {
		return tokenCellRef
	}
	return tokenIdent
}

func isCellRef(s string) bool {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return false
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return false
		}
	}
	return true
}

func isIdentifierStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentifierRune(ch rune) bool {
	return isIdentifierStart(ch) || (ch >= '0' && ch <= '9')
}
