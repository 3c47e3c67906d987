package cel

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent   TokenType = "IDENT"
	tokenCellRef TokenType = "CELLREF"
	tokenNumber  TokenType = "NUMBER"
	tokenString  TokenType = "STRING"
	tokenTrue    TokenType = "TRUE"
	tokenFalse   TokenType = "FALSE"

	tokenSemicolon TokenType = ";"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"
)

// Token captures lexical information for the parser. Offset is the byte
// offset of the token's first character within the formula body (the text
// after the marker). For tokenIllegal, Literal holds the failure reason.
type Token struct {
	Type    TokenType
	Literal string
	Offset  int
}
