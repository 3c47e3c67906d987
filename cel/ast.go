package cel

// Node is the common interface of formula AST nodes. Pos returns the byte
// offset of the node within the formula body.
type Node interface {
	Pos() int
}

// Expr is any expression that can appear as a call argument.
type Expr interface {
	Node
	exprNode()
}

// LiteralExpr holds a literal value: number, string, or boolean.
type LiteralExpr struct {
	Value  Value
	offset int
}

func (e *LiteralExpr) exprNode() {}
func (e *LiteralExpr) Pos() int  { return e.offset }

// RefExpr references another cell by address.
type RefExpr struct {
	Addr   CellAddress
	offset int
}

func (e *RefExpr) exprNode() {}
func (e *RefExpr) Pos() int  { return e.offset }

// ArrayExpr is a bracketed sequence of expressions.
type ArrayExpr struct {
	Elements []Expr
	offset   int
}

func (e *ArrayExpr) exprNode() {}
func (e *ArrayExpr) Pos() int  { return e.offset }

// CallExpr invokes a built-in function. A formula's root is always a call.
type CallExpr struct {
	Name   string
	Args   []Expr
	offset int
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) Pos() int  { return e.offset }
