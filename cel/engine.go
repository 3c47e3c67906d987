package cel

// DefaultMarker introduces a formula cell.
const DefaultMarker = '='

// Config controls a single evaluation pass.
type Config struct {
	// Marker is the character a formula cell's raw text begins with.
	// Defaults to '='.
	Marker rune
	// FailFast aborts the pass at the first failing cell instead of
	// evaluating the rest of the grid around it.
	FailFast bool
}

// Engine evaluates grids. It is stateless between passes: all per-pass
// state lives in the Grid it is handed.
type Engine struct {
	config Config
}

// NewEngine constructs an Engine, applying the default formula marker.
func NewEngine(cfg Config) *Engine {
	if cfg.Marker == 0 {
		cfg.Marker = DefaultMarker
	}
	return &Engine{config: cfg}
}

// EvaluateRecords is the grid-in, grid-out entry point: it evaluates raw
// text records and returns the rendered result alongside any cell errors.
func (e *Engine) EvaluateRecords(records [][]string) ([][]string, []CellError) {
	grid := NewGrid(records)
	errs := e.Evaluate(grid)
	return grid.Render(), errs
}

// Evaluate visits every cell in row-major order, evaluating each on first
// demand. Cells referenced by earlier formulas are already Done or Failed
// when the driver reaches them and are not recomputed. The returned errors
// are in row-major address order; with FailFast the slice holds only the
// first failure.
func (e *Engine) Evaluate(g *Grid) []CellError {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			addr := CellAddress{Row: row, Col: col}
			if _, err := e.evaluateCell(g, addr); err != nil {
				if e.config.FailFast {
					return []CellError{{Addr: addr, Err: err}}
				}
			}
		}
	}

	var errs []CellError
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			addr := CellAddress{Row: row, Col: col}
			if cell := g.cellAt(addr); cell.state == stateFailed {
				errs = append(errs, CellError{Addr: addr, Err: cell.err})
			}
		}
	}
	return errs
}

// evaluateCell resolves one cell through its state machine: memoized
// results return immediately, an in-progress cell is a reference cycle,
// and a failed cell poisons every dependent with its stored error.
func (e *Engine) evaluateCell(g *Grid, addr CellAddress) (Value, error) {
	cell := g.cellAt(addr)
	if cell == nil {
		return Value{}, evalErrorf(ErrOutOfBounds, "reference %s is outside the %dx%d grid", addr, g.rows, g.cols)
	}

	switch cell.state {
	case stateDone:
		return cell.value, nil
	case stateFailed:
		return Value{}, cell.err
	case stateInProgress:
		return Value{}, cell.fail(evalErrorf(ErrCyclicReference, "cell %s is part of a reference cycle", addr))
	}

	cell.state = stateInProgress

	value, err := e.evaluateRaw(g, cell.Raw)
	if err != nil {
		// A cycle error may already have marked this cell Failed deeper
		// in the recursion; keep that first error.
		if cell.state == stateFailed {
			return Value{}, cell.err
		}
		return Value{}, cell.fail(err)
	}
	if value.Kind() == KindArray {
		return Value{}, cell.fail(evalErrorf(ErrTopLevelArrayResult,
			"cell %s evaluates to the array %s, which is not a displayable value", addr, value.Display()))
	}
	return cell.complete(value), nil
}

func (e *Engine) evaluateRaw(g *Grid, raw string) (Value, error) {
	body, ok := e.formulaBody(raw)
	if !ok {
		return inferLiteral(raw), nil
	}

	root, err := newParser(body).parseFormula()
	if err != nil {
		return Value{}, err
	}
	return e.evalExpr(g, root)
}

// formulaBody strips the marker from formula text. Non-formula text
// returns false and is treated as a literal.
func (e *Engine) formulaBody(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	runes := []rune(raw)
	if runes[0] != e.config.Marker {
		return "", false
	}
	return string(runes[1:]), true
}

// evalExpr walks an AST bottom-up. References recurse through
// evaluateCell, which is how forward references across the grid resolve in
// demand order rather than file order.
func (e *Engine) evalExpr(g *Grid, expr Expr) (Value, error) {
	switch node := expr.(type) {
	case *LiteralExpr:
		return node.Value, nil
	case *RefExpr:
		return e.evaluateCell(g, node.Addr)
	case *ArrayExpr:
		elems := make([]Value, len(node.Elements))
		for i, elem := range node.Elements {
			value, err := e.evalExpr(g, elem)
			if err != nil {
				return Value{}, err
			}
			elems[i] = value
		}
		return NewArray(elems), nil
	case *CallExpr:
		args := make([]Value, len(node.Args))
		for i, arg := range node.Args {
			value, err := e.evalExpr(g, arg)
			if err != nil {
				return Value{}, err
			}
			args[i] = value
		}
		return callBuiltin(node.Name, args)
	default:
		return Value{}, evalErrorf(ErrTypeMismatch, "unexpected expression node %T", expr)
	}
}
