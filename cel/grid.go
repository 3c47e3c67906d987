package cel

// ErrorSentinel is the rendered form of a cell whose evaluation failed,
// used when the caller asks for partial output instead of aborting.
const ErrorSentinel = "#ERROR!"

// Grid is a rectangular, row-major store of cells. It is the single
// mutable resource of an evaluation pass: the engine writes each cell's
// computed value and state exactly once, never concurrently.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid builds a grid from raw text records. Ragged rows are padded with
// empty fields to the widest row, so the core only ever sees a rectangle.
func NewGrid(records [][]string) *Grid {
	cols := 0
	for _, record := range records {
		if len(record) > cols {
			cols = len(record)
		}
	}

	g := &Grid{
		rows:  len(records),
		cols:  cols,
		cells: make([]Cell, len(records)*cols),
	}
	for r, record := range records {
		for c, field := range record {
			g.cells[r*cols+c].Raw = field
		}
	}
	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// cellAt returns the cell slot for an address, or nil when the address
// falls outside the grid's dimensions.
func (g *Grid) cellAt(addr CellAddress) *Cell {
	if addr.Row < 0 || addr.Row >= g.rows || addr.Col < 0 || addr.Col >= g.cols {
		return nil
	}
	return &g.cells[addr.Row*g.cols+addr.Col]
}

// RawAt returns a cell's raw source text.
func (g *Grid) RawAt(addr CellAddress) (string, bool) {
	cell := g.cellAt(addr)
	if cell == nil {
		return "", false
	}
	return cell.Raw, true
}

// ValueAt returns a cell's computed value. The second result is false when
// the address is out of bounds or the cell has not completed successfully.
func (g *Grid) ValueAt(addr CellAddress) (Value, bool) {
	cell := g.cellAt(addr)
	if cell == nil || cell.state != stateDone {
		return Value{}, false
	}
	return cell.value, true
}

// ErrAt returns a failed cell's error, or nil.
func (g *Grid) ErrAt(addr CellAddress) error {
	cell := g.cellAt(addr)
	if cell == nil {
		return nil
	}
	return cell.err
}

// Render returns the grid as text fields: the display form for evaluated
// cells, the error sentinel for failed ones, and the raw text for cells an
// aborted pass never reached.
func (g *Grid) Render() [][]string {
	records := make([][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		record := make([]string, g.cols)
		for c := 0; c < g.cols; c++ {
			cell := &g.cells[r*g.cols+c]
			switch cell.state {
			case stateDone:
				record[c] = cell.value.Display()
			case stateFailed:
				record[c] = ErrorSentinel
			default:
				record[c] = cell.Raw
			}
		}
		records[r] = record
	}
	return records
}
