package cel

// cellState tracks the per-cell evaluation state machine. The InProgress
// state doubles as the cycle detector: demanding a cell that is already
// under evaluation means the reference chain revisited it.
type cellState uint8

const (
	stateUnvisited cellState = iota
	stateInProgress
	stateDone
	stateFailed
)

// Cell holds one field of the grid: its immutable raw source text and,
// after evaluation, either its computed value or its error. The value is
// written exactly once; there is no recomputation or invalidation.
type Cell struct {
	Raw string

	state cellState
	value Value
	err   error
}

func (c *Cell) fail(err error) error {
	c.state = stateFailed
	c.err = err
	return err
}

func (c *Cell) complete(v Value) Value {
	c.state = stateDone
	c.value = v
	return v
}
