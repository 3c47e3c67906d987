package cel

import (
	"fmt"
	"strconv"
)

// CellAddress identifies a cell by zero-based row and column indices. The
// canonical text form is base-26 uppercase column letters followed by a
// 1-indexed row number: {0,0} is "A1", {22,54} is "BC23".
type CellAddress struct {
	Row int
	Col int
}

// ParseAddress parses canonical address text. It rejects lowercase letters,
// missing parts, and row zero.
func ParseAddress(s string) (CellAddress, error) {
	i := 0
	col := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A') + 1
		i++
	}
	if i == 0 {
		return CellAddress{}, fmt.Errorf("invalid cell address %q: expected column letters", s)
	}
	if i == len(s) {
		return CellAddress{}, fmt.Errorf("invalid cell address %q: expected a row number after column letters", s)
	}

	row, err := strconv.Atoi(s[i:])
	if err != nil {
		return CellAddress{}, fmt.Errorf("invalid cell address %q: expected a row number after column letters", s)
	}
	if row < 1 {
		return CellAddress{}, fmt.Errorf("invalid cell address %q: row numbers start at 1", s)
	}

	return CellAddress{Row: row - 1, Col: col - 1}, nil
}

// String renders the canonical text form of the address.
func (a CellAddress) String() string {
	return ColumnLabel(a.Col) + strconv.Itoa(a.Row+1)
}

// ColumnLabel converts a zero-based column index to its bijective base-26
// letter form: 0 -> "A", 25 -> "Z", 26 -> "AA".
func ColumnLabel(col int) string {
	var buf [8]byte
	i := len(buf)
	n := col + 1
	for n > 0 {
		i--
		n--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}
