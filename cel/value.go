package cel

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the closed set of runtime value types.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindArray
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a tagged runtime value. Numbers carry either an exact int64 or a
// float64; the kind records which, because numeric promotion and display
// both depend on it.
type Value struct {
	kind ValueKind
	data any
}

func NewString(s string) Value  { return Value{kind: KindString, data: s} }
func NewBool(b bool) Value      { return Value{kind: KindBool, data: b} }
func NewInt(n int64) Value      { return Value{kind: KindInt, data: n} }
func NewFloat(f float64) Value  { return Value{kind: KindFloat, data: f} }
func NewArray(vs []Value) Value { return Value{kind: KindArray, data: vs} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Text() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.data.(int64)
	case KindFloat:
		return int64(v.data.(float64))
	default:
		return 0
	}
}

func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.data.(float64)
	case KindInt:
		return float64(v.data.(int64))
	default:
		return 0
	}
}

func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.data.([]Value)
}

// IsNumeric reports whether the value participates in numeric promotion.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Display renders the value as final cell output. Integers print without a
// decimal point; floats always print with one, so promotion stays visible
// (`sum(3000;1600.0)` renders as "4600.0"). Arrays render bracketed, but an
// array is never a legal final cell value; this form appears only in error
// messages and diagnostics.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return formatFloat(v.data.(float64))
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.Display()
		}
		return "[" + strings.Join(parts, "; ") + "]"
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// inferLiteral interprets a non-formula cell's raw text. The attempt order
// is fixed and defines literal semantics: integer, then float, then
// boolean, then the raw text as a string.
func inferLiteral(raw string) Value {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NewInt(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return NewFloat(f)
	}
	switch raw {
	case "true":
		return NewBool(true)
	case "false":
		return NewBool(false)
	}
	return NewString(raw)
}
