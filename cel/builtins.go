package cel

// The built-in set is fixed and closed: dispatch is a switch rather than a
// registration table, so each function's arity and type rules live next to
// its evaluation rule. Names match case-sensitively; `Sum` is not `sum`.

// callBuiltin applies a built-in function to already-evaluated arguments.
func callBuiltin(name string, args []Value) (Value, error) {
	switch name {
	case "print":
		// Forces evaluation of its single argument and re-emits it.
		if len(args) != 1 {
			return Value{}, evalErrorf(ErrArityOrUnknownFunction,
				"print expects 1 argument, found %d", len(args))
		}
		return args[0], nil
	case "sum":
		return numericBinary("sum", args, func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
	case "sub":
		return numericBinary("sub", args, func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	case "mul":
		return numericBinary("mul", args, func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	case "div":
		return divide(args)
	default:
		return Value{}, evalErrorf(ErrArityOrUnknownFunction, "unknown function %q", name)
	}
}

// numericBinary applies the promotion rule shared by sum, sub, and mul:
// both operands integral yields an integral result; a float on either side
// yields a float result.
func numericBinary(name string, args []Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (Value, error) {
	a, b, err := numericPair(name, args)
	if err != nil {
		return Value{}, err
	}
	if a.Kind() == KindInt && b.Kind() == KindInt {
		return NewInt(intOp(a.Int(), b.Int())), nil
	}
	return NewFloat(floatOp(a.Float(), b.Float())), nil
}

// divide follows the promotion rule except that an inexact quotient of two
// integers is floating: div(6;2) is the integer 3, div(7;2) is 3.5.
func divide(args []Value) (Value, error) {
	a, b, err := numericPair("div", args)
	if err != nil {
		return Value{}, err
	}
	if b.Float() == 0 {
		return Value{}, evalErrorf(ErrDivisionByZero, "div by zero: div(%s;%s)", a.Display(), b.Display())
	}
	if a.Kind() == KindInt && b.Kind() == KindInt && a.Int()%b.Int() == 0 {
		return NewInt(a.Int() / b.Int()), nil
	}
	return NewFloat(a.Float() / b.Float()), nil
}

func numericPair(name string, args []Value) (Value, Value, error) {
	if len(args) != 2 {
		return Value{}, Value{}, evalErrorf(ErrArityOrUnknownFunction,
			"%s expects 2 arguments, found %d", name, len(args))
	}
	for _, arg := range args {
		if !arg.IsNumeric() {
			return Value{}, Value{}, evalErrorf(ErrTypeMismatch,
				"%s expects numbers, found %s %s", name, arg.Kind(), arg.Display())
		}
	}
	return args[0], args[1], nil
}
