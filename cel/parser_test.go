package cel

import (
	"errors"
	"testing"
)

func parseOK(t *testing.T, input string) *CallExpr {
	t.Helper()
	call, err := newParser(input).parseFormula()
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return call
}

func parseErr(t *testing.T, input string) error {
	t.Helper()
	_, err := newParser(input).parseFormula()
	if err == nil {
		t.Fatalf("parse %q: expected error", input)
	}
	return err
}

func TestParseNestedCall(t *testing.T) {
	call := parseOK(t, "sum(B1;mul(B2;0.8))")
	if call.Name != "sum" || len(call.Args) != 2 {
		t.Fatalf("root call: got %s/%d", call.Name, len(call.Args))
	}

	ref, ok := call.Args[0].(*RefExpr)
	if !ok {
		t.Fatalf("first arg: expected reference, got %T", call.Args[0])
	}
	if ref.Addr != (CellAddress{Row: 0, Col: 1}) {
		t.Fatalf("first arg address: got %+v", ref.Addr)
	}

	inner, ok := call.Args[1].(*CallExpr)
	if !ok {
		t.Fatalf("second arg: expected call, got %T", call.Args[1])
	}
	if inner.Name != "mul" || len(inner.Args) != 2 {
		t.Fatalf("inner call: got %s/%d", inner.Name, len(inner.Args))
	}
	lit, ok := inner.Args[1].(*LiteralExpr)
	if !ok || lit.Value.Kind() != KindFloat || lit.Value.Float() != 0.8 {
		t.Fatalf("inner literal: got %#v", inner.Args[1])
	}
}

func TestParseLiteralKinds(t *testing.T) {
	call := parseOK(t, `print([1;-2.5;"text";true;false])`)
	array, ok := call.Args[0].(*ArrayExpr)
	if !ok {
		t.Fatalf("expected array argument, got %T", call.Args[0])
	}
	kinds := []ValueKind{KindInt, KindFloat, KindString, KindBool, KindBool}
	if len(array.Elements) != len(kinds) {
		t.Fatalf("array length: got %d", len(array.Elements))
	}
	for i, kind := range kinds {
		lit, ok := array.Elements[i].(*LiteralExpr)
		if !ok {
			t.Fatalf("element %d: expected literal, got %T", i, array.Elements[i])
		}
		if lit.Value.Kind() != kind {
			t.Fatalf("element %d: got kind %v want %v", i, lit.Value.Kind(), kind)
		}
	}
}

func TestParseEmptyArgListAndArray(t *testing.T) {
	call := parseOK(t, "print([])")
	array := call.Args[0].(*ArrayExpr)
	if len(array.Elements) != 0 {
		t.Fatalf("expected empty array, got %d elements", len(array.Elements))
	}

	// An empty argument list is syntactically valid; arity is checked at
	// evaluation.
	call = parseOK(t, "sum()")
	if len(call.Args) != 0 {
		t.Fatalf("expected no args, got %d", len(call.Args))
	}
}

func TestParseRejectsBareRoot(t *testing.T) {
	for _, input := range []string{"42", `"text"`, "A1", "true", "[1;2]", ""} {
		err := parseErr(t, input)
		var parseError *ParseError
		if !errors.As(err, &parseError) {
			t.Fatalf("parse %q: expected ParseError, got %T (%v)", input, err, err)
		}
	}
}

func TestParseRejectsMalformedCalls(t *testing.T) {
	for _, input := range []string{
		"sum(1;2",     // missing closing paren
		"sum 1;2)",    // missing opening paren
		"sum(1;2))",   // trailing token
		"sum(1 2)",    // missing separator
		"sum(;)",      // missing argument
		"print([1;2)", // unclosed array
	} {
		err := parseErr(t, input)
		var parseError *ParseError
		if !errors.As(err, &parseError) {
			t.Fatalf("parse %q: expected ParseError, got %T (%v)", input, err, err)
		}
	}
}

func TestParseSurfacesLexErrors(t *testing.T) {
	for _, input := range []string{`sum(1,2)`, `print("unterminated`, "sum(1.;2)"} {
		err := parseErr(t, input)
		var lexError *LexError
		if !errors.As(err, &lexError) {
			t.Fatalf("parse %q: expected LexError, got %T (%v)", input, err, err)
		}
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	err := parseErr(t, "sum(1;2")
	var parseError *ParseError
	if !errors.As(err, &parseError) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseError.Offset != 7 {
		t.Fatalf("offset: got %d want 7", parseError.Offset)
	}
	if parseError.Found != "end of formula" {
		t.Fatalf("found: got %q", parseError.Found)
	}
}
