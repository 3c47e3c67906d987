package cel

import "testing"

func TestParseAddressRoundTrip(t *testing.T) {
	cases := []struct {
		text string
		addr CellAddress
	}{
		{"A1", CellAddress{Row: 0, Col: 0}},
		{"B2", CellAddress{Row: 1, Col: 1}},
		{"Z9", CellAddress{Row: 8, Col: 25}},
		{"AA27", CellAddress{Row: 26, Col: 26}},
		{"BC23", CellAddress{Row: 22, Col: 54}},
	}
	for _, c := range cases {
		addr, err := ParseAddress(c.text)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", c.text, err)
		}
		if addr != c.addr {
			t.Fatalf("ParseAddress(%q): got %+v want %+v", c.text, addr, c.addr)
		}
		if got := addr.String(); got != c.text {
			t.Fatalf("%+v.String(): got %q want %q", addr, got, c.text)
		}
	}
}

func TestParseAddressRejectsMalformed(t *testing.T) {
	for _, text := range []string{"", "a1", "A", "1A", "A0", "A-1", "A1B"} {
		if _, err := ParseAddress(text); err == nil {
			t.Fatalf("ParseAddress(%q): expected error", text)
		}
	}
}

func TestColumnLabel(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for col, want := range cases {
		if got := ColumnLabel(col); got != want {
			t.Fatalf("ColumnLabel(%d): got %q want %q", col, got, want)
		}
	}
}
