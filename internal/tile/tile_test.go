package tile

import "testing"

func TestNextPrevBoundaries(t *testing.T) {
	nine := New(Man, 9)
	if _, ok := nine.Next(); ok {
		t.Fatalf("9m.Next() expected no tile, got one")
	}
	one := New(Pin, 1)
	if _, ok := one.Prev(); ok {
		t.Fatalf("1p.Prev() expected no tile, got one")
	}
	east := New(Honor, 1)
	if _, ok := east.Next(); ok {
		t.Fatalf("honor.Next() expected no tile, got one")
	}
	if _, ok := east.Prev(); ok {
		t.Fatalf("honor.Prev() expected no tile, got one")
	}
}

func TestNextCrossesWithinSuitOnly(t *testing.T) {
	five := New(Man, 5)
	six, ok := five.Next()
	if !ok || six != New(Man, 6) {
		t.Fatalf("5m.Next() expected 6m, got %v ok=%v", six, ok)
	}
	seven, ok := six.Next()
	if !ok || seven != New(Man, 7) {
		t.Fatalf("6m.Next() expected 7m, got %v ok=%v", seven, ok)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, tt := range All {
		code := tt.String()
		parsed, err := Parse(code)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", code, err)
		}
		if parsed != tt {
			t.Fatalf("round trip mismatch: %v -> %q -> %v", tt, code, parsed)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "5", "5x", "0m", "8z", "10m"}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Fatalf("Parse(%q) expected error, got nil", c)
		}
	}
}

func TestConstantsSizes(t *testing.T) {
	if len(All) != 34 {
		t.Fatalf("len(All) = %d, want 34", len(All))
	}
	if len(Mans) != 9 || len(Pins) != 9 || len(Sous) != 9 {
		t.Fatalf("number suit lengths wrong: %d %d %d", len(Mans), len(Pins), len(Sous))
	}
	if len(Honors) != 7 {
		t.Fatalf("len(Honors) = %d, want 7", len(Honors))
	}
	if len(TerminalsAndHonors) != 13 {
		t.Fatalf("len(TerminalsAndHonors) = %d, want 13", len(TerminalsAndHonors))
	}
}
