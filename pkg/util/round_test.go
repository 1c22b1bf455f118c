package util

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.499, 2.5},
		{1.23456, 1.23},
		{0, 0},
		{-2.499, -2.5},
		{300.0, 300.0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Fatalf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(2.49999); got != 2.5 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Round4(0.12344); got != 0.1234 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestParseDay(t *testing.T) {
	got, ok := ParseDay("2025-01-31")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format(DayLayout) != "2025-01-31" {
		t.Fatalf("unexpected day %v", got)
	}
	if _, ok := ParseDay("31/01/2025"); ok {
		t.Fatalf("expected parse failure")
	}
	if _, ok := ParseDay(""); ok {
		t.Fatalf("expected parse failure for empty input")
	}
}
