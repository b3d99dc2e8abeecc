package trips

import "testing"

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"1250.5", 1250.5},
		{"1250", 1250},
		{"1250,50", 1250.5},
		{"1.250,50", 1250.5},
		{"R$ 100", 100},
		{"-42.5", -42.5},
	}

	for _, tc := range cases {
		got := ParseDecimal(tc.input)
		if got != tc.want {
			t.Fatalf("ParseDecimal(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseAxles(t *testing.T) {
	if got := ParseAxles("5"); got != 5 {
		t.Fatalf("ParseAxles(5) = %d", got)
	}
	if got := ParseAxles(""); got != 0 {
		t.Fatalf("expected empty axles to read as 0 (3-axle default at lookup), got %d", got)
	}
	if got := ParseAxles("banana"); got != 0 {
		t.Fatalf("expected unreadable axles to read as 0, got %d", got)
	}
}
