package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"-3", 10, -3},
		{"abc", 10, 10},
		{"1.5", 10, 10},
	}
	for _, c := range cases {
		if got := AtoiDefault(c.in, c.def); got != c.want {
			t.Errorf("AtoiDefault(%q, %d) = %d, want %d", c.in, c.def, got, c.want)
		}
	}
}
