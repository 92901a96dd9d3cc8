package service

import "testing"

func TestInRange(t *testing.T) {
	cases := []struct {
		index, n int
		want     bool
	}{
		{0, 1, true},
		{2, 3, true},
		{3, 3, false},
		{-1, 3, false},
		{0, 0, false},
	}
	for _, c := range cases {
		if got := InRange(c.index, c.n); got != c.want {
			t.Errorf("InRange(%d, %d)=%v want %v", c.index, c.n, got, c.want)
		}
	}
}
