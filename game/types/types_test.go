package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite is %v", d, d.Opposite().Opposite())
		}
		if d.ToPoint().Add(d.Opposite().ToPoint()) != (Point{}) {
			t.Errorf("%v and %v do not cancel out", d, d.Opposite())
		}
	}
	if None.Opposite() != None {
		t.Errorf("None.Opposite() = %v, want none", None.Opposite())
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range Directions {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right gave %v", d, d.TurnLeft().TurnRight())
		}
		if d.TurnRight().TurnRight() != d.Opposite() {
			t.Errorf("%v: two right turns gave %v", d, d.TurnRight().TurnRight())
		}
	}
}

func TestDirectionValid(t *testing.T) {
	if None.Valid() || Direction(9).Valid() {
		t.Error("None and out of range values must be invalid")
	}
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(24)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{23, 23}, true},
		{Point{24, 0}, false},
		{Point{0, 24}, false},
		{Point{-1, 5}, false},
		{Point{5, -1}, false},
	}
	for _, c := range cases {
		if got := g.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	if g.Cells() != 576 {
		t.Errorf("Cells() = %d, want 576", g.Cells())
	}
}
