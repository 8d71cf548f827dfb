package game

import "testing"

func TestFromHeadingQuantization(t *testing.T) {
	cases := []struct {
		heading float64
		want    Direction
	}{
		{0, North},
		{10, North},
		{44.9, North},
		{316, North},
		{359.9, North},
		{46, East},
		{100, East},
		{134.9, East},
		{136, South},
		{180, South},
		{200, South},
		{224.9, South},
		{226, West},
		{280, West},
		{314.9, West},
	}
	for _, c := range cases {
		if got := FromHeading(c.heading); got != c.want {
			t.Fatalf("FromHeading(%v) = %v, want %v", c.heading, got, c.want)
		}
	}
}

func TestFromHeadingBoundaryGap(t *testing.T) {
	// The four exact boundaries match no branch and must stay that way.
	for _, h := range []float64{45, 135, 225, 315} {
		if got := FromHeading(h); got != DirNone {
			t.Fatalf("FromHeading(%v) = %v, want DirNone", h, got)
		}
	}
}

func TestDirectionString(t *testing.T) {
	cases := []struct {
		dir  Direction
		want string
	}{
		{North, "N"},
		{South, "S"},
		{East, "E"},
		{West, "W"},
		{DirNone, ""},
	}
	for _, c := range cases {
		if got := c.dir.String(); got != c.want {
			t.Fatalf("Direction(%d).String() = %q, want %q", c.dir, got, c.want)
		}
	}
}
