package game

import "testing"

func TestClampSaturates(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-100, 0},
		{-1, 0},
		{0, 0},
		{2, 2},
		{4, 4},
		{5, 4},
		{100, 4},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	for v := -10; v <= 10; v++ {
		once := Clamp(v)
		if twice := Clamp(once); twice != once {
			t.Fatalf("Clamp(Clamp(%d)) = %d, want %d", v, twice, once)
		}
	}
}

func TestMoveStepsOneCell(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{2, 1}},
		{South, Position{2, 3}},
		{East, Position{3, 2}},
		{West, Position{1, 2}},
		{DirNone, Position{2, 2}},
	}
	for _, c := range cases {
		o := GameObject{Pos: Position{2, 2}}
		o.Move(c.dir)
		if o.Pos != c.want {
			t.Fatalf("Move(%v) from (2,2) = %v, want %v", c.dir, o.Pos, c.want)
		}
	}
}

func TestMoveSaturatesAtEdges(t *testing.T) {
	cases := []struct {
		start Position
		dir   Direction
	}{
		{Position{0, 2}, West},
		{Position{4, 2}, East},
		{Position{2, 0}, North},
		{Position{2, 4}, South},
	}
	for _, c := range cases {
		o := GameObject{Pos: c.start}
		o.Move(c.dir)
		if o.Pos != c.start {
			t.Fatalf("Move(%v) from %v = %v, want no movement", c.dir, c.start, o.Pos)
		}
	}
}

func TestPickupsOwnTheirPositions(t *testing.T) {
	rng := &seqRand{vals: []int{1, 1, 1, 1}}
	a := newPickup(rng)
	b := newPickup(rng)
	a.Pos.X = 4
	if b.Pos.X != 1 {
		t.Fatalf("moving one pickup moved another: b.Pos.X = %d, want 1", b.Pos.X)
	}
}
