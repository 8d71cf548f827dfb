package game

// Position is a cell on the 5x5 matrix.
type Position struct {
	X, Y int
}

// GameObject is the shared shape of anything drawn on the matrix: a cell
// position plus an LED brightness. Player and pickups are both just
// GameObjects; nothing dispatches on them polymorphically. Each instance
// owns its Position outright.
type GameObject struct {
	Pos        Position
	Brightness int
}

// Clamp saturates a coordinate to the matrix bounds.
func Clamp(v int) int {
	if v < GridMin {
		return GridMin
	}
	if v > GridMax {
		return GridMax
	}
	return v
}

// Move steps the object one cell in the given direction, saturating at the
// grid edges. DirNone is a no-op.
func (o *GameObject) Move(d Direction) {
	switch d {
	case North:
		o.Pos.Y = Clamp(o.Pos.Y - 1)
	case South:
		o.Pos.Y = Clamp(o.Pos.Y + 1)
	case West:
		o.Pos.X = Clamp(o.Pos.X - 1)
	case East:
		o.Pos.X = Clamp(o.Pos.X + 1)
	}
}

func newPlayer() GameObject {
	return GameObject{
		Pos:        Position{X: GridCenter, Y: GridCenter},
		Brightness: PlayerBrightness,
	}
}

func newPickup(rng Rand) GameObject {
	return GameObject{
		Pos: Position{
			X: rng.Intn(GridMax + 1),
			Y: rng.Intn(GridMax + 1),
		},
		Brightness: PickupBrightness,
	}
}
