package game

// Direction is a quantized cardinal facing. The zero value means no
// direction resolved.
type Direction uint8

const (
	DirNone Direction = iota
	North
	South
	East
	West
)

// String returns the single-letter label shown on the display, or "" for
// DirNone.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return ""
}

// FromHeading quantizes a compass bearing in degrees (0 = north, clockwise)
// to a cardinal. Every comparison is strict, so the four boundary headings
// 45, 135, 225 and 315 match no branch and resolve to DirNone, which causes
// no movement that tick. That gap is long-standing observed behavior of the
// shipped device and is kept on purpose.
//
// Headings outside [0,360) are a precondition violation; the result for
// them is unspecified.
func FromHeading(deg float64) Direction {
	switch {
	case deg > 315 || deg < 45:
		return North
	case deg > 225 && deg < 315:
		return West
	case deg > 135 && deg < 225:
		return South
	case deg > 45 && deg < 135:
		return East
	}
	return DirNone
}
