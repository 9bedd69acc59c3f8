package world

// Direction is one of the eight compass directions on the floor.
// The order matches the rotation used by the generator, so adding 2 turns 90 degrees.
type Direction int

// Direction constants
const (
	DirDown Direction = iota
	DirDownRight
	DirRight
	DirUpRight
	DirUp
	DirUpLeft
	DirLeft
	DirDownLeft

	NumDirections = 8
)

var directionDeltas = [NumDirections][2]int{
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{DirDown, DirDownRight, DirRight, DirUpRight, DirUp, DirUpLeft, DirLeft, DirDownLeft}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirDownRight:
		return "DownRight"
	case DirRight:
		return "Right"
	case DirUpRight:
		return "UpRight"
	case DirUp:
		return "Up"
	case DirUpLeft:
		return "UpLeft"
	case DirLeft:
		return "Left"
	case DirDownLeft:
		return "DownLeft"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight directions
func (d Direction) IsValid() bool {
	return d >= DirDown && d <= DirDownLeft
}

// IsCardinal returns true for up, down, left and right
func (d Direction) IsCardinal() bool {
	return d.IsValid() && d%2 == 0
}

// Rotate turns the direction by steps eighth-turns, wrapping around
func (d Direction) Rotate(steps int) Direction {
	return Direction(((int(d)+steps)%NumDirections + NumDirections) % NumDirections)
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return d.Rotate(4)
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Cardinal is a grid-cell connection direction. Adding 1 rotates counter-clockwise.
type Cardinal int

// Cardinal constants
const (
	CardinalRight Cardinal = iota
	CardinalUp
	CardinalLeft
	CardinalDown

	NumCardinals = 4
)

// String returns the string representation of a cardinal direction
func (c Cardinal) String() string {
	switch c {
	case CardinalRight:
		return "Right"
	case CardinalUp:
		return "Up"
	case CardinalLeft:
		return "Left"
	case CardinalDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Next returns the next direction counter-clockwise
func (c Cardinal) Next() Cardinal {
	return (c + 1) % NumCardinals
}

// Opposite returns the opposite cardinal direction
func (c Cardinal) Opposite() Cardinal {
	return (c + 2) % NumCardinals
}

// Delta returns the x and y offsets for this direction
func (c Cardinal) Delta() (dx, dy int) {
	switch c {
	case CardinalRight:
		return 1, 0
	case CardinalUp:
		return 0, -1
	case CardinalLeft:
		return -1, 0
	case CardinalDown:
		return 0, 1
	default:
		return 0, 0
	}
}
