package board

// Coord is a cartesian coordinate used only to derive the four diagonal
// directions a field can move along; fields, not coordinates, are the
// currency of the rest of the package.
type Coord int8

// Coords is the cartesian position of a field on the playable diagonal grid.
type Coords struct {
	X, Y Coord
}

func minX(y Coord) Coord {
	if y < 0 {
		return -y
	}
	return y
}

func maxX(y Coord) Coord {
	return 9 - minX(y)
}

func maxY(x Coord) Coord {
	if x > 4 {
		return 9 - x
	}
	return x
}

func minY(x Coord) Coord {
	return -maxY(x)
}

// MinX is the smallest reachable x on this coordinate's row.
func (c Coords) MinX() Coord { return minX(c.Y) }

// MaxX is the largest reachable x on this coordinate's row.
func (c Coords) MaxX() Coord { return maxX(c.Y) }

// MinY is the smallest reachable y on this coordinate's column.
func (c Coords) MinY() Coord { return minY(c.X) }

// MaxY is the largest reachable y on this coordinate's column.
func (c Coords) MaxY() Coord { return maxY(c.X) }

// FieldOf maps cartesian coordinates back to a field number.
func FieldOf(c Coords) Field {
	return Field(45 - 5*(c.X+c.Y) - (c.Y-c.X)/2)
}

// CoordsOf maps a field number to its cartesian coordinates.
func CoordsOf(n Field) Coords {
	fn := Coord(n)
	ny := (49 - fn) / 5
	nx := (ny % 2) + 2*(fn%5)
	return Coords{X: (nx + ny) / 2, Y: (ny - nx) / 2}
}
