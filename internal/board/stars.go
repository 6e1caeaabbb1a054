package board

// StarSize is the number of fields in a star: a center field plus its four
// diagonal neighbours on the board, used by evaluators that reward
// control of connected five-field clusters.
const StarSize = 5

// star returns the five fields centered on mid, ordered top-left,
// top-right, center, bottom-left, bottom-right (the +y, +x, -x and -y unit
// steps of the coordinate frame), or false if mid sits on the board's outer
// rim, where at least one neighbour would fall off the grid.
func star(mid Field) ([StarSize]Field, bool) {
	c := CoordsOf(mid)
	if c.X == c.MinX() || c.X == c.MaxX() || c.Y == c.MinY() || c.Y == c.MaxY() {
		return [StarSize]Field{}, false
	}
	return [StarSize]Field{
		FieldOf(Coords{X: c.X, Y: c.Y + 1}),
		FieldOf(Coords{X: c.X + 1, Y: c.Y}),
		FieldOf(Coords{X: c.X, Y: c.Y}),
		FieldOf(Coords{X: c.X - 1, Y: c.Y}),
		FieldOf(Coords{X: c.X, Y: c.Y - 1}),
	}, true
}

// Stars precomputes the 32 interior five-field stars and, for each field,
// which stars it belongs to and at which index within them — letting an
// evaluator walk "every star touching this field" without a board scan.
type Stars struct {
	stars     [][StarSize]Field
	positions [NumFields][]starRef
}

type starRef struct {
	Star  int
	Index int
}

// NewStars builds the star tables once; callers share the result by
// reference across every position evaluated.
func NewStars() *Stars {
	s := &Stars{}
	for f := Field(0); f < NumFields; f++ {
		if fields, ok := star(f); ok {
			s.stars = append(s.stars, fields)
		}
	}
	for f := Field(0); f < NumFields; f++ {
		for starIdx, fields := range s.stars {
			for idx, part := range fields {
				if part == f {
					s.positions[f] = append(s.positions[f], starRef{Star: starIdx, Index: idx})
				}
			}
		}
	}
	return s
}

// NumStars reports how many stars the board contains (32 for the
// international board).
func (s *Stars) NumStars() int { return len(s.stars) }

// Fields returns the five fields making up star index i.
func (s *Stars) Fields(i int) [StarSize]Field { return s.stars[i] }

// Touching returns every (star, index-within-star) pair that field
// participates in.
func (s *Stars) Touching(field Field) []starRef { return s.positions[field] }
