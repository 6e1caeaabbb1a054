package board

// jump is a one-step hop: the field jumped over (via) and the field beyond
// it that is landed on (to), used for short man captures.
type jump struct {
	Via, To Field
}

// path lists the fields along one diagonal ray from a field, nearest first,
// stopping at the board edge — used for king flights and their captures.
type path []Field

func pathFrom(c Coords, dx, dy Coord, length Coord) path {
	p := make(path, 0, length)
	for d := Coord(1); d <= length; d++ {
		p = append(p, FieldOf(Coords{X: c.X + dx*d, Y: c.Y + dy*d}))
	}
	return p
}

func raysFrom(field Field) [4]path {
	c := CoordsOf(field)
	return [4]path{
		pathFrom(c, 1, 0, c.MaxX()-c.X),  // +x
		pathFrom(c, 0, 1, c.MaxY()-c.Y),  // +y
		pathFrom(c, -1, 0, c.X-c.MinX()), // -x
		pathFrom(c, 0, -1, c.Y-c.MinY()), // -y
	}
}

// Steps precomputes, for every field, the short diagonal steps and capture
// jumps and the four flight rays a king can travel. It is immutable after
// construction and shared by reference across every position queried.
type Steps struct {
	whiteSteps [NumFields][]Field
	blackSteps [NumFields][]Field
	shortJumps [NumFields][]jump
	rays       [NumFields][4]path
}

// NewSteps builds the precomputed step tables once; callers share the
// result across every generator and judge in the process.
func NewSteps() *Steps {
	s := &Steps{}
	for f := Field(0); f < NumFields; f++ {
		rays := raysFrom(f)
		s.rays[f] = rays

		if len(rays[0]) > 0 {
			s.whiteSteps[f] = append(s.whiteSteps[f], rays[0][0])
		}
		if len(rays[1]) > 0 {
			s.whiteSteps[f] = append(s.whiteSteps[f], rays[1][0])
		}
		if len(rays[2]) > 0 {
			s.blackSteps[f] = append(s.blackSteps[f], rays[2][0])
		}
		if len(rays[3]) > 0 {
			s.blackSteps[f] = append(s.blackSteps[f], rays[3][0])
		}
		for _, ray := range rays {
			if len(ray) > 1 {
				s.shortJumps[f] = append(s.shortJumps[f], jump{Via: ray[0], To: ray[1]})
			}
		}
	}
	return s
}

// WhiteSteps returns the (forward, i.e. decreasing row) quiet-step
// destinations for a white man on field.
func (s *Steps) WhiteSteps(field Field) []Field { return s.whiteSteps[field] }

// BlackSteps returns the forward quiet-step destinations for a black man.
func (s *Steps) BlackSteps(field Field) []Field { return s.blackSteps[field] }

// ShortJumps returns the (via, to) one-step capture hops from field, in all
// four diagonal directions.
func (s *Steps) ShortJumps(field Field) []jump { return s.shortJumps[field] }

// Rays returns the four flight paths (nearest field first) a flying king on
// field can travel, one per diagonal direction.
func (s *Steps) Rays(field Field) [4]path { return s.rays[field] }
