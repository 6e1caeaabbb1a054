package board

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidMove is wrapped with a diagnostic whenever ParseMove cannot
// interpret or validate a move string.
var ErrInvalidMove = errors.New("invalid move")

// tokenizeMove splits a move string of the form "32-28" or "32x21x14" into
// its 1-based field numbers. The separators '-', 'x' and 'X' are
// interchangeable and only delimit numbers; ParseMove tells the shift and
// capture forms apart by how many numbers the string holds.
func tokenizeMove(s string) ([]int, error) {
	var fields []int
	var num strings.Builder
	flush := func() error {
		if num.Len() == 0 {
			return nil
		}
		n, err := strconv.Atoi(num.String())
		if err != nil {
			return err
		}
		fields = append(fields, n)
		num.Reset()
		return nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			num.WriteByte(c)
		case c == '-' || c == 'x' || c == 'X':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Errorf("unexpected character %q", c)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return fields, nil
}

// ParseMove interprets s as a move played from pos, using gen to resolve the
// short form (from-to with no listed captures) against the position's legal
// moves. The long form ("32x21x14") lists every captured field explicitly
// and is built and returned directly without consulting gen. Field numbers
// in s are 1-based, matching FullString's output.
func ParseMove(gen *Generator, pos Position, s string) (Move, error) {
	fields, err := tokenizeMove(s)
	if err != nil {
		return Move{}, errors.Wrapf(ErrInvalidMove, "%s: %v", s, err)
	}
	if len(fields) < 2 {
		return Move{}, errors.Wrapf(ErrInvalidMove, "%s: need at least from and to", s)
	}
	for _, f := range fields {
		if f < 1 || f > NumFields {
			return Move{}, errors.Wrapf(ErrInvalidMove, "%s: field %d out of range", s, f)
		}
	}

	from := Field(fields[0] - 1)
	to := Field(fields[1] - 1)

	if len(fields) > 2 {
		via := make([]Field, len(fields)-2)
		for i, f := range fields[2:] {
			via[i] = Field(f - 1)
		}
		return Take(from, to, via), nil
	}

	for _, mv := range gen.LegalMoves(pos) {
		if mv.From == from && mv.To == to {
			return mv, nil
		}
	}
	return Move{}, errors.Wrapf(ErrInvalidMove, "%s: no legal move from %d to %d", s, fields[0], fields[1])
}
