package board

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidFen is returned (wrapped with a diagnostic) when Parse cannot
// make sense of a FEN string. It never leaks partial state: on error the
// returned Position is the zero value.
var ErrInvalidFen = errors.New("invalid fen")

var fenChars = [5]byte{'e', 'w', 'W', 'b', 'B'}

// runLength decodes one FEN character into the piece it denotes and how
// many consecutive fields of that piece/emptiness it spans. A run letter
// (h,i,t,r for white men; l,a,c,k for black men; and their uppercase king
// equivalents) compresses 2..5 same-colour pieces into a single character.
// '/', ' ' and '|' are row separators: zero-width and always accepted.
func runLength(c byte) (Piece, int, bool) {
	switch c {
	case '/', ' ', '|':
		return Empty, 0, true
	case 'e', '1':
		return Empty, 1, true
	case '2':
		return Empty, 2, true
	case '3':
		return Empty, 3, true
	case '4':
		return Empty, 4, true
	case '5':
		return Empty, 5, true
	case 'w':
		return WhiteMan, 1, true
	case 'h':
		return WhiteMan, 2, true
	case 'i':
		return WhiteMan, 3, true
	case 't':
		return WhiteMan, 4, true
	case 'r':
		return WhiteMan, 5, true
	case 'b':
		return BlackMan, 1, true
	case 'l':
		return BlackMan, 2, true
	case 'a':
		return BlackMan, 3, true
	case 'c':
		return BlackMan, 4, true
	case 'k':
		return BlackMan, 5, true
	case 'W':
		return WhiteKing, 1, true
	case 'H':
		return WhiteKing, 2, true
	case 'I':
		return WhiteKing, 3, true
	case 'T':
		return WhiteKing, 4, true
	case 'R':
		return WhiteKing, 5, true
	case 'B':
		return BlackKing, 1, true
	case 'L':
		return BlackKing, 2, true
	case 'A':
		return BlackKing, 3, true
	case 'C':
		return BlackKing, 4, true
	case 'K':
		return BlackKing, 5, true
	default:
		return Empty, 0, false
	}
}

// ParseFen parses both the flat 50-character board syntax and the
// row-separated "5/3be/..." syntax; each accepts run-length digits 1..5 and
// the two- to five-letter same-colour-man run shorthand. The leading
// character must be 'w' or 'b' and selects the side to move.
func ParseFen(fen string) (Position, error) {
	if len(fen) < 11 {
		return Position{}, errors.Wrapf(ErrInvalidFen, "too short: %q", fen)
	}

	pos := Empty
	field := Field(0)
	for i := 0; i < len(fen); i++ {
		c := fen[i]
		if i == 0 {
			switch c {
			case 'w':
			case 'b':
				pos = pos.ToggleSide()
			default:
				return Position{}, errors.Wrapf(ErrInvalidFen, "invalid side to move %q", fen)
			}
			continue
		}

		piece, count, ok := runLength(c)
		if !ok {
			return Position{}, errors.Wrapf(ErrInvalidFen, "invalid piece %q at index %d", c, i)
		}
		for n := 0; n < count; n++ {
			if field == NumFields {
				return Position{}, errors.Wrapf(ErrInvalidFen, "too many fields in %q", fen)
			}
			pos = pos.PutPiece(field, piece)
			field++
		}
	}
	if field != NumFields {
		return Position{}, errors.Wrapf(ErrInvalidFen, "insufficient fields (%d) in %q", field, fen)
	}
	return pos, nil
}

// sideChar returns the FEN side letter for the position's side to move.
func (p Position) sideChar() byte {
	if p.SideToMove() == White {
		return 'w'
	}
	return 'b'
}

// Fen renders the flat 50-character form: a side letter followed by one
// character per field (digits are never used for empties in this form).
func (p Position) Fen() string {
	var b strings.Builder
	b.WriteByte(p.sideChar())
	for f := Field(0); f < NumFields; f++ {
		b.WriteByte(fenChars[p.PieceAt(f)])
	}
	return b.String()
}

// SFen renders the compact form: digit run-lengths (or 'e' for a single
// empty field) for empty stretches, each run ending at a 5-field row
// boundary; no row separators are written.
func (p Position) SFen() string {
	var b strings.Builder
	b.WriteByte(p.sideChar())

	numEmpty := 0
	flush := func() {
		switch numEmpty {
		case 0:
		case 1:
			b.WriteByte('e')
		default:
			fmt.Fprintf(&b, "%d", numEmpty)
		}
		numEmpty = 0
	}
	for f := Field(0); f < NumFields; f++ {
		if piece := p.PieceAt(f); piece == Empty {
			numEmpty++
		} else {
			flush()
			b.WriteByte(fenChars[piece])
		}
		if (f+1)%5 == 0 {
			flush()
		}
	}
	return b.String()
}

// String implements fmt.Stringer using the compact SFen form.
func (p Position) String() string {
	return p.SFen()
}
