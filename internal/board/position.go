package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Position is an immutable international-draughts position: side to move
// plus, for each non-empty piece kind, the set of fields it occupies as a
// 50-bit mask. The four masks are pairwise disjoint by construction — PutPiece
// always clears a field from the other three masks before setting it in the
// fourth. Position is a plain comparable value: equality and use as a map
// key both fall out of Go's built-in struct comparison, so the transposition
// table can key directly on Position without a side channel.
type Position struct {
	WhiteMen   uint64
	WhiteKings uint64
	BlackMen   uint64
	BlackKings uint64
	Side       Color
}

// Empty is the position with no pieces on the board, white to move.
var Empty = Position{}

// Initial is the standard international-draughts starting position: black
// men on fields 0..19, white men on fields 30..49, white to move.
func Initial() Position {
	pos := Empty
	for f := Field(0); f < 20; f++ {
		pos = pos.PutPiece(f, BlackMan)
	}
	for f := Field(30); f < 50; f++ {
		pos = pos.PutPiece(f, WhiteMan)
	}
	return pos
}

// SideToMove returns the color to move.
func (p Position) SideToMove() Color {
	return p.Side
}

// ToggleSide returns a copy of p with the side to move flipped.
func (p Position) ToggleSide() Position {
	p.Side = p.Side.Other()
	return p
}

// PieceAt returns whichever piece occupies field, or Empty.
func (p Position) PieceAt(field Field) Piece {
	b := bit(field)
	switch {
	case p.WhiteMen&b != 0:
		return WhiteMan
	case p.WhiteKings&b != 0:
		return WhiteKing
	case p.BlackMen&b != 0:
		return BlackMan
	case p.BlackKings&b != 0:
		return BlackKing
	default:
		return Empty
	}
}

// IsEmpty reports whether no piece occupies field.
func (p Position) IsEmpty(field Field) bool {
	b := bit(field)
	return p.WhiteMen&b == 0 && p.WhiteKings&b == 0 && p.BlackMen&b == 0 && p.BlackKings&b == 0
}

// PutPiece returns a copy of p with field set to piece (Empty clears it),
// after clearing field from every other mask.
func (p Position) PutPiece(field Field, piece Piece) Position {
	b := bit(field)
	clear := ^b
	p.WhiteMen &= clear
	p.WhiteKings &= clear
	p.BlackMen &= clear
	p.BlackKings &= clear

	switch piece {
	case WhiteMan:
		p.WhiteMen |= b
	case WhiteKing:
		p.WhiteKings |= b
	case BlackMan:
		p.BlackMen |= b
	case BlackKing:
		p.BlackKings |= b
	}
	return p
}

// promote returns king if a man has reached the far rank, else piece
// unchanged. Promotion only ever applies at the final landing field of a
// move, never at an intermediate capture square.
func promote(field Field, piece Piece) Piece {
	switch {
	case piece == WhiteMan && field < 5:
		return WhiteKing
	case piece == BlackMan && field >= 45:
		return BlackKing
	default:
		return piece
	}
}

// Go applies mv to p: clears From, removes every Taken field, places the
// (possibly promoted) moving piece on To, and toggles the side to move.
// Go never validates legality — callers must supply a move drawn from
// LegalMoves(p); feeding it an illegal move yields a well-typed but
// nonsensical position rather than panicking.
func (p Position) Go(mv Move) Position {
	from, to := mv.From, mv.To
	piece := p.PieceAt(from)

	next := p
	for i := 0; i < int(mv.NumTaken); i++ {
		next = next.PutPiece(mv.Taken[i], Empty)
	}
	next = next.PutPiece(from, Empty)
	next = next.PutPiece(to, promote(to, piece))
	return next.ToggleSide()
}

// Hash returns a stable 64-bit digest of the position, suitable for keying
// a sharded transposition table. Equality of Position values (via ==) is
// the authoritative identity check; Hash only needs to mix bits well enough
// to spread entries across shards.
func (p Position) Hash() uint64 {
	var buf [33]byte
	binary.LittleEndian.PutUint64(buf[0:8], p.WhiteMen)
	binary.LittleEndian.PutUint64(buf[8:16], p.WhiteKings)
	binary.LittleEndian.PutUint64(buf[16:24], p.BlackMen)
	binary.LittleEndian.PutUint64(buf[24:32], p.BlackKings)
	buf[32] = byte(p.Side)
	return xxhash.Sum64(buf[:])
}
