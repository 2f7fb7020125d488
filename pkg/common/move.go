package common

import (
	"fmt"
	"strings"
)

// Move packs from (6 bits), to (6 bits), promotion piece type (3 bits)
// and the en passant and castling flags.
type Move int32

const MoveEmpty = Move(0)

const (
	moveFlagEnPassant Move = 1 << 15
	moveFlagCastling  Move = 1 << 16
)

func makeMove(from, to int) Move {
	return Move(from ^ (to << 6))
}

func makePromotion(from, to, promotion int) Move {
	return Move(from ^ (to << 6) ^ (promotion << 12))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) Promotion() int {
	return int((m >> 12) & 7)
}

func (m Move) IsEnPassant() bool {
	return m&moveFlagEnPassant != 0
}

func (m Move) IsCastling() bool {
	return m&moveFlagCastling != 0
}

func (m Move) castlingDirection() int {
	if m.From() < m.To() {
		return KingSide
	}
	return QueenSide
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

// MoveBuilder assembles a Move. Promotion, en passant and castling are
// mutually exclusive: setting one clears the others.
type MoveBuilder struct {
	from      int
	to        int
	promotion int
	enPassant bool
	castling  bool
}

func NewMoveBuilder(from, to int) *MoveBuilder {
	return &MoveBuilder{from: from, to: to}
}

func (b *MoveBuilder) Promotion(pieceType int) *MoveBuilder {
	b.promotion = pieceType
	b.enPassant = false
	b.castling = false
	return b
}

func (b *MoveBuilder) EnPassant() *MoveBuilder {
	b.promotion = Empty
	b.enPassant = true
	b.castling = false
	return b
}

func (b *MoveBuilder) Castling() *MoveBuilder {
	b.promotion = Empty
	b.enPassant = false
	b.castling = true
	return b
}

func (b *MoveBuilder) Build() (Move, error) {
	if b.from < SquareA1 || b.from > SquareH8 || b.to < SquareA1 || b.to > SquareH8 {
		return MoveEmpty, fmt.Errorf("%w: square out of range %d-%d", ErrInvalidMove, b.from, b.to)
	}
	if b.from == b.to {
		return MoveEmpty, fmt.Errorf("%w: null move %v", ErrInvalidMove, SquareName(b.from))
	}
	switch b.promotion {
	case Empty, Knight, Bishop, Rook, Queen:
	default:
		return MoveEmpty, fmt.Errorf("%w: bad promotion %d", ErrInvalidMove, b.promotion)
	}
	var specials = 0
	if b.promotion != Empty {
		specials++
	}
	if b.enPassant {
		specials++
	}
	if b.castling {
		specials++
	}
	if specials > 1 {
		return MoveEmpty, fmt.Errorf("%w: conflicting flags", ErrInvalidMove)
	}
	var m = makePromotion(b.from, b.to, b.promotion)
	if b.enPassant {
		m |= moveFlagEnPassant
	}
	if b.castling {
		m |= moveFlagCastling
	}
	return m, nil
}

// ParseMoveLAN resolves long algebraic text such as "e2e4" or "e7e8q"
// against the pseudo-legal moves of p.
func (p *Position) ParseMoveLAN(lan string) (Move, error) {
	var buffer [MaxMoves]Move
	for _, mv := range p.GenerateMoves(buffer[:]) {
		if !strings.EqualFold(mv.String(), lan) {
			continue
		}
		var s = p.MakeMove(mv)
		var legal = p.isLegal()
		p.UnmakeMove(s)
		if !legal {
			return MoveEmpty, fmt.Errorf("%w: %v", ErrIllegalMove, lan)
		}
		return mv, nil
	}
	return MoveEmpty, fmt.Errorf("%w: %v", ErrMoveNotFound, lan)
}

// MakeMoveLAN parses lan and applies it to p.
func (p *Position) MakeMoveLAN(lan string) (Snapshot, error) {
	var mv, err = p.ParseMoveLAN(lan)
	if err != nil {
		return Snapshot{}, err
	}
	return p.MakeMove(mv), nil
}
