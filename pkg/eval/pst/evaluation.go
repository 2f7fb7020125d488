package eval

import (
	. "github.com/kinderchess/kinder/pkg/common"
)

var pieceValues = [King + 1]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   30000,
}

// Piece-square bonuses for White, a1 first.
var whiteLocations = [King + 1][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 0, -10, -10, 0, 10, 10,
		5, 0, 0, 5, 5, 0, 0, 5,
		0, 0, 10, 20, 20, 10, 0, 0,
		5, 5, 5, 10, 10, 5, 5, 5,
		10, 10, 10, 20, 20, 10, 10, 10,
		20, 20, 20, 30, 30, 20, 20, 20,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		0, -10, 0, 0, 0, 0, -10, 0,
		0, 0, 0, 5, 5, 0, 0, 0,
		0, 0, 10, 10, 10, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 5, 0,
		5, 10, 15, 20, 20, 15, 10, 5,
		5, 10, 10, 20, 20, 10, 10, 5,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Bishop: {
		0, 0, -10, 0, 0, -10, 0, 0,
		0, 0, 0, 10, 10, 0, 0, 0,
		0, 0, 10, 15, 15, 10, 0, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 0, 10, 15, 15, 10, 0, 0,
		0, 0, 0, 10, 10, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Rook: {
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		25, 25, 25, 25, 25, 25, 25, 25,
		0, 0, 5, 10, 10, 5, 0, 0,
	},
}

type EvaluationService struct {
	// signed material plus location, indexed by colored piece
	pst [King + 8][64]int
}

func NewEvaluationService() *EvaluationService {
	var e = &EvaluationService{}
	for pieceType := Pawn; pieceType <= King; pieceType++ {
		for sq := 0; sq < 64; sq++ {
			e.pst[MakePiece(pieceType, true)][sq] = pieceValues[pieceType] + whiteLocations[pieceType][sq]
			e.pst[MakePiece(pieceType, false)][sq] = -(pieceValues[pieceType] + whiteLocations[pieceType][FlipSquare(sq)])
		}
	}
	return e
}

// Evaluate scores p from White's point of view.
func (e *EvaluationService) Evaluate(p *Position) int {
	var eval = 0
	for piece := range p.Pieces {
		for x := p.Pieces[piece]; x != 0; x &= x - 1 {
			eval += e.pst[piece][FirstOne(x)]
		}
	}
	return eval
}
