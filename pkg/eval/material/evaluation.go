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

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns the material balance from White's point of view.
func (e *EvaluationService) Evaluate(p *Position) int {
	var eval = 0
	for pieceType := Pawn; pieceType <= King; pieceType++ {
		eval += pieceValues[pieceType] *
			(PopCount(p.PiecesByType(pieceType, true)) - PopCount(p.PiecesByType(pieceType, false)))
	}
	return eval
}
