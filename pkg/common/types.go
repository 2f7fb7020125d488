package common

import "time"

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const (
	KingSide = iota
	QueenSide
)

const (
	MaxMoves = 256
)

// MakePiece returns 1..6 for white pieces and 8..13 for black ones.
func MakePiece(pieceType int, side bool) int {
	if side {
		return pieceType
	}
	return pieceType + 7
}

func GetPieceTypeAndSide(piece int) (pieceType int, side bool) {
	if piece < 7 {
		return piece, true
	}
	return piece - 7, false
}

type CastlingDefinition struct {
	Right    int
	KingFrom int
	KingTo   int
	RookFrom int
	RookTo   int
	// squares between king and rook
	Vacant uint64
	// squares the king stands on or crosses
	Safe uint64
}

// CastlingDefinitions is indexed by [sideIndex][KingSide|QueenSide].
var CastlingDefinitions = [2][2]CastlingDefinition{
	{
		{WhiteKingSide, SquareE1, SquareG1, SquareH1, SquareF1, 0x60, 0x70},
		{WhiteQueenSide, SquareE1, SquareC1, SquareA1, SquareD1, 0x0e, 0x1c},
	},
	{
		{BlackKingSide, SquareE8, SquareG8, SquareH8, SquareF8, 0x60 << 56, 0x70 << 56},
		{BlackQueenSide, SquareE8, SquareC8, SquareA8, SquareD8, 0x0e << 56, 0x1c << 56},
	},
}

func castlingDefinition(side bool, direction int) *CastlingDefinition {
	return &CastlingDefinitions[sideIndex(side)][direction]
}

type LimitsType struct {
	Infinite       bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
}

type SearchParams struct {
	Position Position
	// moves that led to Position, oldest first
	History  []Snapshot
	Limits   LimitsType
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}
