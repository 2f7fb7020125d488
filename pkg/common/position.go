package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Position keeps every piece twice: in the per piece square sets and in
// the square to piece lookup. Validate checks that both views agree.
type Position struct {
	Pieces       [14]uint64
	Board        [64]int
	WhiteMove    bool
	CastleRights int
	EpSquare     int
	Rule50       int
	MoveNumber   int
}

const (
	pieceChars      = "PNBRQK"
	blackPieceChars = "pnbrqk"
)

func NewPositionFromFEN(fen string) (Position, error) {
	var fields = splitFields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, &FENError{FEN: fen, Index: len(fen), Reason: "expected 4 to 6 fields"}
	}

	var p = Position{
		EpSquare:   SquareNone,
		MoveNumber: 1,
	}

	if err := p.parsePlacement(fen, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1].text {
	case "w":
		p.WhiteMove = true
	case "b":
		p.WhiteMove = false
	default:
		return Position{}, &FENError{FEN: fen, Index: fields[1].start, Reason: "bad side to move"}
	}

	if fields[2].text != "-" {
		for i, ch := range fields[2].text {
			var right int
			switch ch {
			case 'K':
				right = WhiteKingSide
			case 'Q':
				right = WhiteQueenSide
			case 'k':
				right = BlackKingSide
			case 'q':
				right = BlackQueenSide
			default:
				return Position{}, &FENError{FEN: fen, Index: fields[2].start + i, Reason: "bad castling flag"}
			}
			if p.CastleRights&right != 0 {
				return Position{}, &FENError{FEN: fen, Index: fields[2].start + i, Reason: "duplicate castling flag"}
			}
			p.CastleRights |= right
		}
	}
	p.CastleRights &= p.possibleCastleRights()

	var ep, err = ParseSquare(fields[3].text)
	if err != nil {
		return Position{}, &FENError{FEN: fen, Index: fields[3].start, Reason: "bad en passant square"}
	}
	if ep != SquareNone {
		if reason := p.checkEpSquare(ep); reason != "" {
			var index = fields[3].start
			if Rank(ep) != epRank(p.WhiteMove) {
				index++
			}
			return Position{}, &FENError{FEN: fen, Index: index, Reason: reason}
		}
	}
	p.EpSquare = ep

	if len(fields) > 4 {
		var n, err = strconv.Atoi(fields[4].text)
		if err != nil || n < 0 {
			return Position{}, &FENError{FEN: fen, Index: fields[4].start, Reason: "bad halfmove clock"}
		}
		p.Rule50 = n
	}
	if len(fields) > 5 {
		var n, err = strconv.Atoi(fields[5].text)
		if err != nil || n < 1 {
			return Position{}, &FENError{FEN: fen, Index: fields[5].start, Reason: "bad fullmove number"}
		}
		p.MoveNumber = n
	}

	if PopCount(p.Pieces[MakePiece(King, true)]) != 1 ||
		PopCount(p.Pieces[MakePiece(King, false)]) != 1 {
		return Position{}, &FENError{FEN: fen, Index: fields[0].start, Reason: "each side needs exactly one king"}
	}
	if !p.isLegal() {
		return Position{}, &FENError{FEN: fen, Index: fields[1].start, Reason: "side not to move is in check"}
	}
	return p, nil
}

func epRank(whiteMove bool) int {
	if whiteMove {
		return Rank6
	}
	return Rank3
}

// checkEpSquare requires the en passant square to sit behind an enemy pawn
// that has just made a double push.
func (p *Position) checkEpSquare(ep int) string {
	if Rank(ep) != epRank(p.WhiteMove) {
		if p.WhiteMove {
			return "en passant square must be on rank 6 with white to move"
		}
		return "en passant square must be on rank 3 with black to move"
	}
	var pawn, from = ep - 8, ep + 8
	if !p.WhiteMove {
		pawn, from = ep+8, ep-8
	}
	if p.Board[pawn] != MakePiece(Pawn, !p.WhiteMove) {
		return "no pawn to capture en passant"
	}
	if p.Board[ep] != Empty || p.Board[from] != Empty {
		return "en passant squares are occupied"
	}
	return ""
}

type fenField struct {
	text  string
	start int
}

func splitFields(s string) []fenField {
	var result []fenField
	var start = -1
	for i := 0; i <= len(s); i++ {
		var sep = i == len(s) || s[i] == ' ' || s[i] == '\t'
		if sep {
			if start >= 0 {
				result = append(result, fenField{s[start:i], start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	return result
}

func (p *Position) parsePlacement(fen string, field fenField) error {
	var file, rank = FileA, Rank8
	for i := 0; i < len(field.text); i++ {
		var ch = field.text[i]
		var index = field.start + i
		switch {
		case ch == '/':
			if file != 8 || rank == Rank1 {
				return &FENError{FEN: fen, Index: index, Reason: "bad rank separator"}
			}
			file = FileA
			rank--
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
			if file > 8 {
				return &FENError{FEN: fen, Index: index, Reason: "rank overflow"}
			}
		default:
			var piece = parsePiece(ch)
			if piece == Empty {
				return &FENError{FEN: fen, Index: index, Reason: "bad piece"}
			}
			if file > FileH {
				return &FENError{FEN: fen, Index: index, Reason: "rank overflow"}
			}
			if pt, _ := GetPieceTypeAndSide(piece); pt == Pawn && (rank == Rank1 || rank == Rank8) {
				return &FENError{FEN: fen, Index: index, Reason: "pawn on back rank"}
			}
			p.addPiece(piece, MakeSquare(file, rank))
			file++
		}
	}
	if file != 8 || rank != Rank1 {
		return &FENError{FEN: fen, Index: field.start + len(field.text), Reason: "incomplete placement"}
	}
	return nil
}

func parsePiece(ch byte) int {
	if i := strings.IndexByte(pieceChars, ch); i >= 0 {
		return MakePiece(i+Pawn, true)
	}
	if i := strings.IndexByte(blackPieceChars, ch); i >= 0 {
		return MakePiece(i+Pawn, false)
	}
	return Empty
}

func pieceToChar(piece int) byte {
	var pieceType, side = GetPieceTypeAndSide(piece)
	if side {
		return pieceChars[pieceType-Pawn]
	}
	return blackPieceChars[pieceType-Pawn]
}

// possibleCastleRights drops the rights whose king or rook is not at home.
func (p *Position) possibleCastleRights() int {
	var result = 0
	for _, defs := range CastlingDefinitions {
		for i := range defs {
			var cd = &defs[i]
			var side = cd.KingFrom == SquareE1
			if p.Board[cd.KingFrom] == MakePiece(King, side) &&
				p.Board[cd.RookFrom] == MakePiece(Rook, side) {
				result |= cd.Right
			}
		}
	}
	return result
}

func (p *Position) String() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var piece = p.Board[MakeSquare(file, rank)]
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceToChar(piece))
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	if p.WhiteMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		if (p.CastleRights & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (p.CastleRights & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (p.CastleRights & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (p.CastleRights & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(SquareName(p.EpSquare))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.MoveNumber))

	return sb.String()
}

// Dump renders the board as text, white at the bottom.
func (p *Position) Dump() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		sb.WriteString(" +---+---+---+---+---+---+---+---+\n")
		for file := FileA; file <= FileH; file++ {
			var piece = p.Board[MakeSquare(file, rank)]
			var ch byte = ' '
			if piece != Empty {
				ch = pieceToChar(piece)
			}
			sb.WriteString(" | ")
			sb.WriteByte(ch)
		}
		fmt.Fprintf(&sb, " | %d\n", rank+1)
	}
	sb.WriteString(" +---+---+---+---+---+---+---+---+\n")
	sb.WriteString("   a   b   c   d   e   f   g   h\n\n")
	fmt.Fprintf(&sb, "Fen: %v\nKey: %016X\n", p.String(), p.Key())
	return sb.String()
}

func (p *Position) PiecesByColor(side bool) uint64 {
	var base = MakePiece(Pawn, side)
	return p.Pieces[base] | p.Pieces[base+1] | p.Pieces[base+2] |
		p.Pieces[base+3] | p.Pieces[base+4] | p.Pieces[base+5]
}

func (p *Position) AllPieces() uint64 {
	return p.PiecesByColor(true) | p.PiecesByColor(false)
}

func (p *Position) PiecesByType(pieceType int, side bool) uint64 {
	return p.Pieces[MakePiece(pieceType, side)]
}

func (p *Position) WhatPiece(sq int) int {
	var pieceType, _ = GetPieceTypeAndSide(p.Board[sq])
	return pieceType
}

func (p *Position) KingSquare(side bool) int {
	return FirstOne(p.Pieces[MakePiece(King, side)])
}

func (p *Position) addPiece(piece, sq int) {
	p.Pieces[piece] |= SquareMask[sq]
	p.Board[sq] = piece
}

func (p *Position) removePiece(piece, sq int) {
	p.Pieces[piece] &^= SquareMask[sq]
	p.Board[sq] = Empty
}

func (p *Position) movePiece(piece, from, to int) {
	p.Pieces[piece] ^= SquareMask[from] | SquareMask[to]
	p.Board[from] = Empty
	p.Board[to] = piece
}

// Validate reports the first square where the piece sets and the board
// lookup disagree.
func (p *Position) Validate() error {
	for sq := 0; sq < 64; sq++ {
		var found = Empty
		for piece := range p.Pieces {
			if p.Pieces[piece]&SquareMask[sq] == 0 {
				continue
			}
			if piece == 0 || piece == 7 {
				return fmt.Errorf("unused piece set %d contains %v", piece, SquareName(sq))
			}
			if found != Empty {
				return fmt.Errorf("pieces %d and %d both on %v", found, piece, SquareName(sq))
			}
			found = piece
		}
		if found != p.Board[sq] {
			return fmt.Errorf("board has %d on %v, piece sets have %d", p.Board[sq], SquareName(sq), found)
		}
	}
	return nil
}

func (p *Position) mustValidate() {
	if err := p.Validate(); err != nil {
		panic(fmt.Errorf("position %v corrupted: %w", p, err))
	}
}

func MirrorPosition(p *Position) Position {
	var result = Position{
		WhiteMove:    !p.WhiteMove,
		CastleRights: (p.CastleRights >> 2) | ((p.CastleRights & 3) << 2),
		EpSquare:     SquareNone,
		Rule50:       p.Rule50,
		MoveNumber:   p.MoveNumber,
	}
	for sq, piece := range p.Board {
		if piece != Empty {
			var pt, side = GetPieceTypeAndSide(piece)
			result.addPiece(MakePiece(pt, !side), FlipSquare(sq))
		}
	}
	if p.EpSquare != SquareNone {
		result.EpSquare = FlipSquare(p.EpSquare)
	}
	return result
}
