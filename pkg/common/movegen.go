package common

// IsAttacked reports whether any piece of side attacks sq.
func (p *Position) IsAttacked(sq int, side bool) bool {
	if (PawnAttacks(sq, !side) & p.PiecesByType(Pawn, side)) != 0 {
		return true
	}
	if (KnightAttacks[sq] & p.PiecesByType(Knight, side)) != 0 {
		return true
	}
	if (KingAttacks[sq] & p.PiecesByType(King, side)) != 0 {
		return true
	}
	var allPieces = p.AllPieces()
	var queens = p.PiecesByType(Queen, side)
	if (BishopAttacks(sq, allPieces) & (p.PiecesByType(Bishop, side) | queens)) != 0 {
		return true
	}
	if (RookAttacks(sq, allPieces) & (p.PiecesByType(Rook, side) | queens)) != 0 {
		return true
	}
	return false
}

func (p *Position) anyAttacked(squares uint64, side bool) bool {
	for squares != 0 {
		if p.IsAttacked(PopFirst(&squares), side) {
			return true
		}
	}
	return false
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	return p.IsAttacked(p.KingSquare(p.WhiteMove), !p.WhiteMove)
}

// isLegal is called after MakeMove: the side that just moved must not
// have left its king attacked.
func (p *Position) isLegal() bool {
	return !p.IsAttacked(p.KingSquare(!p.WhiteMove), p.WhiteMove)
}

// IsLegal reports whether the last move made on p kept the mover's king safe.
func (p *Position) IsLegal() bool {
	return p.isLegal()
}

func addPawnMoves(ml []Move, count, from, to int) int {
	if Rank(to) == Rank8 || Rank(to) == Rank1 {
		ml[count] = makePromotion(from, to, Queen)
		ml[count+1] = makePromotion(from, to, Rook)
		ml[count+2] = makePromotion(from, to, Bishop)
		ml[count+3] = makePromotion(from, to, Knight)
		return count + 4
	}
	ml[count] = makeMove(from, to)
	return count + 1
}

// GenerateMoves fills ml with the pseudo-legal moves of the side to move
// and returns the used part. ml must hold at least MaxMoves moves.
func (p *Position) GenerateMoves(ml []Move) []Move {
	var count = 0
	var side = p.WhiteMove
	var ownPieces = p.PiecesByColor(side)
	var oppPieces = p.PiecesByColor(!side)
	var allPieces = ownPieces | oppPieces
	var target = ^ownPieces
	var fromBB, toBB uint64
	var from, to int

	for fromBB = p.PiecesByType(Pawn, side); fromBB != 0; {
		from = PopFirst(&fromBB)
		if push := PawnPushes(from, side) &^ allPieces; push != 0 {
			count = addPawnMoves(ml, count, from, FirstOne(push))
			if double := PawnDoublePushes(from, side) &^ allPieces; double != 0 {
				ml[count] = makeMove(from, FirstOne(double))
				count++
			}
		}
		var attacks = PawnAttacks(from, side)
		for toBB = attacks & oppPieces; toBB != 0; {
			count = addPawnMoves(ml, count, from, PopFirst(&toBB))
		}
		if p.EpSquare != SquareNone && (attacks&SquareMask[p.EpSquare]) != 0 {
			ml[count] = makeMove(from, p.EpSquare) | moveFlagEnPassant
			count++
		}
	}

	for fromBB = p.PiecesByType(Knight, side); fromBB != 0; {
		from = PopFirst(&fromBB)
		for toBB = KnightAttacks[from] & target; toBB != 0; {
			to = PopFirst(&toBB)
			ml[count] = makeMove(from, to)
			count++
		}
	}

	for fromBB = p.PiecesByType(Bishop, side); fromBB != 0; {
		from = PopFirst(&fromBB)
		for toBB = BishopAttacks(from, allPieces) & target; toBB != 0; {
			to = PopFirst(&toBB)
			ml[count] = makeMove(from, to)
			count++
		}
	}

	for fromBB = p.PiecesByType(Rook, side); fromBB != 0; {
		from = PopFirst(&fromBB)
		for toBB = RookAttacks(from, allPieces) & target; toBB != 0; {
			to = PopFirst(&toBB)
			ml[count] = makeMove(from, to)
			count++
		}
	}

	for fromBB = p.PiecesByType(Queen, side); fromBB != 0; {
		from = PopFirst(&fromBB)
		for toBB = QueenAttacks(from, allPieces) & target; toBB != 0; {
			to = PopFirst(&toBB)
			ml[count] = makeMove(from, to)
			count++
		}
	}

	{
		from = p.KingSquare(side)
		for toBB = KingAttacks[from] & target; toBB != 0; {
			to = PopFirst(&toBB)
			ml[count] = makeMove(from, to)
			count++
		}

		for direction := KingSide; direction <= QueenSide; direction++ {
			var cd = castlingDefinition(side, direction)
			if (p.CastleRights&cd.Right) != 0 &&
				(allPieces&cd.Vacant) == 0 &&
				!p.anyAttacked(cd.Safe, !side) {
				ml[count] = makeMove(cd.KingFrom, cd.KingTo) | moveFlagCastling
				count++
			}
		}
	}

	return ml[:count]
}

// GenerateCaptures returns the pseudo-legal captures, en passant included.
func (p *Position) GenerateCaptures(ml []Move) []Move {
	var all = p.GenerateMoves(ml)
	var count = 0
	for _, m := range all {
		if p.IsCapture(m) {
			ml[count] = m
			count++
		}
	}
	return ml[:count]
}

func (p *Position) IsCapture(m Move) bool {
	return p.Board[m.To()] != Empty || m.IsEnPassant()
}

func (p *Position) GenerateLegalMoves() []Move {
	var buffer [MaxMoves]Move
	var ml []Move
	for _, m := range p.GenerateMoves(buffer[:]) {
		var s = p.MakeMove(m)
		if p.isLegal() {
			ml = append(ml, m)
		}
		p.UnmakeMove(s)
	}
	return ml
}
