package common

// Snapshot holds the irreversible state needed to take a move back.
type Snapshot struct {
	Move Move
	// piece that stood on the destination square, Empty for en passant
	Captured     int
	Key          uint64
	CastleRights int
	EpSquare     int
	Rule50       int
}

// castleMask[sq] keeps the rights that survive a move from or to sq.
var castleMask = func() (result [64]int) {
	for i := range result {
		result[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	result[SquareA1] &^= WhiteQueenSide
	result[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	result[SquareH1] &^= WhiteKingSide
	result[SquareA8] &^= BlackQueenSide
	result[SquareE8] &^= BlackQueenSide | BlackKingSide
	result[SquareH8] &^= BlackKingSide
	return
}()

func sideCastleRights(side bool) int {
	if side {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

// MakeMove applies a pseudo-legal move in place. The move may leave the
// mover's king attacked; callers check that with IsLegal.
func (p *Position) MakeMove(m Move) Snapshot {
	var from, to = m.From(), m.To()
	var side = p.WhiteMove
	var piece = p.Board[from]
	var pieceType, _ = GetPieceTypeAndSide(piece)
	var captured = p.Board[to]

	var s = Snapshot{
		Move:         m,
		Captured:     captured,
		Key:          p.Key(),
		CastleRights: p.CastleRights,
		EpSquare:     p.EpSquare,
		Rule50:       p.Rule50,
	}

	p.EpSquare = SquareNone
	if captured != Empty {
		p.removePiece(captured, to)
	}
	p.movePiece(piece, from, to)

	if pieceType == Pawn || captured != Empty {
		p.Rule50 = 0
	} else {
		p.Rule50++
	}
	p.CastleRights &= castleMask[from] & castleMask[to]

	switch pieceType {
	case King:
		p.CastleRights &^= sideCastleRights(side)
		if m.IsCastling() {
			var cd = castlingDefinition(side, m.castlingDirection())
			p.movePiece(MakePiece(Rook, side), cd.RookFrom, cd.RookTo)
		}
	case Pawn:
		if m.IsEnPassant() {
			p.removePiece(MakePiece(Pawn, !side), MakeSquare(File(to), Rank(from)))
		} else if promotion := m.Promotion(); promotion != Empty {
			p.removePiece(piece, to)
			p.addPiece(MakePiece(promotion, side), to)
		} else if to-from == 16 || from-to == 16 {
			p.EpSquare = (from + to) / 2
		}
	}

	if !side {
		p.MoveNumber++
	}
	p.WhiteMove = !side

	if invariantChecks {
		p.mustValidate()
	}
	return s
}

// UnmakeMove takes back the move recorded in s. Snapshots must be undone
// in reverse order of MakeMove calls.
func (p *Position) UnmakeMove(s Snapshot) {
	var m = s.Move
	var from, to = m.From(), m.To()

	p.WhiteMove = !p.WhiteMove
	var side = p.WhiteMove
	if !side {
		p.MoveNumber--
	}

	var piece = p.Board[to]
	if m.Promotion() != Empty {
		p.removePiece(piece, to)
		piece = MakePiece(Pawn, side)
		p.addPiece(piece, to)
	}
	p.movePiece(piece, to, from)

	if s.Captured != Empty {
		p.addPiece(s.Captured, to)
	}
	if m.IsEnPassant() {
		p.addPiece(MakePiece(Pawn, !side), MakeSquare(File(to), Rank(from)))
	}
	if m.IsCastling() {
		var cd = castlingDefinition(side, m.castlingDirection())
		p.movePiece(MakePiece(Rook, side), cd.RookTo, cd.RookFrom)
	}

	p.CastleRights = s.CastleRights
	p.EpSquare = s.EpSquare
	p.Rule50 = s.Rule50

	if invariantChecks {
		p.mustValidate()
	}
}
