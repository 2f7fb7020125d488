package common

import (
	"errors"
	"testing"
)

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		nodes []int64
	}{
		{
			fen:   InitialPositionFen,
			nodes: []int64{20, 400, 8902, 197281, 4865609},
		},
		{
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			nodes: []int64{48, 2039, 97862, 4085603},
		},
		{
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			nodes: []int64{14, 191, 2812, 43238, 674624},
		},
		{
			fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			nodes: []int64{6, 264, 9467, 422333},
		},
		{
			fen:   "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
			nodes: []int64{6, 264, 9467, 422333},
		},
		{
			fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			nodes: []int64{44, 1486, 62379, 2103487},
		},
		{
			fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
			nodes: []int64{46, 2079, 89890, 3894594},
		},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		for depth := 1; depth <= len(test.nodes); depth++ {
			var want = test.nodes[depth-1]
			if testing.Short() && want > 100000 {
				break
			}
			var nodes = Perft(&p, depth)
			if nodes != want {
				t.Error(i, test.fen, depth, nodes, want)
			}
		}
		if p.String() != test.fen {
			t.Error("perft changed the position", p.String())
		}
	}
}

func TestDivide(t *testing.T) {
	var p, _ = NewPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var items = Divide(&p, 2)
	if len(items) != 48 {
		t.Fatal(len(items))
	}
	var total int64
	var castles = 0
	for _, item := range items {
		total += item.Nodes
		if item.Move.IsCastling() {
			castles++
		}
	}
	if total != 2039 {
		t.Fatal(total)
	}
	if castles != 2 {
		t.Fatal("castles", castles)
	}
}

func TestGenerationOrder(t *testing.T) {
	var p, _ = NewPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var lastType = Pawn
	for _, m := range p.GenerateLegalMoves() {
		var pt = p.WhatPiece(m.From())
		if pt < lastType {
			t.Fatalf("%v (%d) generated after piece type %d", m, pt, lastType)
		}
		lastType = pt
	}
}

func TestCastlingConditions(t *testing.T) {
	var tests = []struct {
		name string
		fen  string
		want []string
		not  []string
	}{
		{"both sides free", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}, nil},
		{"blocked queen side", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"e1g1"}, []string{"e1c1"}},
		{"b1 attacked is fine", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", []string{"e1c1"}, nil},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"crossing attacked square", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", []string{"e1c1"}, []string{"e1g1"}},
		{"landing attacked square", "r3k2r/8/8/8/8/8/2r5/R3K2R w KQ - 0 1", []string{"e1g1"}, []string{"e1c1"}},
		{"rook attacked is fine", "r3k2r/8/8/8/8/8/7r/R3K2R w KQ - 0 1", []string{"e1g1", "e1c1"}, nil},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"black", "r3k2r/8/8/8/8/8/8/R3K2R b kq - 0 1", []string{"e8g8", "e8c8"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p, err = NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			var moves = make(map[string]bool)
			for _, m := range p.GenerateLegalMoves() {
				moves[m.String()] = true
			}
			for _, lan := range tt.want {
				if !moves[lan] {
					t.Errorf("%v missing", lan)
				}
			}
			for _, lan := range tt.not {
				if moves[lan] {
					t.Errorf("%v generated", lan)
				}
			}
		})
	}
}

func TestParseMoveLAN(t *testing.T) {
	var tests = []struct {
		fen  string
		lan  string
		want error
	}{
		{InitialPositionFen, "e2e4", nil},
		{InitialPositionFen, "E2E4", nil},
		{InitialPositionFen, "e2e5", ErrMoveNotFound},
		{InitialPositionFen, "e7e5", ErrMoveNotFound},
		{InitialPositionFen, "junk", ErrMoveNotFound},
		{"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2d3", ErrIllegalMove},
		{"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e1e2", ErrMoveNotFound},
		{"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e1d1", nil},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8", ErrMoveNotFound},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", nil},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var before = p
		var _, got = p.ParseMoveLAN(test.lan)
		if !errors.Is(got, test.want) {
			t.Error(i, test.lan, got, test.want)
		}
		if p != before {
			t.Error(i, "position changed")
		}
	}
}

func TestMoveBuilder(t *testing.T) {
	var m, err = NewMoveBuilder(SquareE7, SquareE8).Promotion(Queen).Build()
	if err != nil || m.String() != "e7e8q" || m.IsEnPassant() || m.IsCastling() {
		t.Fatal(m, err)
	}
	m, err = NewMoveBuilder(SquareE1, SquareG1).Promotion(Rook).Castling().Build()
	if err != nil || !m.IsCastling() || m.Promotion() != Empty {
		t.Fatal(m, err)
	}
	m, err = NewMoveBuilder(SquareE5, SquareD6).Castling().EnPassant().Build()
	if err != nil || !m.IsEnPassant() || m.IsCastling() {
		t.Fatal(m, err)
	}
	for _, b := range []*MoveBuilder{
		NewMoveBuilder(SquareE2, SquareE2),
		NewMoveBuilder(-1, SquareE2),
		NewMoveBuilder(SquareE2, 64),
		NewMoveBuilder(SquareE7, SquareE8).Promotion(King),
		NewMoveBuilder(SquareE7, SquareE8).Promotion(Pawn),
	} {
		if _, err := b.Build(); !errors.Is(err, ErrInvalidMove) {
			t.Error(err)
		}
	}

	var p, _ = NewPositionFromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	var ep, _ = NewMoveBuilder(SquareE5, SquareF6).EnPassant().Build()
	var found = false
	for _, m := range p.GenerateLegalMoves() {
		if m == ep {
			found = true
		}
	}
	if !found {
		t.Error("built en passant move differs from the generated one")
	}
}

func BenchmarkPerft(b *testing.B) {
	var p, _ = NewPositionFromFEN(InitialPositionFen)
	for i := 0; i < b.N; i++ {
		Perft(&p, 4)
	}
}
