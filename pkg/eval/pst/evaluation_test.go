package eval

import (
	"testing"

	. "github.com/kinderchess/kinder/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		fen  string
		want int
	}{
		{InitialPositionFen, 0},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 30},
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 900},
		{"4k3/R7/8/8/8/8/8/4K3 b - - 0 1", 525},
		{"4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", 290},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Evaluate(&p); got != test.want {
			t.Error(test.fen, got, test.want)
		}
	}
}

func TestEvaluateSymmetry(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	var e = NewEvaluationService()
	for _, fen := range fens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var mirror = MirrorPosition(&p)
		if e.Evaluate(&p) != -e.Evaluate(&mirror) {
			t.Error(fen, e.Evaluate(&p), e.Evaluate(&mirror))
		}
	}
}
