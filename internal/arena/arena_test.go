package arena

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kinderchess/kinder/internal/evalbuilder"
	"github.com/kinderchess/kinder/pkg/common"
	"github.com/kinderchess/kinder/pkg/engine"
)

// scriptedEngine plays the first legal move from its preferences,
// falling back to the first legal move.
type scriptedEngine struct {
	preferences []string
	empty       bool
}

func (e *scriptedEngine) Clear() {}

func (e *scriptedEngine) Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo {
	if e.empty {
		return common.SearchInfo{}
	}
	var p = searchParams.Position
	for _, lan := range e.preferences {
		if m, err := p.ParseMoveLAN(lan); err == nil {
			return common.SearchInfo{MainLine: []common.Move{m}}
		}
	}
	return common.SearchInfo{MainLine: p.GenerateLegalMoves()[:1]}
}

func TestPlayGameAdjudication(t *testing.T) {
	var tests = []struct {
		name    string
		fen     string
		comment string
		result  int
	}{
		{"checkmate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", "checkmate", gameResultWhiteWins},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "stalemate", gameResultDraw},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", "50 moves", gameResultDraw},
		{"low material", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", "low material", gameResultDraw},
	}
	var eng = &scriptedEngine{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res, err = playGame(context.Background(), eng, eng,
				TimeControl{FixedDepth: 1}, gameInfo{opening: tt.fen, gameNumber: 1})
			if err != nil {
				t.Fatal(err)
			}
			if res.comment != tt.comment || res.result != tt.result || len(res.moves) != 0 {
				t.Errorf("got %v %v %v", res.comment, res.result, res.moves)
			}
		})
	}
}

func TestPlayGameRepetition(t *testing.T) {
	var eng = &scriptedEngine{preferences: []string{"g1f3", "g8f6", "f3g1", "f6g8"}}
	var res, err = playGame(context.Background(), eng, eng,
		TimeControl{FixedNodes: 100}, gameInfo{opening: common.InitialPositionFen, gameNumber: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.comment != "3 fold repetition" || res.result != gameResultDraw || len(res.moves) != 8 {
		t.Fatal(res.comment, res.moves)
	}
}

func TestPlayGameErrors(t *testing.T) {
	var eng = &scriptedEngine{empty: true}
	var info = gameInfo{opening: common.InitialPositionFen, gameNumber: 1}
	if _, err := playGame(context.Background(), eng, eng, TimeControl{FixedDepth: 1}, info); !errors.Is(err, errBadMove) {
		t.Error(err)
	}
	if _, err := playGame(context.Background(), eng, eng, TimeControl{}, info); !errors.Is(err, errBadTimeControl) {
		t.Error(err)
	}
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if _, err := playGame(ctx, eng, eng, TimeControl{FixedDepth: 1}, info); !errors.Is(err, context.Canceled) {
		t.Error(err)
	}
}

func TestParseOpening(t *testing.T) {
	var fen, err = parseOpening("1. e4 e5 2.Nf3")
	if err != nil {
		t.Fatal(err)
	}
	var want, _ = common.NewPositionFromFEN(common.InitialPositionFen)
	for _, lan := range []string{"e2e4", "e7e5", "g1f3"} {
		if _, err := want.MakeMoveLAN(lan); err != nil {
			t.Fatal(err)
		}
	}
	if fen != want.String() {
		t.Errorf("got %v want %v", fen, want.String())
	}
	if _, err := parseOpening("1. e5"); err == nil {
		t.Error("illegal opening accepted")
	}
}

func TestGetOpenings(t *testing.T) {
	var openings, err = getOpenings()
	if err != nil {
		t.Fatal(err)
	}
	if len(openings) != 19 {
		t.Fatal(len(openings))
	}
	for _, fen := range openings {
		if _, err := common.NewPositionFromFEN(fen); err != nil {
			t.Error(fen, err)
		}
	}
}

func TestComputeStat(t *testing.T) {
	var stat = computeStat(1, 1, 2)
	if stat.WinningFraction != 0.5 || stat.EloDifference != 0 || stat.LOS != 0.5 {
		t.Errorf("%+v", stat)
	}
	stat = computeStat(3, 1, 0)
	if stat.WinningFraction != 0.75 || stat.EloDifference <= 190 || stat.EloDifference >= 192 {
		t.Errorf("%+v", stat)
	}
	if math.Abs(stat.LOS-0.8413) > 0.001 {
		t.Errorf("%+v", stat)
	}
	if stat = computeStat(0, 0, 0); stat.WinningFraction != 0 {
		t.Errorf("%+v", stat)
	}
}

func TestRunSelfPlay(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	var newEngine = func(eval string) func() IEngine {
		return func() IEngine {
			var eng = engine.NewEngine(evalbuilder.Get(eval))
			eng.Prepare()
			return eng
		}
	}
	var stat, err = Run(context.Background(), Config{
		GameConcurrency: 2,
		TimeControl:     TimeControl{FixedDepth: 1},
		MaxOpenings:     1,
		NewEngineA:      newEngine("pst"),
		NewEngineB:      newEngine("material"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if stat.Wins+stat.Losses+stat.Draws != 2 {
		t.Fatalf("%+v", stat)
	}
}
