package perft

import (
	"context"
	"errors"
	"testing"

	"github.com/kinderchess/kinder/internal/epd"
	"github.com/kinderchess/kinder/pkg/common"
)

func TestDivideMatchesSerial(t *testing.T) {
	var p, err = common.NewPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var before = p
	var items, err2 = Divide(context.Background(), &p, 3, 4)
	if err2 != nil {
		t.Fatal(err2)
	}
	var serial = common.Divide(&p, 3)
	if len(items) != len(serial) {
		t.Fatal(len(items), len(serial))
	}
	for i := range items {
		if items[i] != serial[i] {
			t.Fatal(items[i], serial[i])
		}
	}
	if p != before {
		t.Fatal("position changed")
	}
	var total, err3 = Count(context.Background(), &p, 3, 0)
	if err3 != nil || total != 97862 {
		t.Fatal(total, err3)
	}
}

func TestDivideCancelled(t *testing.T) {
	var p, _ = common.NewPositionFromFEN(common.InitialPositionFen)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if _, err := Divide(ctx, &p, 3, 1); !errors.Is(err, context.Canceled) {
		t.Fatal(err)
	}
}

func TestRunSuite(t *testing.T) {
	var count = 0
	var err = RunSuite(context.Background(), epd.Default(), 2, 3, func(r Result) {
		count++
		if !r.Ok() {
			t.Error(r.Fen, r.Depth, r.Nodes, r.Want)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 16 {
		t.Fatal(count)
	}
}

func TestRunSuiteMismatch(t *testing.T) {
	var test, err = epd.ParseLine("4k3/8/8/8/8/8/8/4K2R w K - ;D1 15 ;D2 67")
	if err != nil {
		t.Fatal(err)
	}
	err = RunSuite(context.Background(), []epd.PerftTest{test}, 5, 0, nil)
	if !errors.Is(err, ErrMismatch) {
		t.Fatal(err)
	}
}
