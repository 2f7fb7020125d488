package perft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kinderchess/kinder/internal/epd"
	"github.com/kinderchess/kinder/pkg/common"

	"golang.org/x/sync/errgroup"
)

var ErrMismatch = errors.New("perft mismatch")

// Divide is common.Divide with root moves counted in parallel.
func Divide(ctx context.Context, p *common.Position, depth, concurrency int) ([]common.DivideItem, error) {
	var moves = p.GenerateLegalMoves()
	var result = make([]common.DivideItem, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i := range moves {
		var i = i
		var child = *p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child.MakeMove(moves[i])
			result[i] = common.DivideItem{
				Move:  moves[i],
				Nodes: common.Perft(&child, depth-1),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func Count(ctx context.Context, p *common.Position, depth, concurrency int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}
	var items, err = Divide(ctx, p, depth, concurrency)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, item := range items {
		total += item.Nodes
	}
	return total, nil
}

type Result struct {
	Fen     string
	Depth   int
	Nodes   int64
	Want    int64
	Elapsed time.Duration
}

func (r Result) Ok() bool {
	return r.Nodes == r.Want
}

// RunSuite checks every test of the suite up to maxDepth, running tests concurrently.
// report is called from one goroutine at a time.
func RunSuite(ctx context.Context, tests []epd.PerftTest, maxDepth, concurrency int,
	report func(Result)) error {
	var results = make(chan Result)
	var failed = 0

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for r := range results {
			if !r.Ok() {
				failed++
			}
			if report != nil {
				report(r)
			}
		}
		return nil
	})

	g.Go(func() error {
		defer close(results)
		workers, ctx := errgroup.WithContext(ctx)
		if concurrency > 0 {
			workers.SetLimit(concurrency)
		}
		for i := range tests {
			var test = &tests[i]
			workers.Go(func() error {
				return runTest(ctx, test, maxDepth, results)
			})
		}
		return workers.Wait()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if failed != 0 {
		return fmt.Errorf("%w: %v failed", ErrMismatch, failed)
	}
	return nil
}

func runTest(ctx context.Context, test *epd.PerftTest, maxDepth int, results chan<- Result) error {
	for _, dn := range test.Depths {
		if dn.Depth > maxDepth {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		var p = test.Position
		var start = time.Now()
		var nodes = common.Perft(&p, dn.Depth)
		select {
		case results <- Result{
			Fen:     test.Fen,
			Depth:   dn.Depth,
			Nodes:   nodes,
			Want:    dn.Nodes,
			Elapsed: time.Since(start),
		}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
