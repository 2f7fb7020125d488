package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/kinderchess/kinder/internal/epd"
	"github.com/kinderchess/kinder/internal/perft"
	"github.com/kinderchess/kinder/pkg/common"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = run()
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var (
		fen         = flag.String("fen", common.InitialPositionFen, "position to count")
		depth       = flag.Int("depth", 5, "perft depth")
		divide      = flag.Bool("divide", false, "print node counts per root move")
		suite       = flag.Bool("suite", false, "run a perft suite instead of a single position")
		epdPath     = flag.String("epd", "", "perft suite file, the embedded suite when empty")
		concurrency = flag.Int("concurrency", runtime.NumCPU(), "parallel workers")
		maxDepth    = flag.Int("maxdepth", 4, "deepest suite entry to check")
	)
	flag.Parse()

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *suite || *epdPath != "" {
		return runSuite(ctx, *epdPath, *maxDepth, *concurrency)
	}
	return runPosition(ctx, *fen, *depth, *divide, *concurrency)
}

func runPosition(ctx context.Context, fen string, depth int, divide bool, concurrency int) error {
	logger.Println("perft started",
		"fen", fen,
		"depth", depth)
	defer logger.Println("perft finished")

	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	var start = time.Now()
	items, err := perft.Divide(ctx, &p, depth, concurrency)
	if err != nil {
		return err
	}
	var total int64
	for _, item := range items {
		if divide {
			fmt.Printf("%v: %v\n", item.Move, item.Nodes)
		}
		total += item.Nodes
	}
	if depth <= 0 {
		total = 1
	}
	var elapsed = time.Since(start)
	fmt.Println("Nodes", total)
	fmt.Println("Time", elapsed)
	fmt.Println("kNPS", total/(elapsed.Milliseconds()+1))
	return nil
}

func runSuite(ctx context.Context, path string, maxDepth, concurrency int) error {
	logger.Println("perft suite started",
		"path", path,
		"maxDepth", maxDepth,
		"concurrency", concurrency)
	defer logger.Println("perft suite finished")

	var tests []epd.PerftTest
	if path == "" {
		tests = epd.Default()
	} else {
		var err error
		tests, err = epd.Load(path)
		if err != nil {
			return err
		}
	}
	return perft.RunSuite(ctx, tests, maxDepth, concurrency, func(r perft.Result) {
		var status = "ok"
		if !r.Ok() {
			status = "FAIL"
		}
		fmt.Printf("%-4v D%v %12v %12v %10v %v\n", status, r.Depth, r.Nodes, r.Want,
			r.Elapsed.Round(time.Millisecond), r.Fen)
	})
}
