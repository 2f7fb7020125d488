package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/kinderchess/kinder/internal/arena"
	"github.com/kinderchess/kinder/internal/evalbuilder"
	"github.com/kinderchess/kinder/pkg/engine"
)

type Config struct {
	EngineA     string
	EngineB     string
	Concurrency int
	Nodes       int
	MoveTime    time.Duration
	Depth       int
	Openings    int
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.StringVar(&config.EngineA, "a", "pst", "evaluation function of engine A")
	flag.StringVar(&config.EngineB, "b", "material", "evaluation function of engine B")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played in parallel")
	flag.IntVar(&config.Nodes, "nodes", 0, "Fixed nodes per move")
	flag.DurationVar(&config.MoveTime, "movetime", 0, "Fixed time per move")
	flag.IntVar(&config.Depth, "depth", 4, "Fixed depth per move, used when nodes and movetime are not set")
	flag.IntVar(&config.Openings, "openings", 0, "Number of openings to play, 0 means all")
	flag.Parse()

	log.Printf("%+v", config)

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var stat, err = arena.Run(ctx, arena.Config{
		GameConcurrency: config.Concurrency,
		TimeControl: arena.TimeControl{
			FixedNodes: config.Nodes,
			FixedTime:  config.MoveTime,
			FixedDepth: config.Depth,
		},
		MaxOpenings: config.Openings,
		NewEngineA:  newEngine(config.EngineA),
		NewEngineB:  newEngine(config.EngineB),
	})
	if err != nil {
		return err
	}
	log.Printf("%v vs %v: %+v", config.EngineA, config.EngineB, stat)
	return nil
}

func newEngine(eval string) func() arena.IEngine {
	return func() arena.IEngine {
		var eng = engine.NewEngine(evalbuilder.Get(eval))
		eng.Prepare()
		return eng
	}
}
