package arena

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/kinderchess/kinder/pkg/common"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	GameConcurrency int
	TimeControl     TimeControl
	// MaxOpenings limits the number of openings played, zero means all.
	MaxOpenings int
	NewEngineA  func() IEngine
	NewEngineB  func() IEngine
}

// Run plays every opening twice, once with each engine as white, and
// returns the accumulated score from engine A's point of view.
func Run(ctx context.Context, config Config) (Statistics, error) {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", config.GameConcurrency)

	log.Printf("%+v\n", config.TimeControl)

	if _, err := config.TimeControl.limits(); err != nil {
		return Statistics{}, err
	}

	var openings, err = getOpenings()
	if err != nil {
		return Statistics{}, err
	}
	if config.MaxOpenings > 0 && config.MaxOpenings < len(openings) {
		openings = openings[:config.MaxOpenings]
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stat Statistics

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	g.Go(func() error {
		stat = showResults(gameResults)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < common.Max(1, config.GameConcurrency); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	err = g.Wait()
	return stat, err
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = config.NewEngineA()
	var engineB = config.NewEngineB()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, config.TimeControl, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
