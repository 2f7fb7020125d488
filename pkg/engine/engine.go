package engine

import (
	"context"
	"errors"
	"time"

	. "github.com/kinderchess/kinder/pkg/common"
)

type Engine struct {
	Options     Options
	evalBuilder func() interface{}
	evaluator   IEvaluator
	timeManager *timeManager
	pvTable     pvTable
	killers     [maxDepth + 1][2]Move
	keys        []uint64
	position    Position
	progress    func(SearchInfo)
	mainLine    mainLine
	start       time.Time
	nodes       int64
	stack       [stackSize]struct {
		moveList [MaxMoves]Move
		ordered  [MaxMoves]orderedMove
	}
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

// IEvaluator scores a position from White's point of view.
type IEvaluator interface {
	Evaluate(p *Position) int
}

func NewEngine(evalBuilder func() interface{}) *Engine {
	return &Engine{
		Options:     NewOptions(),
		evalBuilder: evalBuilder,
		pvTable:     make(pvTable),
	}
}

func (e *Engine) Prepare() {
	if e.evaluator == nil {
		e.evaluator = e.buildEvaluator()
	}
}

// Clear forgets everything learned in previous searches.
func (e *Engine) Clear() {
	e.pvTable.clear()
	e.killers = [maxDepth + 1][2]Move{}
}

// Search runs iterative deepening on searchParams.Position until the depth
// limit, the time budget or ctx stops it, and returns the last completed iteration.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.prepareSearch(ctx, searchParams)
	defer e.timeManager.Close()
	iterativeDeepening(e, e.Options.depthLimit(searchParams.Limits))
	return e.currentSearchResult()
}

func (e *Engine) prepareSearch(ctx context.Context, searchParams SearchParams) {
	e.start = time.Now()
	e.Prepare()
	e.position = searchParams.Position
	e.timeManager = newTimeManager(ctx, e.start, searchParams.Limits,
		e.position.WhiteMove, e.Options.MoveOverhead)
	e.keys = e.keys[:0]
	for i := range searchParams.History {
		e.keys = append(e.keys, searchParams.History[i].Key)
	}
	e.Clear()
	e.nodes = 0
	e.mainLine = mainLine{}
	e.progress = searchParams.Progress
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    e.nodes,
		Time:     time.Since(e.start),
	}
}

func (e *Engine) buildEvaluator() IEvaluator {
	var evaluationService = e.evalBuilder()
	if e, ok := evaluationService.(IEvaluator); ok {
		return e
	}
	panic(errors.New("bad eval builder"))
}
