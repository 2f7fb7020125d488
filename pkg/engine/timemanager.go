package engine

import (
	"context"
	"time"

	. "github.com/kinderchess/kinder/pkg/common"
)

const (
	defaultMovesToGo = 30
	maxSearchTime    = 24 * time.Hour
	minSearchTime    = 1 * time.Millisecond
)

type timeManager struct {
	ctx     context.Context
	cancel  context.CancelFunc
	limits  LimitsType
	stopped bool
}

func newTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, whiteMove bool, moveOverhead time.Duration) *timeManager {
	var budget = searchTime(limits, whiteMove, moveOverhead)
	ctx, cancel := context.WithDeadline(ctx, start.Add(budget))
	return &timeManager{
		ctx:    ctx,
		cancel: cancel,
		limits: limits,
	}
}

// searchTime is the wall-clock budget for one search.
func searchTime(limits LimitsType, whiteMove bool, moveOverhead time.Duration) time.Duration {
	var main, inc time.Duration
	if !limits.Infinite {
		if whiteMove {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
	}
	var movesToGo = limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}
	if !limits.Infinite && limits.MoveTime > 0 {
		main = time.Duration(limits.MoveTime) * time.Millisecond
		movesToGo = 1
	}
	var result = main/time.Duration(movesToGo) + inc
	if result <= 0 || result > maxSearchTime {
		result = maxSearchTime
	}
	result -= moveOverhead
	if result < minSearchTime {
		result = minSearchTime
	}
	return result
}

// OnNodesChanged polls the deadline and the node limit. Once set, the stop flag stays set.
func (tm *timeManager) OnNodesChanged(nodes int64) {
	if tm.stopped {
		return
	}
	if tm.limits.Nodes > 0 && nodes >= int64(tm.limits.Nodes) {
		tm.stopped = true
		return
	}
	select {
	case <-tm.ctx.Done():
		tm.stopped = true
	default:
	}
}

func (tm *timeManager) IsDone() bool {
	return tm.stopped
}

func (tm *timeManager) Close() {
	tm.cancel()
}
