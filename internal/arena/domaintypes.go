package arena

import (
	"context"
	"time"

	"github.com/kinderchess/kinder/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type IEngine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type TimeControl struct {
	FixedNodes int
	FixedTime  time.Duration
	FixedDepth int
}

func (tc TimeControl) limits() (common.LimitsType, error) {
	var limits common.LimitsType
	switch {
	case tc.FixedNodes > 0:
		limits.Nodes = tc.FixedNodes
	case tc.FixedTime > 0:
		limits.MoveTime = int(tc.FixedTime / time.Millisecond)
	case tc.FixedDepth > 0:
		limits.Depth = tc.FixedDepth
	default:
		return limits, errBadTimeControl
	}
	return limits, nil
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	comment  string
	result   int
}
