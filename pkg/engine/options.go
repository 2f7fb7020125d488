package engine

import (
	"time"

	. "github.com/kinderchess/kinder/pkg/common"
)

type Options struct {
	MaxDepth         int
	MoveOverhead     time.Duration
	ProgressMinNodes int
	ShowProgress     bool
}

func NewOptions() Options {
	return Options{
		MaxDepth:         maxDepth,
		MoveOverhead:     50 * time.Millisecond,
		ProgressMinNodes: 0,
		ShowProgress:     true,
	}
}

func clampDepth(depth int) int {
	if depth <= 0 || depth > maxDepth {
		return maxDepth
	}
	return depth
}

// depthLimit combines the depth requested by the caller with the configured ceiling.
func (o *Options) depthLimit(limits LimitsType) int {
	return Min(clampDepth(limits.Depth), clampDepth(o.MaxDepth))
}
