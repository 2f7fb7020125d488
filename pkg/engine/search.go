package engine

import (
	. "github.com/kinderchess/kinder/pkg/common"
)

func iterativeDeepening(e *Engine, depthLimit int) {
	var ml = e.position.GenerateLegalMoves()
	if len(ml) == 0 {
		return
	}
	e.mainLine.moves = []Move{ml[0]}

	for depth := 1; depth <= depthLimit; depth++ {
		if depth > 1 {
			e.timeManager.OnNodesChanged(e.nodes)
			if e.timeManager.IsDone() {
				break
			}
		}
		var score = e.alphaBeta(0, depth, -valueInfinity, valueInfinity)
		if e.timeManager.IsDone() {
			// interrupted iteration
			break
		}
		var line = e.pvTable.line(&e.position, depth)
		if len(line) == 0 {
			line = []Move{ml[0]}
		}
		e.mainLine = mainLine{
			moves: line,
			score: score,
			depth: depth,
		}
		if e.progress != nil && e.Options.ShowProgress &&
			e.nodes >= int64(e.Options.ProgressMinNodes) {
			e.progress(e.currentSearchResult())
		}
	}
}

// alphaBeta searches the current position to depth and returns a score
// from the side to move's point of view.
func (e *Engine) alphaBeta(height, depth, alpha, beta int) int {
	if height >= depth {
		return e.quiescence(height, alpha, beta)
	}
	e.incNodes()

	var position = &e.position
	var rootNode = height == 0
	if !rootNode && (e.isRepeat() || position.Rule50 >= 100) {
		return valueDraw
	}

	var key = position.Key()
	var mi = moveIterator{buffer: e.stack[height].ordered[:]}
	mi.Init(position, position.GenerateMoves(e.stack[height].moveList[:]))
	mi.SetScore(e.pvTable[key], sortPVMove)
	mi.SetScore(e.killers[height][0], sortKiller1)
	mi.SetScore(e.killers[height][1], sortKiller2)

	var hasLegalMove = false
	var bestMove = MoveEmpty
	for {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		var snapshot = position.MakeMove(move)
		if !position.IsLegal() {
			position.UnmakeMove(snapshot)
			continue
		}
		hasLegalMove = true
		e.keys = append(e.keys, snapshot.Key)
		var score = -e.alphaBeta(height+1, depth, -beta, -alpha)
		e.keys = e.keys[:len(e.keys)-1]
		position.UnmakeMove(snapshot)

		if e.timeManager.IsDone() {
			return 0
		}
		if score >= beta {
			if !position.IsCapture(move) {
				e.updateKiller(move, height)
			}
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = move
		}
	}

	if !hasLegalMove {
		if position.IsCheck() {
			return lossIn(height)
		}
		return valueDraw
	}

	if bestMove != MoveEmpty {
		e.pvTable[key] = bestMove
	}
	return alpha
}

func (e *Engine) quiescence(height, alpha, beta int) int {
	e.incNodes()

	var position = &e.position
	if e.isRepeat() || position.Rule50 >= 100 {
		return valueDraw
	}

	// stand pat
	var score = e.evaluate()
	if score >= beta {
		return beta
	}
	if score > alpha {
		alpha = score
	}
	if height >= maxHeight {
		return score
	}

	var mi = moveIterator{buffer: e.stack[height].ordered[:]}
	mi.Init(position, position.GenerateCaptures(e.stack[height].moveList[:]))

	var bestMove = MoveEmpty
	for {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		var snapshot = position.MakeMove(move)
		if !position.IsLegal() {
			position.UnmakeMove(snapshot)
			continue
		}
		e.keys = append(e.keys, snapshot.Key)
		score = -e.quiescence(height+1, -beta, -alpha)
		e.keys = e.keys[:len(e.keys)-1]
		position.UnmakeMove(snapshot)

		if e.timeManager.IsDone() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = move
		}
	}

	if bestMove != MoveEmpty {
		e.pvTable[position.Key()] = bestMove
	}
	return alpha
}

func (e *Engine) evaluate() int {
	var score = e.evaluator.Evaluate(&e.position)
	if !e.position.WhiteMove {
		score = -score
	}
	return score
}

func (e *Engine) incNodes() {
	e.nodes++
	if e.nodes&2047 == 0 {
		e.timeManager.OnNodesChanged(e.nodes)
	}
}

// isRepeat looks for the current position among earlier positions with the
// same side to move, back to the last irreversible move.
func (e *Engine) isRepeat() bool {
	var key = e.position.Key()
	var size = len(e.keys)
	for i := size - 2; i >= 0 && i >= size-e.position.Rule50; i -= 2 {
		if e.keys[i] == key {
			return true
		}
	}
	return false
}

func (e *Engine) updateKiller(move Move, height int) {
	if e.killers[height][0] != move {
		e.killers[height][1] = e.killers[height][0]
		e.killers[height][0] = move
	}
}
