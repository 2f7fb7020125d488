package arena

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kinderchess/kinder/pkg/common"
)

var (
	errBadTimeControl = errors.New("bad time control")
	errBadMove        = errors.New("bad move")
)

const maxGamePlies = 600

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	tc TimeControl,
	info gameInfo,
) (gameResult, error) {

	log.Printf("Started game %v\n", info.gameNumber)

	var limits, err = tc.limits()
	if err != nil {
		return gameResult{}, err
	}

	engineA.Clear()
	engineB.Clear()

	pos, err := common.NewPositionFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var history []common.Snapshot
	var moves []common.Move
	var keys = make(map[uint64]int)
	var finish = func(comment string, result int) (gameResult, error) {
		return gameResult{gameInfo: info, moves: moves, comment: comment, result: result}, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var ml = pos.GenerateLegalMoves()
		if len(ml) == 0 {
			if pos.IsCheck() {
				if pos.WhiteMove {
					return finish("checkmate", gameResultBlackWins)
				}
				return finish("checkmate", gameResultWhiteWins)
			}
			return finish("stalemate", gameResultDraw)
		}
		if pos.Rule50 >= 100 {
			return finish("50 moves", gameResultDraw)
		}
		if isLowMaterial(&pos) {
			return finish("low material", gameResultDraw)
		}
		var key = pos.Key()
		keys[key] += 1
		if keys[key] == 3 {
			return finish("3 fold repetition", gameResultDraw)
		}
		if len(moves) >= maxGamePlies {
			return finish("adjudicated", gameResultDraw)
		}

		var eng IEngine
		if pos.WhiteMove == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult = eng.Search(ctx, common.SearchParams{
			Position: pos,
			History:  history,
			Limits:   limits,
		})
		if len(searchResult.MainLine) == 0 ||
			!containsMove(ml, searchResult.MainLine[0]) {
			return gameResult{}, fmt.Errorf("game %v %v: %w", info.gameNumber, pos.String(), errBadMove)
		}
		var bestMove = searchResult.MainLine[0]
		history = append(history, pos.MakeMove(bestMove))
		moves = append(moves, bestMove)
	}
}

func isLowMaterial(p *common.Position) bool {
	var heavy, minor uint64
	for _, side := range [...]bool{true, false} {
		heavy |= p.PiecesByType(common.Pawn, side) |
			p.PiecesByType(common.Rook, side) |
			p.PiecesByType(common.Queen, side)
		minor |= p.PiecesByType(common.Knight, side) |
			p.PiecesByType(common.Bishop, side)
	}
	return heavy == 0 && !common.MoreThanOne(minor)
}

func containsMove(ml []common.Move, move common.Move) bool {
	for _, m := range ml {
		if m == move {
			return true
		}
	}
	return false
}
