package arena

import (
	"log"
	"math"
)

type Statistics struct {
	Wins, Losses, Draws int
	WinningFraction     float64
	EloDifference       float64
	LOS                 float64
}

func showResults(gameResults <-chan gameResult) Statistics {
	var stat Statistics
	for gameResult := range gameResults {
		log.Printf("Finished game %v: %v {%v} %v plies\n",
			gameResult.gameInfo.gameNumber,
			gameResultString(gameResult.result),
			gameResult.comment,
			len(gameResult.moves))
		var wins, losses, draws = stat.Wins, stat.Losses, stat.Draws
		if gameResult.result == gameResultDraw {
			draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			wins++
		} else {
			losses++
		}
		stat = computeStat(wins, losses, draws)
		log.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			wins, losses, draws, stat.WinningFraction, wins+losses+draws)
		log.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.EloDifference, stat.LOS*100)
	}
	return stat
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Statistics {
	var games = wins + losses + draws
	var stat = Statistics{Wins: wins, Losses: losses, Draws: draws}
	if games == 0 {
		return stat
	}
	stat.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stat.EloDifference = -math.Log(1/stat.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		stat.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	} else {
		stat.LOS = 0.5
	}
	return stat
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
