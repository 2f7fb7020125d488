package arena

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

//go:embed openings.txt
var openingsTxt string

func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

// parseOpening plays SAN move text such as "1. e4 e5 2. Nf3" from the
// initial position and returns the resulting FEN.
func parseOpening(opening string) (string, error) {
	var game = chess.NewGame()
	for _, token := range strings.Fields(opening) {
		if i := strings.LastIndexByte(token, '.'); i >= 0 {
			token = token[i+1:]
		}
		if token == "" {
			continue
		}
		if err := game.MoveStr(token); err != nil {
			return "", fmt.Errorf("opening %q: %w", opening, err)
		}
	}
	return game.Position().String(), nil
}

func getOpenings() ([]string, error) {
	var result []string
	for _, line := range strings.Split(openingsTxt, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var fen, err = parseOpening(line)
		if err != nil {
			return nil, err
		}
		result = append(result, fen)
	}
	return result, nil
}
