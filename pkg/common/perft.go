package common

// https://www.chessprogramming.org/Perft
func Perft(p *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var buffer [MaxMoves]Move
	var result int64
	for _, move := range p.GenerateMoves(buffer[:]) {
		var s = p.MakeMove(move)
		if p.isLegal() {
			if depth > 1 {
				result += Perft(p, depth-1)
			} else {
				result++
			}
		}
		p.UnmakeMove(s)
	}
	return result
}

type DivideItem struct {
	Move  Move
	Nodes int64
}

// Divide splits the perft count by legal root move, in generation order.
func Divide(p *Position, depth int) []DivideItem {
	var result []DivideItem
	for _, move := range p.GenerateLegalMoves() {
		var s = p.MakeMove(move)
		result = append(result, DivideItem{Move: move, Nodes: Perft(p, depth-1)})
		p.UnmakeMove(s)
	}
	return result
}
