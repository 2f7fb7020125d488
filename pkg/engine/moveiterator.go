package engine

import . "github.com/kinderchess/kinder/pkg/common"

const (
	sortPVMove   = 1000
	sortKiller1  = 102
	sortKiller2  = 101
	pieceTypeNum = King - Pawn + 1
)

type orderedMove struct {
	Move Move
	Key  int32
}

// moveIterator yields moves best first, one selection step per call.
type moveIterator struct {
	buffer []orderedMove
	count  int
	index  int
}

func (mi *moveIterator) Init(p *Position, ml []Move) {
	mi.count = len(ml)
	mi.index = 0
	for i, m := range ml {
		mi.buffer[i] = orderedMove{Move: m, Key: int32(mvvlva(p, m))}
	}
}

// SetScore overrides the score of m if it is in the list.
func (mi *moveIterator) SetScore(m Move, score int) {
	if m == MoveEmpty {
		return
	}
	for i := mi.index; i < mi.count; i++ {
		if mi.buffer[i].Move == m {
			mi.buffer[i].Key = int32(score)
			return
		}
	}
}

func (mi *moveIterator) Next() Move {
	if mi.index >= mi.count {
		return MoveEmpty
	}
	moveToTop(mi.buffer[mi.index:mi.count])
	var m = mi.buffer[mi.index].Move
	mi.index++
	return m
}

// mvvlva is zero for quiet moves.
func mvvlva(p *Position, m Move) int {
	var victim int
	if m.IsEnPassant() {
		victim = Pawn
	} else {
		victim = p.WhatPiece(m.To())
		if victim == Empty {
			return 0
		}
	}
	var attacker = p.WhatPiece(m.From())
	return (victim-Pawn)*10 + pieceTypeNum - (attacker - Pawn)
}

func moveToTop(ml []orderedMove) {
	var bestIndex = 0
	for i := 1; i < len(ml); i++ {
		if ml[i].Key > ml[bestIndex].Key {
			bestIndex = i
		}
	}
	if bestIndex != 0 {
		ml[0], ml[bestIndex] = ml[bestIndex], ml[0]
	}
}
