package common

import (
	"math/rand"
	"testing"
)

type direction struct {
	df, dr int
}

var (
	rankDirections         = []direction{{1, 0}, {-1, 0}}
	fileDirections         = []direction{{0, 1}, {0, -1}}
	diagonalDirections     = []direction{{1, -1}, {-1, 1}}
	antidiagonalDirections = []direction{{1, 1}, {-1, -1}}
)

func slowRays(sq int, occ uint64, dirs []direction) uint64 {
	var result uint64
	for _, d := range dirs {
		var f, r = File(sq) + d.df, Rank(sq) + d.dr
		for f >= FileA && f <= FileH && r >= Rank1 && r <= Rank8 {
			var to = MakeSquare(f, r)
			result |= SquareMask[to]
			if Has(occ, to) {
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return result
}

// subsets enumerates every subset of mask.
func subsets(mask uint64) []uint64 {
	var result []uint64
	var sub uint64
	for {
		result = append(result, sub)
		sub = (sub - mask) & mask
		if sub == 0 {
			return result
		}
	}
}

func TestSlidingAttacksExhaustive(t *testing.T) {
	var families = []struct {
		name    string
		attacks func(int, uint64) uint64
		dirs    []direction
	}{
		{"rank", RankAttacks, rankDirections},
		{"file", FileAttacks, fileDirections},
		{"diagonal", DiagonalAttacks, diagonalDirections},
		{"antidiagonal", AntidiagonalAttacks, antidiagonalDirections},
	}
	var r = rand.New(rand.NewSource(1))
	for _, family := range families {
		for sq := 0; sq < 64; sq++ {
			var line = slowRays(sq, 0, family.dirs)
			for _, occ := range subsets(line) {
				// squares off the line must not matter
				var noise = r.Uint64() &^ line
				var want = slowRays(sq, occ, family.dirs)
				var got = family.attacks(sq, occ|noise|SquareMask[sq])
				if got != want {
					t.Fatalf("%v %v occ %v: got %v want %v", family.name, SquareName(sq),
						BitboardString(occ), BitboardString(got), BitboardString(want))
				}
			}
		}
	}
}

func TestSlidingAttacksRandom(t *testing.T) {
	var allDirections = append(append([]direction{}, rankDirections...), fileDirections...)
	var bishopDirections = append(append([]direction{}, diagonalDirections...), antidiagonalDirections...)
	var r = rand.New(rand.NewSource(2))
	for i := 0; i < 20000; i++ {
		var sq = r.Intn(64)
		var occ = r.Uint64() & r.Uint64()
		if got, want := RookAttacks(sq, occ), slowRays(sq, occ, allDirections); got != want {
			t.Fatalf("rook %v: got %v want %v", SquareName(sq), BitboardString(got), BitboardString(want))
		}
		if got, want := BishopAttacks(sq, occ), slowRays(sq, occ, bishopDirections); got != want {
			t.Fatalf("bishop %v: got %v want %v", SquareName(sq), BitboardString(got), BitboardString(want))
		}
		if QueenAttacks(sq, occ) != RookAttacks(sq, occ)|BishopAttacks(sq, occ) {
			t.Fatalf("queen %v", SquareName(sq))
		}
	}
}

func TestNonSlidingAttacks(t *testing.T) {
	var tests = []struct {
		name string
		got  uint64
		want []int
	}{
		{"knight a1", KnightAttacks[SquareA1], []int{SquareB3, SquareC2}},
		{"knight h8", KnightAttacks[SquareH8], []int{SquareG6, SquareF7}},
		{"knight d4", KnightAttacks[SquareD4], []int{SquareB3, SquareB5, SquareC2, SquareC6,
			SquareE2, SquareE6, SquareF3, SquareF5}},
		{"king a1", KingAttacks[SquareA1], []int{SquareA2, SquareB1, SquareB2}},
		{"king e1", KingAttacks[SquareE1], []int{SquareD1, SquareF1, SquareD2, SquareE2, SquareF2}},
		{"white pawn a2", PawnAttacks(SquareA2, true), []int{SquareB3}},
		{"white pawn e4", PawnAttacks(SquareE4, true), []int{SquareD5, SquareF5}},
		{"white pawn h8", PawnAttacks(SquareH8, true), nil},
		{"black pawn h7", PawnAttacks(SquareH7, false), []int{SquareG6}},
		{"black pawn a1", PawnAttacks(SquareA1, false), nil},
		{"white push e2", PawnPushes(SquareE2, true), []int{SquareE3}},
		{"white push e7", PawnPushes(SquareE7, true), []int{SquareE8}},
		{"white push e1", PawnPushes(SquareE1, true), nil},
		{"black push e2", PawnPushes(SquareE2, false), []int{SquareE1}},
		{"black push e8", PawnPushes(SquareE8, false), nil},
		{"white double e2", PawnDoublePushes(SquareE2, true), []int{SquareE4}},
		{"white double e3", PawnDoublePushes(SquareE3, true), nil},
		{"black double d7", PawnDoublePushes(SquareD7, false), []int{SquareD5}},
		{"black double d2", PawnDoublePushes(SquareD2, false), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want uint64
			for _, sq := range tt.want {
				want |= SquareMask[sq]
			}
			if tt.got != want {
				t.Errorf("got %v want %v", BitboardString(tt.got), BitboardString(want))
			}
		})
	}
}

func TestKnightAndKingSymmetry(t *testing.T) {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			if Has(KnightAttacks[from], to) != Has(KnightAttacks[to], from) {
				t.Fatal("knight", SquareName(from), SquareName(to))
			}
			if Has(KingAttacks[from], to) != Has(KingAttacks[to], from) {
				t.Fatal("king", SquareName(from), SquareName(to))
			}
			if Has(PawnAttacks(from, true), to) != Has(PawnAttacks(to, false), from) {
				t.Fatal("pawn", SquareName(from), SquareName(to))
			}
		}
	}
}

func BenchmarkQueenAttacks(b *testing.B) {
	var r = rand.New(rand.NewSource(3))
	var occs [256]uint64
	for i := range occs {
		occs[i] = r.Uint64() & r.Uint64()
	}
	b.ResetTimer()
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink ^= QueenAttacks(i&63, occs[i&255])
	}
	_ = sink
}
