package common

var (
	KnightAttacks [64]uint64
	KingAttacks   [64]uint64

	pawnAttacks      [2][64]uint64
	pawnPushes       [2][64]uint64
	pawnDoublePushes [2][64]uint64

	// https://www.chessprogramming.org/Kindergarten_Bitboards
	byteAttacks         [8][64]uint8
	rankAttacks         [64][64]uint64
	fileAttacks         [64][64]uint64
	diagonalAttacks     [64][64]uint64
	antidiagonalAttacks [64][64]uint64
)

type step struct {
	shift   int
	exclude uint64
}

var (
	stepN  = step{8, Rank8Mask}
	stepNE = step{9, Rank8Mask | FileHMask}
	stepE  = step{1, FileHMask}
	stepSE = step{-7, Rank1Mask | FileHMask}
	stepS  = step{-8, Rank1Mask}
	stepSW = step{-9, Rank1Mask | FileAMask}
	stepW  = step{-1, FileAMask}
	stepNW = step{7, Rank8Mask | FileAMask}

	stepNNE = step{17, Rank7Mask | Rank8Mask | FileHMask}
	stepNEE = step{10, Rank8Mask | FileGMask | FileHMask}
	stepSEE = step{-6, Rank1Mask | FileGMask | FileHMask}
	stepSSE = step{-15, Rank1Mask | Rank2Mask | FileHMask}
	stepSSW = step{-17, Rank1Mask | Rank2Mask | FileAMask}
	stepSWW = step{-10, Rank1Mask | FileAMask | FileBMask}
	stepNWW = step{6, Rank8Mask | FileAMask | FileBMask}
	stepNNW = step{15, Rank7Mask | Rank8Mask | FileAMask}
)

var (
	kingSteps   = [...]step{stepN, stepNE, stepE, stepSE, stepS, stepSW, stepW, stepNW}
	knightSteps = [...]step{stepNNE, stepNEE, stepSEE, stepSSE, stepSSW, stepSWW, stepNWW, stepNNW}
)

func (s step) apply(b uint64) uint64 {
	b &^= s.exclude
	if s.shift >= 0 {
		return b << uint(s.shift)
	}
	return b >> uint(-s.shift)
}

func sideIndex(side bool) int {
	if side {
		return 0
	}
	return 1
}

func PawnAttacks(from int, side bool) uint64 {
	return pawnAttacks[sideIndex(side)][from]
}

func PawnPushes(from int, side bool) uint64 {
	return pawnPushes[sideIndex(side)][from]
}

func PawnDoublePushes(from int, side bool) uint64 {
	return pawnDoublePushes[sideIndex(side)][from]
}

func RankAttacks(from int, occ uint64) uint64 {
	return rankAttacks[from][(occ>>uint(Rank(from)*8+1))&63]
}

func FileAttacks(from int, occ uint64) uint64 {
	var b = (occ >> uint(File(from))) & FileAMask
	return fileAttacks[from][((b*mainAntidiagonal)>>57)&63]
}

func DiagonalAttacks(from int, occ uint64) uint64 {
	var b = occ & diagonalMask[Diagonal(from)]
	return diagonalAttacks[from][((b*FileAMask)>>57)&63]
}

func AntidiagonalAttacks(from int, occ uint64) uint64 {
	var b = occ & antidiagonalMask[Antidiagonal(from)]
	return antidiagonalAttacks[from][((b*FileAMask)>>57)&63]
}

func BishopAttacks(from int, occ uint64) uint64 {
	return DiagonalAttacks(from, occ) | AntidiagonalAttacks(from, occ)
}

func RookAttacks(from int, occ uint64) uint64 {
	return RankAttacks(from, occ) | FileAttacks(from, occ)
}

func QueenAttacks(from int, occ uint64) uint64 {
	return BishopAttacks(from, occ) | RookAttacks(from, occ)
}

// laneToFile maps lane bit p onto file A, rank 7-p.
func laneToFile(lane uint8) uint64 {
	return ((uint64(lane) * mainAntidiagonal) & FileHMask) >> 7
}

func initByteAttacks() {
	for origin := 0; origin < 8; origin++ {
		for occ6 := 0; occ6 < 64; occ6++ {
			var occ = uint8(occ6 << 1)
			var attacks uint8
			for f := origin + 1; f < 8; f++ {
				attacks |= 1 << uint(f)
				if occ&(1<<uint(f)) != 0 {
					break
				}
			}
			for f := origin - 1; f >= 0; f-- {
				attacks |= 1 << uint(f)
				if occ&(1<<uint(f)) != 0 {
					break
				}
			}
			byteAttacks[origin][occ6] = attacks
		}
	}
}

func init() {
	initByteAttacks()

	for sq := 0; sq < 64; sq++ {
		var b = SquareMask[sq]

		for _, s := range kingSteps {
			KingAttacks[sq] |= s.apply(b)
		}
		for _, s := range knightSteps {
			KnightAttacks[sq] |= s.apply(b)
		}

		pawnAttacks[0][sq] = UpLeft(b) | UpRight(b)
		pawnAttacks[1][sq] = DownLeft(b) | DownRight(b)

		var rank = Rank(sq)
		if rank >= Rank2 && rank <= Rank7 {
			pawnPushes[0][sq] = Up(b)
			pawnPushes[1][sq] = Down(b)
		}
		if rank == Rank2 {
			pawnDoublePushes[0][sq] = Up(Up(b))
		}
		if rank == Rank7 {
			pawnDoublePushes[1][sq] = Down(Down(b))
		}

		var file = File(sq)
		for occ6 := 0; occ6 < 64; occ6++ {
			var lane = uint64(byteAttacks[file][occ6])
			rankAttacks[sq][occ6] = lane << uint(8*rank)
			diagonalAttacks[sq][occ6] = (lane * FileAMask) & diagonalMask[Diagonal(sq)]
			antidiagonalAttacks[sq][occ6] = (lane * FileAMask) & antidiagonalMask[Antidiagonal(sq)]
			fileAttacks[sq][occ6] = laneToFile(byteAttacks[7-rank][occ6]) << uint(file)
		}
	}
}
