package common

import (
	"fmt"
	"math/bits"
)

const (
	FileAMask uint64 = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

const (
	Rank1Mask uint64 = 0xFF << (8 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

const (
	// a8-h1, the diagonal with File+Rank == 7
	mainDiagonal uint64 = 0x0102040810204080
	// a1-h8, the antidiagonal with Rank-File == 0
	mainAntidiagonal uint64 = 0x8040201008040201
)

var SquareMask = func() (result [64]uint64) {
	for sq := range result {
		result[sq] = uint64(1) << uint(sq)
	}
	return
}()

var FileMask = [8]uint64{
	FileAMask, FileBMask, FileCMask, FileDMask, FileEMask, FileFMask, FileGMask, FileHMask,
}

var RankMask = [8]uint64{
	Rank1Mask, Rank2Mask, Rank3Mask, Rank4Mask, Rank5Mask, Rank6Mask, Rank7Mask, Rank8Mask,
}

var diagonalMask, antidiagonalMask = func() (diag, anti [15]uint64) {
	for i := 0; i < 15; i++ {
		if i <= 7 {
			diag[i] = mainDiagonal >> uint((7-i)*8)
			anti[i] = mainAntidiagonal >> uint((7-i)*8)
		} else {
			diag[i] = mainDiagonal << uint((i-7)*8)
			anti[i] = mainAntidiagonal << uint((i-7)*8)
		}
	}
	return
}()

func FileBB(file int) (uint64, error) {
	if file < FileA || file > FileH {
		return 0, fmt.Errorf("%w: file %d must be between 0 and 7", ErrInvalidArgument, file)
	}
	return FileMask[file], nil
}

func RankBB(rank int) (uint64, error) {
	if rank < Rank1 || rank > Rank8 {
		return 0, fmt.Errorf("%w: rank %d must be between 0 and 7", ErrInvalidArgument, rank)
	}
	return RankMask[rank], nil
}

// DiagonalBB returns the squares with File+Rank == i.
func DiagonalBB(i int) (uint64, error) {
	if i < 0 || i > 14 {
		return 0, fmt.Errorf("%w: diagonal %d must be between 0 and 14", ErrInvalidArgument, i)
	}
	return diagonalMask[i], nil
}

// AntidiagonalBB returns the squares with Rank-File+7 == i.
func AntidiagonalBB(i int) (uint64, error) {
	if i < 0 || i > 14 {
		return 0, fmt.Errorf("%w: antidiagonal %d must be between 0 and 14", ErrInvalidArgument, i)
	}
	return antidiagonalMask[i], nil
}

func BitboardString(b uint64) string {
	var s = ""
	for x := b; x != 0; x &= x - 1 {
		sq := FirstOne(x)
		if s != "" {
			s += ","
		}
		s += SquareName(sq)
	}
	return "(" + s + ")"
}

func Has(b uint64, sq int) bool {
	return b&SquareMask[sq] != 0
}

func Set(b uint64, sq int) uint64 {
	return b | SquareMask[sq]
}

func Clear(b uint64, sq int) uint64 {
	return b &^ SquareMask[sq]
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

// FirstOne returns the lowest occupied square, 64 for an empty set.
func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

// PopFirst removes the lowest occupied square from *b and returns it.
func PopFirst(b *uint64) int {
	var sq = bits.TrailingZeros64(*b)
	*b &= *b - 1
	return sq
}

func MoreThanOne(value uint64) bool {
	return value != 0 && ((value-1)&value) != 0
}

// SquareIterator yields the squares of a set in ascending order.
// It works on its own copy and cannot be restarted.
type SquareIterator struct {
	rest uint64
}

func NewSquareIterator(b uint64) *SquareIterator {
	return &SquareIterator{rest: b}
}

func (it *SquareIterator) Next() (int, bool) {
	if it.rest == 0 {
		return SquareNone, false
	}
	return PopFirst(&it.rest), true
}

func Up(b uint64) uint64 {
	return b << 8
}

func Down(b uint64) uint64 {
	return b >> 8
}

func Right(b uint64) uint64 {
	return (b & ^FileHMask) << 1
}

func Left(b uint64) uint64 {
	return (b & ^FileAMask) >> 1
}

func UpRight(b uint64) uint64 {
	return Up(Right(b))
}

func UpLeft(b uint64) uint64 {
	return Up(Left(b))
}

func DownRight(b uint64) uint64 {
	return Down(Right(b))
}

func DownLeft(b uint64) uint64 {
	return Down(Left(b))
}
