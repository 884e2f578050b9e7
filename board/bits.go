package board

import "math/bits"

// popcount, trailingZeros and rotateRight are the bit utilities component
// of spec.md section 2.1: population count, trailing-zero count, and a
// true 64-bit rotate (shifts alone give the wrong answer for files that
// wrap across the rotate boundary, per Design Notes).

func popcount(bb uint64) int { return bits.OnesCount64(bb) }

func bit(sq int) uint64 { return uint64(1) << uint(sq) }

func trailingZeros(bb uint64) int { return bits.TrailingZeros64(bb) }

func rotateRight(bb uint64, n uint) uint64 { return bits.RotateLeft64(bb, -int(n)) }

func lsb(bb uint64) int { return trailingZeros(bb) }

// popLSB returns the index of the least-significant set bit and clears it
// from bb.
func popLSB(bb *uint64) int {
	sq := trailingZeros(*bb)
	*bb &= *bb - 1
	return sq
}
