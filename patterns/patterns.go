// Package patterns precomputes the per-square attack and structural
// bitboard tables the board core treats as pure, pre-populated constants:
// knight/king reachability, king pawn-shield zones, the king danger zone,
// pawn free-path-to-promotion zones, and the light/dark square masks used
// for insufficient-material detection.
//
// Square convention matches the board core: index 0 is the top-left square
// from White's perspective (rank = index/8, file = index&7); White pawns
// start on rank 6 and promote toward rank 0. Bitboards use bit i for
// square i (LSB = square 0), so a pawn's forward step for White is a right
// shift and for Black a left shift.
package patterns

import "math/bits"

var (
	Knight [64]uint64
	King   [64]uint64

	WhiteKingShield [64]uint64
	BlackKingShield [64]uint64
	KingDangerZone  [64]uint64

	WhitePawnFreepath [64]uint64
	BlackPawnFreepath [64]uint64

	LightSquares uint64
	DarkSquares  uint64
)

func rankFile(sq int) (int, int) { return sq / 8, sq & 7 }

func onBoard(r, f int) bool { return r >= 0 && r < 8 && f >= 0 && f < 8 }

func bit(sq int) uint64 { return uint64(1) << uint(sq) }

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func init() {
	for sq := 0; sq < 64; sq++ {
		r, f := rankFile(sq)

		for _, d := range knightDeltas {
			nr, nf := r+d[0], f+d[1]
			if onBoard(nr, nf) {
				Knight[sq] |= bit(nr*8 + nf)
			}
		}

		for _, d := range kingDeltas {
			nr, nf := r+d[0], f+d[1]
			if onBoard(nr, nf) {
				King[sq] |= bit(nr*8 + nf)
			}
		}

		// Pawn shield: the two ranks immediately ahead of the king (in its
		// own forward direction) across the king's file and its neighbours.
		WhiteKingShield[sq] = shieldZone(r, f, -1)
		BlackKingShield[sq] = shieldZone(r, f, 1)

		// King danger zone: every square within Chebyshev distance 2,
		// excluding the king's own square.
		for dr := -2; dr <= 2; dr++ {
			for df := -2; df <= 2; df++ {
				if dr == 0 && df == 0 {
					continue
				}
				nr, nf := r+dr, f+df
				if onBoard(nr, nf) {
					KingDangerZone[sq] |= bit(nr*8 + nf)
				}
			}
		}

		WhitePawnFreepath[sq] = freepath(r, f, -1)
		BlackPawnFreepath[sq] = freepath(r, f, 1)

		if (r+f)%2 == 0 {
			LightSquares |= bit(sq)
		} else {
			DarkSquares |= bit(sq)
		}
	}
}

// shieldZone builds the pawn-shield bitboard for a king at (r, f), looking
// one and two ranks ahead in the direction dir (-1 for White, +1 for Black)
// across the king's file and its immediate neighbours.
func shieldZone(r, f, dir int) uint64 {
	var bb uint64
	for _, rankOffset := range [2]int{1, 2} {
		nr := r + dir*rankOffset
		if nr < 0 || nr > 7 {
			continue
		}
		for nf := f - 1; nf <= f+1; nf++ {
			if nf < 0 || nf > 7 {
				continue
			}
			bb |= bit(nr*8 + nf)
		}
	}
	return bb
}

// freepath builds the bitboard of every square strictly ahead of (r, f) on
// its own file, in the direction dir, up to the promotion rank.
func freepath(r, f, dir int) uint64 {
	var bb uint64
	for nr := r + dir; nr >= 0 && nr <= 7; nr += dir {
		bb |= bit(nr*8 + f)
	}
	return bb
}

// Popcount is exported here so callers working purely with patterns don't
// need a separate import.
func Popcount(bb uint64) int { return bits.OnesCount64(bb) }
