package board

import (
	"chesscore/patterns"
	"chesscore/piece"
)

func pieceAttacks(magnitude int, occupied uint64, sq int) uint64 {
	switch magnitude {
	case piece.Knight:
		return patterns.Knight[sq]
	case piece.Bishop:
		return patterns.BishopAttacks(occupied, sq)
	case piece.Rook:
		return patterns.RookAttacks(occupied, sq)
	default:
		return patterns.QueenAttacks(occupied, sq)
	}
}

// mobilityScore walks knight, bishop, rook and queen in ascending value
// order, accumulating each side's safe-target set and subtracting the
// opponent's accumulated lower-value attacks before moving to the next
// piece class, per spec.md section 4.7. Positive favors White.
func (b *Board) mobilityScore() int {
	whiteOcc := b.OccBB[piece.White+1]
	blackOcc := b.OccBB[piece.Black+1]
	empty := b.OccBB[1]
	occupied := whiteOcc | blackOcc

	whitePawns := b.PieceBB[piece.White*piece.Pawn+6]
	blackPawns := b.PieceBB[piece.Black*piece.Pawn+6]
	whitePawnAttacks := patterns.WhiteLeftPawnAttacks(whitePawns) | patterns.WhiteRightPawnAttacks(whitePawns)
	blackPawnAttacks := patterns.BlackLeftPawnAttacks(blackPawns) | patterns.BlackRightPawnAttacks(blackPawns)

	safeWhite := (empty | blackOcc) &^ blackPawnAttacks
	safeBlack := (empty | whiteOcc) &^ whitePawnAttacks

	score := 0
	for _, magnitude := range [4]int{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		var whiteAttacksUnion, blackAttacksUnion uint64

		for bb := b.PieceBB[piece.White*magnitude+6]; bb != 0; {
			sq := popLSB(&bb)
			att := pieceAttacks(magnitude, occupied, sq)
			score += popcount(att&safeWhite) * 5
			whiteAttacksUnion |= att
		}

		for bb := b.PieceBB[piece.Black*magnitude+6]; bb != 0; {
			sq := popLSB(&bb)
			att := pieceAttacks(magnitude, occupied, sq)
			score -= popcount(att&safeBlack) * 5
			blackAttacksUnion |= att
		}

		if magnitude != piece.Queen {
			safeWhite &^= blackAttacksUnion
			safeBlack &^= whiteAttacksUnion
		}
	}
	return score
}
