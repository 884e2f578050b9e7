package board

import (
	"chesscore/history"
	"chesscore/patterns"
	"chesscore/piece"
)

// GetHash returns the Board's current Zobrist hash.
func (b *Board) GetHash() uint64 { return b.Hash }

// GetActivePlayer derives the side to move from halfmove parity: an even
// count means White to move, matching the vector a fresh game starts from.
func (b *Board) GetActivePlayer() int {
	if b.HalfmoveCount%2 == 0 {
		return piece.White
	}
	return piece.Black
}

func (b *Board) GetHalfmoveCount() int { return b.HalfmoveCount }
func (b *Board) GetHalfmoveClock() int { return b.HalfmoveClock }

// GetFullMoveCount converts the halfmove count to the conventional
// move-pair numbering chess notation uses, starting at 1.
func (b *Board) GetFullMoveCount() int { return b.HalfmoveCount/2 + 1 }

func (b *Board) FindKingPosition(color int) int {
	if color == piece.White {
		return b.WhiteKingSq
	}
	return b.BlackKingSq
}

// GetItem returns the signed piece value occupying sq (0 if empty).
func (b *Board) GetItem(sq int) int { return int(b.Mailbox[sq]) }

// GetBitboard returns the bitboard for one signed piece (color*magnitude).
func (b *Board) GetBitboard(signedPiece int) uint64 {
	return b.PieceBB[signedPiece+6]
}

// GetAllPieceBitboard returns the union of every piece bitboard of the
// given color.
func (b *Board) GetAllPieceBitboard(color int) uint64 {
	var bb uint64
	for magnitude := piece.Pawn; magnitude <= piece.King; magnitude++ {
		bb |= b.PieceBB[color*magnitude+6]
	}
	return bb
}

// GetOccupancyBitboard returns the Black(0)/empty(1)/White(2) occupancy
// bitboard addressed by color+1.
func (b *Board) GetOccupancyBitboard(colorPlusOne int) uint64 {
	return b.OccBB[colorPlusOne]
}

func (b *Board) IsEndgame() bool { return b.Endgame }

// UpdateEndgameStatus recomputes Endgame from the current material, per
// spec.md section 3: "pawn-count <= 3 OR non-king-non-pawn count <= 3".
// PerformMove calls this internally after every move; UndoMove, the null
// move pair and the setters do not, so Endgame can be stale after an undo
// until the next PerformMove or a direct call (e.g. after bulk mutation).
func (b *Board) UpdateEndgameStatus() {
	pawnCount := patterns.Popcount(b.PieceBB[piece.White*piece.Pawn+6]) +
		patterns.Popcount(b.PieceBB[piece.Black*piece.Pawn+6])

	nonKingNonPawn := 0
	for _, magnitude := range [4]int{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		nonKingNonPawn += patterns.Popcount(b.PieceBB[piece.White*magnitude+6])
		nonKingNonPawn += patterns.Popcount(b.PieceBB[piece.Black*magnitude+6])
	}
	b.Endgame = pawnCount <= 3 || nonKingNonPawn <= 3
}

func (b *Board) SetState(state uint32)             { b.State = state }
func (b *Board) SetHalfmoveClock(clock int)        { b.HalfmoveClock = clock }
func (b *Board) InitializeHalfmoveCount(count int) { b.HalfmoveCount = count }

// SetHistory replaces the Board's repetition-tracking history, letting a
// caller share one PositionHistory across a search tree's sibling boards.
func (b *Board) SetHistory(h *history.PositionHistory) { b.PositionHistory = h }

// InCheck reports whether color's king is currently attacked, per
// spec.md section 4.4: in_check(color) = is_attacked(-color, king_sq(color)).
func (b *Board) InCheck(color int) bool {
	return b.IsAttacked(-color, b.FindKingPosition(color))
}

// IsAttacked reports whether sq is attacked by any piece of byColor:
// is_attacked(color, sq) = find_smallest_attacker(occupancy, color, sq) >= 0.
func (b *Board) IsAttacked(byColor, sq int) bool {
	occupied := b.OccBB[0] | b.OccBB[2]
	return b.FindSmallestAttacker(occupied, byColor, sq) >= 0
}
