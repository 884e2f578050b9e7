package board

import (
	"chesscore/patterns"
	"chesscore/piece"
)

// IsEngineDraw implements spec.md section 4.8: true on a single repetition
// (stricter than the usual threefold rule, since engines treat one
// repetition as good enough reason to stop searching a line), the
// fifty-move clock, or insufficient material.
func (b *Board) IsEngineDraw() bool {
	return b.PositionHistory.IsSingleRepetition() ||
		b.IsFiftyMoveDraw() ||
		b.IsInsufficientMaterialDraw()
}

func (b *Board) IsThreefoldRepetition() bool {
	return b.PositionHistory.IsThreefoldRepetition()
}

func (b *Board) IsFiftyMoveDraw() bool {
	return b.HalfmoveClock >= 100
}

// IsInsufficientMaterialDraw covers K vs K, K+single minor vs K, and
// K+B vs K+B with both bishops on the same coloured squares.
func (b *Board) IsInsufficientMaterialDraw() bool {
	whiteCount := patterns.Popcount(b.OccBB[piece.White+1])
	blackCount := patterns.Popcount(b.OccBB[piece.Black+1])
	total := whiteCount + blackCount

	if total == 2 {
		return true
	}

	whiteMinors := b.PieceBB[piece.White*piece.Bishop+6] | b.PieceBB[piece.White*piece.Knight+6]
	blackMinors := b.PieceBB[piece.Black*piece.Bishop+6] | b.PieceBB[piece.Black*piece.Knight+6]

	if total == 3 {
		if (whiteCount == 2 && patterns.Popcount(whiteMinors) == 1) ||
			(blackCount == 2 && patterns.Popcount(blackMinors) == 1) {
			return true
		}
		return false
	}

	if total == 4 {
		whiteBishops := b.PieceBB[piece.White*piece.Bishop+6]
		blackBishops := b.PieceBB[piece.Black*piece.Bishop+6]
		if whiteCount == 2 && blackCount == 2 &&
			patterns.Popcount(whiteBishops) == 1 && patterns.Popcount(blackBishops) == 1 {
			sameColor := (whiteBishops&patterns.LightSquares != 0) == (blackBishops&patterns.LightSquares != 0)
			return sameColor
		}
	}

	return false
}

// IsPawnMoveCloseToPromotion reports whether any pawn of color is within
// two ranks of its promotion square.
func (b *Board) IsPawnMoveCloseToPromotion(color int) bool {
	for bb := b.PieceBB[color*piece.Pawn+6]; bb != 0; {
		sq := popLSB(&bb)
		r := sq / 8
		if color == piece.White && r <= 2 {
			return true
		}
		if color == piece.Black && r >= 5 {
			return true
		}
	}
	return false
}
