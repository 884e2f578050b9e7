package board

import (
	"chesscore/patterns"
	"chesscore/piece"
)

// GetScore implements spec.md section 4.6: the incremental (score_mid,
// score_eg) pair, phase-interpolated, plus king shield, castling, pawn
// cover, mobility, doubled pawns, passed pawns, king danger and a
// pawnless-draw dampening term. Positive favors White.
func (b *Board) GetScore() int {
	whitePawns := b.PieceBB[piece.White*piece.Pawn+6]
	blackPawns := b.PieceBB[piece.Black*piece.Pawn+6]
	whiteKnights := b.PieceBB[piece.White*piece.Knight+6]
	blackKnights := b.PieceBB[piece.Black*piece.Knight+6]
	whiteQueens := b.PieceBB[piece.White*piece.Queen+6]
	blackQueens := b.PieceBB[piece.Black*piece.Queen+6]

	mid := int(b.ScoreMid)
	eg := int(b.ScoreEG)

	// 1. King shield bonus, midgame only.
	mid += patterns.Popcount(whitePawns&patterns.WhiteKingShield[b.WhiteKingSq]) * 21
	mid -= patterns.Popcount(blackPawns&patterns.BlackKingShield[b.BlackKingSq]) * 21

	// 2. Castling bonus/penalty, midgame only.
	mid += castlingTerm(b.State, piece.White)
	mid -= castlingTerm(b.State, piece.Black)

	// 3. Phase interpolation.
	phase := patterns.Popcount(whitePawns|blackPawns)
	if whiteQueens != 0 {
		phase += 4
	}
	if blackQueens != 0 {
		phase += 4
	}
	if phase > 24 {
		phase = 24
	}
	egPhase := 24 - phase
	score := (mid*phase + eg*egPhase) / 24

	// 4. Pawn cover.
	whitePawnAttacks := patterns.WhiteLeftPawnAttacks(whitePawns) | patterns.WhiteRightPawnAttacks(whitePawns)
	blackPawnAttacks := patterns.BlackLeftPawnAttacks(blackPawns) | patterns.BlackRightPawnAttacks(blackPawns)
	score += patterns.Popcount((whitePawns|whiteKnights)&whitePawnAttacks) * 14
	score -= patterns.Popcount((blackPawns|blackKnights)&blackPawnAttacks) * 14

	// 5. Mobility.
	score += b.mobilityScore()

	// 6. Doubled pawn penalty.
	score -= doubledPawnPenalty(whitePawns)
	score += doubledPawnPenalty(blackPawns)

	// 7. Passed pawns.
	score += b.passedPawnScore(piece.White)
	score -= b.passedPawnScore(piece.Black)

	// 8. King danger.
	dangerWhite := b.kingDangerScore(piece.White)
	dangerBlack := b.kingDangerScore(piece.Black)
	score += dangerBlack - dangerWhite

	// 9. Pawnless-draw dampening.
	score = b.dampenPawnlessDraw(score, whitePawns, blackPawns)

	return score
}

func castlingTerm(state uint32, color int) int {
	var castled, lostKingside, lostQueenside bool
	if color == piece.White {
		castled = hasWhiteCastled(state)
		lostKingside = !hasWhiteKingsideRight(state)
		lostQueenside = !hasWhiteQueensideRight(state)
	} else {
		castled = hasBlackCastled(state)
		lostKingside = !hasBlackKingsideRight(state)
		lostQueenside = !hasBlackQueensideRight(state)
	}
	if castled {
		return 28
	}
	bonus := 0
	if lostQueenside {
		bonus -= 18
	}
	if lostKingside {
		bonus -= 21
	}
	return bonus
}

func doubledPawnPenalty(pawns uint64) int {
	stacked := rotateRight(pawns, 8) | rotateRight(pawns, 16) | rotateRight(pawns, 24) | rotateRight(pawns, 32)
	return patterns.Popcount(pawns&stacked) * 6
}

// passedPawnScore scores color's passed pawns per spec.md section 4.6's
// item 7: each pawn within 4 squares of promotion whose own and
// neighbouring files are clear of enemy interference earns a
// distance-weighted bonus, plus a further bonus if fully passed.
func (b *Board) passedPawnScore(color int) int {
	pawns := b.PieceBB[color*piece.Pawn+6]
	enemyPieces := b.GetAllPieceBitboard(-color)
	enemyPawns := b.PieceBB[-color*piece.Pawn+6]

	total := 0
	for bb := pawns; bb != 0; {
		sq := popLSB(&bb)
		r, f := sq/8, sq&7

		var distance int
		var freepath, leftFreepath, rightFreepath uint64
		if color == piece.White {
			distance = r
			freepath = patterns.WhitePawnFreepath[sq]
		} else {
			distance = 7 - r
			freepath = patterns.BlackPawnFreepath[sq]
		}
		if distance > 4 {
			continue
		}
		if freepath&enemyPieces != 0 {
			continue
		}

		leftClear, rightClear := true, true
		if f > 0 {
			if color == piece.White {
				leftFreepath = patterns.WhitePawnFreepath[sq-1]
			} else {
				leftFreepath = patterns.BlackPawnFreepath[sq-1]
			}
			leftClear = leftFreepath&enemyPawns == 0
		}
		if f < 7 {
			if color == piece.White {
				rightFreepath = patterns.WhitePawnFreepath[sq+1]
			} else {
				rightFreepath = patterns.BlackPawnFreepath[sq+1]
			}
			rightClear = rightFreepath&enemyPawns == 0
		}
		if !leftClear || !rightClear {
			continue
		}

		bonus := 25 * (5 - distance)
		bonus += (1 << uint(5-distance)) + (5 - distance)
		total += bonus
	}
	return total
}

// kingDangerScore computes spec.md section 4.6's item 8 for color's king.
func (b *Board) kingDangerScore(color int) int {
	kingSq := b.FindKingPosition(color)
	zone := patterns.KingDangerZone[kingSq]

	enemyNonPawns := b.GetAllPieceBitboard(-color) &^ b.PieceBB[-color*piece.Pawn+6]
	count := patterns.Popcount(enemyNonPawns & zone)
	if count < 1 {
		return 0
	}
	q := patterns.Popcount(b.PieceBB[-color*piece.Queen+6] & zone)

	danger := 21 << uint(count+q-1)
	if danger > 500 {
		danger = 500
	}
	return danger
}

// dampenPawnlessDraw implements spec.md section 4.6's item 9: a pawnless
// side's moderate advantage is scaled down as the fifty-move clock runs
// out, since such endings are often drawn despite the material edge.
func (b *Board) dampenPawnlessDraw(score int, whitePawns, blackPawns uint64) int {
	var pawnless bool
	if whitePawns == 0 && score > 0 {
		pawnless = true
	} else if blackPawns == 0 && score < 0 {
		pawnless = true
	}
	if !pawnless {
		return score
	}
	abs := score
	if abs < 0 {
		abs = -abs
	}
	if abs <= 100 || abs >= 400 {
		return score
	}
	factor := 64 - b.HalfmoveClock
	if factor < 0 {
		factor = 0
	}
	return (score * factor) / 64
}
