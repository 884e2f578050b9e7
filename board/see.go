package board

import (
	"chesscore/patterns"
	"chesscore/piece"
)

const noAttacker = -1

// pawnAttackerCandidates returns the two squares a pawn of attackerColor
// would have to stand on to attack targetSq, the reverse of the forward
// 7/9-file pawn-attack shift.
func pawnAttackerCandidates(targetSq, attackerColor int) [2]int {
	if attackerColor == piece.White {
		return [2]int{targetSq + 7, targetSq + 9}
	}
	return [2]int{targetSq - 7, targetSq - 9}
}

func (b *Board) findPawnAttacker(occupied uint64, targetSq, attackerColor int) int {
	tf := targetSq & 7
	for _, sq := range pawnAttackerCandidates(targetSq, attackerColor) {
		if sq < 0 || sq > 63 {
			continue
		}
		if iabs((sq&7)-tf) != 1 {
			continue
		}
		if int(b.Mailbox[sq]) == attackerColor*piece.Pawn && hasBitBB(occupied, sq) {
			return sq
		}
	}
	return noAttacker
}

// FindSmallestAttacker returns the square of the lowest-valued piece of
// attackerColor, restricted to the pieces present in occupied, that
// attacks targetSq, or -1. Search order (pawn, knight, bishop, rook,
// queen, king) is critical for SEE correctness: it must always consider
// the cheapest available recapture first.
func (b *Board) FindSmallestAttacker(occupied uint64, attackerColor, targetSq int) int {
	if sq := b.findPawnAttacker(occupied, targetSq, attackerColor); sq != noAttacker {
		return sq
	}

	if knights := patterns.Knight[targetSq] & b.PieceBB[attackerColor*piece.Knight+6] & occupied; knights != 0 {
		return lsb(knights)
	}

	bishopAtt := patterns.BishopAttacks(occupied, targetSq)
	if bishops := bishopAtt & b.PieceBB[attackerColor*piece.Bishop+6] & occupied; bishops != 0 {
		return lsb(bishops)
	}

	rookAtt := patterns.RookAttacks(occupied, targetSq)
	if rooks := rookAtt & b.PieceBB[attackerColor*piece.Rook+6] & occupied; rooks != 0 {
		return lsb(rooks)
	}

	if queens := (bishopAtt | rookAtt) & b.PieceBB[attackerColor*piece.Queen+6] & occupied; queens != 0 {
		return lsb(queens)
	}

	if kings := patterns.King[targetSq] & b.PieceBB[attackerColor*piece.King+6] & occupied; kings != 0 {
		return lsb(kings)
	}

	return noAttacker
}

// SeeScore runs static exchange evaluation for a capture of captured_piece_id
// on target, starting with ownPieceID moving from from and recapturing
// possible by oppColor, per spec.md section 4.5.
func (b *Board) SeeScore(oppColor, from, target, ownPieceID, capturedPieceID int) int {
	occupied := (b.OccBB[0] | b.OccBB[2]) &^ bit(from)

	score := int(piece.Value(capturedPieceID))
	trophy := int(piece.Value(ownPieceID))

	for {
		attacker := b.FindSmallestAttacker(occupied, oppColor, target)
		if attacker == noAttacker {
			return score
		}
		score -= trophy
		trophy = int(piece.Value(piece.Abs(int(b.Mailbox[attacker]))))
		occupied &^= bit(attacker)
		if score+trophy < 0 {
			return score
		}

		attacker = b.FindSmallestAttacker(occupied, -oppColor, target)
		if attacker == noAttacker {
			return score
		}
		score += trophy
		trophy = int(piece.Value(piece.Abs(int(b.Mailbox[attacker]))))
		occupied &^= bit(attacker)
		if score-trophy > 0 {
			return score
		}
	}
}
