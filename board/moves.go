package board

import (
	"chesscore/move"
	"chesscore/piece"
	"chesscore/zobrist"
)

func (b *Board) pushHistoryFrame(originalPiece int8) {
	b.HistoryStack[b.HistoryDepth] = historyFrame{
		State:         b.State,
		Clock:         b.HalfmoveClock,
		Hash:          b.Hash,
		PackedScore:   pack(b.ScoreMid, b.ScoreEG),
		OriginalPiece: originalPiece,
	}
	b.HistoryDepth++
}

func (b *Board) popHistoryFrame() historyFrame {
	b.HistoryDepth--
	f := b.HistoryStack[b.HistoryDepth]
	b.State = f.State
	b.HalfmoveClock = f.Clock
	b.Hash = f.Hash
	b.ScoreMid, b.ScoreEG = unpack(f.PackedScore)
	return f
}

// PerformMove executes a single move: remove-from-start, remove-captured
// (if any), add-at-end, plus the pawn/king/castling side effects of
// spec.md section 4.3. pieceID is the piece to place at to, already
// including any promotion choice. It returns Empty, a captured piece
// magnitude, or EnPassantBit.
func (b *Board) PerformMove(pieceID, from, to int) int32 {
	originalPiece := b.Mailbox[from]
	b.pushHistoryFrame(originalPiece)

	usColor := sign(int(originalPiece))
	movingMagnitude := piece.Abs(int(originalPiece))
	capturedSigned := int(b.Mailbox[to])

	oldCastlingIdx := castlingIndex(b.State)
	oldEPIdx, hadOldEP := epIndex(b.State)
	clearEnPassantFlags(&b.State)

	result := Empty
	resetClock := false

	switch {
	case capturedSigned != 0:
		capturedMagnitude := piece.Abs(capturedSigned)
		b.removePiece(to)
		b.removePiece(from)
		b.addPiece(usColor, pieceID, to)
		if movingMagnitude == piece.King {
			b.setKingSq(usColor, to)
			b.clearCastlingRightsForColor(usColor)
		}
		result = int32(capturedMagnitude)
		resetClock = true

	case movingMagnitude == piece.Pawn && iabs(from-to) == 16:
		b.removePiece(from)
		b.addPiece(usColor, pieceID, to)
		file := to & 7
		if usColor == piece.White {
			setBlackCaptureEPFlag(&b.State, file)
		} else {
			setWhiteCaptureEPFlag(&b.State, file)
		}
		resetClock = true

	case movingMagnitude == piece.Pawn && (iabs(from-to) == 7 || iabs(from-to) == 9):
		capSq := to + 8
		if usColor == piece.Black {
			capSq = to - 8
		}
		b.removePiece(capSq)
		b.removePiece(from)
		b.addPiece(usColor, pieceID, to)
		result = EnPassantBit
		resetClock = true

	case movingMagnitude == piece.Pawn:
		b.removePiece(from)
		b.addPiece(usColor, pieceID, to)
		resetClock = true

	case movingMagnitude == piece.King:
		b.removePiece(from)
		b.addPiece(usColor, pieceID, to)
		b.setKingSq(usColor, to)
		b.clearCastlingRightsForColor(usColor)
		if iabs(from-to) == 2 {
			rookFrom, rookTo := castleRookSquares(usColor, to)
			b.removePiece(rookFrom)
			b.addPiece(usColor, piece.Rook, rookTo)
			b.setCastledFlag(usColor)
		}

	default:
		b.removePiece(from)
		b.addPiece(usColor, pieceID, to)
	}

	b.HalfmoveCount++
	b.HalfmoveClock++
	if resetClock {
		b.HalfmoveClock = 0
	}

	if newEPIdx, hasNewEP := epIndex(b.State); hadOldEP || hasNewEP {
		if hadOldEP {
			b.Hash ^= zobrist.EnPassantRNG[oldEPIdx]
		}
		if hasNewEP {
			b.Hash ^= zobrist.EnPassantRNG[newEPIdx]
		}
	}

	if newCastlingIdx := castlingIndex(b.State); newCastlingIdx != oldCastlingIdx {
		b.Hash ^= zobrist.CastlingRNG[oldCastlingIdx]
		b.Hash ^= zobrist.CastlingRNG[newCastlingIdx]
	}

	b.Hash ^= zobrist.Player

	b.UpdateEndgameStatus()
	b.PositionHistory.Push(b.Hash)

	return result
}

// UndoMove reverses the most recent PerformMove. pieceID is accepted for
// symmetry with PerformMove's signature but is not load-bearing: the
// original (pre-promotion) piece and every bit of board state are
// recovered from the popped history frame, so a mismatched pieceID is
// simply ignored rather than trusted.
func (b *Board) UndoMove(pieceID, from, to int, removed int32) {
	b.PositionHistory.Pop()
	frame := b.popHistoryFrame()
	b.HalfmoveCount--

	usColor := sign(int(frame.OriginalPiece))
	originalMagnitude := piece.Abs(int(frame.OriginalPiece))

	switch {
	case removed == EnPassantBit:
		capSq := to + 8
		if usColor == piece.Black {
			capSq = to - 8
		}
		b.removePieceRaw(to)
		b.addPieceRaw(usColor, piece.Pawn, from)
		b.addPieceRaw(-usColor, piece.Pawn, capSq)

	case originalMagnitude == piece.King && iabs(from-to) == 2:
		b.removePieceRaw(to)
		b.addPieceRaw(usColor, piece.King, from)
		b.setKingSq(usColor, from)
		rookFrom, rookTo := castleRookSquares(usColor, to)
		b.removePieceRaw(rookTo)
		b.addPieceRaw(usColor, piece.Rook, rookFrom)

	case removed != Empty:
		capturedMagnitude := int(removed)
		b.removePieceRaw(to)
		b.addPieceRaw(usColor, originalMagnitude, from)
		b.addPieceRaw(-usColor, capturedMagnitude, to)
		if originalMagnitude == piece.King {
			b.setKingSq(usColor, from)
		}

	default:
		b.removePieceRaw(to)
		b.addPieceRaw(usColor, originalMagnitude, from)
		if originalMagnitude == piece.King {
			b.setKingSq(usColor, from)
		}
	}
}

// PerformNullMove pushes a history frame, clears en-passant flags,
// increments the halfmove count and flips the side-to-move hash bit,
// without moving any piece. Used by null-move pruning in a search driver.
func (b *Board) PerformNullMove() {
	b.pushHistoryFrame(0)

	oldEPIdx, hadOldEP := epIndex(b.State)
	clearEnPassantFlags(&b.State)
	if hadOldEP {
		b.Hash ^= zobrist.EnPassantRNG[oldEPIdx]
	}

	b.HalfmoveCount++
	b.Hash ^= zobrist.Player
	b.PositionHistory.Push(b.Hash)
}

// UndoNullMove reverses PerformNullMove.
func (b *Board) UndoNullMove() {
	b.PositionHistory.Pop()
	b.popHistoryFrame()
	b.HalfmoveCount--
}

// PerformEncodedMove decodes an encoded move and applies it via
// PerformMove, per spec.md section 6.
func (b *Board) PerformEncodedMove(encoded uint32) int32 {
	return b.PerformMove(move.DecodePiece(encoded), move.DecodeStart(encoded), move.DecodeEnd(encoded))
}
