// Package board implements the chess position core: a mailbox plus
// twelve piece bitboards and two occupancy bitboards kept perfectly
// consistent under make/unmake, with incremental Zobrist hashing,
// incremental material+PST scoring, bitmask-encoded castling/en-passant
// state, static exchange evaluation, and a phased positional evaluator.
package board

import (
	"chesscore/history"
	"chesscore/piece"
	"chesscore/zobrist"

	"go.uber.org/zap"
)

// MaxGameHalfmoves bounds the preallocated history stack; exceeding it is
// a programmer error the search driver is responsible for avoiding.
const MaxGameHalfmoves = 11796

// PerformMove's return value when no capture occurred.
const Empty = int32(0)

// EnPassantBit is returned by PerformMove when the move captured a pawn
// en passant, distinct from any capture magnitude since it never overlaps
// the 1..6 piece-magnitude range.
const EnPassantBit = int32(-1 << 31)

// historyFrame is the parallel-array entry spec.md section 3 calls the
// history stack. OriginalPiece additionally records the signed piece that
// occupied the move's "from" square before the move (mirroring the
// teacher's UndoInfo.FromSq) so UndoMove can restore a promoted pawn
// without the caller needing a separate move-type tag; see DESIGN.md.
type historyFrame struct {
	State         uint32
	Clock         int
	Hash          uint64
	PackedScore   uint32
	OriginalPiece int8
}

// Board is the core aggregate: the owner of the mailbox, bitboards,
// incremental hash and score, and the undo history.
type Board struct {
	Mailbox [64]int8
	PieceBB [13]uint64 // indexed by piece+6
	OccBB   [3]uint64  // Black=0, empty=1, White=2, indexed by color+1

	WhiteKingSq int
	BlackKingSq int

	ScoreMid int16
	ScoreEG  int16

	Hash uint64

	HalfmoveCount int
	HalfmoveClock int

	State uint32

	Endgame bool

	HistoryStack [MaxGameHalfmoves]historyFrame
	HistoryDepth int

	PositionHistory *history.PositionHistory
}

// New builds a Board from a 67-entry vector: 64 signed piece values
// followed by halfmove_clock, halfmove_count and state. Construction
// fails if the vector is too short or either king is missing, per
// spec.md section 7.
func New(vector []int) (*Board, error) {
	if len(vector) < 67 {
		return nil, newConstructionError("input vector shorter than 67 entries",
			zap.Int("length", len(vector)))
	}

	b := &Board{OccBB: [3]uint64{0, ^uint64(0), 0}}

	foundWhiteKing, foundBlackKing := false, false
	for sq := 0; sq < 64; sq++ {
		signedPiece := vector[sq]
		if signedPiece == 0 {
			continue
		}
		color := sign(signedPiece)
		magnitude := piece.Abs(signedPiece)
		b.addPiece(color, magnitude, sq)
		if magnitude == piece.King {
			if color == piece.White {
				b.WhiteKingSq = sq
				foundWhiteKing = true
			} else {
				b.BlackKingSq = sq
				foundBlackKing = true
			}
		}
	}
	if !foundWhiteKing || !foundBlackKing {
		return nil, newConstructionError("missing white or black king")
	}

	b.HalfmoveClock = vector[64]
	b.HalfmoveCount = vector[65]
	b.State = uint32(vector[66])
	b.PositionHistory = history.New()

	b.RecalculateHash()
	b.UpdateEndgameStatus()
	b.PositionHistory.Push(b.Hash)

	return b, nil
}

// RecalculateHash rebuilds Hash from scratch from the current mailbox and
// state, per spec.md section 6's "used after bulk mutation" contract.
func (b *Board) RecalculateHash() {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		signedPiece := int(b.Mailbox[sq])
		if signedPiece == 0 {
			continue
		}
		h ^= zobrist.PieceRNG[(signedPiece+6)*64+sq]
	}
	h ^= zobrist.CastlingRNG[castlingIndex(b.State)]
	if idx, ok := epIndex(b.State); ok {
		h ^= zobrist.EnPassantRNG[idx]
	}
	if b.GetActivePlayer() == piece.Black {
		h ^= zobrist.Player
	}
	b.Hash = h
}

func sign(signedPiece int) int {
	if signedPiece < 0 {
		return piece.Black
	}
	return piece.White
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// addPiece places a piece on the board, updating the mailbox, bitboards,
// incremental hash and incremental score. Castling-rights side effects are
// handled elsewhere (rook-corner departures in removePiece, king moves in
// PerformMove), since adding a piece never itself forfeits a right.
func (b *Board) addPiece(color, magnitude, sq int) {
	signedPiece := color * magnitude
	idx := signedPiece + 6
	setBitBB(&b.PieceBB[idx], sq)
	setBitBB(&b.OccBB[color+1], sq)
	clearBitBB(&b.OccBB[1], sq)
	b.Mailbox[sq] = int8(signedPiece)

	b.Hash ^= zobrist.PieceRNG[idx*64+sq]

	var packed uint32
	if color == piece.White {
		packed = WhitePST[magnitude*64+sq]
	} else {
		packed = BlackPST[magnitude*64+sq]
	}
	mid, eg := unpack(packed)
	b.ScoreMid += mid
	b.ScoreEG += eg
}

// removePiece clears whatever piece sits on sq, updating the mailbox,
// bitboards, incremental hash and incremental score, and observing
// rook-corner departures for castling rights per spec.md section 4.3.
func (b *Board) removePiece(sq int) {
	signedPiece := int(b.Mailbox[sq])
	color := sign(signedPiece)
	magnitude := piece.Abs(signedPiece)
	idx := signedPiece + 6

	clearBitBB(&b.PieceBB[idx], sq)
	clearBitBB(&b.OccBB[color+1], sq)
	setBitBB(&b.OccBB[1], sq)
	b.Mailbox[sq] = 0

	b.Hash ^= zobrist.PieceRNG[idx*64+sq]

	var packed uint32
	if color == piece.White {
		packed = WhitePST[magnitude*64+sq]
	} else {
		packed = BlackPST[magnitude*64+sq]
	}
	mid, eg := unpack(packed)
	b.ScoreMid -= mid
	b.ScoreEG -= eg

	b.clearCornerCastlingRight(magnitude, sq)
}

// addPieceRaw and removePieceRaw are the "without incremental update"
// variants spec.md section 4.3 requires for undo: they restore mailbox and
// bitboard structure only, since score and hash come back wholesale from
// the popped history frame.
func (b *Board) addPieceRaw(color, magnitude, sq int) {
	signedPiece := color * magnitude
	idx := signedPiece + 6
	setBitBB(&b.PieceBB[idx], sq)
	setBitBB(&b.OccBB[color+1], sq)
	clearBitBB(&b.OccBB[1], sq)
	b.Mailbox[sq] = int8(signedPiece)
}

func (b *Board) removePieceRaw(sq int) {
	signedPiece := int(b.Mailbox[sq])
	color := sign(signedPiece)
	idx := signedPiece + 6
	clearBitBB(&b.PieceBB[idx], sq)
	clearBitBB(&b.OccBB[color+1], sq)
	setBitBB(&b.OccBB[1], sq)
	b.Mailbox[sq] = 0
}

func (b *Board) clearCornerCastlingRight(magnitude, sq int) {
	if magnitude != piece.Rook {
		return
	}
	switch sq {
	case piece.WhiteKingSideRookStart:
		clearState(&b.State, whiteKingsideRightBit)
	case piece.WhiteQueenSideRookStart:
		clearState(&b.State, whiteQueensideRightBit)
	case piece.BlackKingSideRookStart:
		clearState(&b.State, blackKingsideRightBit)
	case piece.BlackQueenSideRookStart:
		clearState(&b.State, blackQueensideRightBit)
	}
}

func (b *Board) clearCastlingRightsForColor(color int) {
	if color == piece.White {
		clearState(&b.State, whiteKingsideRightBit)
		clearState(&b.State, whiteQueensideRightBit)
	} else {
		clearState(&b.State, blackKingsideRightBit)
		clearState(&b.State, blackQueensideRightBit)
	}
}

func (b *Board) setCastledFlag(color int) {
	if color == piece.White {
		setState(&b.State, whiteCastledBit)
	} else {
		setState(&b.State, blackCastledBit)
	}
}

func (b *Board) setKingSq(color, sq int) {
	if color == piece.White {
		b.WhiteKingSq = sq
	} else {
		b.BlackKingSq = sq
	}
}

func setBitBB(bb *uint64, sq int)   { *bb |= uint64(1) << uint(sq) }
func clearBitBB(bb *uint64, sq int) { *bb &^= uint64(1) << uint(sq) }
func hasBitBB(bb uint64, sq int) bool {
	return bb&(uint64(1)<<uint(sq)) != 0
}

// castleRookSquares returns the rook's home square and post-castle square
// for the king move (usColor, kingTo).
func castleRookSquares(usColor, kingTo int) (rookFrom, rookTo int) {
	switch {
	case usColor == piece.White && kingTo == 62: // O-O
		return piece.WhiteKingSideRookStart, 61
	case usColor == piece.White && kingTo == 58: // O-O-O
		return piece.WhiteQueenSideRookStart, 59
	case usColor == piece.Black && kingTo == 6: // O-O
		return piece.BlackKingSideRookStart, 5
	default: // O-O-O
		return piece.BlackQueenSideRookStart, 3
	}
}
