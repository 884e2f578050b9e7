package board

import "math/bits"

// State bit positions, per spec.md section 3's state bitmask layout. Bit
// positions are load-bearing: the Zobrist castling and en-passant indices
// are derived directly from them.
const (
	whiteKingsideRightBit  = 7
	blackKingsideRightBit  = 8
	whiteQueensideRightBit = 9
	blackQueensideRightBit = 10
	whiteCastledBit        = 11
	blackCastledBit        = 12

	// epWhiteCaptureBase..+7 (bits 13-20): a set bit means a Black pawn
	// just double-pushed onto that file, so White may capture en passant.
	epWhiteCaptureBase = 13
	// epBlackCaptureBase..+7 (bits 21-28): a set bit means a White pawn
	// just double-pushed onto that file, so Black may capture en passant.
	epBlackCaptureBase = 21
)

func stateBit(pos uint) uint32 { return 1 << pos }

func hasState(state uint32, pos uint) bool { return state&stateBit(pos) != 0 }

func setState(state *uint32, pos uint)   { *state |= stateBit(pos) }
func clearState(state *uint32, pos uint) { *state &^= stateBit(pos) }

// castlingIndex extracts the 4-bit castling-rights index used to look up
// zobrist.CastlingRNG.
func castlingIndex(state uint32) int {
	return int((state >> whiteKingsideRightBit) & 0xF)
}

// epBits returns the raw 16-bit en-passant flag field (bits 13-28).
func epBits(state uint32) uint32 {
	return (state >> epWhiteCaptureBase) & 0xFFFF
}

// epIndex returns the zobrist.EnPassantRNG index for the current state, and
// whether any en-passant flag is set at all.
func epIndex(state uint32) (int, bool) {
	flags := epBits(state)
	if flags == 0 {
		return 0, false
	}
	return bits.TrailingZeros32(flags), true
}

// clearEnPassantFlags clears every en-passant bit (13..28), returning
// whether any were set.
func clearEnPassantFlags(state *uint32) bool {
	flags := epBits(*state)
	*state &^= uint32(0xFFFF) << epWhiteCaptureBase
	return flags != 0
}

// setWhiteCaptureEPFlag marks that White may capture en passant on file f
// (a Black pawn just double-pushed there).
func setWhiteCaptureEPFlag(state *uint32, file int) {
	setState(state, uint(epWhiteCaptureBase+file))
}

// setBlackCaptureEPFlag marks that Black may capture en passant on file f
// (a White pawn just double-pushed there).
func setBlackCaptureEPFlag(state *uint32, file int) {
	setState(state, uint(epBlackCaptureBase+file))
}

func hasWhiteKingsideRight(state uint32) bool  { return hasState(state, whiteKingsideRightBit) }
func hasBlackKingsideRight(state uint32) bool  { return hasState(state, blackKingsideRightBit) }
func hasWhiteQueensideRight(state uint32) bool { return hasState(state, whiteQueensideRightBit) }
func hasBlackQueensideRight(state uint32) bool { return hasState(state, blackQueensideRightBit) }
func hasWhiteCastled(state uint32) bool        { return hasState(state, whiteCastledBit) }
func hasBlackCastled(state uint32) bool        { return hasState(state, blackCastledBit) }
