// Package move implements the 32-bit move codec the board core's
// perform_encoded_move decodes. Move generation and legality are out of
// scope for this module; this package only carries piece id, from-square
// and to-square through a single integer, the way the teacher's 16-bit
// from<<10|to<<4|moveType move carried its three fields.
package move

const (
	toBits    = 6
	fromBits  = 6
	pieceBits = 4

	toShift   = 0
	fromShift = toBits
	pieceShift = toBits + fromBits

	toMask    = uint32(1)<<toBits - 1
	fromMask  = uint32(1)<<fromBits - 1
	pieceMask = uint32(1)<<pieceBits - 1
)

// Encode packs a post-promotion piece magnitude and a from/to square pair
// into a single move value.
func Encode(pieceMagnitude, from, to int) uint32 {
	return uint32(pieceMagnitude)<<pieceShift | uint32(from)<<fromShift | uint32(to)<<toShift
}

// DecodePiece extracts the piece magnitude from an encoded move.
func DecodePiece(encoded uint32) int {
	return int((encoded >> pieceShift) & pieceMask)
}

// DecodeStart extracts the from-square from an encoded move.
func DecodeStart(encoded uint32) int {
	return int((encoded >> fromShift) & fromMask)
}

// DecodeEnd extracts the to-square from an encoded move.
func DecodeEnd(encoded uint32) int {
	return int((encoded >> toShift) & toMask)
}
