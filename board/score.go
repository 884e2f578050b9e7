package board

// pack and unpack implement spec.md section 4.1's score packing: two
// signed 16-bit halves folded into one 32-bit word, so every piece-square
// table entry is a single lookup instead of two.
func pack(mid, eg int16) uint32 {
	return uint32(uint16(mid)) | uint32(uint16(eg))<<16
}

func unpack(packed uint32) (mid, eg int16) {
	mid = int16(uint16(packed))
	eg = int16(uint16(packed >> 16))
	return
}
