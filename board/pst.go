package board

import "chesscore/piece"

// midTable and egTable hold the raw positional deltas for each piece
// magnitude (index 0 unused), defined from White's perspective with square
// 0 at the top of the board. piece.Mult scales these deltas
// before they are folded into material and packed.
var midTable = [7][64]int16{
	// Pawn
	1: {
		0, 0, 0, 0, 0, 0, 0, 0,
		25, 25, 25, 25, 25, 25, 25, 25,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-5, -5, -5, -5, -5, -5, -5, -5,
		-15, -2, 3, 15, 15, 3, -2, -15,
		-15, 2, 5, 5, 5, 5, 2, -15,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight
	2: {
		-15, -15, -15, -15, -15, -15, -15, -15,
		-15, -15, -15, -15, -15, -15, -15, -15,
		-2, -2, -2, -2, -2, -2, -2, -2,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-5, 0, 15, 25, 25, 15, 0, -5,
		-5, 0, 15, 25, 25, 15, 0, -5,
		-2, -2, -2, -2, -2, -2, -2, -2,
		-15, -15, -15, -15, -15, -15, -15, -15,
	},
	// Bishop
	3: {
		0, 0, 0, 0, 0, 0, 0, 0,
		2, -5, -25, 0, 0, -25, -5, 2,
		2, 15, 5, 0, 0, 5, 15, 2,
		2, 5, 5, 0, 0, 5, 5, 2,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Rook: small bonus for the 7th rank and the open back rank files.
	4: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-2, 0, 0, 3, 3, 0, 0, -2,
	},
	// Queen: mildly prefers the center, small penalty on its own two back ranks.
	5: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 2, 2, 2, 2, 2, 2, 0,
		0, 2, 3, 3, 3, 3, 2, 0,
		0, 2, 3, 5, 5, 3, 2, 0,
		0, 2, 3, 5, 5, 3, 2, 0,
		0, 2, 3, 3, 3, 3, 2, 0,
		-5, -5, -5, -5, -5, -5, -5, -5,
		-5, -5, 0, 0, 0, 0, -5, -5,
	},
	// King, middlegame: huddle behind the pawn shield.
	6: {
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		-75, -75, -75, -75, -75, -75, -75, -75,
		25, 25, -10, -50, -50, -10, 25, 25,
		75, 50, 0, 0, 0, 0, 50, 75,
	},
}

var egTable = [7][64]int16{
	// Pawn: advanced pawns are worth sharply more in the endgame.
	1: {
		0, 0, 0, 0, 0, 0, 0, 0,
		60, 60, 60, 60, 60, 60, 60, 60,
		40, 40, 40, 40, 40, 40, 40, 40,
		20, 20, 20, 20, 20, 20, 20, 20,
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight: centralization matters even more without pawns to support it.
	2: {
		-20, -20, -20, -20, -20, -20, -20, -20,
		-20, -5, -5, -5, -5, -5, -5, -20,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 10, 15, 15, 10, 0, -5,
		-5, 0, 10, 15, 15, 10, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-20, -5, -5, -5, -5, -5, -5, -20,
		-20, -20, -20, -20, -20, -20, -20, -20,
	},
	// Bishop: flatter, long diagonals still favored.
	3: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 3, 3, 3, 3, 3, 3, 0,
		0, 3, 5, 5, 5, 5, 3, 0,
		0, 3, 5, 5, 5, 5, 3, 0,
		0, 3, 5, 5, 5, 5, 3, 0,
		0, 3, 5, 5, 5, 5, 3, 0,
		0, 3, 3, 3, 3, 3, 3, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Rook: activity on open files and ranks dominates.
	4: {
		5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Queen: largely flat.
	5: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 2, 2, 2, 2, 2, 2, 0,
		0, 2, 3, 3, 3, 3, 2, 0,
		0, 2, 3, 5, 5, 3, 2, 0,
		0, 2, 3, 5, 5, 3, 2, 0,
		0, 2, 3, 3, 3, 3, 2, 0,
		0, 2, 2, 2, 2, 2, 2, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// King, endgame: walk toward the center.
	6: {
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10, -5, -5, -5, -5, -5, -5, -10,
		-10, 2, 5, 5, 5, 5, 2, -10,
		-10, 2, 5, 25, 25, 5, 2, -10,
		-10, 2, 5, 25, 25, 5, 2, -10,
		-10, 2, 5, 5, 5, 5, 2, -10,
		-10, -5, -5, -5, -5, -5, -5, -10,
		-10, -10, -10, -10, -10, -10, -10, -10,
	},
}

// WhitePST and BlackPST hold one packed (mid, eg) word per piece magnitude
// (1..6, index 0 unused) and square, built once at init per spec.md
// section 4.2.
var WhitePST [7 * 64]uint32
var BlackPST [7 * 64]uint32

func mirror(sq int) int {
	r, f := sq/8, sq&7
	return (7-r)*8 + f
}

func init() {
	for p := piece.Pawn; p <= piece.King; p++ {
		mult := piece.Mult[p]
		mid := piece.Value(p)
		eg := piece.EGValue(p)
		for sq := 0; sq < 64; sq++ {
			whiteMid := mid + midTable[p][sq]*mult
			whiteEg := eg + egTable[p][sq]*mult
			WhitePST[p*64+sq] = pack(whiteMid, whiteEg)

			msq := mirror(sq)
			blackMid := -(mid + midTable[p][msq]*mult)
			blackEg := -(eg + egTable[p][msq]*mult)
			BlackPST[p*64+sq] = pack(blackMid, blackEg)
		}
	}
}
