package board

import (
	"testing"

	"chesscore/piece"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyVector() []int {
	v := make([]int, 67)
	return v
}

func newTestBoard(t *testing.T, setup map[int]int, clock, count, state int) *Board {
	t.Helper()
	v := emptyVector()
	for sq, p := range setup {
		v[sq] = p
	}
	v[64], v[65], v[66] = clock, count, state
	b, err := New(v)
	require.NoError(t, err)
	return b
}

func startingSetup() map[int]int {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
	}
	for f := 0; f < 8; f++ {
		setup[48+f] = piece.White * piece.Pawn
		setup[8+f] = piece.Black * piece.Pawn
	}
	setup[piece.WhiteQueenSideRookStart] = piece.White * piece.Rook
	setup[piece.WhiteKingSideRookStart] = piece.White * piece.Rook
	setup[piece.BlackQueenSideRookStart] = piece.Black * piece.Rook
	setup[piece.BlackKingSideRookStart] = piece.Black * piece.Rook
	return setup
}

func TestConstructionRejectsShortVector(t *testing.T) {
	_, err := New(make([]int, 10))
	require.Error(t, err)
	var ce *ConstructionError
	assert.ErrorAs(t, err, &ce)
}

func TestConstructionRejectsMissingKing(t *testing.T) {
	v := emptyVector()
	v[piece.WhiteKingStart] = piece.White * piece.King
	_, err := New(v)
	require.Error(t, err)
}

func TestConstructionComputesHashAndActivePlayer(t *testing.T) {
	b := newTestBoard(t, startingSetup(), 0, 0, 0xF<<whiteKingsideRightBit)
	assert.Equal(t, piece.White, b.GetActivePlayer())
	assert.NotZero(t, b.GetHash())

	saved := b.Hash
	b.RecalculateHash()
	assert.Equal(t, saved, b.Hash)
}

func TestPerformAndUndoQuietMoveRoundTrips(t *testing.T) {
	setup := startingSetup()
	b := newTestBoard(t, setup, 0, 0, 0xF<<whiteKingsideRightBit)

	preHash := b.Hash
	preMid, preEg := b.ScoreMid, b.ScoreEG
	preState := b.State

	captured := b.PerformMove(piece.Pawn, 48, 32)
	assert.Equal(t, Empty, captured)
	assert.Equal(t, int8(piece.White*piece.Pawn), b.Mailbox[32])
	assert.Equal(t, int8(0), b.Mailbox[48])
	assert.Equal(t, 1, b.HalfmoveCount)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Equal(t, piece.Black, b.GetActivePlayer())

	b.UndoMove(piece.Pawn, 48, 32, captured)

	assert.Equal(t, preHash, b.Hash)
	assert.Equal(t, preMid, b.ScoreMid)
	assert.Equal(t, preEg, b.ScoreEG)
	assert.Equal(t, preState, b.State)
	assert.Equal(t, int8(piece.White*piece.Pawn), b.Mailbox[48])
	assert.Equal(t, int8(0), b.Mailbox[32])
	assert.Equal(t, 0, b.HalfmoveCount)
}

func TestDoublePushSetsEnPassantFlagAndNextPushReplacesIt(t *testing.T) {
	setup := startingSetup()
	b := newTestBoard(t, setup, 0, 0, 0xF<<whiteKingsideRightBit)

	b.PerformMove(piece.Pawn, 48, 32) // a2-a4 equivalent: double push
	idx, ok := epIndex(b.State)
	require.True(t, ok)
	assert.Equal(t, 8, idx) // Black-capture flags start 8 above White's: file a = index 8

	b.PerformMove(piece.Pawn, 8, 24) // black double push on file a, flagged for White's capture
	epFlags := b.State & (uint32(0xFFFF) << epWhiteCaptureBase)
	assert.Equal(t, stateBit(epWhiteCaptureBase), epFlags, "only the most recent double push's file should remain flagged")
}

func TestEnPassantCaptureRemovesAdjacentPawnAndRoundTrips(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
		25:                   piece.White * piece.Pawn, // rank 3, file b
		8:                    piece.Black * piece.Pawn, // rank 1, file a
	}
	b := newTestBoard(t, setup, 0, 0, 0)

	// Black double-pushes to rank 3 file a, landing beside the White pawn.
	b.PerformMove(piece.Pawn, 8, 24)
	preHash := b.Hash

	captured := b.PerformMove(piece.Pawn, 25, 16)
	assert.Equal(t, EnPassantBit, captured)
	assert.Equal(t, int8(0), b.Mailbox[24], "captured pawn should be removed")
	assert.Equal(t, int8(piece.White*piece.Pawn), b.Mailbox[16])

	b.UndoMove(piece.Pawn, 25, 16, captured)
	assert.Equal(t, preHash, b.Hash)
	assert.Equal(t, int8(piece.Black*piece.Pawn), b.Mailbox[24])
	assert.Equal(t, int8(piece.White*piece.Pawn), b.Mailbox[25])
}

func TestPromotionRoundTripsToOriginalPawn(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		2:                    piece.Black * piece.King,
		12:                   piece.White * piece.Pawn,
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	preHash := b.Hash

	captured := b.PerformMove(piece.Queen, 12, 4)
	assert.Equal(t, int8(piece.White*piece.Queen), b.Mailbox[4])

	b.UndoMove(piece.Queen, 12, 4, captured)
	assert.Equal(t, int8(piece.White*piece.Pawn), b.Mailbox[12])
	assert.Equal(t, preHash, b.Hash)
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart:          piece.White * piece.King,
		piece.WhiteKingSideRookStart:  piece.White * piece.Rook,
		piece.BlackKingStart:          piece.Black * piece.King,
	}
	b := newTestBoard(t, setup, 0, 0, 0xF<<whiteKingsideRightBit)
	preHash := b.Hash

	captured := b.PerformMove(piece.King, piece.WhiteKingStart, 62)
	assert.Equal(t, Empty, captured)
	assert.Equal(t, int8(piece.White*piece.King), b.Mailbox[62])
	assert.Equal(t, int8(piece.White*piece.Rook), b.Mailbox[61])
	assert.Equal(t, int8(0), b.Mailbox[piece.WhiteKingSideRookStart])
	assert.Equal(t, 62, b.WhiteKingSq)
	assert.False(t, hasWhiteKingsideRight(b.State))
	assert.True(t, hasWhiteCastled(b.State))

	b.UndoMove(piece.King, piece.WhiteKingStart, 62, captured)
	assert.Equal(t, preHash, b.Hash)
	assert.Equal(t, int8(piece.White*piece.King), b.Mailbox[piece.WhiteKingStart])
	assert.Equal(t, int8(piece.White*piece.Rook), b.Mailbox[piece.WhiteKingSideRookStart])
	assert.Equal(t, piece.WhiteKingStart, b.WhiteKingSq)
}

func TestRookLeavingCornerClearsOnlyThatRight(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart:         piece.White * piece.King,
		piece.WhiteKingSideRookStart: piece.White * piece.Rook,
		piece.BlackKingStart:         piece.Black * piece.King,
	}
	b := newTestBoard(t, setup, 0, 0, 0xF<<whiteKingsideRightBit)

	b.PerformMove(piece.Rook, piece.WhiteKingSideRookStart, 61)
	assert.False(t, hasWhiteKingsideRight(b.State))
	assert.True(t, hasWhiteQueensideRight(b.State))
}

func TestInCheckDetectsRookAttack(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
		60 - 32:              piece.Black * piece.Rook, // same file as the White king
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	assert.True(t, b.InCheck(piece.White))
	assert.False(t, b.InCheck(piece.Black))
}

func TestSeeScoreFavorablePawnTakesQueen(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
		28:                   piece.White * piece.Pawn,
		19:                   piece.Black * piece.Queen,
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	result := b.SeeScore(piece.Black, 28, 19, piece.Pawn, piece.Queen)
	assert.Equal(t, int(piece.Value(piece.Queen)), result)
}

func TestIsInsufficientMaterialDrawKingVsKing(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	assert.True(t, b.IsInsufficientMaterialDraw())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	b := newTestBoard(t, startingSetup(), 100, 0, 0)
	assert.True(t, b.IsFiftyMoveDraw())
}

func TestGetScoreIsZeroForSymmetricPosition(t *testing.T) {
	b := newTestBoard(t, startingSetup(), 0, 0, 0xF<<whiteKingsideRightBit)
	assert.Equal(t, 0, b.GetScore())
}

func TestPerformAndUndoNullMove(t *testing.T) {
	b := newTestBoard(t, startingSetup(), 0, 0, 0xF<<whiteKingsideRightBit)

	// Flag a pending en-passant capture so the null move must clear it.
	b.PerformMove(piece.Pawn, 48, 32)
	preHash := b.Hash
	preState := b.State
	_, hadEP := epIndex(b.State)
	require.True(t, hadEP)

	b.PerformNullMove()
	_, hasEP := epIndex(b.State)
	assert.False(t, hasEP)
	assert.Equal(t, piece.White, b.GetActivePlayer())

	b.UndoNullMove()
	assert.Equal(t, preHash, b.Hash)
	assert.Equal(t, preState, b.State)
}

func TestUpdateEndgameStatusReflectsMaterial(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	assert.True(t, b.IsEndgame(), "pawn-count 0 <= 3, so this stays an endgame")

	b.addPiece(piece.White, piece.Queen, 20)
	b.addPiece(piece.White, piece.Rook, 21)
	b.addPiece(piece.White, piece.Rook, 22)
	b.addPiece(piece.White, piece.Bishop, 23)
	b.UpdateEndgameStatus()
	assert.True(t, b.IsEndgame(), "pawn-count is still 0 <= 3 regardless of non-pawn material")

	for f := 0; f < 8; f++ {
		b.addPiece(piece.White, piece.Pawn, 48+f)
		b.addPiece(piece.Black, piece.Pawn, 8+f)
	}
	b.UpdateEndgameStatus()
	assert.False(t, b.IsEndgame(), "16 pawns and 4 non-king-non-pawn pieces exceed both thresholds")
}

func TestFindSmallestAttackerPrefersPawnOverKnight(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
		19:                   piece.White * piece.Pawn,
		25:                   piece.White * piece.Knight,
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	occupied := b.OccBB[0] | b.OccBB[2]
	attacker := b.FindSmallestAttacker(occupied, piece.White, 10)
	assert.Equal(t, 19, attacker)
}

func TestRepeatingMovesThroughBoardAreDetectedAsRepetition(t *testing.T) {
	setup := map[int]int{
		piece.WhiteKingStart: piece.White * piece.King,
		piece.BlackKingStart: piece.Black * piece.King,
		20:                   piece.White * piece.Knight,
		43:                   piece.Black * piece.Knight,
	}
	b := newTestBoard(t, setup, 0, 0, 0)
	assert.False(t, b.IsThreefoldRepetition())
	assert.False(t, b.IsEngineDraw())

	shuffle := func() {
		b.PerformMove(piece.Knight, 20, 21)
		b.PerformMove(piece.Knight, 43, 44)
		b.PerformMove(piece.Knight, 21, 20)
		b.PerformMove(piece.Knight, 44, 43)
	}

	shuffle() // position occurs a 2nd time
	assert.True(t, b.IsEngineDraw(), "single repetition is enough for is_engine_draw per spec.md section 4.8")
	assert.False(t, b.IsThreefoldRepetition())

	shuffle() // position occurs a 3rd time
	assert.True(t, b.IsThreefoldRepetition())
	assert.True(t, b.IsEngineDraw())
}
