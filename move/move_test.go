package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		pieceMagnitude, from, to int
	}{
		{1, 12, 28},
		{5, 60, 62},
		{6, 4, 2},
		{2, 0, 63},
	}
	for _, c := range cases {
		encoded := Encode(c.pieceMagnitude, c.from, c.to)
		assert.Equal(t, c.pieceMagnitude, DecodePiece(encoded))
		assert.Equal(t, c.from, DecodeStart(encoded))
		assert.Equal(t, c.to, DecodeEnd(encoded))
	}
}
