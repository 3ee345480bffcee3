package ecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OrdinalMatchesDeclarationOrder(t *testing.T) {
	assert.Equal(t, uint(0), Low.Ordinal())
	assert.Equal(t, uint(1), Medium.Ordinal())
	assert.Equal(t, uint(2), Quartile.Ordinal())
	assert.Equal(t, uint(3), High.Ordinal())
}

func Test_FormatBitsAreStandardPattern(t *testing.T) {
	assert.Equal(t, uint8(1), Low.FormatBits())
	assert.Equal(t, uint8(0), Medium.FormatBits())
	assert.Equal(t, uint8(3), Quartile.FormatBits())
	assert.Equal(t, uint8(2), High.FormatBits())
}

func Test_StringRoundTripsThroughParse(t *testing.T) {
	for _, level := range []Ecl{Low, Medium, Quartile, High} {
		parsed, err := Parse(level.String())
		assert.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func Test_ParseIsCaseInsensitive(t *testing.T) {
	parsed, err := Parse("q")
	assert.NoError(t, err)
	assert.Equal(t, Quartile, parsed)
}

func Test_ParseRejectsUnknownSelector(t *testing.T) {
	_, err := Parse("X")
	assert.ErrorIs(t, err, ErrInvalidEcl)
}
