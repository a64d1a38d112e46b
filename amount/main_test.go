package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndStringRoundTrip(t *testing.T) {
	cases := map[string]int64{
		"0":           0,
		"1":           10000000,
		"100.5":       1005000000,
		"0.0000001":   1,
		"922337203685.4775807": MaxAmount,
	}
	for in, stroops := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, stroops, got, in)
		assert.Equal(t, in, String(stroops), in)
	}
}

func TestParseRejectsNegative(t *testing.T) {
	_, err := Parse("-1")
	assert.Error(t, err)
}

func TestParseRejectsTooManyFractionalDigits(t *testing.T) {
	_, err := Parse("1.00000001")
	assert.Error(t, err)
}

func TestParseRejectsOverflow(t *testing.T) {
	_, err := Parse("922337203685.4775808")
	assert.Error(t, err)
}
