package royaltyhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		amount    uint64
		royalty   uint64
		remainder uint64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{19, 0, 19},
		{20, 1, 19},
		{100, 5, 95},
		{1000, 50, 950},
		{999, 49, 950},
		{1_000_000_000, 50_000_000, 950_000_000},
	} {
		royalty, remainder := Split(tc.amount)
		assert.Equal(t, tc.royalty, royalty, "amount %d", tc.amount)
		assert.Equal(t, tc.remainder, remainder, "amount %d", tc.amount)
	}
}

func TestSplit_SumInvariant(t *testing.T) {
	for _, amount := range []uint64{0, 1, 7, 99, 100, 12345, 1 << 32, 1 << 50} {
		royalty, remainder := Split(amount)
		assert.Equal(t, amount, royalty+remainder)
		assert.Equal(t, amount*RoyaltyPercentage/100, royalty)
	}
}
