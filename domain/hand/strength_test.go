package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One hand per category, weakest first. No wheels: the evaluator plays the
// ace low and would disagree on A-2-3-4-5.
var ladder = []struct {
	tokens string
	want   Category
}{
	{"2H 5D 8C 9S AH", HighCard},
	{"JH JD 4D 9S AH", OnePair},
	{"JH 4C 4S JC 9H", TwoPair},
	{"6H 6S 6C QC KH", ThreeOfAKind},
	{"6C 7H 8S 9S 10C", Straight},
	{"2H 5H AH 9H 7H", Flush},
	{"QS QC QH 9S 9H", FullHouse},
	{"AD AC AS AH 6D", FourOfAKind},
	{"2C 3C 4C 5C 6C", StraightFlush},
	{"10H JH QH KH AH", RoyalFlush},
}

func TestStrengthAgreesWithCategory(t *testing.T) {
	var prev int16
	for i, step := range ladder {
		h := mustHand(t, step.tokens)
		require.Equal(t, step.want, h.Category(), step.tokens)

		score, err := h.Strength()
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, score, prev, "%s should beat %s", step.tokens, ladder[i-1].tokens)
		}
		prev = score
	}
}

func TestStrengthIgnoresCardOrder(t *testing.T) {
	a, err := mustHand(t, "JH 4C 4S JC 9H").Strength()
	require.NoError(t, err)
	b, err := mustHand(t, "9H JC 4S 4C JH").Strength()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDescribe(t *testing.T) {
	desc, err := mustHand(t, "AD AC AS AH 6D").Describe()
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}

func TestStrengthOnEmptyHand(t *testing.T) {
	_, err := New().Strength()
	assert.ErrorIs(t, err, ErrInvalidHand)
	_, err = New().Describe()
	assert.ErrorIs(t, err, ErrInvalidHand)
}
