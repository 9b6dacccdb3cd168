package hand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func splitTokens(s string) []string {
	return strings.Fields(s)
}

func mustHand(t *testing.T, tokens string) *Hand {
	t.Helper()
	h, err := FromTokens(splitTokens(tokens)...)
	require.NoError(t, err)
	return h
}
