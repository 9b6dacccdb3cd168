package hand

import (
	"strings"

	"github.com/luca-patrignani/pokerhand/domain/card"
)

// MaxRank returns the display name of the highest rank in the hand.
func (h *Hand) MaxRank() string {
	if len(h.sorted) == 0 {
		return ""
	}
	return h.sorted[len(h.sorted)-1].Rank().Name()
}

// FindRankWithCount returns the display name of the rank held exactly n
// times, or "" if there is none. Meant for n of 3 or 4, where at most one
// such rank exists.
func (h *Hand) FindRankWithCount(n int) string {
	ranks := h.ranksWithCount(n)
	if len(ranks) == 0 {
		return ""
	}
	return ranks[0].Name()
}

// PairRankNames returns the names of all paired ranks, highest first,
// separated by spaces.
func (h *Hand) PairRankNames() string {
	return joinNames(h.pairRanks())
}

// KickerRankNames returns the names of all unpaired ranks, highest first,
// separated by spaces.
func (h *Hand) KickerRankNames() string {
	return joinNames(h.ranksWithCount(1))
}

func (h *Hand) pairRanks() []card.Rank {
	return h.ranksWithCount(2)
}

// ranksWithCount walks the rank table from Ace down to Two.
func (h *Hand) ranksWithCount(n int) []card.Rank {
	var ranks []card.Rank
	for r := card.Ace; ; r-- {
		if h.rankCounts[r] == n {
			ranks = append(ranks, r)
		}
		if r == card.Two {
			break
		}
	}
	return ranks
}

func joinNames(ranks []card.Rank) string {
	names := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = r.Name()
	}
	return strings.Join(names, " ")
}
