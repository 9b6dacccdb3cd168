package hand

import "github.com/luca-patrignani/pokerhand/domain/card"

func (h *Hand) anyRankCount(n int) bool {
	for _, count := range h.rankCounts {
		if count == n {
			return true
		}
	}
	return false
}

// HasOnePair reports whether at least one rank appears exactly twice.
func (h *Hand) HasOnePair() bool {
	return h.anyRankCount(2)
}

// HasTwoPair reports whether exactly two ranks appear exactly twice.
func (h *Hand) HasTwoPair() bool {
	pairs := 0
	for _, count := range h.rankCounts {
		if count == 2 {
			pairs++
		}
	}
	return pairs == 2
}

func (h *Hand) HasThreeOfAKind() bool {
	return h.anyRankCount(3)
}

// HasAllUniqueRanks reports whether no rank appears more than once.
func (h *Hand) HasAllUniqueRanks() bool {
	for _, count := range h.rankCounts {
		if count >= 2 {
			return false
		}
	}
	return true
}

// RankSpanUnderFive reports whether the highest and lowest ranks present are
// less than five steps apart.
func (h *Hand) RankSpanUnderFive() bool {
	if len(h.sorted) == 0 {
		return false
	}
	low := h.sorted[0].Rank()
	high := h.sorted[len(h.sorted)-1].Rank()
	return high-low < 5
}

func (h *Hand) IsStraight() bool {
	return h.HasAllUniqueRanks() && h.RankSpanUnderFive()
}

func (h *Hand) IsFlush() bool {
	for _, count := range h.suitCounts {
		if count == Size {
			return true
		}
	}
	return false
}

func (h *Hand) IsFullHouse() bool {
	return h.HasThreeOfAKind() && h.HasOnePair()
}

func (h *Hand) IsFourOfAKind() bool {
	return h.anyRankCount(4)
}

func (h *Hand) IsStraightFlush() bool {
	return h.IsFlush() && h.IsStraight()
}

// IsRoyalFlush reports a straight flush that includes the ace.
func (h *Hand) IsRoyalFlush() bool {
	return h.IsFlush() && h.IsStraight() && h.rankCounts[card.Ace] == 1
}
