package hand

// Category is a poker hand category. Larger values are stronger.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	case RoyalFlush:
		return "royal flush"
	default:
		return "unknown"
	}
}

// Category returns the strongest category the hand satisfies. Checks run
// from strongest to weakest and the first match wins.
func (h *Hand) Category() Category {
	switch {
	case h.IsRoyalFlush():
		return RoyalFlush
	case h.IsStraightFlush():
		return StraightFlush
	case h.IsFourOfAKind():
		return FourOfAKind
	case h.IsFullHouse():
		return FullHouse
	case h.IsFlush():
		return Flush
	case h.IsStraight():
		return Straight
	case h.HasThreeOfAKind():
		return ThreeOfAKind
	case h.HasTwoPair():
		return TwoPair
	case h.HasOnePair():
		return OnePair
	default:
		return HighCard
	}
}

// Classify returns the hand category with its tie-breaking detail, e.g.
// "full house: kings full of 9s" or "high card: ace 9 8 5 2".
func (h *Hand) Classify() string {
	category := h.Category()
	switch category {
	case RoyalFlush:
		return category.String()
	case StraightFlush, Straight:
		return category.String() + ": " + h.MaxRank() + " high"
	case FourOfAKind:
		return category.String() + ": " + h.FindRankWithCount(4) + "s with " + h.KickerRankNames() + " kicker"
	case FullHouse:
		return category.String() + ": " + h.FindRankWithCount(3) + "s full of " + h.PairRankNames() + "s"
	case Flush, HighCard:
		return category.String() + ": " + h.KickerRankNames()
	case ThreeOfAKind:
		return category.String() + ": " + h.FindRankWithCount(3) + "s with " + h.KickerRankNames() + " kickers"
	case TwoPair:
		pairs := h.pairRanks()
		return category.String() + ": " + pairs[0].Name() + "s and " + pairs[len(pairs)-1].Name() + "s with " + h.KickerRankNames() + " kicker"
	default:
		return category.String() + ": " + h.PairRankNames() + "s with " + h.KickerRankNames() + " kickers"
	}
}
