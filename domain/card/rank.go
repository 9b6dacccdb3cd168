package card

// Rank is a card value. The numeric value of a Rank is its position in
// ascending order, so ranks compare with the usual operators.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

var rankTokens = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankNames = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king", "ace"}

// Ranks returns all ranks in ascending order.
func Ranks() []Rank {
	out := make([]Rank, NumRanks)
	for i := range out {
		out[i] = Rank(i)
	}
	return out
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Token returns the rank as it appears in a card token, e.g. "10" or "J".
func (r Rank) Token() string {
	if !r.Valid() {
		return "?"
	}
	return rankTokens[r]
}

// Name returns the display name used when rendering a classification.
func (r Rank) Name() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r]
}

func (r Rank) String() string {
	return r.Name()
}

// ParseRank maps an exact rank token to its Rank.
func ParseRank(token string) (Rank, bool) {
	for i, t := range rankTokens {
		if t == token {
			return Rank(i), true
		}
	}
	return 0, false
}
