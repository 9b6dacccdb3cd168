package card

import "github.com/pterm/pterm"

// Suit is one of the four card suits. The numeric values have no meaning
// beyond indexing.
type Suit uint8

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

var suitTokens = [NumSuits]string{"H", "C", "D", "S"}

// Suits returns all suits in token order H, C, D, S.
func Suits() []Suit {
	return []Suit{Hearts, Clubs, Diamonds, Spades}
}

func (s Suit) Valid() bool {
	return s < NumSuits
}

// Token returns the single letter used in card tokens.
func (s Suit) Token() string {
	if !s.Valid() {
		return "?"
	}
	return suitTokens[s]
}

// Symbol returns the suit glyph, coloured red or black.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return pterm.LightRed("♥")
	case Clubs:
		return pterm.Black("♣")
	case Diamonds:
		return pterm.LightRed("♦")
	case Spades:
		return pterm.Black("♠")
	default:
		return "?"
	}
}

func (s Suit) String() string {
	return s.Token()
}

// ParseSuit maps a suit letter to its Suit.
func ParseSuit(b byte) (Suit, bool) {
	for i, t := range suitTokens {
		if t[0] == b {
			return Suit(i), true
		}
	}
	return 0, false
}
