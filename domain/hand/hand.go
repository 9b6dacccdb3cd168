package hand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/luca-patrignani/pokerhand/domain/card"
)

// Size is the number of cards in a hand.
const Size = 5

// Hand is a 5-card poker hand together with its rank and suit frequency
// tables. The zero value is an empty hand ready for AddCards.
type Hand struct {
	// cards in input order
	cards []card.Card
	// cards sorted by ascending rank
	sorted     []card.Card
	rankCounts [card.NumRanks]int
	suitCounts [card.NumSuits]int
}

// New returns an empty hand.
func New() *Hand {
	return &Hand{}
}

// FromTokens builds a populated hand in one step.
func FromTokens(tokens ...string) (*Hand, error) {
	h := New()
	if err := h.AddCards(tokens); err != nil {
		return nil, err
	}
	return h, nil
}

// AddCards parses the 5 tokens and fills the hand. The tokens must be
// distinct. Nothing is stored unless every token is valid, and a hand can be
// filled only once.
func (h *Hand) AddCards(tokens []string) error {
	if h.populated() {
		return ErrHandPopulated
	}
	if len(tokens) != Size || !distinct(tokens) {
		return fmt.Errorf("%w: input array must contain %d unique cards", ErrInvalidHand, Size)
	}

	cards := make([]card.Card, 0, Size)
	for _, token := range tokens {
		c, err := card.Parse(token)
		if err != nil {
			return err
		}
		cards = append(cards, c)
	}

	h.cards = cards
	for _, c := range cards {
		h.rankCounts[c.Rank()]++
		h.suitCounts[c.Suit()]++
	}
	h.sorted = make([]card.Card, Size)
	copy(h.sorted, cards)
	sort.SliceStable(h.sorted, func(i, j int) bool {
		return h.sorted[i].Rank() < h.sorted[j].Rank()
	})
	return nil
}

// AddValues fills the hand from a decoded JSON value, which must be an array
// of 5 strings.
func (h *Hand) AddValues(v any) error {
	var values []any
	switch vv := v.(type) {
	case []string:
		return h.AddCards(vv)
	case []any:
		values = vv
	default:
		return fmt.Errorf("%w: input type must be list/array", ErrInvalidHand)
	}
	if len(values) != Size {
		return fmt.Errorf("%w: input array must contain %d unique cards", ErrInvalidHand, Size)
	}
	tokens := make([]string, 0, Size)
	for _, value := range values {
		token, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: card input must be type string, got %v", card.ErrInvalidCard, value)
		}
		tokens = append(tokens, token)
	}
	return h.AddCards(tokens)
}

// Cards returns the cards sorted by ascending rank.
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.sorted))
	copy(out, h.sorted)
	return out
}

// RankCount returns how many cards of rank r the hand holds.
func (h *Hand) RankCount(r card.Rank) int {
	if !r.Valid() {
		return 0
	}
	return h.rankCounts[r]
}

// SuitCount returns how many cards of suit s the hand holds.
func (h *Hand) SuitCount(s card.Suit) int {
	if !s.Valid() {
		return 0
	}
	return h.suitCounts[s]
}

func (h *Hand) String() string {
	tokens := make([]string, len(h.cards))
	for i, c := range h.cards {
		tokens[i] = c.String()
	}
	return "Hand: [" + strings.Join(tokens, " ") + "]"
}

func (h *Hand) populated() bool {
	return len(h.cards) > 0
}

func distinct(tokens []string) bool {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			return false
		}
		seen[t] = struct{}{}
	}
	return true
}
