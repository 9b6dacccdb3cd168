package hand

import (
	"fmt"

	"github.com/luca-patrignani/pokerhand/domain/card"
	"github.com/paulhankin/poker"
)

// Strength scores the hand with the paulhankin/poker evaluator; higher is
// stronger. Unlike Classify, the evaluator also plays the ace low, so
// A-2-3-4-5 scores as a straight.
func (h *Hand) Strength() (int16, error) {
	cards, err := h.evalCards()
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&cards), nil
}

// Describe returns the evaluator's own description of the hand.
func (h *Hand) Describe() (string, error) {
	cards, err := h.evalCards()
	if err != nil {
		return "", err
	}
	return poker.Describe(cards[:])
}

func (h *Hand) evalCards() ([Size]poker.Card, error) {
	var out [Size]poker.Card
	if len(h.cards) != Size {
		return out, fmt.Errorf("%w: hand holds %d cards", ErrInvalidHand, len(h.cards))
	}
	for i, c := range h.cards {
		pc, err := poker.MakeCard(evalSuit(c.Suit()), evalRank(c.Rank()))
		if err != nil {
			return out, fmt.Errorf("invalid card %s at idx %d: %w", c, i, err)
		}
		out[i] = pc
	}
	return out, nil
}

// The evaluator orders suits club, diamond, heart, spade and counts the ace
// as rank 1.
func evalSuit(s card.Suit) poker.Suit {
	switch s {
	case card.Clubs:
		return poker.Suit(0)
	case card.Diamonds:
		return poker.Suit(1)
	case card.Hearts:
		return poker.Suit(2)
	default:
		return poker.Suit(3)
	}
}

func evalRank(r card.Rank) poker.Rank {
	if r == card.Ace {
		return poker.Rank(1)
	}
	return poker.Rank(int(r) + 2)
}
