package card

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is wrapped by every error returned while parsing a card.
var ErrInvalidCard = errors.New("invalid card")

// Card is a playing card. The zero value is the two of hearts.
type Card struct {
	rank Rank
	suit Suit
}

// New creates a Card with validation.
func New(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// Parse reads a card token such as "JH" or "10S". The last character must be
// a suit letter and the rest must match a rank token exactly.
func Parse(token string) (Card, error) {
	if token == "" {
		return Card{}, fmt.Errorf("%w: empty token", ErrInvalidCard)
	}
	suit, ok := ParseSuit(token[len(token)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: %s is not a valid card", ErrInvalidCard, token)
	}
	rank, ok := ParseRank(token[:len(token)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: %s is not a valid card", ErrInvalidCard, token)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustParse is like Parse but panics on error. Meant for fixtures.
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// String returns the canonical token, so Parse(c.String()) == c.
func (c Card) String() string {
	return c.rank.Token() + c.suit.Token()
}

// Pretty returns the card with a coloured suit glyph, e.g. "10♥".
func (c Card) Pretty() string {
	return c.rank.Token() + c.suit.Symbol()
}
