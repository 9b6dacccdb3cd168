package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/luca-patrignani/pokerhand/domain/card"
	"github.com/luca-patrignani/pokerhand/domain/hand"
	"go.dedis.ch/kyber/v4/suites"
)

// Size is the number of cards in a full deck.
const Size = card.NumRanks * card.NumSuits

var ErrNotEnoughCards = errors.New("not enough cards left in the deck")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered pile of cards; cards are drawn from the top.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards  []card.Card
	stream cipher.Stream
}

type option func(Deck) Deck

// New returns a full, unshuffled deck in rank-major order:
// 2H 2C 2D 2S 3H ... AS.
func New(opts ...option) *Deck {
	d := Deck{
		cards:  make([]card.Card, 0, Size),
		stream: suite.RandomStream(),
	}
	for _, r := range card.Ranks() {
		for _, s := range card.Suits() {
			c, _ := card.New(r, s)
			d.cards = append(d.cards, c)
		}
	}
	for _, opt := range opts {
		d = opt(d)
	}
	return &d
}

// WithStream sets the source of randomness used by Shuffle.
func WithStream(stream cipher.Stream) option {
	return func(d Deck) Deck {
		d.stream = stream
		return d
	}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Draw removes n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]card.Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, len(d.cards))
	}
	drawn := make([]card.Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// DealHand draws five cards and returns them as a populated hand.
func (d *Deck) DealHand() (*hand.Hand, error) {
	cards, err := d.Draw(hand.Size)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return hand.FromTokens(tokens...)
}
