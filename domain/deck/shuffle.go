package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle permutes the remaining cards in place.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
