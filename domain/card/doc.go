// Package card models a single playing card as used by the hand classifier.
//
// # Core Types
//
// Rank: one of the 13 card values, ordered from Two (lowest) to Ace
// (highest). Every rank has a token ("2".."10", "J", "Q", "K", "A") and a
// display name ("2".."10", "jack", "queen", "king", "ace").
//
// Suit: one of the 4 suits, with tokens "H", "C", "D" and "S". Suits carry
// no ordering.
//
// Card: an immutable (Rank, Suit) pair.
//
// # Parsing
//
// Parse accepts the canonical token form, rank token followed by a single
// suit token, e.g. "10H" or "QS". Anything else is rejected with an error
// wrapping ErrInvalidCard.
package card
