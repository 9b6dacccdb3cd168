// Package deck provides a standard 52-card deck used to deal random hands.
//
// The deck is shuffled with a Fisher-Yates pass whose randomness comes from a
// cipher.Stream, by default the random stream of kyber's Ed25519 suite.
package deck
