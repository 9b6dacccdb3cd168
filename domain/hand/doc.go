// Package hand classifies a fixed 5-card poker hand.
//
// # Lifecycle
//
// A Hand is created empty with New and populated exactly once with AddCards
// (or AddValues, for input decoded from JSON). All validation happens there:
// afterwards the hand is read-only and classification cannot fail.
//
// # Classification
//
// Classify checks the categories from strongest to weakest and renders the
// first match together with its tie-breaking detail, e.g.
//
//	two pair: jacks and 4s with 9 kicker
//
// Aces are high only, so A-2-3-4-5 is not a straight.
//
// # Strength
//
// Strength and Describe score the same five cards with an independent
// evaluator (github.com/paulhankin/poker), useful for diagnostics and for
// checking that categories are ordered consistently.
package hand
