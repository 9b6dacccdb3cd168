package hand

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHand is wrapped by every error about the shape of the input:
	// not a sequence, wrong length or repeated tokens.
	ErrInvalidHand = errors.New("invalid hand")
	// ErrHandPopulated is returned when cards are added to a hand twice.
	ErrHandPopulated = fmt.Errorf("%w: hand already holds cards", ErrInvalidHand)
)
