package count

import "errors"

// ErrInvalidHand is the sentinel wrapped with the offending detail whenever
// a hand fails the data-model invariants (a tile count above 4, a hand that
// doesn't sum to 13 or 14, a call that isn't 3 or 4 tiles).
var ErrInvalidHand = errors.New("count: invalid hand")
