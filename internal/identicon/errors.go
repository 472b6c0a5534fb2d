package identicon

import "errors"

// ErrInsufficientDigest is returned when a digest is too short to yield a color
// or a single grid row.
var ErrInsufficientDigest = errors.New("insufficient digest length")
