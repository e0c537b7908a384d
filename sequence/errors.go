package sequence

import "errors"

var (
	// ErrNoItems indicates a non-positive distinct key count.
	ErrNoItems = errors.New("sequence: item count must be positive")

	// ErrLengthTooShort indicates the requested length cannot cover the
	// warm-up pass over every distinct key.
	ErrLengthTooShort = errors.New("sequence: length must cover the warm-up pass")

	// ErrInvalidItemSize indicates a negative per-item size.
	ErrInvalidItemSize = errors.New("sequence: item size must be non-negative")

	// ErrInvalidWindow indicates a non-positive locality window length.
	ErrInvalidWindow = errors.New("sequence: locality window must be positive")

	// ErrNilRand indicates a random distribution was asked to run without
	// a random source.
	ErrNilRand = errors.New("sequence: random source is nil")

	// ErrUnknownDistribution indicates an unrecognized distribution name.
	ErrUnknownDistribution = errors.New("sequence: unknown distribution")
)
