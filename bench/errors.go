package bench

import "errors"

var (
	// ErrInvalidTrials indicates a non-positive trial count.
	ErrInvalidTrials = errors.New("bench: trial count must be positive")

	// ErrCapacityTooSmall indicates a cache capacity smaller than the
	// per-access item size; every put of the run would be rejected, so
	// the configuration is refused before any trial starts.
	ErrCapacityTooSmall = errors.New("bench: capacity smaller than item size")

	// ErrInvalidParallelism indicates a negative parallelism bound.
	ErrInvalidParallelism = errors.New("bench: parallelism must not be negative")

	// ErrInvalidWindow indicates a negative locality window length.
	ErrInvalidWindow = errors.New("bench: locality window must not be negative")
)
