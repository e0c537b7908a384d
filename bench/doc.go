// Package bench measures cache hit-ratio behavior under synthetic access
// patterns.
//
// RunOnce replays one access sequence against one cache with get-or-put
// semantics. Runner repeats that over many independently generated
// sequences and reports the mean hit ratio; Compare runs the full
// policy × distribution grid for apples-to-apples comparison.
//
// Each trial owns a private cache and a private random source, so trials
// may run in parallel; the mean is commutative, so reduction order does
// not matter.
package bench
