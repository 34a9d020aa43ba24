package profile

import "math/rand/v2"

// Subset draws between minItems and maxItems distinct entries from pool,
// choosing the count uniformly first. Bounds are clamped to the pool size so
// a shrinking vocabulary degrades to smaller subsets instead of failing.
func Subset(r *rand.Rand, pool []string, minItems, maxItems int) []string {
	n := len(pool)
	maxItems = clamp(maxItems, 0, n)
	minItems = clamp(minItems, 0, maxItems)

	count := intBetween(r, minItems, maxItems)

	// partial Fisher-Yates over a copy
	buf := make([]string, n)
	copy(buf, pool)
	for i := range count {
		j := i + r.IntN(n-i)
		buf[i], buf[j] = buf[j], buf[i]
	}

	out := make([]string, count)
	copy(out, buf[:count])
	return out
}

// intBetween returns a uniform int in [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func pick[T any](r *rand.Rand, options []T) T {
	return options[r.IntN(len(options))]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
