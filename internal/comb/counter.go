// Package comb provides the combinatorial building blocks the line solver
// needs: a memoized count of ordered compositions, and an index-to-
// arrangement enumerator built on top of it.
package comb

// key is the memo key for Counter: (amount, count).
type key struct {
	amount, count int
}

// Counter memoizes C(a, k): the number of ways to place a indistinguishable
// units into k ordered, non-negative bins.
//
//	C(a, 1) = 1
//	C(a, 2) = a + 1
//	C(a, k) = sum_{x=0..a} C(a-x, k-1)   for k >= 3
//	C(0, k) = 1
//
// Values fit comfortably in int64 for any board this engine is meant to
// solve (a 50x50 puzzle with five-run hints stays far below the int64
// ceiling).
type Counter struct {
	memo map[key]int64
}

// NewCounter returns an empty, ready-to-use Counter.
func NewCounter() *Counter {
	return &Counter{memo: make(map[key]int64)}
}

// Count returns C(amount, count). Negative amount or non-positive count are
// both treated as zero arrangements; callers are expected to only pass
// validated (amount >= 0, count >= 1) pairs (see DistributionEnumerator).
func (c *Counter) Count(amount, count int) int64 {
	if amount < 0 || count < 1 {
		return 0
	}
	if amount == 0 {
		return 1
	}
	if count == 1 {
		return 1
	}
	if count == 2 {
		return int64(amount) + 1
	}

	k := key{amount, count}
	if v, ok := c.memo[k]; ok {
		return v
	}

	var total int64
	for x := 0; x <= amount; x++ {
		total += c.Count(amount-x, count-1)
	}
	c.memo[k] = total
	return total
}
