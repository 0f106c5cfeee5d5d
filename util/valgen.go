// Some helpers using closures to generate values
package valgen

import "math/rand/v2"

// MakeConstGen always returns constant.
func MakeConstGen(constant uint16) func() uint16 {
	return func() uint16 {
		return constant
	}
}

// MakeIncreasingGen returns start+1, start+2, ... on successive calls,
// wrapping at 16 bits.
func MakeIncreasingGen(start uint16) func() uint16 {
	current := start
	return func() uint16 {
		current++
		return current
	}
}

// MakeShuffleGen returns reproducible permutations of 0..n-1.
func MakeShuffleGen(seed uint64) func(n int) []int {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	return func(n int) []int {
		return r.Perm(n)
	}
}
