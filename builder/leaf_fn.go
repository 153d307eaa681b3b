// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultLeafValue is the data of every generated leaf when no LeafFn is set.
const DefaultLeafValue float64 = 1

// LeafFn produces the data of the i-th generated leaf (0-based, in creation
// order) given an optional *rand.Rand. It must be deterministic for a given
// seed.
type LeafFn func(i int, rng *rand.Rand) float64

// DefaultLeafFn always returns DefaultLeafValue.
func DefaultLeafFn(_ int, _ *rand.Rand) float64 { return DefaultLeafValue }

// ConstantLeafFn returns a LeafFn that always yields v.
func ConstantLeafFn(v float64) LeafFn {
	return func(int, *rand.Rand) float64 { return v }
}

// UniformLeafFn returns a LeafFn sampling uniformly in [min, max).
// Panics if max < min. With a nil rng it yields min, so unseeded builds stay
// deterministic.
func UniformLeafFn(min, max float64) LeafFn {
	if max < min {
		panic(fmt.Sprintf("UniformLeafFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(_ int, rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
