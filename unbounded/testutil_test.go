// SPDX-License-Identifier: MIT

package unbounded_test

import "math/rand"

// starterWeights and starterValues are the 48-item catalog of the example
// program; starterCapacity is its capacity.
var (
	starterWeights = []int{1, 1, 1, 1, 1, 3, 3, 3, 3, 4, 5, 5, 5, 5, 5, 5, 6, 7, 7, 7, 8, 9, 13, 14, 15, 16, 17, 18, 19, 20, 20, 22, 23, 25, 25, 30, 30, 50, 58, 72, 300, 680, 1105, 3200, 4080, 4280, 4280, 8560}
	starterValues  = []int{245, 95, 95, 95, 75, 345, 345, 345, 285, 340, 1275, 1025, 875, 875, 515, 515, 1140, 1465, 1065, 565, 1280, 1875, 5605, 3230, 7225, 7020, 7515, 7310, 10075, 8300, 6820, 11710, 10885, 12775, 7945, 17070, 10450, 27050, 31510, 26640, 68500, 466600, 544475, 884000, 2479600, 2778600, 4978600, 14957200}
)

const starterCapacity = 29

// seedDet keeps the randomized property tests reproducible.
const seedDet = int64(1487)

// randomCatalog returns n items with weights in [1,maxW] and values in [0,maxV].
func randomCatalog(rng *rand.Rand, n, maxW, maxV int) (weights, values []int) {
	weights = make([]int, n)
	values = make([]int, n)
	for i := 0; i < n; i++ {
		weights[i] = 1 + rng.Intn(maxW)
		values[i] = rng.Intn(maxV + 1)
	}

	return weights, values
}

// bruteForce enumerates every multiset of the first len(weights) item types
// with total weight ≤ capacity and returns the best value.
func bruteForce(weights, values []int, capacity int) int {
	var walk func(idx, room int) int
	walk = func(idx, room int) int {
		if idx == len(weights) {
			return 0
		}
		best := 0
		for k := 0; k*weights[idx] <= room; k++ {
			v := k*values[idx] + walk(idx+1, room-k*weights[idx])
			if v > best {
				best = v
			}
		}

		return best
	}

	return walk(0, capacity)
}
