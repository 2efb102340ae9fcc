// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random is the randomness the simulation draws from. Tests substitute
// fixed sequences.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService wraps math/rand so the whole game can share one seeded source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n). It returns 0 for n <= 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [lo, hi).
func Range(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// ChooseWeighted picks an index from weights proportionally. It returns -1 for
// an empty slice and the first index when no weight is positive.
func ChooseWeighted(r Random, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	pick := r.Float64() * total
	upto := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		upto += w
		if pick < upto {
			return i
		}
	}
	return len(weights) - 1
}

// Sample picks up to k distinct indices from [0, n) without replacement.
func Sample(r Random, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
