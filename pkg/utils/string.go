package utils

import (
	"math/rand"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Rand wraps a seeded source for generating sample data.
type Rand struct {
	r *rand.Rand
}

func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (g *Rand) String(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[g.r.Intn(len(charset))]
	}
	return string(b)
}

func (g *Rand) Intn(n int) int {
	return g.r.Intn(n)
}

// Pick returns a random element of items.
func Pick[T any](g *Rand, items []T) T {
	return items[g.r.Intn(len(items))]
}
