// Package phrases holds the Russian phrase pools of the skill and the random
// source used to pick from them.
package phrases

import (
	"math/rand/v2"
	"time"
)

// Picker makes every random choice of one turn. A Picker is not safe for
// concurrent use; create one per request.
type Picker struct {
	r *rand.Rand
}

// New returns a Picker drawing from src.
func New(src rand.Source) *Picker {
	return &Picker{r: rand.New(src)}
}

// Seeded returns a Picker with a fixed PCG seed, for reproducible dialogues.
func Seeded(seed uint64) *Picker {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ForRequest returns a Picker seeded from the clock.
func ForRequest() *Picker {
	now := uint64(time.Now().UnixNano())
	return Seeded(now)
}

// One returns one of options. It returns "" when there are none.
func (p *Picker) One(options ...string) string {
	if len(options) == 0 {
		return ""
	}
	return options[p.r.IntN(len(options))]
}

// Intn returns a number in [0, n).
func (p *Picker) Intn(n int) int {
	return p.r.IntN(n)
}

// Between returns a number in [lo, hi], bounds included.
func (p *Picker) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + p.r.IntN(hi-lo+1)
}

// Coin returns true half of the time.
func (p *Picker) Coin() bool {
	return p.r.IntN(2) == 0
}
