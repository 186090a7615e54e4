// Package months validates month names and suggests the closest valid one
// for a misspelling.
package months

import (
	"fmt"
	"math"

	"github.com/homier/blobtable"
)

var names = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Edit weights. Insertions are cheap so that prefixes ("Sept") land on the
// month they start.
const (
	insertCost     = 1
	deleteCost     = 4
	substituteCost = 4
)

// Validator answers whether a string is an English month name.
type Validator struct {
	set *blobtable.KeySet
}

// New returns a validator holding the twelve month names.
func New(opts ...blobtable.Option) (*Validator, error) {
	set, err := blobtable.NewKeySet(blobtable.NullTerminated(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create month set: %w", err)
	}

	for _, name := range names {
		if _, err := set.Add([]byte(name)); err != nil {
			set.Destroy()
			return nil, fmt.Errorf("failed to add %q: %w", name, err)
		}
	}

	return &Validator{set: set}, nil
}

// Names returns the month names in calendar order.
func Names() []string {
	return names[:]
}

func (v *Validator) Valid(name string) bool {
	return v.set.Has([]byte(name))
}

// Suggest returns the month closest to name. Ties go to the earlier month.
func (v *Validator) Suggest(name string) string {
	best, bestDistance := names[0], math.MaxInt
	for _, candidate := range names {
		if d := Distance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best
}

func (v *Validator) Stats() blobtable.Stats {
	return v.set.Stats()
}

// Close releases the underlying table.
func (v *Validator) Close() {
	v.set.Destroy()
}

// Distance is the weighted edit distance turning from into to.
func Distance(from, to string) int {
	prev := make([]int, len(to)+1)
	curr := make([]int, len(to)+1)

	for j := range prev {
		prev[j] = j * insertCost
	}

	for i := 1; i <= len(from); i++ {
		curr[0] = i * deleteCost

		for j := 1; j <= len(to); j++ {
			sub := substituteCost
			if from[i-1] == to[j-1] {
				sub = 0
			}

			curr[j] = min(
				prev[j]+deleteCost,
				curr[j-1]+insertCost,
				prev[j-1]+sub,
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(to)]
}
