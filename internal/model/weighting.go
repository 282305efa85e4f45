package model

import (
	"fmt"
	"math"

	"github.com/Veraticus/markbook/internal/common"
)

// weightingTolerance absorbs float noise when checking that a weighting sums to one.
const weightingTolerance = 1e-9

// Weighting holds the course-level coefficient of each category, indexed by
// Category (Thinking, Knowledge, Communication, Application).
type Weighting [NumCategories]float64

// WeightingFromSlice converts a loosely sized vector into a Weighting.
func WeightingFromSlice(values []float64) (Weighting, error) {
	var w Weighting
	if len(values) != NumCategories {
		return w, fmt.Errorf("%w: weighting needs %d values, got %d",
			common.ErrInvalidConfig, NumCategories, len(values))
	}
	copy(w[:], values)
	return w, nil
}

// For returns the coefficient applied to category c.
func (w Weighting) For(c Category) float64 {
	return w[c]
}

// Sum returns the total of all coefficients.
func (w Weighting) Sum() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}

// Normalized reports whether the coefficients sum to 1.0.
func (w Weighting) Normalized() bool {
	return math.Abs(w.Sum()-1.0) <= weightingTolerance
}

// Validate ensures no coefficient is negative or non-finite. The sum is not
// checked here; see Normalized.
func (w Weighting) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s weighting must be a non-negative number, got %v",
				common.ErrInvalidConfig, Category(i), v)
		}
	}
	return nil
}
