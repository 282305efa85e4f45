// Package markbook tracks the grade entries of a course and aggregates them
// into a weighted overall grade.
//
// A Course is not safe for concurrent use; callers serialize access per
// course instance.
package markbook

import (
	"fmt"
	"math"

	"github.com/Veraticus/markbook/internal/common"
	"github.com/Veraticus/markbook/internal/model"
)

// ceilTolerance keeps float noise just above a whole number (such as
// 82.00000000000001) from rounding a category up a full point.
const ceilTolerance = 1e-9

// maxScore bounds a category average so it converts to an int exactly.
const maxScore = 1 << 53

// CategoryScores holds the rounded score of each category, indexed by
// model.Category.
type CategoryScores [model.NumCategories]int

// Course owns the grade entries of one course and the weighting used to
// combine its category scores.
type Course struct {
	code      string
	entries   []model.GradeEntry
	scores    CategoryScores
	weighting model.Weighting
	overall   float64
}

// NewCourse creates an empty course. The weighting is not required to sum
// to 1.0.
func NewCourse(code string, weighting model.Weighting) *Course {
	return &Course{
		code:      code,
		weighting: weighting,
	}
}

// Code returns the course code, e.g. MDM4U1.
func (c *Course) Code() string {
	return c.code
}

// Weighting returns the category weighting of the course.
func (c *Course) Weighting() model.Weighting {
	return c.weighting
}

// AddEntry appends an entry, preserving insertion order. The entry is not
// validated here; ComputeOverall rejects entries that fail Validate.
func (c *Course) AddEntry(entry model.GradeEntry) {
	c.entries = append(c.entries, entry)
}

// AddRecord parses a raw five-field record and appends it. Nothing is
// appended when the record is rejected.
func (c *Course) AddRecord(fields []string) error {
	entry, err := model.ParseGradeEntry(fields)
	if err != nil {
		return err
	}
	c.AddEntry(entry)
	return nil
}

// RemoveEntry deletes the entry at the zero-based index. Later entries shift
// down by one.
func (c *Course) RemoveEntry(index int) error {
	if index < 0 || index >= len(c.entries) {
		return fmt.Errorf("%w: index %d, have %d entries", common.ErrIndexOutOfRange, index, len(c.entries))
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
	return nil
}

// Len returns the number of recorded entries.
func (c *Course) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index.
func (c *Course) Entry(index int) (model.GradeEntry, error) {
	if index < 0 || index >= len(c.entries) {
		return model.GradeEntry{}, fmt.Errorf("%w: index %d, have %d entries", common.ErrIndexOutOfRange, index, len(c.entries))
	}
	return c.entries[index], nil
}

// Entries returns a copy of the recorded entries in insertion order.
func (c *Course) Entries() []model.GradeEntry {
	out := make([]model.GradeEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Overall returns the result of the last ComputeOverall call, or 0 if it has
// never run. It is not refreshed by AddEntry or RemoveEntry.
func (c *Course) Overall() float64 {
	return c.overall
}

// CategoryScores returns the rounded category scores from the last
// ComputeOverall call.
func (c *Course) CategoryScores() CategoryScores {
	return c.scores
}

// ComputeOverall buckets the entries by category, takes the weight-factor
// weighted average of each bucket, rounds it up to a whole number and
// combines the four scores with the course weighting. A category without
// entries scores 0. Every entry must pass Validate and every average must
// fit in ±2^53. On error the previous result is kept.
func (c *Course) ComputeOverall() error {
	var (
		totals  [model.NumCategories]float64
		buckets [model.NumCategories][]model.GradeEntry
	)

	for i, entry := range c.entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entry %d %q: %w", i, entry.Title, err)
		}
		totals[entry.Category] += entry.WeightFactor
		buckets[entry.Category] = append(buckets[entry.Category], entry)
	}

	var scores CategoryScores
	for _, category := range model.Categories {
		avg := weightedAverage(buckets[category], totals[category])
		if math.IsNaN(avg) || math.Abs(avg) > maxScore {
			return fmt.Errorf("%w: %s average %v is out of range", common.ErrInvalidEntry, category, avg)
		}
		scores[category] = roundUp(avg)
	}

	var overall float64
	for _, category := range model.Categories {
		overall += float64(scores[category]) * c.weighting.For(category)
	}

	c.scores = scores
	c.overall = overall

	common.LogDebug("Computed overall grade", common.Fields{
		"course":        c.code,
		"entries":       len(c.entries),
		"thinking":      scores[model.CategoryThinking],
		"knowledge":     scores[model.CategoryKnowledge],
		"communication": scores[model.CategoryCommunication],
		"application":   scores[model.CategoryApplication],
		"overall":       overall,
	})

	return nil
}

// String formats the course code and overall grade for display.
func (c *Course) String() string {
	return fmt.Sprintf("Class: %s - Overall: %.2f", c.code, c.overall)
}

func weightedAverage(entries []model.GradeEntry, totalWeight float64) float64 {
	if len(entries) == 0 || totalWeight == 0 {
		return 0
	}
	var result float64
	for _, entry := range entries {
		result += (entry.WeightFactor / totalWeight) * entry.Grade
	}
	return result
}

// roundUp is a ceiling that ignores overshoot up to ceilTolerance. Unlike a
// strict ceiling, (0.1, 82) and (4.2, 82) score 82 rather than 83, and a true
// value of 94+5e-10 scores 94.
func roundUp(v float64) int {
	return int(math.Ceil(v - ceilTolerance))
}
