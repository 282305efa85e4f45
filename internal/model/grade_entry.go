package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/markbook/internal/common"
)

// EntryFieldCount is the number of fields in a raw grade entry record:
// title, date, category, weight factor and grade.
const EntryFieldCount = 5

// GradeEntry is a single assessed piece of work. Values are copied in and
// out of a course, so an entry never changes once recorded.
type GradeEntry struct {
	Title        string
	Date         string
	Category     Category
	WeightFactor float64
	Grade        float64
}

// NewGradeEntry builds an entry from typed fields, checking that the
// category is known and that the weight factor is positive.
func NewGradeEntry(title, date string, category Category, weightFactor, grade float64) (GradeEntry, error) {
	entry := GradeEntry{
		Title:        title,
		Date:         date,
		Category:     category,
		WeightFactor: weightFactor,
		Grade:        grade,
	}
	if err := entry.Validate(); err != nil {
		return GradeEntry{}, err
	}
	return entry, nil
}

// ParseGradeEntry builds an entry from a raw record of exactly
// EntryFieldCount fields in the order title, date, category, weight, grade.
func ParseGradeEntry(fields []string) (GradeEntry, error) {
	if len(fields) != EntryFieldCount {
		return GradeEntry{}, fmt.Errorf("%w: got %d fields, want %d",
			common.ErrInvalidEntry, len(fields), EntryFieldCount)
	}

	category, err := ParseCategory(fields[2])
	if err != nil {
		return GradeEntry{}, err
	}

	weightFactor, err := parseNumber("weight factor", fields[3])
	if err != nil {
		return GradeEntry{}, err
	}

	grade, err := parseNumber("grade", fields[4])
	if err != nil {
		return GradeEntry{}, err
	}

	return NewGradeEntry(fields[0], fields[1], category, weightFactor, grade)
}

// Validate ensures the entry has a known category and usable numbers.
func (e GradeEntry) Validate() error {
	if !e.Category.Valid() {
		return fmt.Errorf("%w: %s", common.ErrUnknownCategory, e.Category)
	}
	if math.IsNaN(e.WeightFactor) || math.IsInf(e.WeightFactor, 0) || e.WeightFactor <= 0 {
		return fmt.Errorf("%w: weight factor must be positive, got %v", common.ErrInvalidEntry, e.WeightFactor)
	}
	if math.IsNaN(e.Grade) || math.IsInf(e.Grade, 0) {
		return fmt.Errorf("%w: grade must be a finite number, got %v", common.ErrInvalidEntry, e.Grade)
	}
	return nil
}

// Fields returns the entry as a raw record, the inverse of ParseGradeEntry.
func (e GradeEntry) Fields() []string {
	return []string{
		e.Title,
		e.Date,
		e.Category.String(),
		strconv.FormatFloat(e.WeightFactor, 'f', -1, 64),
		strconv.FormatFloat(e.Grade, 'f', -1, 64),
	}
}

func parseNumber(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", common.ErrInvalidEntry, name, raw)
	}
	return v, nil
}
