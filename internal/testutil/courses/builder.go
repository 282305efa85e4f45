package courses

import (
	"testing"

	"github.com/Veraticus/markbook/internal/markbook"
	"github.com/Veraticus/markbook/internal/model"
)

// Builder provides a fluent interface for constructing test courses.
type Builder interface {
	// WithCode sets the course code. Defaults to SampleCode.
	WithCode(code string) Builder

	// WithWeighting sets the category weighting. Defaults to EvenWeighting.
	WithWeighting(w model.Weighting) Builder

	// WithEntry appends a typed entry.
	WithEntry(category model.Category, weightFactor, grade float64) Builder

	// WithRecord appends a raw five-field record, failing the test if it is rejected.
	WithRecord(fields ...string) Builder

	// WithSampleEntries appends the sample data management entries.
	WithSampleEntries() Builder

	// Build creates the course. The overall grade is not computed.
	Build() *markbook.Course

	// BuildComputed creates the course and computes its overall grade,
	// failing the test on error.
	BuildComputed() *markbook.Course
}

type courseBuilder struct {
	t         *testing.T
	code      string
	entries   []model.GradeEntry
	weighting model.Weighting
}

// NewBuilder creates a new course builder for the given test.
func NewBuilder(t *testing.T) Builder {
	t.Helper()
	return &courseBuilder{
		t:         t,
		code:      SampleCode,
		weighting: EvenWeighting,
	}
}

func (b *courseBuilder) WithCode(code string) Builder {
	b.code = code
	return b
}

func (b *courseBuilder) WithWeighting(w model.Weighting) Builder {
	b.weighting = w
	return b
}

func (b *courseBuilder) WithEntry(category model.Category, weightFactor, grade float64) Builder {
	b.t.Helper()
	title := category.String() + " task"
	entry, err := model.NewGradeEntry(title, "Sep 1", category, weightFactor, grade)
	if err != nil {
		b.t.Fatalf("invalid test entry: %v", err)
	}
	b.entries = append(b.entries, entry)
	return b
}

func (b *courseBuilder) WithRecord(fields ...string) Builder {
	b.t.Helper()
	entry, err := model.ParseGradeEntry(fields)
	if err != nil {
		b.t.Fatalf("invalid test record %v: %v", fields, err)
	}
	b.entries = append(b.entries, entry)
	return b
}

func (b *courseBuilder) WithSampleEntries() Builder {
	b.entries = append(b.entries, SampleEntries()...)
	return b
}

func (b *courseBuilder) Build() *markbook.Course {
	b.t.Helper()
	course := markbook.NewCourse(b.code, b.weighting)
	for _, entry := range b.entries {
		course.AddEntry(entry)
	}
	return course
}

func (b *courseBuilder) BuildComputed() *markbook.Course {
	b.t.Helper()
	course := b.Build()
	if err := course.ComputeOverall(); err != nil {
		b.t.Fatalf("failed to compute overall for %s: %v", b.code, err)
	}
	return course
}
