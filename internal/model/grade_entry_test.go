package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/markbook/internal/common"
)

func TestParseGradeEntry(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		fields  []string
		want    GradeEntry
	}{
		{
			name:   "valid record",
			fields: []string{"Unit 1 Test", "Oct 10", "application", "10.4", "95"},
			want: GradeEntry{
				Title:        "Unit 1 Test",
				Date:         "Oct 10",
				Category:     CategoryApplication,
				WeightFactor: 10.4,
				Grade:        95,
			},
		},
		{
			name:   "grade above 100 is allowed",
			fields: []string{"Bonus Quiz", "Oct 11", "Thinking", "1", "104.5"},
			want: GradeEntry{
				Title:        "Bonus Quiz",
				Date:         "Oct 11",
				Category:     CategoryThinking,
				WeightFactor: 1,
				Grade:        104.5,
			},
		},
		{
			name:    "four fields",
			fields:  []string{"Unit 1 Test", "Oct 10", "Application", "10.4"},
			wantErr: common.ErrInvalidEntry,
		},
		{
			name:    "six fields",
			fields:  []string{"Unit 1 Test", "Oct 10", "Application", "10.4", "95", "extra"},
			wantErr: common.ErrInvalidEntry,
		},
		{
			name:    "unknown category",
			fields:  []string{"Participation", "Oct 10", "Effort", "5", "90"},
			wantErr: common.ErrUnknownCategory,
		},
		{
			name:    "weight is not a number",
			fields:  []string{"Unit 1 Test", "Oct 10", "Knowledge", "heavy", "95"},
			wantErr: common.ErrInvalidEntry,
		},
		{
			name:    "grade is not a number",
			fields:  []string{"Unit 1 Test", "Oct 10", "Knowledge", "10", "A+"},
			wantErr: common.ErrInvalidEntry,
		},
		{
			name:    "zero weight",
			fields:  []string{"Unit 1 Test", "Oct 10", "Knowledge", "0", "95"},
			wantErr: common.ErrInvalidEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGradeEntry(tt.fields)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, GradeEntry{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGradeEntry_Validation(t *testing.T) {
	_, err := NewGradeEntry("Quiz", "Sep 1", Category(9), 1, 80)
	assert.ErrorIs(t, err, common.ErrUnknownCategory)

	_, err = NewGradeEntry("Quiz", "Sep 1", CategoryKnowledge, -2, 80)
	assert.ErrorIs(t, err, common.ErrInvalidEntry)

	_, err = NewGradeEntry("Quiz", "Sep 1", CategoryKnowledge, 2, math.NaN())
	assert.ErrorIs(t, err, common.ErrInvalidEntry)

	entry, err := NewGradeEntry("Quiz", "Sep 1", CategoryKnowledge, 2, 80)
	require.NoError(t, err)
	assert.Equal(t, CategoryKnowledge, entry.Category)
}

func TestGradeEntry_FieldsRoundTrip(t *testing.T) {
	entry, err := NewGradeEntry("1-Var Stats Quiz", "Sep 26", CategoryCommunication, 4.2, 82)
	require.NoError(t, err)

	fields := entry.Fields()
	assert.Equal(t, []string{"1-Var Stats Quiz", "Sep 26", "Communication", "4.2", "82"}, fields)

	parsed, err := ParseGradeEntry(fields)
	require.NoError(t, err)
	assert.Equal(t, entry, parsed)
}
