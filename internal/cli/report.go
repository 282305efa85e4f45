package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Veraticus/markbook/internal/markbook"
	"github.com/Veraticus/markbook/internal/model"
)

// EntryHeaders are the column titles of the entry table.
var EntryHeaders = []string{"Entry #", "Title", "Date", "Category", "Weight Factor", "Mark"}

var titleCaser = cases.Title(language.English)

// EntryRows returns one row per entry, numbered by removal index.
func EntryRows(entries []model.GradeEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		fields := entry.Fields()
		rows = append(rows, []string{
			strconv.Itoa(i),
			titleCaser.String(fields[0]),
			fields[1],
			fields[2],
			fields[3],
			fields[4],
		})
	}
	return rows
}

// RenderEntries renders the course's entries as a table.
func RenderEntries(course *markbook.Course) string {
	entries := course.Entries()
	if len(entries) == 0 {
		return SubtleStyle.Render(fmt.Sprintf("No entries recorded for %s.", course.Code()))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(EntryHeaders...).
		Rows(EntryRows(entries)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	return t.String()
}

// FormatSummary styles the course summary line.
func FormatSummary(course *markbook.Course) string {
	return TitleStyle.Render(course.String())
}

// FormatBreakdown lists each category's rounded score beside its weighting.
func FormatBreakdown(course *markbook.Course) string {
	scores := course.CategoryScores()
	weighting := course.Weighting()

	lines := make([]string, 0, model.NumCategories)
	for _, category := range model.Categories {
		lines = append(lines, fmt.Sprintf("  %-14s %3d  %s",
			category.String()+":",
			scores[category],
			SubtleStyle.Render(fmt.Sprintf("× %s", formatNumber(weighting.For(category))))))
	}
	return strings.Join(lines, "\n")
}

// FormatWeighting renders a weighting as Thinking/Knowledge/Communication/Application.
func FormatWeighting(w model.Weighting) string {
	parts := make([]string, 0, model.NumCategories)
	for _, category := range model.Categories {
		parts = append(parts, fmt.Sprintf("%s %s", category.String(), formatNumber(w.For(category))))
	}
	return strings.Join(parts, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
