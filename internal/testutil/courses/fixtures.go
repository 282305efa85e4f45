package courses

import "github.com/Veraticus/markbook/internal/model"

// SampleCode is the course code of the sample data management course.
const SampleCode = "MDM4U1"

// EvenWeighting gives every category a quarter of the overall grade.
var EvenWeighting = model.Weighting{0.25, 0.25, 0.25, 0.25}

// SampleRecords returns the raw records of the sample data management
// course. Thinking scores 100, Knowledge 91, Communication 94 and
// Application 95, for an overall of 95.00 under EvenWeighting.
func SampleRecords() [][]string {
	return [][]string{
		{"Gapminder Investigation", "Sep 6", "Thinking", "12.5", "100"},
		{"Ch5 Vocabulary Assmt", "Sep 10", "Communication", "10.4", "100"},
		{"Ch5 Test Stat Graphs", "Sep 13", "Knowledge", "10.4", "95"},
		{"Ch5 Test Short Answer", "Sep 13", "Application", "12.5", "93"},
		{"1-Var Stats Quiz", "Sep 26", "Knowledge", "4.2", "89"},
		{"1-Var Stats Quiz", "Sep 26", "Communication", "4.2", "82"},
		{"1-Var Unit Test m.c.", "Oct 3", "Knowledge", "10.4", "87"},
		{"1-Var Unit Test", "Oct 3", "Application", "12.5", "96"},
		{"1-Var Unit Test", "Oct 3", "Thinking", "12.5", "100"},
		{"1-Var Unit Test", "Oct 3", "Communication", "10.4", "92"},
	}
}

// SampleEntries returns SampleRecords as typed entries.
func SampleEntries() []model.GradeEntry {
	records := SampleRecords()
	entries := make([]model.GradeEntry, 0, len(records))
	for _, record := range records {
		entry, err := model.ParseGradeEntry(record)
		if err != nil {
			panic(err)
		}
		entries = append(entries, entry)
	}
	return entries
}
