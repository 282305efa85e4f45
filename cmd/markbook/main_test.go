package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/markbook/internal/common"
)

const testMarkbook = `
courses:
  - code: MDM4U1
    weighting: [0.25, 0.25, 0.25, 0.25]
    entries:
      - ["Gapminder Investigation", "Sep 6", "Thinking", 12.5, 100]
      - ["Ch5 Vocabulary Assmt", "Sep 10", "Communication", 10.4, 100]
      - ["Ch5 Test Stat Graphs", "Sep 13", "Knowledge", 10.4, 95]
      - ["Ch5 Test Short Answer", "Sep 13", "Application", 12.5, 93]
      - ["1-Var Stats Quiz", "Sep 26", "Knowledge", 4.2, 89]
      - ["1-Var Stats Quiz", "Sep 26", "Communication", 4.2, 82]
      - ["1-Var Unit Test m.c.", "Oct 3", "Knowledge", 10.4, 87]
      - ["1-Var Unit Test", "Oct 3", "Application", 12.5, 96]
      - ["1-Var Unit Test", "Oct 3", "Thinking", 12.5, 100]
      - ["1-Var Unit Test", "Oct 3", "Communication", 10.4, 92]
  - code: MHF4U1
    weighting: [0.5, 0.5, 0.5, 0.5]
    entries:
      - ["Unit 1 Test", "Oct 10", "application", 10.4, 95]
`

func writeMarkbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make(map[string]*cobra.Command)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = sub
	}

	for _, want := range []string{"report", "entries", "courses", "version"} {
		assert.Contains(t, names, want)
	}

	flag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	assert.Equal(t, "info", flag.DefValue)
}

func TestReportCmd(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	out, err := runCmd(t, "--config", path, "report", "MDM4U1", "--breakdown")
	require.NoError(t, err)

	assert.Contains(t, out, "Class: MDM4U1 - Overall: 95.00")
	assert.Contains(t, out, "Knowledge:")
	assert.NotContains(t, out, "MHF4U1")
}

func TestReportCmd_AllCourses(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	out, err := runCmd(t, "--config", path, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "Class: MDM4U1 - Overall: 95.00")
	// Only Application has entries: 95 × 0.5.
	assert.Contains(t, out, "Class: MHF4U1 - Overall: 47.50")
}

func TestReportCmd_Drop(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	// Dropping both Thinking entries (indexes 0 and 8, the latter shifted to 7)
	// leaves Thinking at 0: (0 + 91 + 94 + 95) × 0.25.
	out, err := runCmd(t, "--config", path, "report", "MDM4U1", "--drop", "0", "--drop", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Dropped entry 0 (Gapminder Investigation) from MDM4U1")
	assert.Contains(t, out, "Dropped entry 7 (1-Var Unit Test) from MDM4U1")
	assert.Contains(t, out, "Class: MDM4U1 - Overall: 70.00")
}

func TestReportCmd_DropErrors(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	_, err := runCmd(t, "--config", path, "report", "MDM4U1", "--drop", "10")
	assert.ErrorIs(t, err, common.ErrIndexOutOfRange)

	_, err = runCmd(t, "--config", path, "report", "--drop", "0")
	assert.Error(t, err)
}

func TestReportCmd_UnknownCourse(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	_, err := runCmd(t, "--config", path, "report", "ENG4U1")
	assert.ErrorIs(t, err, common.ErrCourseNotFound)
}

func TestReportCmd_InvalidEntry(t *testing.T) {
	path := writeMarkbook(t, `
courses:
  - code: MDM4U1
    weighting: [0.25, 0.25, 0.25, 0.25]
    entries:
      - ["Gapminder Investigation", "Sep 6", "Thinking", 12.5]
`)

	_, err := runCmd(t, "--config", path, "report")
	assert.ErrorIs(t, err, common.ErrInvalidEntry)
}

func TestReportCmd_NoCourses(t *testing.T) {
	path := writeMarkbook(t, "logging:\n  level: warn\n")

	_, err := runCmd(t, "--config", path, "report")
	assert.ErrorIs(t, err, errNoCourses)
}

func TestEntriesCmd(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	out, err := runCmd(t, "--config", path, "entries", "mdm4u1")
	require.NoError(t, err)

	assert.Contains(t, out, "MDM4U1 entries")
	assert.Contains(t, out, "Entry #")
	assert.Contains(t, out, "Weight Factor")
	assert.Contains(t, out, "Ch5 Test Stat Graphs")
}

func TestCoursesCmd(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	out, err := runCmd(t, "--config", path, "courses")
	require.NoError(t, err)

	assert.Contains(t, out, "MDM4U1")
	assert.Contains(t, out, "Thinking 0.25")
	assert.Contains(t, out, "sums to 2.00")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "markbook version dev")
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)

	_, err := runCmd(t, "--config", path, "--log-level", "loud", "courses")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLogLevelFromEnv(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)
	t.Setenv("MARKBOOK_LOGGING_LEVEL", "loud")

	_, err := runCmd(t, "--config", path, "courses")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLogLevelFlagOverridesEnv(t *testing.T) {
	path := writeMarkbook(t, testMarkbook)
	t.Setenv("MARKBOOK_LOGGING_LEVEL", "loud")

	_, err := runCmd(t, "--config", path, "--log-level", "warn", "courses")
	assert.NoError(t, err)
}
