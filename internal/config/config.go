package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/Veraticus/markbook/internal/common"
	"github.com/Veraticus/markbook/internal/markbook"
	"github.com/Veraticus/markbook/internal/model"
)

// Config is the decoded markbook file.
type Config struct {
	Logging LoggingConfig  `mapstructure:"logging"`
	Courses []CourseConfig `mapstructure:"courses"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CourseConfig describes one course. Each entry is a list of exactly five
// values: title, date, category, weight factor and grade.
type CourseConfig struct {
	Code      string    `mapstructure:"code"`
	Weighting []float64 `mapstructure:"weighting"`
	Entries   [][]any   `mapstructure:"entries"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks course codes are present and unique and that every
// weighting has four non-negative values. Entries are checked when a course
// is built.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Courses))
	for i, course := range c.Courses {
		if strings.TrimSpace(course.Code) == "" {
			return fmt.Errorf("%w: course %d has no code", common.ErrInvalidConfig, i)
		}
		key := strings.ToUpper(course.Code)
		if seen[key] {
			return fmt.Errorf("%w: duplicate course %q", common.ErrInvalidConfig, course.Code)
		}
		seen[key] = true

		w, err := model.WeightingFromSlice(course.Weighting)
		if err != nil {
			return fmt.Errorf("course %s: %w", course.Code, err)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("course %s: %w", course.Code, err)
		}
	}
	return nil
}

// Course returns the course with the given code, ignoring case.
func (c *Config) Course(code string) (CourseConfig, error) {
	for _, course := range c.Courses {
		if strings.EqualFold(course.Code, code) {
			return course, nil
		}
	}
	return CourseConfig{}, fmt.Errorf("%w: %s", common.ErrCourseNotFound, code)
}

// Codes returns every configured course code in file order.
func (c *Config) Codes() []string {
	codes := make([]string, len(c.Courses))
	for i, course := range c.Courses {
		codes[i] = course.Code
	}
	return codes
}

// Build creates a course and adds its entries in file order. A weighting
// that does not sum to 1.0 is accepted with a warning.
func (cc CourseConfig) Build() (*markbook.Course, error) {
	w, err := model.WeightingFromSlice(cc.Weighting)
	if err != nil {
		return nil, fmt.Errorf("course %s: %w", cc.Code, err)
	}
	if !w.Normalized() {
		common.LogWarn("Category weighting does not sum to 1.0", common.Fields{
			"course": cc.Code,
			"sum":    w.Sum(),
		})
	}

	course := markbook.NewCourse(cc.Code, w)
	for i, raw := range cc.Entries {
		fields, err := toFields(raw)
		if err != nil {
			return nil, fmt.Errorf("course %s entry %d: %w", cc.Code, i, err)
		}
		if err := course.AddRecord(fields); err != nil {
			return nil, fmt.Errorf("course %s entry %d: %w", cc.Code, i, err)
		}
	}

	common.LogInfo("Loaded course", common.Fields{
		"course":  cc.Code,
		"entries": course.Len(),
	})

	return course, nil
}

func toFields(raw []any) ([]string, error) {
	fields := make([]string, len(raw))
	for i, v := range raw {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", common.ErrInvalidEntry, i, err)
		}
		fields[i] = s
	}
	return fields, nil
}
