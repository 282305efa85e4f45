package main

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/Veraticus/markbook/internal/common"
	"github.com/Veraticus/markbook/internal/config"
	"github.com/Veraticus/markbook/internal/markbook"
)

var errNoCourses = errors.New("no courses configured")

// loadConfig decodes the markbook file read by initConfig.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("invalid markbook file", err)
	}
	if len(cfg.Courses) == 0 {
		return nil, common.NewUserError("no courses found; add them to your markbook file", errNoCourses)
	}
	return cfg, nil
}

// loadCourse builds a single course by code.
func loadCourse(cfg *config.Config, code string) (*markbook.Course, error) {
	cc, err := cfg.Course(code)
	if err != nil {
		return nil, common.NewUserError("unknown course "+code, err)
	}
	course, err := cc.Build()
	if err != nil {
		return nil, common.NewUserError("failed to load course "+code, err)
	}
	return course, nil
}
