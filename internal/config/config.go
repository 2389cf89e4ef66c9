package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const termStartLayout = "2006-01-02"

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"console"` // console 或 json
}

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Catalog     struct {
		Path string `env:"PATH" envDefault:"test-files/course_records.txt"`
	} `envPrefix:"CATALOG_"`
	Schedule struct {
		Title      string `env:"TITLE" envDefault:"My Schedule"`
		ExportPath string `env:"EXPORT_PATH" envDefault:"schedule.txt"`
	} `envPrefix:"SCHEDULE_"`
	Calendar struct {
		TermStart string `env:"TERM_START"` // 形如 2025-08-18，为空时使用本周一
		Weeks     int    `env:"WEEKS" envDefault:"16"`
		Timezone  string `env:"TIMEZONE" envDefault:"America/New_York"`
	} `envPrefix:"CALENDAR_"`
	Log  LogConfig `envPrefix:"LOG_"`
	Seed struct {
		Count          int    `env:"COUNT" envDefault:"30"`
		Output         string `env:"OUTPUT" envDefault:"test-files/generated_course_records.txt"`
		Events         int    `env:"EVENTS" envDefault:"2"`
		ScheduleOutput string `env:"SCHEDULE_OUTPUT" envDefault:"test-files/generated_schedule.txt"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Calendar.Weeks <= 0 {
		return fmt.Errorf("CALENDAR_WEEKS 必须为正数，当前为 %d", cfg.Calendar.Weeks)
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	if cfg.Calendar.TermStart != "" {
		if _, err := time.Parse(termStartLayout, cfg.Calendar.TermStart); err != nil {
			return fmt.Errorf("CALENDAR_TERM_START 格式错误，应形如 2025-08-18: %w", err)
		}
	}
	return nil
}

func (cfg *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("未知的时区 %q: %w", cfg.Calendar.Timezone, err)
	}
	return loc, nil
}

// TermStart 返回学期第一天的零点；没有配置时取 now 所在周的周一
func (cfg *Config) TermStart(now time.Time) (time.Time, error) {
	loc, err := cfg.Location()
	if err != nil {
		return time.Time{}, err
	}

	if cfg.Calendar.TermStart != "" {
		return time.ParseInLocation(termStartLayout, cfg.Calendar.TermStart, loc)
	}

	now = now.In(loc)
	offset := (int(now.Weekday()) + 6) % 7 // 周一为 0
	monday := now.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc), nil
}
