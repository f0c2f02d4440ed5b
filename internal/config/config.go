package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"dentcal/internal/schedule"
)

// Mode values: whether non-clinic events are carried into the output.
const (
	ModeAll     = "all"
	ModeClinics = "clinics"
)

// Cohorts configures the student id space. The boundary splits the two
// weekly timetable regimes; Missing lists ids with no real student behind
// them this year (skipped silently downstream).
type Cohorts struct {
	Start    int   `yaml:"start" validate:"min=1"`
	End      int   `yaml:"end" validate:"gtefield=Start"`
	Boundary int   `yaml:"boundary" validate:"min=1"`
	Missing  []int `yaml:"missing"`
}

// Config is the application configuration.
type Config struct {
	// Timezone is the IANA zone everything is resolved in.
	Timezone string `yaml:"timezone" validate:"required"`

	// OutputDir is where per-cohort calendars are written.
	OutputDir string `yaml:"output_dir" validate:"required"`

	// Mode controls whether non-clinic events are included ("all") or only
	// generated clinic sessions ("clinics").
	Mode string `yaml:"mode" validate:"oneof=all clinics"`

	// LogLevel: DEBUG, INFO or ERROR.
	LogLevel string `yaml:"log_level"`

	// Workers bounds the per-cohort build pool.
	Workers int `yaml:"workers" validate:"min=1"`

	// Refresh is an optional cron spec; when set, the build re-runs on that
	// schedule instead of exiting after one pass.
	Refresh string `yaml:"refresh,omitempty"`

	// PlaceholderSummaries mark master-calendar events that stand in for
	// individualized clinic sessions (substring match).
	PlaceholderSummaries []string `yaml:"placeholder_summaries" validate:"min=1"`

	Cohorts Cohorts `yaml:"cohorts"`

	// Layout overrides the built-in workbook schema when the sheet shape
	// changes; nil means schedule.DefaultLayout.
	Layout *schedule.Layout `yaml:"layout,omitempty"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		Timezone:             "Canada/Eastern",
		OutputDir:            "calendars",
		Mode:                 ModeAll,
		LogLevel:             "INFO",
		Workers:              4,
		PlaceholderSummaries: []string{"Clinical Practice", "Ancillary Clinics"},
		Cohorts: Cohorts{
			Start:    1,
			End:      120,
			Boundary: 60,
			Missing:  []int{61, 120},
		},
	}
}

// Normalize fills missing/zero values so partially-filled configs behave.
func (c *Config) Normalize() {
	d := Default()
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	// Mode is case-insensitive on input; canonical form is lowercase.
	c.Mode = strings.ToLower(c.Mode)
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if len(c.PlaceholderSummaries) == 0 {
		c.PlaceholderSummaries = d.PlaceholderSummaries
	}
	if c.Cohorts.Start <= 0 {
		c.Cohorts.Start = d.Cohorts.Start
	}
	if c.Cohorts.End <= 0 {
		c.Cohorts.End = d.Cohorts.End
	}
	if c.Cohorts.Boundary <= 0 {
		c.Cohorts.Boundary = d.Cohorts.Boundary
	}
	if c.Cohorts.Missing == nil {
		c.Cohorts.Missing = d.Cohorts.Missing
	}
}

// Validate checks the configuration, including that the timezone resolves,
// the refresh schedule (when set) parses, and any layout override is
// structurally sane.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return err
	}
	if c.Refresh != "" {
		if _, err := cron.ParseStandard(c.Refresh); err != nil {
			return fmt.Errorf("refresh schedule %q: %w", c.Refresh, err)
		}
	}
	if c.Layout != nil {
		if err := c.Layout.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SheetLayout returns the effective workbook schema.
func (c *Config) SheetLayout() schedule.Layout {
	if c.Layout != nil {
		return *c.Layout
	}
	return schedule.DefaultLayout()
}

// SkipCohort reports whether id has no student behind it.
func (c *Config) SkipCohort(id int) bool {
	for _, m := range c.Cohorts.Missing {
		if m == id {
			return true
		}
	}
	return false
}

// Load reads configuration from path. A missing file is first-run: the
// defaults are written there and returned. An empty path just returns the
// defaults without touching disk.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if serr := Save(path, cfg); serr != nil {
				return cfg, serr
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".dentcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
