package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.SkipCohort(61) || !cfg.SkipCohort(120) {
		t.Error("default missing-cohort set should contain 61 and 120")
	}
	if cfg.SkipCohort(60) {
		t.Error("cohort 60 must not be skipped")
	}
}

func TestValidateRejectsBadMode(t *testing.T) {
	cfg := Default()
	cfg.Mode = "some"
	if err := cfg.Validate(); err == nil {
		t.Fatal("mode \"some\" accepted")
	}
}

func TestValidateRejectsBadRefreshSchedule(t *testing.T) {
	cfg := Default()
	cfg.Refresh = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("refresh schedule \"bogus\" accepted")
	}
	for _, spec := range []string{"", "*/30 * * * *", "@every 30m"} {
		cfg.Refresh = spec
		if err := cfg.Validate(); err != nil {
			t.Errorf("refresh schedule %q rejected: %v", spec, err)
		}
	}
}

func TestNormalizeLowercasesMode(t *testing.T) {
	cfg := Default()
	cfg.Mode = "All"
	cfg.Normalize()
	if cfg.Mode != ModeAll {
		t.Fatalf("mode = %q, want %q", cfg.Mode, ModeAll)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("normalized mode rejected: %v", err)
	}
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Mars/Olympus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("bogus timezone accepted")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	// First load creates the file with defaults.
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	cfg.Cohorts.End = 80
	cfg.Mode = ModeClinics
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cohorts.End != 80 || got.Mode != ModeClinics {
		t.Errorf("round-trip lost fields: %+v", got)
	}
	// Normalization refilled untouched defaults.
	if got.Timezone != "Canada/Eastern" || got.Workers != 4 {
		t.Errorf("normalized defaults missing: %+v", got)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cohorts.Boundary != 60 {
		t.Errorf("boundary = %d, want 60", cfg.Cohorts.Boundary)
	}
}

func TestSheetLayoutOverride(t *testing.T) {
	cfg := Default()
	if got := cfg.SheetLayout(); len(got.Periods) != 4 {
		t.Errorf("default layout periods = %d, want 4", len(got.Periods))
	}

	custom := cfg.SheetLayout()
	custom.Periods = custom.Periods[:1]
	cfg.Layout = &custom
	if got := cfg.SheetLayout(); len(got.Periods) != 1 {
		t.Errorf("layout override ignored")
	}
}
