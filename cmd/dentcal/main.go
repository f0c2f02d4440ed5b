package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"dentcal/internal/build"
	"dentcal/internal/config"
	"dentcal/internal/ics"
	appLog "dentcal/internal/log"
	"dentcal/internal/schedule"
	"dentcal/internal/sheet"
	"dentcal/internal/timetable"
)

type flagConfig struct {
	configPath string
	outputDir  string
	start      int
	end        int
	mode       string
	refresh    string
	logLevel   string
}

func main() {
	flags, clinicPath, calendarPath := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	applyFlags(conf, flags)
	conf.Normalize()
	if err := conf.Validate(); err != nil {
		appLog.Error("invalid configuration", err)
		os.Exit(1)
	}
	appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))

	// Fail on unreadable inputs up front, before any expensive work.
	for _, p := range []string{clinicPath, calendarPath} {
		if err := checkReadable(p); err != nil {
			appLog.Error("cannot read input", err, "path", p)
			os.Exit(1)
		}
	}

	appLog.Info("dentcal starting",
		"clinic_file", clinicPath,
		"calendar_file", calendarPath,
		"output_dir", conf.OutputDir,
		"mode", conf.Mode,
		"cohorts", fmt.Sprintf("%d..%d", conf.Cohorts.Start, conf.Cohorts.End),
		"refresh", conf.Refresh,
	)

	if err := runBuild(conf, clinicPath, calendarPath); err != nil {
		appLog.Error("build failed", err)
		os.Exit(1)
	}

	if conf.Refresh == "" {
		return
	}

	// Refresh mode: re-run on the cron schedule until interrupted, so the
	// generated calendars track edits to the rotation sheet.
	c := cron.New()
	if _, err := c.AddFunc(conf.Refresh, func() {
		if err := runBuild(conf, clinicPath, calendarPath); err != nil {
			appLog.Error("scheduled build failed", err)
		}
	}); err != nil {
		appLog.Error("invalid refresh schedule", err, "refresh", conf.Refresh)
		os.Exit(1)
	}
	c.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	appLog.Info("signal received, shutting down", "signal", sig.String())
	<-c.Stop().Done()
}

// runBuild is one full pass: read both inputs, index the sheet, build every
// cohort's calendar.
func runBuild(conf *config.Config, clinicPath, calendarPath string) error {
	loc, err := conf.Location()
	if err != nil {
		return err
	}

	grid, err := sheet.Open(clinicPath, loc)
	if err != nil {
		return err
	}
	source, err := ics.ReadFile(calendarPath, loc)
	if err != nil {
		return err
	}

	cat := schedule.DefaultCatalog()
	resolver := timetable.New(conf.Cohorts.Boundary)
	index, err := schedule.BuildIndex(grid, conf.SheetLayout(), cat, resolver, loc)
	if err != nil {
		return err
	}

	res, err := build.New(conf, cat, index, source, calendarPath).Run()
	if err != nil {
		return err
	}
	for cohort, cerr := range res.Failed {
		appLog.Error("cohort skipped", cerr, "cohort", cohort)
	}
	appLog.Info("calendars generated", "built", len(res.Built), "failed", len(res.Failed))
	return nil
}

func parseFlags() (flagConfig, string, string) {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to config file (optional)")
	flag.StringVar(&cfg.outputDir, "o", "", "Output directory for generated calendars")
	flag.IntVar(&cfg.start, "s", 0, "Starting cohort id (overrides config)")
	flag.IntVar(&cfg.end, "e", 0, "Ending cohort id (overrides config)")
	flag.StringVar(&cfg.mode, "m", "", "Mode: all (full calendar) or clinics (clinic sessions only)")
	flag.StringVar(&cfg.refresh, "refresh", "", "Cron schedule to re-run the build (e.g. \"*/30 * * * *\")")
	flag.StringVar(&cfg.logLevel, "log", "", "Log level: DEBUG, INFO or ERROR")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <clinic.xlsx> <calendar.ics>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	return cfg, flag.Arg(0), flag.Arg(1)
}

func applyFlags(conf *config.Config, flags flagConfig) {
	if flags.outputDir != "" {
		conf.OutputDir = flags.outputDir
	}
	if flags.start > 0 {
		conf.Cohorts.Start = flags.start
	}
	if flags.end > 0 {
		conf.Cohorts.End = flags.end
	}
	if flags.mode != "" {
		conf.Mode = flags.mode
	}
	if flags.refresh != "" {
		conf.Refresh = flags.refresh
	}
	if flags.logLevel != "" {
		conf.LogLevel = flags.logLevel
	}
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
