package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"hdsview/pkg/amount"
	"hdsview/pkg/links"
	"hdsview/pkg/locale"
	"hdsview/pkg/models"
	"hdsview/pkg/settings"
	"hdsview/pkg/tui"
)

// Version should be set during build
var Version = "dev"

// sampleAmounts are rendered by the settings test in the configured locale.
var sampleAmounts = []string{amount.MinAmount, "1234567.89", amount.MaxAmount}

func main() {
	testFlag := flag.Bool("t", false, "Test settings and exit")
	testLongFlag := flag.Bool("test", false, "Test settings and exit")
	jsonFlag := flag.Bool("json", false, "Output test results as JSON")
	configFlag := flag.String("config", "", "Path to settings file")
	localeFlag := flag.String("locale", "", "Override the UI locale for this run (e.g. de_DE)")
	debugFlag := flag.Bool("debug", false, "Write debug logs to hdsview-debug.log")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hdsview version %s\n", Version)
		os.Exit(0)
	}

	cfgInput := *configFlag
	if cfgInput == "" && len(flag.Args()) > 0 {
		cfgInput = flag.Args()[0]
	}
	path, err := settings.GetPath(cfgInput)
	if err != nil {
		fmt.Printf("Error determining settings path: %v\n", err)
		os.Exit(1)
	}

	if *testFlag || *testLongFlag {
		report := runCheck(path, *localeFlag)
		writeReport(os.Stdout, report, *jsonFlag)
		if !report.ValidStructure {
			os.Exit(1)
		}
		os.Exit(0)
	}

	logger, closeLog, err := newLogger(*debugFlag)
	if err != nil {
		fmt.Printf("Error opening debug log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	vals, err := settings.LoadFromFile(path)
	if err != nil {
		fmt.Printf("Error loading settings from %s: %v\n", path, err)
		os.Exit(1)
	}
	if *localeFlag != "" {
		if !locale.IsSupported(*localeFlag) {
			fmt.Printf("Unsupported locale %q, using %s\n", *localeFlag, locale.DefaultName)
		}
		vals.Locale = *localeFlag
	}
	logger.Info("starting", "version", Version, "settings", path, "locale", vals.Locale)

	s := settings.New(vals, path, logger)
	gate := links.NewGate(links.BrowserOpener(logger), logger)

	if err := tui.Start(s, gate, logger, Version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newLogger keeps the alt-screen clean: logs go to a file with -debug and
// are discarded otherwise.
func newLogger(debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile("hdsview-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, func() { _ = f.Close() }, nil
}

// runCheck validates the settings file at path and renders sample amounts
// in its locale, or in localeOverride when set.
func runCheck(path, localeOverride string) models.TestReport {
	report := models.TestReport{ConfigPath: path, ValidStructure: true}

	if _, err := os.Stat(path); err == nil {
		report.Exists = true
	}

	vals, err := settings.LoadFromFile(path)
	if err != nil {
		report.ValidStructure = false
		report.StructureErrors = append(report.StructureErrors, err.Error())
		return report
	}
	if localeOverride != "" {
		vals.Locale = localeOverride
	}

	if !locale.IsSupported(vals.Locale) {
		report.ValidStructure = false
		report.StructureErrors = append(report.StructureErrors,
			fmt.Sprintf("Locale %q is not supported.", vals.Locale))
	}
	if vals.LockTimeoutMinutes < 0 {
		report.ValidStructure = false
		report.StructureErrors = append(report.StructureErrors,
			fmt.Sprintf("Lock timeout %d is negative.", vals.LockTimeoutMinutes))
	}
	if amount.ParseCurrency(vals.SecondCurrency) == amount.Unknown {
		report.ValidStructure = false
		report.StructureErrors = append(report.StructureErrors,
			fmt.Sprintf("Second currency %q is unknown.", vals.SecondCurrency))
	}

	s := settings.New(vals, "", nil)
	report.Locale = s.Locale()
	report.LanguageName = s.LanguageName()
	report.LinksAllowed = s.IsAllowedExternalLinks()
	report.SecondCurrency = vals.SecondCurrency

	if backups, err := filepath.Glob(path + ".*.bak"); err == nil {
		report.BackupCount = len(backups)
	}

	loc := locale.New(report.Locale)
	report.NeverLabel = loc.Never()
	for _, machine := range sampleAmounts {
		display := locale.ToDisplayAmount(machine, loc)
		sample := models.SampleResult{
			Machine:   machine,
			Display:   display,
			RoundTrip: locale.ToMachineAmount(display, loc) == machine,
		}
		if err := amount.Validate(machine); err != nil {
			sample.Error = err.Error()
		}
		report.Samples = append(report.Samples, sample)
	}
	return report
}

func writeReport(w io.Writer, report models.TestReport, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	_, _ = fmt.Fprintf(w, "Testing settings at: %s\n", report.ConfigPath)
	if !report.Exists {
		_, _ = fmt.Fprintln(w, "File not found, defaults apply.")
	}
	for _, msg := range report.StructureErrors {
		_, _ = fmt.Fprintf(w, "Error: %s\n", msg)
	}
	if !report.ValidStructure {
		return
	}

	_, _ = fmt.Fprintf(w, "Locale: %s (%s)\n", report.Locale, report.LanguageName)
	_, _ = fmt.Fprintf(w, "External links allowed: %t\n", report.LinksAllowed)
	_, _ = fmt.Fprintf(w, "Second currency: %s\n", report.SecondCurrency)
	_, _ = fmt.Fprintf(w, "Backups: %d\n", report.BackupCount)
	for _, s := range report.Samples {
		status := "OK"
		if !s.RoundTrip {
			status = "ROUND TRIP MISMATCH"
		}
		_, _ = fmt.Fprintf(w, "  %-20s -> %-22s %s\n", s.Machine, s.Display, status)
	}
	_, _ = fmt.Fprintf(w, "Never: %s\n", report.NeverLabel)
}
