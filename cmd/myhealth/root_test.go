package myhealth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ranjidha/myHealth/internal/service"
)

// resetFlags restores every bound flag var to its registered default.
// Flag values persist across Execute calls within one process, so each
// simulated invocation starts from a clean slate.
func resetFlags() {
	dataFile = ""
	sheetURL = ""
	cacheFile = ""
	sourceName = ""
	verbose = false
	logDate = ""
	logWeight = ""
	logSurya = 0
	logWater = 0
	logFasting = 0
	logBreakfast = ""
	logLunch = ""
	logDinner = ""
	logSnacks = ""
	logNotes = ""
	listFrom = ""
	listTo = ""
	listJSON = false
	dashboardFrom = ""
	dashboardTo = ""
	dashboardRecent = 7
	dashboardJSON = false
	exportFrom = ""
	exportTo = ""
	exportOut = service.ExportFileName
	pullModeName = "merge"
	pullDryRun = false
	serveAddr = ""
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func runCommandExpectError(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("execute %v: expected error, got output %q", args, buf.String())
	}
	return err
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_log.csv")

	out := runCommand(t, "--file", path, "init")
	if !strings.Contains(out, "Initialized health log") {
		t.Fatalf("unexpected first init output: %q", out)
	}
	out = runCommand(t, "--file", path, "init")
	if !strings.Contains(out, "already initialized") {
		t.Fatalf("unexpected second init output: %q", out)
	}
}

func TestHealthLogFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_log.csv")

	runCommand(t, "--file", path, "init")

	out := runCommand(t, "--file", path, "log",
		"--date", "2024-01-05", "--weight", "150.5", "--surya", "12", "--water", "8",
		"--fasting", "16", "--breakfast", "idli", "--notes", "slept well")
	if !strings.Contains(out, "Logged entry for 2024-01-05 (1 total entries)") {
		t.Fatalf("unexpected log output: %q", out)
	}

	out = runCommand(t, "--file", path, "log",
		"--date", "2024-01-04", "--weight", "152", "--surya", "10", "--water", "6",
		"--fasting", "14", "--breakfast", "poha", "--notes", "")
	if !strings.Contains(out, "(2 total entries)") {
		t.Fatalf("unexpected second log output: %q", out)
	}

	out = runCommand(t, "--file", path, "list")
	first := strings.Index(out, "2024-01-04")
	second := strings.Index(out, "2024-01-05")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected ascending list, got: %q", out)
	}

	out = runCommand(t, "--file", path, "today")
	if !strings.Contains(out, "Latest entry (2024-01-05)") {
		t.Fatalf("unexpected today output: %q", out)
	}

	out = runCommand(t, "--file", path, "dashboard")
	if !strings.Contains(out, "Entries: 2 (2024-01-04 .. 2024-01-05)") {
		t.Fatalf("unexpected dashboard output: %q", out)
	}
	if !strings.Contains(out, "Latest weight: 150.5 lbs (-1.5 since first entry)") {
		t.Fatalf("unexpected dashboard weight line: %q", out)
	}

	exportPath := filepath.Join(t.TempDir(), "filtered.csv")
	out = runCommand(t, "--file", path, "export", "--out", exportPath)
	if !strings.Contains(out, "Exported 2 entries") {
		t.Fatalf("unexpected export output: %q", out)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "date,weight_lbs") {
		t.Fatalf("unexpected export header: %q", string(data))
	}

	out = runCommand(t, "--file", path, "delete", "2024-01-04")
	if !strings.Contains(out, "Deleted entry for 2024-01-04") {
		t.Fatalf("unexpected delete output: %q", out)
	}
	out = runCommand(t, "--file", path, "delete", "2024-01-04")
	if !strings.Contains(out, "No entry for 2024-01-04") {
		t.Fatalf("unexpected repeat delete output: %q", out)
	}
}

func TestLogRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_log.csv")

	err := runCommandExpectError(t, "--file", path, "log", "--date", "yesterday")
	if !strings.Contains(err.Error(), "invalid --date") {
		t.Fatalf("unexpected error: %v", err)
	}

	err = runCommandExpectError(t, "--file", path, "log", "--date", "2024-01-05", "--weight=-5")
	if !strings.Contains(err.Error(), "weight must be > 0") {
		t.Fatalf("unexpected error: %v", err)
	}

	err = runCommandExpectError(t, "--file", path, "log", "--date", "2024-01-05", "--weight", "150", "--fasting", "30")
	if !strings.Contains(err.Error(), "fasting window") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteCommandsRejectSheetSource(t *testing.T) {
	err := runCommandExpectError(t, "--source", "sheet", "--sheet-url", "https://example.invalid/pub?output=csv",
		"log", "--date", "2024-01-05", "--weight", "150")
	if !strings.Contains(err.Error(), "read-only") {
		t.Fatalf("unexpected log error: %v", err)
	}

	err = runCommandExpectError(t, "--source", "sheet", "--sheet-url", "https://example.invalid/pub?output=csv",
		"delete", "2024-01-05")
	if !strings.Contains(err.Error(), "read-only") {
		t.Fatalf("unexpected delete error: %v", err)
	}

	err = runCommandExpectError(t, "--source", "sheet", "--sheet-url", "https://example.invalid/pub?output=csv",
		"pull")
	if !strings.Contains(err.Error(), "read-only sheet source") {
		t.Fatalf("unexpected pull error: %v", err)
	}
}

func TestPullFromPublishedSheet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("date,weight_lbs,surya_namaskar,water_glasses_8oz,fasting_window_hours,breakfast,lunch,dinner,snacks,notes\n" +
			"2024-01-05,151.0,12,8,16,idli,dal,roti,nuts,from sheet\n" +
			"2024-01-06,,0,6,14,poha,,,,\n"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "health_log.csv")
	cachePath := filepath.Join(dir, "sheet_cache.db")

	out := runCommand(t, "--file", path, "--sheet-url", ts.URL, "--cache", cachePath, "pull")
	if !strings.Contains(out, "Fetched: 2") || !strings.Contains(out, "Inserted: 2") {
		t.Fatalf("unexpected pull output: %q", out)
	}

	out = runCommand(t, "--file", path, "list")
	if !strings.Contains(out, "2024-01-05") || !strings.Contains(out, "2024-01-06") {
		t.Fatalf("expected pulled entries in list, got: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	if !strings.Contains(out, "myhealth dev") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
