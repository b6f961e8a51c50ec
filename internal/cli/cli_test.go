package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/chart"
	"github.com/emiliopalmerini/streamstats/internal/domain"
)

func testTable() *analytics.Table {
	return analytics.NewTable([]domain.ViewingRecord{
		domain.NewViewingRecord("Alice", time.Date(2023, 1, 10, 20, 0, 0, 0, time.UTC), 3600),
		domain.NewViewingRecord("Bob", time.Date(2023, 2, 14, 21, 0, 0, 0, time.UTC), 7200),
	})
}

func TestInputOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    inputOptions
		wantErr bool
	}{
		{"neither", inputOptions{}, true},
		{"both", inputOptions{file: "a.csv", example: true}, true},
		{"file", inputOptions{file: "a.csv"}, false},
		{"example", inputOptions{example: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errInputChoice) {
				t.Errorf("expected errInputChoice, got %v", err)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	svc, closeMetrics := newService(context.Background())
	defer closeMetrics()

	table, err := loadTable(context.Background(), svc, inputOptions{example: true})
	if err != nil {
		t.Fatalf("loadTable failed: %v", err)
	}
	if table.Len() == 0 || len(table.Profiles()) < 2 {
		t.Errorf("unexpected example table: %d records, %v", table.Len(), table.Profiles())
	}

	path := filepath.Join(t.TempDir(), "ViewingActivity.csv")
	content := "Profile Name,Start Time,Duration\nAlice,2023-01-15 20:14:00,00:10:00\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	table, err = loadTable(context.Background(), svc, inputOptions{file: path})
	if err != nil {
		t.Fatalf("loadTable failed: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 record, got %d", table.Len())
	}

	if _, err := loadTable(context.Background(), svc, inputOptions{file: filepath.Join(t.TempDir(), "missing.csv")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	written, err := writeCharts(context.Background(), testTable(), dir, chart.SVG)
	if err != nil {
		t.Fatalf("writeCharts failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "alice-monthly.svg"),
		filepath.Join(dir, "alice-weekday.svg"),
		filepath.Join(dir, "alice-weekly.svg"),
		filepath.Join(dir, "bob-monthly.svg"),
		filepath.Join(dir, "bob-weekday.svg"),
		filepath.Join(dir, "bob-weekly.svg"),
		filepath.Join(dir, "comparison.svg"),
	}
	if !reflect.DeepEqual(written, want) {
		t.Fatalf("written = %v, want %v", written, want)
	}
	for _, path := range written {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, []byte("<svg")) {
			t.Errorf("%s is not an SVG", path)
		}
	}
}

func TestWriteCharts_PNG(t *testing.T) {
	dir := t.TempDir()

	written, err := writeCharts(context.Background(), testTable(), dir, chart.PNG)
	if err != nil {
		t.Fatalf("writeCharts failed: %v", err)
	}
	if len(written) != 7 {
		t.Fatalf("expected 7 files, got %d", len(written))
	}
	data, err := os.ReadFile(filepath.Join(dir, "comparison.png"))
	if err != nil {
		t.Fatalf("read comparison: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("expected PNG magic bytes")
	}
}

func TestWriteCharts_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := writeCharts(ctx, testTable(), t.TempDir(), chart.SVG); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFileStems(t *testing.T) {
	got := fileStems([]string{"Anna", "anna", "Kids", "ANNA"})
	want := []string{"anna", "anna-2", "kids", "anna-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fileStems = %v, want %v", got, want)
	}
}

func TestRenderSummary(t *testing.T) {
	report := analytics.Summarize(testTable(), 0)
	report.Source = "test.csv"

	var buf bytes.Buffer
	if err := renderSummary(&buf, report); err != nil {
		t.Fatalf("renderSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Netflix Streaming Behavior", "2 records, 2 profiles, from test.csv", "Alice", "Bob", "Tuesday", "100.00%", "2.0h"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteExport_CSV(t *testing.T) {
	report := analytics.Summarize(testTable(), 0)

	var buf bytes.Buffer
	if err := writeExport(&buf, report, "csv"); err != nil {
		t.Fatalf("writeExport failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	if !reflect.DeepEqual(rows[0], []string{"profile", "series", "label", "value"}) {
		t.Errorf("unexpected header %v", rows[0])
	}
	// per profile: 1 month, 1 week, 7 weekdays
	if len(rows) != 1+2*9 {
		t.Errorf("expected 19 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[1], []string{"Alice", "monthly_hours", "2023-01", "1"}) {
		t.Errorf("unexpected first row %v", rows[1])
	}
}

func TestWriteExport_JSON(t *testing.T) {
	report := analytics.Summarize(testTable(), 0)

	var buf bytes.Buffer
	if err := writeExport(&buf, report, "json"); err != nil {
		t.Fatalf("writeExport failed: %v", err)
	}

	var decoded analytics.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Profiles) != 2 || decoded.Comparison.Title != "Monthly Hours Watched Comparison" {
		t.Errorf("unexpected export %+v", decoded)
	}
}

func TestWriteExport_UnknownFormat(t *testing.T) {
	if err := writeExport(&bytes.Buffer{}, &analytics.Report{}, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"serve": false, "report": false, "summary": false, "export": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %s not registered", name)
		}
	}
}
