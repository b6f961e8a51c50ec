package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the aggregated series to JSON or CSV",
	Long: `Export the per-profile series and the monthly comparison for external
analysis.

Examples:
  streamstats export --example --format json
  streamstats export -f ViewingActivity.csv --format csv --output series.csv`,
	RunE: runExport,
}

// Flags
var (
	exportInput  inputOptions
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportInput.register(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// ExportRow is one aggregated value in the CSV export.
type ExportRow struct {
	Profile string
	Series  string
	Label   string
	Value   float64
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := exportInput.validate(); err != nil {
		return err
	}
	if exportFormat != "json" && exportFormat != "csv" {
		return fmt.Errorf("unsupported format: %s (use json or csv)", exportFormat)
	}

	ctx := cmd.Context()
	svc, closeMetrics := newService(ctx)
	defer closeMetrics()

	table, err := loadTable(ctx, svc, exportInput)
	if err != nil {
		return err
	}
	report := analytics.Summarize(table, 0)
	report.Source = exportInput.source()

	var output io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		output = f
	}

	if err := writeExport(output, report, exportFormat); err != nil {
		return err
	}

	if exportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d profiles to %s\n", len(report.Profiles), exportOutput)
	}
	return nil
}

func writeExport(w io.Writer, report *analytics.Report, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "csv":
		writer := csv.NewWriter(w)

		if err := writer.Write([]string{"profile", "series", "label", "value"}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, row := range exportRows(report) {
			record := []string{row.Profile, row.Series, row.Label, strconv.FormatFloat(row.Value, 'f', -1, 64)}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("failed to flush CSV: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s (use json or csv)", format)
	}
	return nil
}

// exportRows flattens the report into long format, profile by profile.
func exportRows(report *analytics.Report) []ExportRow {
	var rows []ExportRow
	for _, p := range report.Profiles {
		for _, s := range []struct {
			name   string
			series analytics.Series
		}{
			{"monthly_hours", p.Monthly},
			{"weekly_hours", p.Weekly},
			{"weekday_percent", p.Weekday},
		} {
			for _, pt := range s.series.Points {
				rows = append(rows, ExportRow{
					Profile: p.Summary.Profile,
					Series:  s.name,
					Label:   pt.Label,
					Value:   pt.Value,
				})
			}
		}
	}
	return rows
}
