package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/chart"
	"github.com/emiliopalmerini/streamstats/internal/util"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render every chart to image files",
	Long: `Render the monthly, weekly and weekday charts of every profile plus the
monthly comparison to SVG or PNG files.

Examples:
  streamstats report --example
  streamstats report -f ViewingActivity.csv -o charts --format png`,
	RunE: runReport,
}

var (
	reportInput  inputOptions
	reportOut    string
	reportFormat string
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportInput.register(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output directory (default: $XDG_DATA_HOME/streamstats/reports)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "svg", "Image format: svg, png")
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := reportInput.validate(); err != nil {
		return err
	}
	format, err := chart.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	outDir := reportOut
	if outDir == "" {
		if outDir, err = util.ReportsDir(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	svc, closeMetrics := newService(ctx)
	defer closeMetrics()

	table, err := loadTable(ctx, svc, reportInput)
	if err != nil {
		return err
	}

	written, err := writeCharts(ctx, table, outDir, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range written {
		fmt.Fprintln(out, path)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d charts for %d profiles to %s\n", len(written), len(table.Profiles()), outDir)
	return nil
}

// writeCharts renders every chart of table into outDir. Profiles are
// rendered concurrently, each into its own files.
func writeCharts(ctx context.Context, table *analytics.Table, outDir string, format chart.Format) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	profiles := table.Profiles()
	names := fileStems(profiles)
	written := make([][]string, len(profiles)+1)

	g, gctx := errgroup.WithContext(ctx)

	for i, profile := range profiles {
		i, profile := i, profile
		g.Go(func() error {
			charts := []struct {
				suffix string
				series analytics.Series
			}{
				{"monthly", table.MonthlyHours(profile)},
				{"weekly", table.WeeklyHours(profile)},
				{"weekday", table.WeekdayPercent(profile)},
			}
			for _, c := range charts {
				if err := gctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(outDir, names[i]+"-"+c.suffix+format.Ext())
				ok, err := writeChart(path, func(f *os.File) error { return chart.Bar(f, c.series, format) })
				if err != nil {
					return fmt.Errorf("%s: %w", profile, err)
				}
				if ok {
					written[i] = append(written[i], path)
				}
			}
			log.Debug().Str("profile", profile).Int("charts", len(written[i])).Msg("Profile charts written")
			return nil
		})
	}

	g.Go(func() error {
		path := filepath.Join(outDir, "comparison"+format.Ext())
		ok, err := writeChart(path, func(f *os.File) error { return chart.Lines(f, table.MonthlyComparison(), format) })
		if err != nil {
			return err
		}
		if ok {
			written[len(profiles)] = []string{path}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var paths []string
	for _, w := range written {
		paths = append(paths, w...)
	}
	sort.Strings(paths)
	return paths, nil
}

// writeChart creates path and renders into it. An empty series leaves no
// file behind and reports ok=false.
func writeChart(path string, render func(*os.File) error) (ok bool, err error) {
	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}

	renderErr := render(f)
	closeErr := f.Close()
	if errors.Is(renderErr, chart.ErrEmptySeries) {
		_ = os.Remove(path)
		return false, nil
	}
	if renderErr != nil {
		_ = os.Remove(path)
		return false, renderErr
	}
	if closeErr != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, closeErr)
	}
	return true, nil
}

// fileStems maps profiles to distinct file name stems. Profiles whose slugs
// collide get a numeric suffix in first-appearance order.
func fileStems(profiles []string) []string {
	seen := make(map[string]int, len(profiles))
	stems := make([]string, len(profiles))
	for i, p := range profiles {
		stem := util.Slug(p)
		seen[stem]++
		if n := seen[stem]; n > 1 {
			stem += "-" + strconv.Itoa(n)
		}
		stems[i] = stem
	}
	return stems
}
