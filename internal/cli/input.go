package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/streamstats/exampledata"
	"github.com/emiliopalmerini/streamstats/internal/adapters/otel"
	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/ports"
)

var errInputChoice = errors.New("exactly one of --file or --example is required")

// inputOptions selects the CSV a command reads.
type inputOptions struct {
	file    string
	example bool
}

func (o *inputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Path to ViewingActivity.csv")
	cmd.Flags().BoolVar(&o.example, "example", false, "Use the bundled example data")
}

func (o inputOptions) validate() error {
	if (o.file == "") == !o.example {
		return errInputChoice
	}
	return nil
}

// source names the input for display.
func (o inputOptions) source() string {
	if o.example {
		return exampledata.FileName
	}
	return filepath.Base(o.file)
}

// kind labels the input in metrics without leaking file names.
func (o inputOptions) kind() string {
	if o.example {
		return "example"
	}
	return "file"
}

func (o inputOptions) open() (io.ReadCloser, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.example {
		return io.NopCloser(exampledata.Open()), nil
	}
	f, err := os.Open(o.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", o.file, err)
	}
	return f, nil
}

// loadTable opens the selected input and loads it into a table.
func loadTable(ctx context.Context, svc *analytics.Service, in inputOptions) (*analytics.Table, error) {
	r, err := in.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return svc.Load(ctx, in.kind(), r)
}

// newService wires the analytics service with the configured metrics
// exporter. The returned func flushes the exporter.
func newService(ctx context.Context) (*analytics.Service, func()) {
	var metrics ports.MetricsExporter = otel.NewNoOpExporter()
	previewRows := analytics.DefaultPreviewRows
	if cfg != nil {
		metrics = otel.New(ctx, cfg.OTEL)
		previewRows = cfg.Server.PreviewRows
	}
	return analytics.NewService(metrics, previewRows), func() {
		_ = metrics.Close(context.Background())
	}
}
