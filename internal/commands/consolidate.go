package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/collate-dev/collate/internal/config"
	"github.com/collate-dev/collate/internal/export"
	"github.com/collate-dev/collate/internal/ledger"
	"github.com/collate-dev/collate/internal/model"
	"github.com/collate-dev/collate/internal/runlog"
	"github.com/collate-dev/collate/internal/source"
)

func newConsolidateCommand() *cobra.Command {
	var configPath string
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge all source exports into one duplicate-flagged ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output.Path = output
			}
			if format != "" {
				cfg.Output.Format = format
			}
			return runConsolidate(cmd.OutOrStdout(), cfg, filepath.Dir(configPath))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "collate.yaml", "path to collate.yaml")
	cmd.Flags().StringVar(&output, "output", "", "override the output path")
	cmd.Flags().StringVar(&format, "format", "", "override the output format (xlsx or csv)")

	return cmd
}

// sinkFor selects the output sink for a format name.
func sinkFor(format string) (export.Sink, error) {
	switch format {
	case "xlsx":
		return &export.XLSXSink{}, nil
	case "csv":
		return &export.CSVSink{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func runConsolidate(out io.Writer, cfg *config.Config, root string) error {
	sink, err := sinkFor(cfg.Output.Format)
	if err != nil {
		return err
	}

	reg := source.DefaultRegistry()
	inputs := []struct {
		name string
		path string
	}{
		{"amazon", cfg.Sources.Amazon},
		{"paypal", cfg.Sources.PayPal},
		{"bank", cfg.Sources.Bank},
		{"gmail", cfg.Sources.Gmail},
	}

	var sets [][]model.Record
	var found, processed, skipped int

	fmt.Fprintln(out, "Processed transactions:")
	for _, in := range inputs {
		if in.path == "" {
			continue
		}

		res, err := parseExport(reg.Get(in.name), resolvePath(root, in.path))
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(out, "%s: file not found, skipping\n", in.name)
				continue
			}
			return fmt.Errorf("loading %s: %w", in.name, err)
		}

		sets = append(sets, res.Records)
		found += res.Rows
		processed += len(res.Records)
		skipped += res.Skipped
		fmt.Fprintf(out, "%s: %d transactions\n", in.name, len(res.Records))
	}

	records, groups := ledger.Assemble(sets...)

	outPath := resolvePath(root, cfg.Output.Path)
	if err := sink.Write(outPath, records, groups); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal: %d transactions\n", len(records))
	fmt.Fprintf(out, "Found %d groups of potential duplicates\n", len(groups))
	fmt.Fprintf(out, "Results saved to %s\n", cfg.Output.Path)

	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		Command:   "consolidate",
		Found:     found,
		Processed: processed,
		Skipped:   skipped,
	}
	if err := runlog.Append(root, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// resolvePath anchors a relative path at the project root. Absolute paths
// pass through untouched so --output can point anywhere.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func parseExport(p source.Parser, path string) (source.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return source.Result{}, err
	}
	defer f.Close()
	return p.Parse(f)
}
