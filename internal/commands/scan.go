package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/collate-dev/collate/internal/config"
	"github.com/collate-dev/collate/internal/logger"
	"github.com/collate-dev/collate/internal/mailbox"
	"github.com/collate-dev/collate/internal/runlog"
)

func newScanCommand() *cobra.Command {
	var configPath string
	var credentials string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the mailbox and write the intermediate transaction CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var opts []option.ClientOption
			if credentials != "" {
				opts = append(opts, option.WithCredentialsFile(credentials))
			}
			svc, err := gmail.NewService(ctx, opts...)
			if err != nil {
				return fmt.Errorf("connecting to gmail: %w", err)
			}

			src := mailbox.NewGmailSource(svc)
			return runScan(ctx, cmd.OutOrStdout(), cfg, src, logger.New(), filepath.Dir(configPath))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "collate.yaml", "path to collate.yaml")
	cmd.Flags().StringVar(&credentials, "credentials", "", "service credentials file (default: ambient credentials)")

	return cmd
}

func runScan(ctx context.Context, out io.Writer, cfg *config.Config, src mailbox.MessageSource, log zerolog.Logger, root string) error {
	query := mailbox.BuildQuery(cfg.Mailbox.Keywords, cfg.Mailbox.After, cfg.Mailbox.Before)
	fmt.Fprintln(out, "Searching for emails...")

	entries, sum, err := mailbox.NewScanner(src, log).Scan(ctx, query)
	if err != nil {
		return err
	}

	outPath := resolvePath(root, cfg.Mailbox.Output)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()
	if err := mailbox.WriteEntries(f, entries); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(out, "Saved %d transactions to %s\n\n", len(entries), cfg.Mailbox.Output)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "Total emails found: %d\n", sum.Found)
	fmt.Fprintf(out, "Successfully processed: %d\n", sum.Processed)
	fmt.Fprintf(out, "Failed/Skipped: %d\n", sum.Skipped)

	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		Command:   "scan",
		Found:     sum.Found,
		Processed: sum.Processed,
		Skipped:   sum.Skipped,
	}
	if err := runlog.Append(root, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}
