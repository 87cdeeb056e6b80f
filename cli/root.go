package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"review-advisor/config"
	"review-advisor/models"
	"review-advisor/services"
	"review-advisor/storage"
	"review-advisor/utils"
)

// rootOptions holds global flags. Empty values defer to the environment.
type rootOptions struct {
	snapshot string
	source   string
	logLevel string
	csvPath  string
	jsonOut  bool
}

// env carries everything a subcommand needs once the snapshot is loaded.
type env struct {
	cfg     *config.Config
	logger  *utils.Logger
	advisor *services.AdvisorService
	snap    *models.Snapshot
	report  storage.ReportWriter
	out     io.Writer
	jsonOut bool
	runID   string
}

// Execute runs the command tree.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand creates the root command with all global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "review-advisor",
		Short:         "Ranked product recommendations from pre-aggregated review analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.snapshot, "snapshot", "", "snapshot file path (default: $SNAPSHOT_PATH)")
	pf.StringVar(&opts.source, "source", "", "snapshot source: file|postgres (default: $SNAPSHOT_SOURCE)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (default: $LOG_LEVEL)")
	pf.StringVar(&opts.csvPath, "csv", "", "also export results to this CSV file")
	pf.BoolVar(&opts.jsonOut, "json", false, "print JSON instead of text")

	cmd.AddCommand(
		newAdviseCmd(opts),
		newBuyerCmd(opts),
		newSupplierCmd(opts),
		newPortfolioCmd(opts),
		newFiltersCmd(opts),
	)
	return cmd
}

// setup loads configuration and the snapshot. The returned closer releases
// the report writer.
func setup(cmd *cobra.Command, opts *rootOptions) (*env, func(), error) {
	cfg := config.Load()
	if opts.snapshot != "" {
		cfg.SnapshotPath = opts.snapshot
	}
	if opts.source != "" {
		cfg.SnapshotSource = opts.source
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.csvPath != "" {
		cfg.ReportCSVPath = opts.csvPath
	}

	logger := utils.NewLoggerWithLevel(cfg.LogLevel, os.Stderr)
	ctx := cmd.Context()

	source, err := openSource(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	raw, err := loadSnapshot(ctx, source, logger)
	if err != nil {
		return nil, nil, err
	}

	e := &env{
		cfg:     cfg,
		logger:  logger,
		advisor: services.NewAdvisorService(logger, cfg.USDToINR),
		snap:    services.NewCleaner(logger).Clean(raw),
		out:     cmd.OutOrStdout(),
		jsonOut: opts.jsonOut,
		runID:   uuid.NewString(),
	}

	closer := func() {}
	if cfg.ReportCSVPath != "" {
		w, err := storage.NewCSVWriter(cfg.ReportCSVPath)
		if err != nil {
			return nil, nil, err
		}
		e.report = w
		closer = func() {
			if err := w.Close(); err != nil {
				logger.Error("[cli] Closing CSV export failed: %v", err)
			}
		}
	}
	return e, closer, nil
}

// loadSnapshot reads one snapshot and releases the source. A failed close is
// logged; the snapshot is still used.
func loadSnapshot(ctx context.Context, source storage.SnapshotSource, logger *utils.Logger) (*models.Snapshot, error) {
	raw, err := source.Load(ctx)
	if cerr := source.Close(); cerr != nil {
		logger.Error("[cli] Closing snapshot source failed: %v", cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return raw, nil
}

func openSource(ctx context.Context, cfg *config.Config, logger *utils.Logger) (storage.SnapshotSource, error) {
	switch cfg.SnapshotSource {
	case config.SourceFile:
		logger.Info("[cli] Loading snapshot from %s", cfg.SnapshotPath)
		return storage.NewFileSource(cfg.SnapshotPath), nil
	case config.SourcePostgres:
		logger.Info("[cli] Loading snapshot %q from PostgreSQL", cfg.SnapshotDataset)
		retry := &utils.RetryConfig{MaxAttempts: cfg.MaxRetries, BaseDelay: 2 * time.Second, Logger: logger}
		return storage.NewPostgresSource(ctx, cfg.DSN(), cfg.SnapshotDataset, retry)
	default:
		return nil, fmt.Errorf("unknown snapshot source %q", cfg.SnapshotSource)
	}
}

func (e *env) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(e.out, string(data))
	return err
}
