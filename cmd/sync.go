package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"
	"catalog-sync/feature/books"
	"catalog-sync/feature/books/gormstore"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/validate"
	"catalog-sync/feature/storefront"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	dryRunSync     bool
	skipValidation bool
	archiveRun     bool
)

// syncCmd runs one full sync pass from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the variant listing and converge the accounting store",
	Long: `Fetch every product variant from the storefront, validate the batch,
and create or update the matching inventory items.

A failing validation halts the pass before any write. Per-product sync
failures are logged and counted but do not stop the rest of the batch.

Examples:
  # Full pass
  sync

  # Plan only, no writes
  sync --dry-run

  # Push through a batch that fails validation
  sync --skip-validation

  # Snapshot the batch, report and summary to object storage
  sync --archive`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan the pass without writing to the accounting store")
	syncCmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "Run even when the batch fails validation")
	syncCmd.Flags().BoolVar(&archiveRun, "archive", false, "Store the run snapshot in object storage")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting catalog sync",
		zap.Bool("dry_run", dryRunSync),
		zap.Bool("skip_validation", skipValidation),
	)

	svc, err := buildCatalogService(ctx, cfg, l)
	if err != nil {
		return err
	}

	summary, err := svc.Sync(ctx, catalog.SyncOptions{
		DryRun:         dryRunSync,
		SkipValidation: skipValidation,
		Archive:        archiveRun,
	})
	if errors.Is(err, catalog.ErrValidationFailed) {
		fmt.Print(validate.Render(*summary.Report))
		return err
	}
	if err != nil {
		return err
	}

	l.Info("Run summary",
		zap.String("run_id", summary.RunID),
		zap.Int("fetched", summary.Fetched),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("renamed", summary.Renamed),
		zap.Int("failed", summary.Failed),
	)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d products failed to sync", summary.Failed, summary.Fetched)
	}
	return nil
}

// buildCatalogService wires the full pipeline from configuration: database,
// accounting store with cache, storefront client, and object storage.
func buildCatalogService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*catalog.Service, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gs, err := gormstore.New(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize accounting store: %w", err)
	}

	// Schema sanity check after migration; missing columns mean the
	// database user lacks ALTER rights or migration was skipped.
	missing, err := gs.CheckSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to check schema: %w", err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("inventory items table is missing columns: %v", missing)
	}

	if err := gs.EnsureDefaultAccounts(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure ledger accounts: %w", err)
	}

	store := books.NewCachedStore(gs, time.Duration(cfg.Books.CacheTTLSeconds)*time.Second)
	source := storefront.NewClient(cfg.Storefront)

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return catalog.NewService(source, store, client, cfg.Storage.Bucket, l), nil
}
