package cmd

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/parse"
	"catalog-sync/feature/catalog/validate"
	"catalog-sync/feature/storefront"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd screens the current listing without touching the accounting store.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Fetch the variant listing and report validation errors",
	Long: `Fetch every product variant from the storefront and screen the batch
against the publishing rules: required fields, name shape, and uniqueness
of names, SKUs and barcodes.

Prints a per-variant report and exits non-zero when any variant fails.`,
	RunE: runValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	source := storefront.NewClient(cfg.Storefront)
	raw, err := storefront.FetchAll(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to fetch variants: %w", err)
	}
	l.Info("Fetched variant listing", zap.Int("count", len(raw)))

	report := validate.Batch(parse.Batch(raw))
	fmt.Print(validate.Render(report))

	if !report.OK {
		return errors.New("validation failed")
	}
	return nil
}
