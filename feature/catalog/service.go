package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"catalog-sync/core/storage"
	"catalog-sync/feature/books"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/parse"
	"catalog-sync/feature/catalog/sync"
	"catalog-sync/feature/catalog/validate"
	"catalog-sync/feature/storefront"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrValidationFailed marks a sync pass halted by a failing validation
// batch. The summary returned alongside carries the full report.
var ErrValidationFailed = errors.New("catalog validation failed")

// SyncOptions controls a sync pass.
type SyncOptions struct {
	// DryRun plans the pass without writing to the accounting store.
	DryRun bool
	// SkipValidation runs the pass even when the batch would fail validation.
	SkipValidation bool
	// Archive stores the fetched batch, report and summary in object storage.
	Archive bool
}

// SyncSummary reports what one sync pass did.
type SyncSummary struct {
	// RunID uniquely identifies the pass, also used as the archive prefix.
	RunID string `json:"run_id"`
	// DryRun records whether writes were suppressed.
	DryRun bool `json:"dry_run"`
	// Fetched is the number of variants pulled from the storefront.
	Fetched int `json:"fetched"`
	// Created, Updated, Unchanged and Failed partition the processed
	// products by outcome. Renamed counts stale items moved aside, which
	// can accompany any outcome.
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Renamed   int `json:"renamed"`
	Failed    int `json:"failed"`
	// ValidationOK is the batch verdict. Always true when validation was
	// skipped.
	ValidationOK bool `json:"validation_ok"`
	// Report is the validation report, nil when validation was skipped.
	Report *validate.Report `json:"report,omitempty"`
}

// Service drives the fetch, validate and sync pipeline.
type Service struct {
	source storefront.Source
	store  books.Store
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(source storefront.Source, store books.Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		store:  store,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// FetchVariants pulls the complete variant listing and flattens it.
func (s *Service) FetchVariants(ctx context.Context) ([]models.ProductVariant, error) {
	raw, err := storefront.FetchAll(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch variants: %w", err)
	}
	s.logger.Info("Fetched variant listing", zap.Int("count", len(raw)))
	return parse.Batch(raw), nil
}

// Validate fetches the current listing and screens it.
func (s *Service) Validate(ctx context.Context) (*validate.Report, error) {
	variants, err := s.FetchVariants(ctx)
	if err != nil {
		return nil, err
	}
	report := validate.Batch(variants)
	return &report, nil
}

// Sync runs one full pass: fetch, validate, then converge the accounting
// store product by product. A failing product is logged and counted, never
// fatal; the pass continues with the rest of the batch.
func (s *Service) Sync(ctx context.Context, opts SyncOptions) (*SyncSummary, error) {
	summary := &SyncSummary{
		RunID:        uuid.NewString(),
		DryRun:       opts.DryRun,
		ValidationOK: true,
	}

	variants, err := s.FetchVariants(ctx)
	if err != nil {
		return nil, err
	}
	summary.Fetched = len(variants)

	if !opts.SkipValidation {
		report := validate.Batch(variants)
		summary.Report = &report
		summary.ValidationOK = report.OK
		if !report.OK {
			if opts.Archive {
				if err := s.archiveRun(ctx, summary, variants); err != nil {
					s.logger.Error("Failed to archive run", zap.String("run_id", summary.RunID), zap.Error(err))
				}
			}
			return summary, ErrValidationFailed
		}
	}

	store := s.store
	var dryRun *books.DryRunStore
	if opts.DryRun {
		dryRun = books.NewDryRunStore(s.store)
		store = dryRun
	}

	engine := sync.NewEngine(store, s.logger)
	for _, variant := range variants {
		product := parse.Normalize(variant)

		result, err := engine.SyncProduct(ctx, product)
		if err != nil {
			summary.Failed++
			s.logger.Error("Failed to sync product",
				zap.String("variant_id", variant.ID),
				zap.String("name", product.Name),
				zap.Error(err),
			)
			continue
		}

		if result.Renamed {
			summary.Renamed++
		}
		switch result.Outcome {
		case sync.OutcomeCreated:
			summary.Created++
		case sync.OutcomeUpdated:
			summary.Updated++
		case sync.OutcomeUnchanged:
			summary.Unchanged++
		}
	}

	s.logger.Info("Sync pass complete",
		zap.String("run_id", summary.RunID),
		zap.Bool("dry_run", summary.DryRun),
		zap.Int("fetched", summary.Fetched),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("renamed", summary.Renamed),
		zap.Int("failed", summary.Failed),
	)

	if opts.Archive {
		if err := s.archiveRun(ctx, summary, variants); err != nil {
			s.logger.Error("Failed to archive run", zap.String("run_id", summary.RunID), zap.Error(err))
			return summary, err
		}
	}

	return summary, nil
}

// ListRuns returns the archived run ids, newest keys last.
func (s *Service) ListRuns(ctx context.Context) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return []string{}, nil
	}

	runs := []string{}
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: "runs/"}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list runs: %w", object.Err)
		}
		// Non-recursive listing returns the run prefixes themselves
		run := strings.TrimSuffix(strings.TrimPrefix(object.Key, "runs/"), "/")
		if run != "" {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

// archiveRun snapshots the pass under runs/{run id}/ in object storage:
// the fetched batch, the validation report when present, and the summary.
func (s *Service) archiveRun(ctx context.Context, summary *SyncSummary, variants []models.ProductVariant) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	objects := []struct {
		name    string
		payload any
	}{
		{"variants.json", variants},
		{"summary.json", summary},
	}
	if summary.Report != nil {
		objects = append(objects, struct {
			name    string
			payload any
		}{"report.json", summary.Report})
	}

	for _, object := range objects {
		body, err := json.MarshalIndent(object.payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", object.name, err)
		}

		key := fmt.Sprintf("runs/%s/%s", summary.RunID, object.name)
		_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
	}

	s.logger.Info("Archived run", zap.String("run_id", summary.RunID))
	return nil
}
