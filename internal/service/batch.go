package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pdf-triage/internal/domain"
	apperrors "pdf-triage/pkg/errors"
)

// SummaryFileName is the batch summary written at the batch output root.
const SummaryFileName = "processing_results.json"

// BatchOrchestrator discovers a directory of PDFs, processes them under a
// bounded worker pool and merges the per-document results into one
// deterministic summary. A single document's failure never aborts the
// batch; only an unwritable output tree is fatal.
type BatchOrchestrator struct {
	processor domain.Processor
	cfg       domain.Config
	logger    domain.Logger
}

// NewBatchOrchestrator creates a new batch orchestrator.
func NewBatchOrchestrator(processor domain.Processor, cfg domain.Config, logger domain.Logger) *BatchOrchestrator {
	return &BatchOrchestrator{processor: processor, cfg: cfg, logger: logger}
}

// Discover enumerates the PDF files of inputDir in lexicographic order.
// The order is the discovery order: summaries list results in this order
// regardless of completion order, so re-runs are reproducible.
func (b *BatchOrchestrator) Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, apperrors.NewBatchError("failed to read input directory", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(inputDir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes every discovered document and writes the summary JSON at
// the batch output root once all workers complete.
func (b *BatchOrchestrator) Run(ctx context.Context, inputDir, outputDir string) (domain.BatchSummary, error) {
	paths, err := b.Discover(inputDir)
	if err != nil {
		return domain.BatchSummary{}, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return domain.BatchSummary{}, apperrors.NewBatchError("failed to create output directory", err)
	}

	b.logger.Info("batch started",
		"documents", len(paths), "workers", b.cfg.GetWorkerCount(), "output", outputDir)

	// Worker i owns results[i]: a single writer per slot, so the tally
	// needs no shared counters. Each worker also owns its document's
	// output subdirectory exclusively.
	results := make([]domain.ProcessingResult, len(paths))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.cfg.GetWorkerCount())
	for i, path := range paths {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = domain.ProcessingResult{
					PdfName: DocumentName(path),
					PdfPath: path,
					Error:   err.Error(),
				}
				return nil
			}
			docDir := filepath.Join(outputDir, DocumentName(path))
			results[i] = b.processor.Process(path, docDir)
			return nil
		})
	}
	// Workers never return errors; document failures live in the results.
	_ = eg.Wait()

	summary := domain.BatchSummary{
		TotalPDFs: len(paths),
		Results:   results,
	}
	for _, r := range results {
		if r.Failed() {
			summary.FailedProcessing++
		} else {
			summary.SuccessfulProcessing++
		}
	}

	if err := b.writeSummary(summary, outputDir); err != nil {
		return domain.BatchSummary{}, err
	}

	b.logger.Info("batch finished",
		"total", summary.TotalPDFs,
		"successful", summary.SuccessfulProcessing,
		"failed", summary.FailedProcessing)
	return summary, nil
}

func (b *BatchOrchestrator) writeSummary(summary domain.BatchSummary, outputDir string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return apperrors.NewBatchError("failed to encode batch summary", err)
	}
	path := filepath.Join(outputDir, SummaryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.NewBatchError("failed to write batch summary", err)
	}
	return nil
}
