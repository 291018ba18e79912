package service

import (
	"os"
	"path/filepath"
	"strings"

	"pdf-triage/internal/domain"
)

// DocumentProcessor orchestrates one document: validate, classify,
// dispatch to the matching pipeline, package the normalized result. It
// never returns an error; every failure becomes a well-formed
// ProcessingResult so the batch layer keeps going regardless of one
// document's fate.
type DocumentProcessor struct {
	opener    domain.SourceOpener
	validator domain.SourceValidator
	detector  *TypeDetector
	raster    *RasterPipeline
	vector    *VectorPipeline
	logger    domain.Logger
}

// NewDocumentProcessor creates a new document processor.
func NewDocumentProcessor(
	opener domain.SourceOpener,
	validator domain.SourceValidator,
	detector *TypeDetector,
	raster *RasterPipeline,
	vector *VectorPipeline,
	logger domain.Logger,
) *DocumentProcessor {
	return &DocumentProcessor{
		opener:    opener,
		validator: validator,
		detector:  detector,
		raster:    raster,
		vector:    vector,
		logger:    logger,
	}
}

// Process runs the full detect-and-extract flow for one PDF, writing
// per-page artifacts into outputDir.
func (dp *DocumentProcessor) Process(pdfPath, outputDir string) domain.ProcessingResult {
	result := domain.ProcessingResult{
		PdfName: DocumentName(pdfPath),
		PdfPath: pdfPath,
	}

	if err := dp.validator.Validate(pdfPath); err != nil {
		return dp.fail(result, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return dp.fail(result, err)
	}

	src, err := dp.opener.Open(pdfPath)
	if err != nil {
		return dp.fail(result, err)
	}
	defer src.Close()

	result.TotalPages = src.PageCount()
	if structural, err := dp.validator.StructuralPageCount(pdfPath); err == nil && structural != result.TotalPages {
		dp.logger.Warn("page count mismatch between renderer and xref",
			"pdf", result.PdfName, "rendered", result.TotalPages, "xref", structural)
	}

	docType, confidence, err := dp.detector.Classify(src)
	if err != nil {
		return dp.fail(result, err)
	}
	dp.logger.Info("document classified",
		"pdf", result.PdfName, "type", docType, "confidence", confidence)

	// Exactly two variants; routing is type-driven, never probabilistic.
	switch docType {
	case domain.TypeRaster:
		files, err := dp.raster.Process(src, outputDir)
		if err != nil {
			return dp.fail(result, err)
		}
		result.Type = domain.TypeRaster
		result.ProcessedFiles = files
	case domain.TypeVector:
		files, metadata, err := dp.vector.Process(src, outputDir)
		if err != nil {
			return dp.fail(result, err)
		}
		result.Type = domain.TypeVector
		result.ProcessedFiles = files
		if len(metadata) > 0 {
			result.Metadata = metadata
		}
	}

	return result
}

// fail converts any document-level error into a failed result record.
func (dp *DocumentProcessor) fail(result domain.ProcessingResult, err error) domain.ProcessingResult {
	dp.logger.Error("document processing failed", err, "pdf", result.PdfName)
	result.Type = ""
	result.ProcessedFiles = nil
	result.Metadata = nil
	result.Error = err.Error()
	return result
}

// DocumentName derives the document name from its file path.
func DocumentName(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
