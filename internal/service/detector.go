package service

import (
	"math"
	"strings"

	"pdf-triage/internal/domain"
	"pdf-triage/internal/vision"
	apperrors "pdf-triage/pkg/errors"
)

// TypeDetector decides whether a document is raster-dominant or
// vector-dominant by sampling a bounded number of leading pages and
// combining edge density, extractable text length and vector markers.
type TypeDetector struct {
	cfg    domain.Config
	logger domain.Logger
}

// NewTypeDetector creates a new type detector.
func NewTypeDetector(cfg domain.Config, logger domain.Logger) *TypeDetector {
	return &TypeDetector{cfg: cfg, logger: logger}
}

// Classify returns the document type and an advisory confidence in [0,1].
// Confidence never changes routing; dispatch is purely type-driven.
//
// Decision rule, in order:
//  1. total sampled text >= VectorMinTextLen, or any sampled page exposes
//     vector drawing markers -> vector.
//  2. no sampled page could be rasterized -> detection failure.
//  3. average edge density > EdgeDensityThreshold and total text below
//     RasterMaxTextLen -> raster.
//  4. fallback: the dominant normalized signal wins; ties go to vector,
//     since text-bearing documents are cheaper to mis-route safely.
func (d *TypeDetector) Classify(src domain.DocumentSource) (domain.DocumentType, float64, error) {
	pageCount := src.PageCount()
	if pageCount == 0 {
		return "", 0, apperrors.NewDetectionError("document has no pages", nil)
	}

	sample := d.cfg.GetSamplePages()
	if sample > pageCount {
		sample = pageCount
	}

	rendered := 0
	densitySum := 0.0
	textTotal := 0
	markers := false

	for page := 1; page <= sample; page++ {
		signal := d.samplePage(src, page)
		if signal.Rendered {
			rendered++
			densitySum += signal.EdgeDensity
		}
		textTotal += signal.TextLength
		markers = markers || signal.VectorMarkers
	}

	minText := d.cfg.GetVectorMinTextLen()
	densityThreshold := d.cfg.GetEdgeDensityThreshold()

	textScore := clamp01(float64(textTotal) / float64(minText))

	// Text or structural evidence decides vector before rasterization
	// failures are considered fatal.
	if textTotal >= minText || markers {
		confidence := textScore
		if markers && confidence < 0.75 {
			confidence = 0.75
		}
		d.logger.Debug("detection: vector rule fired",
			"text_total", textTotal, "markers", markers, "confidence", confidence)
		return domain.TypeVector, confidence, nil
	}

	if rendered == 0 {
		return "", 0, apperrors.NewDetectionError("no sampled page could be rasterized", nil)
	}

	avgDensity := densitySum / float64(rendered)
	densityScore := clamp01(avgDensity / densityThreshold)

	if avgDensity > densityThreshold && textTotal < d.cfg.GetRasterMaxTextLen() {
		confidence := clamp01((avgDensity - densityThreshold) / math.Max(1-densityThreshold, 1e-9))
		if confidence < 0.5 {
			confidence = 0.5
		}
		d.logger.Debug("detection: raster rule fired",
			"avg_density", avgDensity, "text_total", textTotal, "confidence", confidence)
		return domain.TypeRaster, confidence, nil
	}

	// Neither rule fired decisively: the dominant normalized signal wins.
	confidence := math.Abs(densityScore - textScore)
	d.logger.Debug("detection: fallback rule",
		"density_score", densityScore, "text_score", textScore, "confidence", confidence)
	if densityScore > textScore {
		return domain.TypeRaster, confidence, nil
	}
	return domain.TypeVector, confidence, nil
}

// samplePage computes one page's detection signal. Per-page failures are
// logged and leave the corresponding measurement empty; they never abort
// sampling.
func (d *TypeDetector) samplePage(src domain.DocumentSource, page int) domain.DetectionSignal {
	signal := domain.DetectionSignal{PageNumber: page}

	img, err := src.RenderPage(page, d.cfg.GetDetectionDPI())
	if err != nil {
		d.logger.Warn("detection: page render failed", "page", page, "error", err)
	} else {
		signal.Rendered = true
		signal.EdgeDensity = vision.EdgeDensity(img)
	}

	text, err := src.PageText(page)
	if err != nil {
		d.logger.Warn("detection: page text extraction failed", "page", page, "error", err)
	} else {
		signal.TextLength = len(strings.TrimSpace(text))
	}

	if markers, err := src.HasVectorMarkers(page); err == nil {
		signal.VectorMarkers = markers
	}

	return signal
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
