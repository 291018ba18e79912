package service

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"

	"pdf-triage/internal/domain"
	"pdf-triage/internal/vision"
	apperrors "pdf-triage/pkg/errors"
)

// RasterPipeline processes raster-dominant documents: each page is
// rasterized at full resolution, edge-detected, binarized and written as
// an image artifact. Pages are independent; one page's failure is a gap,
// not an abort.
type RasterPipeline struct {
	cfg    domain.Config
	logger domain.Logger
}

// NewRasterPipeline creates a new raster pipeline.
func NewRasterPipeline(cfg domain.Config, logger domain.Logger) *RasterPipeline {
	return &RasterPipeline{cfg: cfg, logger: logger}
}

// Process emits one processed image per page into outputDir. It fails
// only when every page failed.
func (p *RasterPipeline) Process(src domain.DocumentSource, outputDir string) ([]domain.ProcessedFile, error) {
	total := src.PageCount()
	limit := total
	if max := p.cfg.GetMaxPages(); max > 0 && max < limit {
		limit = max
	}

	var files []domain.ProcessedFile
	for page := 1; page <= limit; page++ {
		img, err := src.RenderPage(page, p.cfg.GetProcessDPI())
		if err != nil {
			p.logger.Warn("raster: page skipped", "page", page, "error", err)
			continue
		}

		edges := vision.SobelMagnitude(img)
		binary := vision.Binarize(edges, p.cfg.GetBinarizeThreshold())

		outPath := filepath.Join(outputDir, fmt.Sprintf("page_%d_processed.png", page))
		if err := imaging.Save(binary, outPath); err != nil {
			p.logger.Warn("raster: failed to save page artifact", "page", page, "error", err)
			continue
		}

		files = append(files, domain.ProcessedFile{
			PageNumber: page,
			FilePath:   outPath,
			FileType:   domain.FileTypeImage,
		})
	}

	if len(files) == 0 {
		return nil, apperrors.NewDocumentError("all pages failed raster processing", nil)
	}
	return files, nil
}
