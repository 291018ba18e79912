package service

import (
	"fmt"
	"os"
	"path/filepath"

	"pdf-triage/internal/domain"
	apperrors "pdf-triage/pkg/errors"
)

// VectorPipeline processes vector-dominant documents: document metadata
// is extracted once, then each page's text layer is written as a text
// artifact. An empty page is legitimate, not an error.
type VectorPipeline struct {
	logger domain.Logger
}

// NewVectorPipeline creates a new vector pipeline.
func NewVectorPipeline(logger domain.Logger) *VectorPipeline {
	return &VectorPipeline{logger: logger}
}

// Process emits one text artifact per page into outputDir together with
// the document metadata mapping. It fails only when every page failed.
func (p *VectorPipeline) Process(src domain.DocumentSource, outputDir string) ([]domain.ProcessedFile, map[string]string, error) {
	metadata := src.Metadata()

	total := src.PageCount()
	var files []domain.ProcessedFile
	for page := 1; page <= total; page++ {
		text, err := src.PageText(page)
		if err != nil {
			p.logger.Warn("vector: page skipped", "page", page, "error", err)
			continue
		}

		outPath := filepath.Join(outputDir, fmt.Sprintf("page_%d_text.txt", page))
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			p.logger.Warn("vector: failed to save page artifact", "page", page, "error", err)
			continue
		}

		length := len(text)
		files = append(files, domain.ProcessedFile{
			PageNumber:    page,
			FilePath:      outPath,
			FileType:      domain.FileTypeText,
			ContentLength: &length,
		})
	}

	if len(files) == 0 {
		return nil, nil, apperrors.NewDocumentError("all pages failed text extraction", nil)
	}
	return files, metadata, nil
}
