package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	apperrors "pdf-triage/pkg/errors"
)

// Validator implements domain.SourceValidator using pdfcpu. It catches
// unreadable or structurally corrupt files before a worker commits to
// rendering them.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate rejects paths that do not point to a readable, structurally
// sound PDF file.
func (v *Validator) Validate(path string) error {
	if strings.TrimSpace(path) == "" {
		return apperrors.NewDocumentError("file path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return apperrors.NewDocumentError(fmt.Sprintf("cannot access file: %s", path), err)
	}
	if info.IsDir() {
		return apperrors.NewDocumentError(fmt.Sprintf("path is a directory, not a file: %s", path), nil)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return apperrors.NewDocumentError(fmt.Sprintf("file is not a PDF (has extension %s)", ext), nil)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return apperrors.NewDocumentError("PDF failed structural validation", err)
	}
	return nil
}

// StructuralPageCount returns the page count from the file's
// cross-reference structure.
func (v *Validator) StructuralPageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, apperrors.NewDocumentError("failed to read page count", err)
	}
	return count, nil
}
