// Package pdf adapts the underlying PDF libraries to the domain
// interfaces: go-fitz for page rendering, text and metadata, and pdfcpu
// for structural pre-flight validation.
package pdf

import (
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"

	"pdf-triage/internal/domain"
	apperrors "pdf-triage/pkg/errors"
)

// FitzSource implements domain.DocumentSource on top of go-fitz (MuPDF).
// Domain page numbers are 1-based; fitz pages are 0-based.
type FitzSource struct {
	doc *fitz.Document
}

// FitzOpener implements domain.SourceOpener.
type FitzOpener struct{}

// NewOpener creates a new fitz-backed source opener.
func NewOpener() *FitzOpener {
	return &FitzOpener{}
}

// Open opens a PDF file for page-level access.
func (o *FitzOpener) Open(path string) (domain.DocumentSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, apperrors.NewDocumentError("failed to open PDF", err)
	}
	return &FitzSource{doc: doc}, nil
}

// PageCount returns the number of pages in the document.
func (s *FitzSource) PageCount() int {
	return s.doc.NumPage()
}

// RenderPage rasterizes one page at the given DPI.
func (s *FitzSource) RenderPage(pageNumber int, dpi float64) (image.Image, error) {
	img, err := s.doc.ImageDPI(pageNumber-1, dpi)
	if err != nil {
		return nil, apperrors.NewRenderError(pageNumber, err)
	}
	return img, nil
}

// PageText returns the extractable text layer of one page.
func (s *FitzSource) PageText(pageNumber int) (string, error) {
	text, err := s.doc.Text(pageNumber - 1)
	if err != nil {
		return "", apperrors.NewExtractionError(pageNumber, err)
	}
	return text, nil
}

// Metadata returns the document metadata with empty values dropped.
// Unknown keys pass through opaquely.
func (s *FitzSource) Metadata() map[string]string {
	meta := make(map[string]string)
	for key, value := range s.doc.Metadata() {
		if value != "" {
			meta[key] = value
		}
	}
	return meta
}

// HasVectorMarkers renders the page to SVG and reports whether it
// contains drawing operators beyond embedded images. A scanned page
// converts to a lone <image> element; text and vector art produce
// <path>, <text> or <use> elements.
func (s *FitzSource) HasVectorMarkers(pageNumber int) (bool, error) {
	svg, err := s.doc.SVG(pageNumber - 1)
	if err != nil {
		return false, apperrors.NewExtractionError(pageNumber, err)
	}
	return strings.Contains(svg, "<path") ||
		strings.Contains(svg, "<text") ||
		strings.Contains(svg, "<use"), nil
}

// Close releases the underlying document.
func (s *FitzSource) Close() error {
	return s.doc.Close()
}
