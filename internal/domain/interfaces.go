package domain

import "image"

// DocumentSource gives page-level access to one open PDF. Page numbers
// are 1-based everywhere in this package.
type DocumentSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int
	// RenderPage rasterizes one page at the given resolution.
	RenderPage(pageNumber int, dpi float64) (image.Image, error)
	// PageText returns the extractable text layer of one page. An empty
	// string is a valid result, not an error.
	PageText(pageNumber int) (string, error)
	// Metadata returns the document-level metadata mapping. Unknown keys
	// pass through opaquely; the map may be empty.
	Metadata() map[string]string
	// HasVectorMarkers reports whether the page's structure exposes
	// vector drawing operators beyond embedded images.
	HasVectorMarkers(pageNumber int) (bool, error)
	// Close releases the underlying document.
	Close() error
}

// SourceOpener opens a PDF file as a DocumentSource.
type SourceOpener interface {
	Open(path string) (DocumentSource, error)
}

// SourceValidator performs structural pre-flight checks on a PDF file
// without fully opening it.
type SourceValidator interface {
	// Validate rejects unreadable or structurally corrupt files.
	Validate(path string) error
	// StructuralPageCount returns the page count from the file's
	// cross-reference structure.
	StructuralPageCount(path string) (int, error)
}

// Processor turns one PDF into a normalized ProcessingResult. It never
// returns an error: document-level failures are captured in the result.
type Processor interface {
	Process(pdfPath, outputDir string) ProcessingResult
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetLogLevel() string
	GetInputPath() string
	GetOutputPath() string
	GetWorkerCount() int
	GetSamplePages() int
	GetDetectionDPI() float64
	GetProcessDPI() float64
	GetEdgeDensityThreshold() float64
	GetRasterMaxTextLen() int
	GetVectorMinTextLen() int
	GetBinarizeThreshold() uint8
	GetMaxPages() int
}
