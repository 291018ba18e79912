package domain

// DocumentType classifies a PDF as raster-dominant or vector-dominant.
// The type is decided once per document and drives pipeline dispatch.
type DocumentType string

const (
	TypeRaster DocumentType = "raster"
	TypeVector DocumentType = "vector"
)

// FileType tags the kind of artifact a pipeline produced for one page.
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeText  FileType = "text"
)

// DetectionSignal is the per-page measurement consumed by the type
// detector. It is computed during sampling and discarded immediately.
type DetectionSignal struct {
	PageNumber    int
	Rendered      bool    // page could be rasterized
	EdgeDensity   float64 // fraction of edge pixels, in [0,1]
	TextLength    int     // length of the extractable text layer
	VectorMarkers bool    // page exposes drawing operators beyond embedded images
}
