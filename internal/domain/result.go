package domain

// ProcessedFile records one per-page artifact written by a pipeline.
// Immutable once produced.
type ProcessedFile struct {
	PageNumber int      `json:"page_number"`
	FilePath   string   `json:"file_path"`
	FileType   FileType `json:"file_type"`
	// ContentLength is set for text artifacts only. Zero is a legitimate
	// value (an empty page), so a pointer distinguishes "absent" from 0.
	ContentLength *int `json:"content_length,omitempty"`
}

// ProcessingResult is the normalized per-document record exchanged
// between the document processor and the batch orchestrator. A failed
// document carries Error and no processed files; it still appears in the
// batch summary.
type ProcessingResult struct {
	PdfName        string            `json:"pdf_name"`
	PdfPath        string            `json:"pdf_path"`
	Type           DocumentType      `json:"type,omitempty"`
	TotalPages     int               `json:"total_pages"`
	ProcessedFiles []ProcessedFile   `json:"processed_files,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// Failed reports whether the document failed at document level.
func (r ProcessingResult) Failed() bool {
	return r.Error != ""
}

// BatchSummary aggregates one batch run. Results are ordered by discovery
// order, never completion order, so summaries are reproducible across
// runs with different worker counts.
type BatchSummary struct {
	TotalPDFs            int                `json:"total_pdfs"`
	SuccessfulProcessing int                `json:"successful_processing"`
	FailedProcessing     int                `json:"failed_processing"`
	Results              []ProcessingResult `json:"results"`
}
