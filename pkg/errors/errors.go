package errors

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	// ErrorTypeDetection: classification could not be computed for any sampled page.
	ErrorTypeDetection ErrorType = "detection"
	// ErrorTypeRender: a single page failed to rasterize.
	ErrorTypeRender ErrorType = "render"
	// ErrorTypeExtraction: a single page failed text/metadata extraction.
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeDocument: the whole document failed (all pages failed, the
	// file is unreadable, or classification failed).
	ErrorTypeDocument ErrorType = "document"
	// ErrorTypeBatch: the batch run itself cannot proceed (output tree or
	// summary cannot be written). The only kind fatal to a whole batch.
	ErrorTypeBatch ErrorType = "batch"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewDetectionError creates a new detection error
func NewDetectionError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDetection, Message: message, Cause: cause}
}

// NewRenderError creates a new per-page render error
func NewRenderError(pageNumber int, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeRender,
		Message: fmt.Sprintf("failed to rasterize page %d", pageNumber),
		Cause:   cause,
	}
}

// NewExtractionError creates a new per-page extraction error
func NewExtractionError(pageNumber int, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeExtraction,
		Message: fmt.Sprintf("failed to extract page %d", pageNumber),
		Cause:   cause,
	}
}

// NewDocumentError creates a new document-level failure
func NewDocumentError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDocument, Message: message, Cause: cause}
}

// NewBatchError creates a new batch-fatal error
func NewBatchError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeBatch, Message: message, Cause: cause}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}
