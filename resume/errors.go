package resume

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions the Extractor cannot read.
	ErrUnsupportedFormat = errors.New("resume: unsupported format")

	// ErrExtraction is returned when a format reader fails or yields near-empty text.
	ErrExtraction = errors.New("resume: extraction failed")

	// ErrNoResumeFound is returned when no candidate file exists in the resume directory.
	ErrNoResumeFound = errors.New("resume: no resume file found")
)
