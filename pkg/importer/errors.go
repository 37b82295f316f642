package importer

import "errors"

// Importer-specific errors
var (
	ErrStoriesFileRead  = errors.New("failed to read stories file")
	ErrStoriesFileParse = errors.New("failed to parse stories file")
	ErrMissingSummary   = errors.New("missing required summary")
)
