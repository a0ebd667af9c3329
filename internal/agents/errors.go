package agents

import "errors"

var (
	ErrReviewFailed     = errors.New("editorial review failed")
	ErrRevisionFailed   = errors.New("revision failed")
	ErrExtractionFailed = errors.New("revised title/content could not be extracted")
	ErrValidationFailed = errors.New("fix validation failed")
	ErrQuestionsFailed  = errors.New("question generation failed")
	ErrEnrichmentFailed = errors.New("reply enrichment failed")
	ErrEmbeddingFailed  = errors.New("embedding generation failed")
)
