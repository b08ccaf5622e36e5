package app

import (
	"context"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// SentimentService submits content to the sentiment model.
type SentimentService interface {
	// Analyze classifies a text with an optional image (URL or data-URI).
	Analyze(ctx context.Context, in domain.AnalysisInput) (domain.SentimentResult, error)

	// AnalyzeComments classifies a batch of comment texts and aggregates the result.
	AnalyzeComments(ctx context.Context, texts []string) (domain.AggregateSentimentResult, error)
}

// ImageEncoder fetches a remote image and returns it as a data-URI.
// Failures are *domain.ImageFetchError.
type ImageEncoder interface {
	Encode(ctx context.Context, url string) (string, error)
}
