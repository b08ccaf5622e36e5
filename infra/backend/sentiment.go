package backend

import (
	"context"

	"github.com/pkg/errors"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// sentimentService implements app.SentimentService.
type sentimentService struct {
	client *Client
}

// NewSentimentService creates a SentimentService backed by the REST API.
func NewSentimentService(client *Client) *sentimentService {
	return &sentimentService{client: client}
}

func (s *sentimentService) Analyze(ctx context.Context, in domain.AnalysisInput) (domain.SentimentResult, error) {
	var out analyzeResponse
	if err := s.client.Post(ctx, "analyze", "/api/analyze", analyzeRequest{Text: in.Text, Image: in.Image}, &out); err != nil {
		return domain.SentimentResult{}, errors.Wrap(err, "analyzing post")
	}
	return domain.SentimentResult{
		Sentiment:    domain.ParseSentiment(out.Sentiment),
		Confidence:   out.Confidence,
		Distribution: mapDistribution(out.Distribution),
		TextUsed:     out.TextUsed,
		ImageUsed:    out.ImageUsed,
	}, nil
}

func (s *sentimentService) AnalyzeComments(ctx context.Context, texts []string) (domain.AggregateSentimentResult, error) {
	if len(texts) == 0 {
		return domain.AggregateSentimentResult{}, domain.ErrNothingToAnalyze
	}
	var out analyzeCommentsResponse
	if err := s.client.Post(ctx, "analyze_comments", "/api/analyze/comments", analyzeCommentsRequest{Comments: texts}, &out); err != nil {
		return domain.AggregateSentimentResult{}, errors.Wrap(err, "analyzing comments")
	}
	return domain.AggregateSentimentResult{
		Majority:            domain.ParseSentiment(out.MajoritySentiment),
		AverageDistribution: mapDistribution(out.AvgDistribution),
		Count:               out.Count,
	}, nil
}
