package domain

import "strings"

// Sentiment is a classification label.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Labels lists the three labels in display order.
var Labels = []Sentiment{SentimentNegative, SentimentNeutral, SentimentPositive}

// ParseSentiment normalizes a backend label. Unknown labels are returned lowercased as-is.
func ParseSentiment(s string) Sentiment {
	return Sentiment(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether the label is one of the three classes.
func (s Sentiment) Known() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Distribution maps each label to a probability. Values are not required to sum to 1.
type Distribution map[Sentiment]float64

// Get returns the probability for a label, 0 when absent.
func (d Distribution) Get(s Sentiment) float64 {
	if d == nil {
		return 0
	}
	return d[s]
}

// SentimentResult is the outcome of a single-item analysis.
type SentimentResult struct {
	Sentiment    Sentiment
	Confidence   float64
	Distribution Distribution
	TextUsed     bool
	ImageUsed    bool
}

// AggregateSentimentResult is the outcome of a comment batch analysis. Computed by the backend.
type AggregateSentimentResult struct {
	Majority            Sentiment
	AverageDistribution Distribution
	Count               int
}

// AnalysisInput is the payload of a single-item analysis.
// Image is either a URL or a data-URI; empty means no image.
type AnalysisInput struct {
	Text  string
	Image string
}
