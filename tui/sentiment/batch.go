package sentiment

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// BatchResultMsg carries an aggregate comment analysis back to its owner.
type BatchResultMsg struct {
	Owner  string
	Seq    int
	Result domain.AggregateSentimentResult
	Err    error
}

func (m BatchResultMsg) RouteOwner() string { return m.Owner }

// Batch tracks one aggregate analysis over a list of comment texts.
type Batch struct {
	owner string
	svc   app.SentimentService
	seq   int
	state domain.RequestState[domain.AggregateSentimentResult]

	disabled bool
}

func NewBatch(owner string, svc app.SentimentService) Batch {
	return Batch{owner: owner, svc: svc}
}

// Analyzable drops blank texts.
func Analyzable(texts []string) []string {
	return lo.Filter(texts, func(t string, _ int) bool {
		return strings.TrimSpace(t) != ""
	})
}

// AnalyzeComments starts an aggregate analysis. It is a no-op returning a nil
// Cmd when nothing is analyzable.
func (b Batch) AnalyzeComments(texts []string) (Batch, tea.Cmd) {
	texts = Analyzable(texts)
	if len(texts) == 0 {
		b.disabled = true
		return b, nil
	}
	b.disabled = false
	b.seq++
	b.state = domain.Pending[domain.AggregateSentimentResult]()

	svc := b.svc
	owner := b.owner
	seq := b.seq
	return b, func() tea.Msg {
		res, err := svc.AnalyzeComments(context.Background(), texts)
		return BatchResultMsg{Owner: owner, Seq: seq, Result: res, Err: err}
	}
}

// Reset returns to idle and discards any in-flight analysis.
func (b Batch) Reset() Batch {
	b.seq++
	b.disabled = false
	b.state = domain.Idle[domain.AggregateSentimentResult]()
	return b
}

func (b Batch) Update(msg BatchResultMsg) (Batch, bool) {
	if msg.Owner != b.owner || msg.Seq != b.seq {
		return b, false
	}
	if msg.Err != nil {
		b.state = domain.Failed[domain.AggregateSentimentResult](errorPrefix + domain.DescribeError(msg.Err))
		return b, true
	}
	b.state = domain.Succeeded(msg.Result)
	return b, true
}

func (b Batch) State() domain.RequestState[domain.AggregateSentimentResult] { return b.state }

// Disabled reports that the last request had nothing to analyze.
func (b Batch) Disabled() bool { return b.disabled }
