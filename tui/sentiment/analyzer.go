package sentiment

import (
	"context"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
)

const errorPrefix = "Analysis error: "

// ImageMode controls how a post image is sent to the model.
type ImageMode int

const (
	// ImageByURL sends the image URL as-is.
	ImageByURL ImageMode = iota
	// ImageEncoded fetches the image first and sends a data-URI.
	ImageEncoded
)

// ResultMsg carries a single-item analysis back to its owner.
type ResultMsg struct {
	Owner  string
	Seq    int
	Key    string
	Result domain.SentimentResult
	Err    error
}

func (m ResultMsg) RouteOwner() string { return m.Owner }

// Analyzer tracks the selected post and its sentiment analysis.
type Analyzer struct {
	owner    string
	svc      app.SentimentService
	encoder  app.ImageEncoder
	mode     ImageMode
	log      logrus.FieldLogger
	seq      int
	key      string
	selected *domain.Post
	state    domain.RequestState[domain.SentimentResult]
}

// NewAnalyzer creates an Analyzer. In ImageEncoded mode a nil encoder falls back to URLs.
func NewAnalyzer(owner string, svc app.SentimentService, encoder app.ImageEncoder, mode ImageMode, log logrus.FieldLogger) Analyzer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return Analyzer{owner: owner, svc: svc, encoder: encoder, mode: mode, log: log}
}

// BuildInput derives the model input for p: trimmed body, else trimmed title,
// plus the first image if there is one.
func BuildInput(p domain.Post) domain.AnalysisInput {
	in := domain.AnalysisInput{Text: strings.TrimSpace(p.BodyText())}
	if in.Text == "" {
		in.Text = strings.TrimSpace(p.TitleText())
	}
	if img, ok := p.FirstImage(); ok {
		in.Image = img
	}
	return in
}

// Select makes p the selected post and starts its analysis. The previous
// result is cleared and any in-flight analysis becomes stale.
func (a Analyzer) Select(p domain.Post) (Analyzer, tea.Cmd) {
	a.seq++
	sel := p
	a.selected = &sel
	a.key = p.Key()
	a.state = domain.Pending[domain.SentimentResult]()
	return a, a.run(a.seq, a.key, BuildInput(p))
}

// Analyze submits free input that is not tied to a post.
func (a Analyzer) Analyze(in domain.AnalysisInput) (Analyzer, tea.Cmd) {
	a.seq++
	a.selected = nil
	a.key = "input:" + strconv.Itoa(a.seq)
	a.state = domain.Pending[domain.SentimentResult]()
	return a, a.run(a.seq, a.key, in)
}

// Close clears the selection and result.
func (a Analyzer) Close() Analyzer {
	a.seq++
	a.selected = nil
	a.key = ""
	a.state = domain.Idle[domain.SentimentResult]()
	return a
}

func (a Analyzer) Update(msg ResultMsg) (Analyzer, bool) {
	if msg.Owner != a.owner || msg.Seq != a.seq || msg.Key != a.key {
		return a, false
	}
	if msg.Err != nil {
		a.state = domain.Failed[domain.SentimentResult](errorPrefix + domain.DescribeError(msg.Err))
		return a, true
	}
	a.state = domain.Succeeded(msg.Result)
	return a, true
}

func (a Analyzer) run(seq int, key string, in domain.AnalysisInput) tea.Cmd {
	svc := a.svc
	owner := a.owner
	encode := a.mode == ImageEncoded && a.encoder != nil
	encoder := a.encoder
	log := a.log
	return func() tea.Msg {
		ctx := context.Background()
		if encode && in.Image != "" {
			uri, err := encoder.Encode(ctx, in.Image)
			if err != nil {
				log.WithError(err).WithField("post", key).Warn("image fetch failed; analyzing text only")
				in.Image = ""
			} else {
				in.Image = uri
			}
		}
		res, err := svc.Analyze(ctx, in)
		return ResultMsg{Owner: owner, Seq: seq, Key: key, Result: res, Err: err}
	}
}

// Selected returns the selected post.
func (a Analyzer) Selected() (domain.Post, bool) {
	if a.selected == nil {
		return domain.Post{}, false
	}
	return *a.selected, true
}

func (a Analyzer) State() domain.RequestState[domain.SentimentResult] { return a.state }

// Active reports whether a selection or free-input analysis is showing.
func (a Analyzer) Active() bool { return !a.state.IsIdle() }
