// Package thread loads a post with its comments and runs the aggregate
// comment analysis. The thread and the analysis have independent states.
package thread

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/sentiment"
)

// LoadedMsg carries a thread fetch back to its owner.
type LoadedMsg struct {
	Owner  string
	Seq    int
	Ref    domain.PostRef
	Thread domain.Thread
	Err    error
}

func (m LoadedMsg) RouteOwner() string { return m.Owner }

type Orchestrator struct {
	owner    string
	posts    app.PostService
	seq      int
	ref      domain.PostRef
	state    domain.RequestState[domain.Thread]
	analysis sentiment.Batch
}

func New(owner string, posts app.PostService, svc app.SentimentService) Orchestrator {
	return Orchestrator{
		owner:    owner,
		posts:    posts,
		analysis: sentiment.NewBatch(owner, svc),
	}
}

// Load fetches the thread for ref and resets the comment analysis.
func (o Orchestrator) Load(ref domain.PostRef) (Orchestrator, tea.Cmd) {
	o.seq++
	o.ref = ref
	o.analysis = o.analysis.Reset()
	if !ref.Valid() {
		err := fmt.Errorf("%w: post reference needs a community and an id", domain.ErrInvalidQuery)
		o.state = domain.Failed[domain.Thread](domain.DescribeError(err))
		return o, nil
	}
	o.state = domain.Pending[domain.Thread]()

	posts := o.posts
	owner := o.owner
	seq := o.seq
	return o, func() tea.Msg {
		th, err := posts.Thread(context.Background(), ref)
		return LoadedMsg{Owner: owner, Seq: seq, Ref: ref, Thread: th, Err: err}
	}
}

// Reload re-fetches the current ref.
func (o Orchestrator) Reload() (Orchestrator, tea.Cmd) {
	if o.ref == (domain.PostRef{}) {
		return o, nil
	}
	return o.Load(o.ref)
}

// AnalyzeThread runs the aggregate analysis on the loaded comments.
func (o Orchestrator) AnalyzeThread() (Orchestrator, tea.Cmd) {
	if !o.CanAnalyze() {
		return o, nil
	}
	th, _ := o.state.Value()
	var cmd tea.Cmd
	o.analysis, cmd = o.analysis.AnalyzeComments(th.CommentTexts())
	return o, cmd
}

// CanAnalyze reports whether the analysis action is enabled: the thread is
// loaded, has analyzable comments and no analysis is running.
func (o Orchestrator) CanAnalyze() bool {
	th, ok := o.state.Value()
	if !ok || o.analysis.State().IsPending() {
		return false
	}
	return len(sentiment.Analyzable(th.CommentTexts())) > 0
}

// Update applies thread and analysis results. It reports whether state changed.
func (o Orchestrator) Update(msg tea.Msg) (Orchestrator, bool) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Owner != o.owner || msg.Seq != o.seq || msg.Ref != o.ref {
			return o, false
		}
		if msg.Err != nil {
			o.state = domain.Failed[domain.Thread](domain.DescribeError(msg.Err))
			return o, true
		}
		o.state = domain.Succeeded(msg.Thread)
		return o, true

	case sentiment.BatchResultMsg:
		var changed bool
		o.analysis, changed = o.analysis.Update(msg)
		return o, changed
	}
	return o, false
}

func (o Orchestrator) Ref() domain.PostRef                       { return o.ref }
func (o Orchestrator) State() domain.RequestState[domain.Thread] { return o.state }

func (o Orchestrator) Analysis() domain.RequestState[domain.AggregateSentimentResult] {
	return o.analysis.State()
}
