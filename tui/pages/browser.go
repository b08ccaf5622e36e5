package pages

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/common"
	"github.com/CrestNiraj12/terminalsentiment/tui/search"
	"github.com/CrestNiraj12/terminalsentiment/tui/sentiment"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

// browser is the post list + analysis panel shared by the list pages.
type browser struct {
	name     string
	search   search.Orchestrator
	analyzer sentiment.Analyzer
	cursor   int
	spinner  spinner.Model
	keys     common.KeyMap
	styles   theme.Styles
	width    int
	height   int
}

func newBrowser(name string, d Deps, hashtag search.HashtagMode, images sentiment.ImageMode) browser {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = d.Styles.ActionActive.UnsetPadding()

	return browser{
		name:     name,
		search:   search.New(name, d.Posts, hashtag),
		analyzer: sentiment.NewAnalyzer(name, d.Sentiment, d.Images, images, d.logger()),
		spinner:  s,
		keys:     common.DefaultKeyMap(),
		styles:   d.Styles,
	}
}

// runSearch issues q and clears the selection and any analysis.
func (b browser) runSearch(q domain.SearchQuery, mode search.HashtagMode) (browser, tea.Cmd) {
	var cmd tea.Cmd
	b.search, cmd = b.search.SearchWith(q, mode)
	b.analyzer = b.analyzer.Close()
	b.cursor = 0
	return b, cmd
}

func (b browser) posts() []domain.Post {
	return b.search.Posts()
}

// highlighted returns the post under the cursor.
func (b browser) highlighted() (domain.Post, bool) {
	posts := b.posts()
	if b.cursor < 0 || b.cursor >= len(posts) {
		return domain.Post{}, false
	}
	return posts[b.cursor], true
}

// MoveCursor moves the highlight by delta within the list.
func (b browser) MoveCursor(delta int) browser {
	b.cursor = common.Clamp(b.cursor+delta, 0, len(b.posts())-1)
	return b
}

// SelectPost analyzes the highlighted post.
func (b browser) SelectPost() (browser, tea.Cmd) {
	p, ok := b.highlighted()
	if !ok {
		return b, nil
	}
	var cmd tea.Cmd
	b.analyzer, cmd = b.analyzer.Select(p)
	return b, cmd
}

func (b browser) CloseAnalysis() browser {
	b.analyzer = b.analyzer.Close()
	return b
}

// OpenComments routes to the highlighted post's thread.
func (b browser) OpenComments() tea.Cmd {
	p, ok := b.highlighted()
	if !ok || !p.Ref().Valid() {
		return nil
	}
	ref := p.Ref()
	return func() tea.Msg { return OpenPostMsg{Ref: ref} }
}

// update handles messages common to all list pages. handled is false for
// keys the page should interpret itself.
func (b browser) update(msg tea.Msg) (browser, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd, true

	case search.ResultMsg:
		var changed bool
		b.search, changed = b.search.Update(msg)
		if changed {
			b.cursor = 0
		}
		return b, nil, true

	case sentiment.ResultMsg:
		b.analyzer, _ = b.analyzer.Update(msg)
		return b, nil, true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Up):
			return b.MoveCursor(-1), nil, true
		case key.Matches(msg, b.keys.Down):
			return b.MoveCursor(1), nil, true
		case key.Matches(msg, b.keys.Select):
			var cmd tea.Cmd
			b, cmd = b.SelectPost()
			return b, cmd, true
		case key.Matches(msg, b.keys.Close):
			if b.analyzer.Active() {
				return b.CloseAnalysis(), nil, true
			}
		case key.Matches(msg, b.keys.Comments):
			return b, b.OpenComments(), true
		case key.Matches(msg, b.keys.Refresh):
			var cmd tea.Cmd
			b.search, cmd = b.search.Retry()
			b.analyzer = b.analyzer.Close()
			return b, cmd, true
		}
	}
	return b, nil, false
}

func (b browser) setStyles(s theme.Styles) browser {
	b.styles = s
	b.spinner.Style = s.ActionActive.UnsetPadding()
	return b
}
