package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/search"
	"github.com/CrestNiraj12/terminalsentiment/tui/sentiment"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

// TrendingTopics are the communities listed on the Trending page.
var TrendingTopics = []string{
	"all", "news", "worldnews", "technology", "funny",
	"AskReddit", "pics", "gaming", "science", "movies",
}

// Trending browses popular communities. Images are sent to the model as data-URIs.
type Trending struct {
	browser
	topic int // -1: none
}

func NewTrending(d Deps) Trending {
	return Trending{
		browser: newBrowser(TrendingName, d, search.HashtagCommunity, sentiment.ImageEncoded),
		topic:   -1,
	}
}

func (t Trending) Name() string { return TrendingName }

func (t Trending) Mount() (Page, tea.Cmd) {
	return t, t.spinner.Tick
}

func (t Trending) Unmount() Page { return t }

// SelectTopic loads topic i.
func (t Trending) SelectTopic(i int) (Trending, tea.Cmd) {
	if i < 0 || i >= len(TrendingTopics) {
		return t, nil
	}
	t.topic = i
	q := domain.NewSearchQuery(TrendingTopics[i], domain.SearchHashtag)
	var cmd tea.Cmd
	t.browser, cmd = t.runSearch(q, search.HashtagCommunity)
	return t, cmd
}

func (t Trending) Topic() (string, bool) {
	if t.topic < 0 {
		return "", false
	}
	return TrendingTopics[t.topic], true
}

func (t Trending) Update(msg tea.Msg) (Page, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.keys.PrevCategory):
			return t.SelectTopic(cycle(t.topic, -1, len(TrendingTopics)))
		case key.Matches(msg, t.keys.NextCategory):
			return t.SelectTopic(cycle(t.topic, 1, len(TrendingTopics)))
		}
	}
	var cmd tea.Cmd
	t.browser, cmd, _ = t.update(msg)
	return t, cmd
}

func (t Trending) Capturing() bool { return false }

func (t Trending) SetStyles(s theme.Styles) Page {
	t.browser = t.setStyles(s)
	return t
}

func (t Trending) SetSize(width, height int) Page {
	t.width, t.height = width, height
	return t
}

func (t Trending) renderTopics() string {
	items := make([]string, 0, len(TrendingTopics))
	for i, name := range TrendingTopics {
		label := "#" + name
		if i == t.topic {
			items = append(items, t.styles.ActionActive.Render(label))
		} else {
			items = append(items, t.styles.ActionInactive.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(t.contentWidth()).Render(strings.Join(items, " "))
}

func (t Trending) View() string {
	top := header(t.styles, "Trending", "Popular communities") + "\n\n" + t.renderTopics() + "\n\n"
	hints := renderHints(t.styles, t.keys.PrevCategory, t.keys.NextCategory, t.keys.Select, t.keys.Comments, t.keys.Refresh, t.keys.Quit)
	used := lipgloss.Height(top) + lipgloss.Height(hints)
	return top + t.body(used) + "\n" + hints
}
