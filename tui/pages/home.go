package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/search"
	"github.com/CrestNiraj12/terminalsentiment/tui/sentiment"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

// Home shows the global timeline and searches by author or community.
type Home struct {
	browser
	panel search.Panel
}

func NewHome(d Deps) Home {
	return Home{
		browser: newBrowser(HomeName, d, search.HashtagCommunity, sentiment.ImageByURL),
		panel:   search.NewPanel(HomeName, d.Users, domain.SearchUsername, domain.SearchHashtag),
	}
}

func (h Home) Name() string { return HomeName }

// Mount loads the timeline the first time the page is shown.
func (h Home) Mount() (Page, tea.Cmd) {
	cmds := []tea.Cmd{h.spinner.Tick}
	if h.search.State().IsIdle() {
		var cmd tea.Cmd
		h, cmd = h.LoadTimeline()
		cmds = append(cmds, cmd)
	}
	return h, tea.Batch(cmds...)
}

func (h Home) Unmount() Page {
	h.panel = h.panel.Blur()
	return h
}

// LoadTimeline searches the global timeline.
func (h Home) LoadTimeline() (Home, tea.Cmd) {
	var cmd tea.Cmd
	h.browser, cmd = h.runSearch(domain.NewSearchQuery("", domain.SearchTimeline), search.HashtagCommunity)
	return h, cmd
}

// Search runs a query from the panel.
func (h Home) Search(q domain.SearchQuery) (Home, tea.Cmd) {
	var cmd tea.Cmd
	h.browser, cmd = h.runSearch(q, search.HashtagCommunity)
	return h, cmd
}

func (h Home) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case search.SubmitMsg:
		return h.Search(msg.Query)

	case search.SuggestionsMsg:
		var cmd tea.Cmd
		h.panel, cmd = h.panel.Update(msg)
		return h, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && h.panel.Focused() && !inRows(msg.Y, h.panelTop(), h.panel.Height()) {
			h.panel = h.panel.Blur()
		}
		return h, nil

	case tea.KeyMsg:
		if h.panel.Focused() {
			var cmd tea.Cmd
			h.panel, cmd = h.panel.Update(msg)
			return h, cmd
		}
		switch {
		case key.Matches(msg, h.keys.Search):
			var cmd tea.Cmd
			h.panel, cmd = h.panel.Focus()
			return h, cmd
		case key.Matches(msg, h.keys.Timeline):
			return h.LoadTimeline()
		}
	}

	var cmd tea.Cmd
	h.browser, cmd, _ = h.update(msg)
	return h, cmd
}

func (h Home) Capturing() bool { return h.panel.Focused() }

func (h Home) SetStyles(s theme.Styles) Page {
	h.browser = h.setStyles(s)
	return h
}

func (h Home) SetSize(width, height int) Page {
	h.width, h.height = width, height
	return h
}

func (h Home) heading() string {
	tagline := "Global timeline"
	if q := h.search.Query(); q.Kind != domain.SearchTimeline && q.Kind != "" {
		tagline = "Results for " + q.Raw
	}
	return header(h.styles, "Home", tagline)
}

// panelTop is the first screen row of the search panel.
func (h Home) panelTop() int {
	return lipgloss.Height(h.heading()) + 1
}

func (h Home) View() string {
	top := h.heading() + "\n\n" + h.panel.View(h.styles) + "\n\n"
	hints := renderHints(h.styles, h.keys.Search, h.keys.Timeline, h.keys.Select, h.keys.Comments, h.keys.Refresh, h.keys.ToggleTheme, h.keys.Quit)
	used := lipgloss.Height(top) + lipgloss.Height(hints)
	return top + h.body(used) + "\n" + hints
}

func inRows(y, top, height int) bool {
	return y >= top && y < top+height
}
