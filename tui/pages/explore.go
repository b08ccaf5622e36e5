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

// Category is a featured community on the Explore page.
type Category struct {
	Name      string
	Community string
}

// FeaturedCategories are shown on Explore in this order.
var FeaturedCategories = []Category{
	{Name: "Technology", Community: "tech"},
	{Name: "Entertainment", Community: "entertainment"},
	{Name: "Sports", Community: "sports"},
	{Name: "Science", Community: "science"},
	{Name: "Politics", Community: "politics"},
}

// Explore browses featured categories and runs full-text searches.
// Picking a category clears the search input and a search clears the category.
type Explore struct {
	browser
	panel    search.Panel
	category int // -1: none
}

func NewExplore(d Deps) Explore {
	return Explore{
		browser:  newBrowser(ExploreName, d, search.HashtagFullText, sentiment.ImageByURL),
		panel:    search.NewPanel(ExploreName, d.Users, domain.SearchHashtag, domain.SearchUsername),
		category: -1,
	}
}

func (e Explore) Name() string { return ExploreName }

func (e Explore) Mount() (Page, tea.Cmd) {
	return e, e.spinner.Tick
}

func (e Explore) Unmount() Page {
	e.panel = e.panel.Blur()
	return e
}

// SelectCategory loads category i's community.
func (e Explore) SelectCategory(i int) (Explore, tea.Cmd) {
	if i < 0 || i >= len(FeaturedCategories) {
		return e, nil
	}
	e.category = i
	e.panel = e.panel.SetValue("").Blur()
	q := domain.NewSearchQuery(FeaturedCategories[i].Community, domain.SearchHashtag)
	var cmd tea.Cmd
	e.browser, cmd = e.runSearch(q, search.HashtagCommunity)
	return e, cmd
}

// Search runs a full-text (hashtag) or author query.
func (e Explore) Search(q domain.SearchQuery) (Explore, tea.Cmd) {
	e.category = -1
	var cmd tea.Cmd
	e.browser, cmd = e.runSearch(q, search.HashtagFullText)
	return e, cmd
}

func (e Explore) Category() (Category, bool) {
	if e.category < 0 {
		return Category{}, false
	}
	return FeaturedCategories[e.category], true
}

func (e Explore) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case search.SubmitMsg:
		return e.Search(msg.Query)

	case search.SuggestionsMsg:
		var cmd tea.Cmd
		e.panel, cmd = e.panel.Update(msg)
		return e, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && e.panel.Focused() && !inRows(msg.Y, e.panelTop(), e.panel.Height()) {
			e.panel = e.panel.Blur()
		}
		return e, nil

	case tea.KeyMsg:
		if e.panel.Focused() {
			var cmd tea.Cmd
			e.panel, cmd = e.panel.Update(msg)
			return e, cmd
		}
		switch {
		case key.Matches(msg, e.keys.Search):
			var cmd tea.Cmd
			e.panel, cmd = e.panel.Focus()
			return e, cmd
		case key.Matches(msg, e.keys.PrevCategory):
			return e.SelectCategory(cycle(e.category, -1, len(FeaturedCategories)))
		case key.Matches(msg, e.keys.NextCategory):
			return e.SelectCategory(cycle(e.category, 1, len(FeaturedCategories)))
		}
	}

	var cmd tea.Cmd
	e.browser, cmd, _ = e.update(msg)
	return e, cmd
}

func (e Explore) Capturing() bool { return e.panel.Focused() }

func (e Explore) SetStyles(s theme.Styles) Page {
	e.browser = e.setStyles(s)
	return e
}

func (e Explore) SetSize(width, height int) Page {
	e.width, e.height = width, height
	return e
}

func (e Explore) heading() string {
	return header(e.styles, "Explore", "Featured categories and full-text search")
}

func (e Explore) panelTop() int {
	return lipgloss.Height(e.heading()) + 1
}

func (e Explore) renderCategories() string {
	items := make([]string, 0, len(FeaturedCategories))
	for i, c := range FeaturedCategories {
		if i == e.category {
			items = append(items, e.styles.ActionActive.Render(c.Name))
		} else {
			items = append(items, e.styles.ActionInactive.Render(c.Name))
		}
	}
	return strings.Join(items, "")
}

func (e Explore) View() string {
	top := e.heading() + "\n\n" + e.panel.View(e.styles) + "\n\n" + e.renderCategories() + "\n\n"
	hints := renderHints(e.styles, e.keys.Search, e.keys.PrevCategory, e.keys.NextCategory, e.keys.Select, e.keys.Comments, e.keys.Quit)
	used := lipgloss.Height(top) + lipgloss.Height(hints)
	return top + e.body(used) + "\n" + hints
}

// cycle steps i by delta within [0, n). From "none" (-1) it starts at either end.
func cycle(i, delta, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((i+delta)%n + n) % n
}
