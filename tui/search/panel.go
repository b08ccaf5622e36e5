package search

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

const maxSuggestions = 6

// SubmitMsg is emitted when the user submits a query from the panel.
type SubmitMsg struct {
	Owner string
	Query domain.SearchQuery
}

func (m SubmitMsg) RouteOwner() string { return m.Owner }

type panelKeys struct {
	Submit     key.Binding
	Blur       key.Binding
	ToggleKind key.Binding
	Up         key.Binding
	Down       key.Binding
}

func defaultPanelKeys() panelKeys {
	return panelKeys{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Blur:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		ToggleKind: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "@user / #tag")),
		Up:         key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:       key.NewBinding(key.WithKeys("down", "ctrl+n")),
	}
}

// Panel is the query input with a kind toggle and username suggestions.
type Panel struct {
	owner       string
	input       textinput.Model
	kind        domain.SearchKind
	kinds       []domain.SearchKind
	suggestions Suggestions
	cursor      int // -1: no suggestion highlighted
	keys        panelKeys
}

// NewPanel creates a panel. users may be nil to disable autocomplete.
func NewPanel(owner string, users app.UserService, kinds ...domain.SearchKind) Panel {
	if len(kinds) == 0 {
		kinds = []domain.SearchKind{domain.SearchUsername, domain.SearchHashtag}
	}
	ti := textinput.New()
	ti.Placeholder = placeholder(kinds[0])
	ti.CharLimit = 100
	ti.Width = 40
	return Panel{
		owner:       owner,
		input:       ti,
		kind:        kinds[0],
		kinds:       kinds,
		suggestions: NewSuggestions(owner, users),
		cursor:      -1,
		keys:        defaultPanelKeys(),
	}
}

func placeholder(kind domain.SearchKind) string {
	switch kind {
	case domain.SearchUsername:
		return "@username"
	case domain.SearchHashtag:
		return "#community"
	}
	return "search"
}

func (p Panel) Focused() bool            { return p.input.Focused() }
func (p Panel) Kind() domain.SearchKind  { return p.kind }
func (p Panel) Value() string            { return p.input.Value() }
func (p Panel) Suggestions() Suggestions { return p.suggestions }

// Focus gives the input keyboard focus.
func (p Panel) Focus() (Panel, tea.Cmd) {
	cmd := p.input.Focus()
	p.suggestions = p.suggestions.Focus()
	return p, cmd
}

// Blur removes focus and dismisses suggestions.
func (p Panel) Blur() Panel {
	p.input.Blur()
	p.suggestions = p.suggestions.Blur()
	p.cursor = -1
	return p
}

// SetKind switches the query kind. Suggestions are cleared when leaving username.
func (p Panel) SetKind(kind domain.SearchKind) Panel {
	p.kind = kind
	p.input.Placeholder = placeholder(kind)
	if kind != domain.SearchUsername {
		p.suggestions = p.suggestions.Clear()
		p.cursor = -1
	}
	return p
}

// SetValue replaces the input text without triggering a lookup.
func (p Panel) SetValue(v string) Panel {
	p.input.SetValue(v)
	p.input.CursorEnd()
	return p
}

// Update handles keys while the panel is focused and suggestion results.
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case SuggestionsMsg:
		var changed bool
		p.suggestions, changed = p.suggestions.Update(msg)
		if changed {
			p.cursor = -1
		}
		return p, nil

	case tea.KeyMsg:
		if !p.input.Focused() {
			return p, nil
		}
		switch {
		case key.Matches(msg, p.keys.Blur):
			return p.Blur(), nil

		case key.Matches(msg, p.keys.ToggleKind):
			return p.SetKind(p.nextKind()), nil

		case key.Matches(msg, p.keys.Up):
			if p.suggestions.Visible() && p.cursor >= 0 {
				p.cursor--
			}
			return p, nil

		case key.Matches(msg, p.keys.Down):
			items := p.visibleItems()
			if len(items) > 0 && p.cursor < len(items)-1 {
				p.cursor++
			}
			return p, nil

		case key.Matches(msg, p.keys.Submit):
			return p.submit()
		}

		before := p.input.Value()
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		if p.input.Value() == before || p.kind != domain.SearchUsername {
			return p, cmd
		}
		var lookup tea.Cmd
		p.suggestions, lookup = p.suggestions.Suggest(strings.TrimLeft(strings.TrimSpace(p.input.Value()), "@"))
		p.cursor = -1
		return p, tea.Batch(cmd, lookup)
	}
	return p, nil
}

func (p Panel) submit() (Panel, tea.Cmd) {
	kind := p.kind
	raw := p.input.Value()
	if items := p.visibleItems(); p.cursor >= 0 && p.cursor < len(items) {
		var user string
		p.suggestions, user = p.suggestions.Select(items[p.cursor])
		raw = user
		kind = domain.SearchUsername
		p.input.SetValue(user)
		p.input.CursorEnd()
	} else {
		p.suggestions = p.suggestions.Submit()
	}
	p.cursor = -1
	p.input.Blur()
	q := domain.NewSearchQuery(raw, kind)
	owner := p.owner
	return p, func() tea.Msg { return SubmitMsg{Owner: owner, Query: q} }
}

func (p Panel) nextKind() domain.SearchKind {
	for i, k := range p.kinds {
		if k == p.kind {
			return p.kinds[(i+1)%len(p.kinds)]
		}
	}
	return p.kinds[0]
}

func (p Panel) visibleItems() []string {
	items := p.suggestions.Items()
	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}
	return items
}

// Height is the number of rows View renders.
func (p Panel) Height() int {
	return 2 + len(p.visibleItems())
}

func (p Panel) View(s theme.Styles) string {
	var b strings.Builder

	tabs := make([]string, 0, len(p.kinds))
	for _, k := range p.kinds {
		label := placeholder(k)
		if k == p.kind {
			tabs = append(tabs, s.ActionActive.Render(label))
		} else {
			tabs = append(tabs, s.ActionInactive.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(p.input.View())

	for i, u := range p.visibleItems() {
		b.WriteString("\n")
		if i == p.cursor {
			b.WriteString(s.ActionActive.Render("› @" + u))
		} else {
			b.WriteString(s.Muted.Render("  @" + u))
		}
	}
	return b.String()
}
