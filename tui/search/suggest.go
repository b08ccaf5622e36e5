package search

import (
	"context"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// MinSuggestLength is the shortest partial username that triggers a lookup.
const MinSuggestLength = 2

// SuggestionsMsg carries a username lookup back to its owner.
type SuggestionsMsg struct {
	Owner   string
	Seq     int
	Partial string
	Users   []string
	Err     error
}

func (m SuggestionsMsg) RouteOwner() string { return m.Owner }

// Suggestions tracks username autocomplete for one input.
// Lookup failures degrade to an empty hidden list.
type Suggestions struct {
	owner   string
	users   app.UserService
	seq     int
	partial string
	state   domain.RequestState[[]string]
	focused bool
	visible bool
}

func NewSuggestions(owner string, users app.UserService) Suggestions {
	return Suggestions{owner: owner, users: users}
}

// Suggest looks up usernames matching partial. Short input clears the list.
func (s Suggestions) Suggest(partial string) (Suggestions, tea.Cmd) {
	s.seq++
	s.partial = strings.TrimSpace(partial)
	if s.users == nil || utf8.RuneCountInString(s.partial) < MinSuggestLength {
		s.state = domain.Idle[[]string]()
		s.visible = false
		return s, nil
	}
	s.state = domain.Pending[[]string]()

	users := s.users
	owner := s.owner
	seq := s.seq
	q := s.partial
	return s, func() tea.Msg {
		out, err := users.SearchUsers(context.Background(), q)
		return SuggestionsMsg{Owner: owner, Seq: seq, Partial: q, Users: out, Err: err}
	}
}

func (s Suggestions) Update(msg SuggestionsMsg) (Suggestions, bool) {
	if msg.Owner != s.owner || msg.Seq != s.seq || msg.Partial != s.partial {
		return s, false
	}
	if msg.Err != nil {
		s.state = domain.Succeeded([]string{})
		s.visible = false
		return s, true
	}
	users := lo.Uniq(lo.Filter(msg.Users, func(u string, _ int) bool {
		return strings.TrimSpace(u) != ""
	}))
	s.state = domain.Succeeded(users)
	s.visible = s.focused && len(users) > 0
	return s, true
}

// Select accepts a suggestion and dismisses the list.
func (s Suggestions) Select(username string) (Suggestions, string) {
	s = s.Clear()
	return s, strings.TrimSpace(username)
}

// Submit dismisses the list when the query is submitted.
func (s Suggestions) Submit() Suggestions {
	return s.Clear()
}

// Blur hides the list when focus leaves the input.
func (s Suggestions) Blur() Suggestions {
	s.focused = false
	s.visible = false
	return s
}

// Focus re-shows any loaded suggestions.
func (s Suggestions) Focus() Suggestions {
	s.focused = true
	users, ok := s.state.Value()
	s.visible = ok && len(users) > 0
	return s
}

// Clear drops the list and discards any in-flight lookup.
func (s Suggestions) Clear() Suggestions {
	s.seq++
	s.partial = ""
	s.state = domain.Idle[[]string]()
	s.visible = false
	return s
}

// Items returns the visible suggestions.
func (s Suggestions) Items() []string {
	if !s.visible {
		return nil
	}
	users, _ := s.state.Value()
	return users
}

func (s Suggestions) Visible() bool { return s.visible }

func (s Suggestions) State() domain.RequestState[[]string] { return s.state }
