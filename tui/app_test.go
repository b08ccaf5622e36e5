package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/pages"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

type stubPosts struct {
	calls []string
}

func (s *stubPosts) posts() []domain.Post {
	return []domain.Post{
		{ID: "p1", Community: "golang", Title: domain.StringPtr("Generics are here")},
		{ID: "p2", Community: "golang", Text: domain.StringPtr("Iterators next")},
	}
}

func (s *stubPosts) ByAuthor(_ context.Context, u string) ([]domain.Post, error) {
	s.calls = append(s.calls, "author:"+u)
	return s.posts(), nil
}

func (s *stubPosts) ByCommunity(_ context.Context, c string) ([]domain.Post, error) {
	s.calls = append(s.calls, "community:"+c)
	return s.posts(), nil
}

func (s *stubPosts) Search(_ context.Context, q string) ([]domain.Post, error) {
	s.calls = append(s.calls, "search:"+q)
	return s.posts(), nil
}

func (s *stubPosts) Thread(_ context.Context, ref domain.PostRef) (domain.Thread, error) {
	s.calls = append(s.calls, "thread:"+ref.String())
	return domain.Thread{Post: domain.Post{ID: ref.PostID, Community: ref.Community}}, nil
}

type noUsers struct{}

func (noUsers) SearchUsers(context.Context, string) ([]string, error) { return nil, nil }

type noSentiment struct{}

func (noSentiment) Analyze(context.Context, domain.AnalysisInput) (domain.SentimentResult, error) {
	return domain.SentimentResult{Sentiment: domain.SentimentNeutral}, nil
}

func (noSentiment) AnalyzeComments(context.Context, []string) (domain.AggregateSentimentResult, error) {
	return domain.AggregateSentimentResult{}, nil
}

type failingStore struct{}

func (failingStore) LoadTheme() (string, error) { return "", nil }
func (failingStore) SaveTheme(string) error     { return errors.New("read-only filesystem") }

func newTestApp(route Route) (App, *stubPosts) {
	posts := &stubPosts{}
	return NewApp(Deps{
		Posts:     posts,
		Users:     noUsers{},
		Sentiment: noSentiment{},
		Route:     route,
	}), posts
}

// collect runs cmd, flattening batches and dropping spinner ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

func run(a App, cmd tea.Cmd) App {
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		m, next := a.Update(msg)
		a = m.(App)
		queue = append(queue, collect(next)...)
	}
	return a
}

func send(a App, msg tea.Msg) (App, tea.Cmd) {
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_InitMountsInitialRoute(t *testing.T) {
	a, posts := newTestApp(Route{})
	a = run(a, a.Init())

	assert.Equal(t, pages.HomeName, a.Active())
	assert.Equal(t, []string{"community:all"}, posts.calls)
	assert.Contains(t, a.View(), "Generics are here")
}

func TestApp_InitDeepLinksToPost(t *testing.T) {
	a, posts := newTestApp(Route{Page: pages.PostName, Post: domain.PostRef{Community: "golang", PostID: "p9"}})
	a = run(a, a.Init())

	assert.Equal(t, pages.PostName, a.Active())
	assert.Equal(t, []string{"thread:golang/p9"}, posts.calls)
}

func TestApp_NumberKeysSwitchPages(t *testing.T) {
	a, _ := newTestApp(Route{})
	a = run(a, a.Init())

	a, cmd := send(a, runes("2"))
	a = run(a, cmd)
	assert.Equal(t, pages.ExploreName, a.Active())

	a, cmd = send(a, runes("3"))
	a = run(a, cmd)
	assert.Equal(t, pages.TrendingName, a.Active())
	assert.Contains(t, a.View(), "Trending")

	a, cmd = send(a, runes("1"))
	run(a, cmd)
	assert.Equal(t, pages.HomeName, a.Active())
}

func TestApp_CapturingPageKeepsKeys(t *testing.T) {
	a, _ := newTestApp(Route{})
	a = run(a, a.Init())

	// Focus the search panel; the blink cmd is not run.
	a, _ = send(a, runes("/"))
	require.True(t, a.Page(pages.HomeName).Capturing())

	a, _ = send(a, runes("2"))
	assert.Equal(t, pages.HomeName, a.Active())
}

func TestApp_QuitKeys(t *testing.T) {
	a, _ := newTestApp(Route{})
	a = run(a, a.Init())

	_, cmd := send(a, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	a, _ = send(a, runes("/"))
	_, cmd = send(a, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd(), "ctrl+c quits even while typing")
}

func TestApp_ResultReachesUnmountedOwner(t *testing.T) {
	a, _ := newTestApp(Route{})
	m, cmd := a.Update(navigateMsg{route: Route{Page: pages.HomeName}})
	a = m.(App)
	pending := collect(cmd)
	require.Contains(t, a.View(), "Loading posts")

	a, cmd = send(a, runes("2"))
	a = run(a, cmd)
	require.Equal(t, pages.ExploreName, a.Active())

	for _, msg := range pending {
		a, _ = send(a, msg)
	}
	assert.Equal(t, pages.ExploreName, a.Active())
	assert.Contains(t, a.Page(pages.HomeName).View(), "1/2 posts")
}

func TestApp_OpenPostAndBack(t *testing.T) {
	a, posts := newTestApp(Route{})
	a = run(a, a.Init())

	a = run(a, func() tea.Msg { return pages.OpenPostMsg{Ref: domain.PostRef{Community: "golang", PostID: "p1"}} })
	assert.Equal(t, pages.PostName, a.Active())
	assert.Equal(t, "thread:golang/p1", posts.calls[len(posts.calls)-1])

	a = run(a, func() tea.Msg { return pages.BackMsg{} })
	assert.Equal(t, pages.HomeName, a.Active())
	assert.Len(t, posts.calls, 2, "returning home does not refetch the timeline")
}

func TestApp_ToggleTheme(t *testing.T) {
	a, _ := newTestApp(Route{})
	a = run(a, a.Init())

	a, _ = send(a, runes("t"))
	assert.Equal(t, theme.Dark, a.theme.Theme())
	assert.Contains(t, a.View(), "Theme: dark")

	a, cmd := send(a, runes("2"))
	a = run(a, cmd)
	assert.NotContains(t, a.View(), "Theme: dark", "status clears on navigation")
}

func TestApp_ToggleThemeSaveFailure(t *testing.T) {
	posts := &stubPosts{}
	a := NewApp(Deps{
		Posts:     posts,
		Users:     noUsers{},
		Sentiment: noSentiment{},
		Theme:     theme.NewProvider(failingStore{}, nil),
	})
	a = run(a, a.Init())

	a, _ = send(a, runes("t"))
	assert.Equal(t, theme.Dark, a.theme.Theme())
	assert.Contains(t, a.View(), "Could not save theme: read-only filesystem")
}

func TestApp_WindowSizeReachesPages(t *testing.T) {
	a, _ := newTestApp(Route{})
	a = run(a, a.Init())
	a, _ = send(a, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, a.width)
	assert.NotEmpty(t, a.View())
}
