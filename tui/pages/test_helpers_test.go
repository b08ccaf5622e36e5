package pages

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaswdr/faker"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

var fake = faker.New()

type stubPosts struct {
	mu     sync.Mutex
	calls  []string
	posts  []domain.Post
	thread domain.Thread
	err    error
}

func (s *stubPosts) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubPosts) ByAuthor(_ context.Context, username string) ([]domain.Post, error) {
	s.record("author:" + username)
	return s.posts, s.err
}

func (s *stubPosts) ByCommunity(_ context.Context, community string) ([]domain.Post, error) {
	s.record("community:" + community)
	return s.posts, s.err
}

func (s *stubPosts) Search(_ context.Context, query string) ([]domain.Post, error) {
	s.record("search:" + query)
	return s.posts, s.err
}

func (s *stubPosts) Thread(_ context.Context, ref domain.PostRef) (domain.Thread, error) {
	s.record("thread:" + ref.String())
	return s.thread, s.err
}

type stubUsers struct{}

func (stubUsers) SearchUsers(context.Context, string) ([]string, error) { return nil, nil }

type stubSentiment struct {
	mu      sync.Mutex
	inputs  []domain.AnalysisInput
	batches [][]string
}

func (s *stubSentiment) Analyze(_ context.Context, in domain.AnalysisInput) (domain.SentimentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, in)
	return domain.SentimentResult{
		Sentiment:    domain.SentimentPositive,
		Confidence:   0.8765,
		Distribution: domain.Distribution{domain.SentimentPositive: 0.8765, domain.SentimentNeutral: 0.1, domain.SentimentNegative: 0.0235},
		TextUsed:     true,
	}, nil
}

func (s *stubSentiment) AnalyzeComments(_ context.Context, texts []string) (domain.AggregateSentimentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, texts)
	return domain.AggregateSentimentResult{
		Majority:            domain.SentimentNeutral,
		AverageDistribution: domain.Distribution{domain.SentimentNeutral: 0.6, domain.SentimentPositive: 0.3, domain.SentimentNegative: 0.1},
		Count:               len(texts),
	}, nil
}

type stubEncoder struct {
	urls []string
}

func (e *stubEncoder) Encode(_ context.Context, url string) (string, error) {
	e.urls = append(e.urls, url)
	return "data:image/jpeg;base64,/9j/", nil
}

type fixture struct {
	posts   *stubPosts
	svc     *stubSentiment
	encoder *stubEncoder
	deps    Deps
}

func newFixture(n int) fixture {
	f := fixture{
		posts:   &stubPosts{posts: fakePosts(n)},
		svc:     &stubSentiment{},
		encoder: &stubEncoder{},
	}
	f.deps = Deps{
		Posts:     f.posts,
		Users:     stubUsers{},
		Sentiment: f.svc,
		Images:    f.encoder,
		Styles:    theme.NewStyles(theme.Dark),
	}
	return f
}

func fakePosts(n int) []domain.Post {
	posts := make([]domain.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, domain.Post{
			ID:          fake.UUID().V4(),
			Author:      domain.StringPtr(strings.ToLower(fake.Person().FirstName())),
			Community:   "golang",
			Title:       domain.StringPtr(strings.Join(fake.Lorem().Words(4), " ")),
			Text:        domain.StringPtr(fake.Lorem().Paragraph(2)),
			Images:      []string{fake.Internet().URL() + "/img.png"},
			NumComments: i * 10,
		})
	}
	return posts
}

// drain runs cmd and any batched cmds, skipping spinner ticks.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds cmd's messages back into p until no work remains.
func settle(p Page, cmd tea.Cmd) (Page, []tea.Msg) {
	var emitted []tea.Msg
	queue := drain(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case OpenPostMsg, BackMsg:
			emitted = append(emitted, msg)
			continue
		}
		var next tea.Cmd
		p, next = p.Update(msg)
		queue = append(queue, drain(next)...)
	}
	return p, emitted
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
