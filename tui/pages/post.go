package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/common"
	"github.com/CrestNiraj12/terminalsentiment/tui/sentiment"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
	"github.com/CrestNiraj12/terminalsentiment/tui/thread"
)

// Post shows one post with its comments and their aggregate sentiment.
type Post struct {
	thread  thread.Orchestrator
	offset  int // first visible comment
	spinner spinner.Model
	keys    common.KeyMap
	styles  theme.Styles
	width   int
	height  int
}

func NewPost(d Deps) Post {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = d.Styles.ActionActive.UnsetPadding()
	return Post{
		thread:  thread.New(PostName, d.Posts, d.Sentiment),
		spinner: s,
		keys:    common.DefaultKeyMap(),
		styles:  d.Styles,
	}
}

func (p Post) Name() string { return PostName }

// Open loads ref unless it is already the current thread.
func (p Post) Open(ref domain.PostRef) (Post, tea.Cmd) {
	if ref == p.thread.Ref() && !p.thread.State().IsFailed() && !p.thread.State().IsIdle() {
		return p, nil
	}
	p.offset = 0
	var cmd tea.Cmd
	p.thread, cmd = p.thread.Load(ref)
	return p, cmd
}

func (p Post) Mount() (Page, tea.Cmd) { return p, p.spinner.Tick }

func (p Post) Unmount() Page { return p }

func (p Post) Ref() domain.PostRef { return p.thread.Ref() }

func (p Post) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case thread.LoadedMsg, sentiment.BatchResultMsg:
		var changed bool
		p.thread, changed = p.thread.Update(msg)
		if _, ok := msg.(thread.LoadedMsg); ok && changed {
			p.offset = 0
		}
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Close):
			return p, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, p.keys.Analyze):
			var cmd tea.Cmd
			p.thread, cmd = p.thread.AnalyzeThread()
			return p, cmd
		case key.Matches(msg, p.keys.Refresh):
			var cmd tea.Cmd
			p.thread, cmd = p.thread.Reload()
			return p, cmd
		case key.Matches(msg, p.keys.Up):
			p.offset = max(0, p.offset-1)
		case key.Matches(msg, p.keys.Down):
			if th, ok := p.thread.State().Value(); ok {
				p.offset = common.Clamp(p.offset+1, 0, len(th.Comments)-1)
			}
		}
	}
	return p, nil
}

func (p Post) Capturing() bool { return false }

func (p Post) SetStyles(s theme.Styles) Page {
	p.styles = s
	p.spinner.Style = s.ActionActive.UnsetPadding()
	return p
}

func (p Post) SetSize(width, height int) Page {
	p.width, p.height = width, height
	return p
}

func (p Post) contentWidth() int {
	if p.width <= 0 {
		return defaultWidth
	}
	return p.width
}

func (p Post) View() string {
	s := p.styles
	ref := p.thread.Ref()
	top := header(s, "Post", "r/"+ref.Community+" · "+ref.PostID) + "\n\n"
	hints := renderHints(s, p.keys.Analyze, p.keys.Refresh, p.keys.Up, p.keys.Down, p.keys.Close, p.keys.Quit)

	state := p.thread.State()
	var body string
	switch {
	case state.IsPending():
		body = p.spinner.View() + " Loading post..."
	case state.IsFailed():
		body = s.Error.Render("Error: " + state.Message())
	case state.IsSucceeded():
		th, _ := state.Value()
		body = p.renderThread(th, lipgloss.Height(top)+lipgloss.Height(hints))
	default:
		body = s.Muted.Render("No post selected.")
	}
	return top + body + "\n" + hints
}

func (p Post) renderThread(th domain.Thread, used int) string {
	s := p.styles
	width := p.contentWidth()

	var b strings.Builder
	post := th.Post
	b.WriteString(s.Author.Render("@"+post.AuthorName()) + s.Timestamp.Render(" · r/"+post.Community))
	if post.Timestamp != "" {
		b.WriteString(s.Timestamp.Render(" · " + post.Timestamp))
	}
	b.WriteString("\n")
	if title := strings.TrimSpace(post.TitleText()); title != "" {
		b.WriteString(s.Content.Bold(true).Render(common.Truncate(title, width)))
		b.WriteString("\n")
	}
	if text := strings.TrimSpace(post.BodyText()); text != "" {
		b.WriteString(s.Content.Width(width).Render(text))
		b.WriteString("\n")
	}
	for _, img := range post.Images {
		b.WriteString(s.Muted.Render(common.Truncate("🖼 "+img, width)))
		b.WriteString("\n")
	}
	if post.URL != "" {
		b.WriteString(s.Muted.Render(common.Truncate(post.URL, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.renderCommentAnalysis())
	b.WriteString("\n\n")

	head := b.String()
	b.WriteString(s.Title.UnsetPadding().Render(fmt.Sprintf("Comments (%d)", len(th.Comments))))
	b.WriteString("\n")
	if len(th.Comments) == 0 {
		b.WriteString(s.Muted.Render("No comments."))
		return b.String()
	}

	room := 5
	if p.height > 0 {
		room = max(1, (p.height-used-lipgloss.Height(head)-1)/2)
	}
	end := min(len(th.Comments), p.offset+room)
	for _, c := range th.Comments[p.offset:end] {
		b.WriteString(s.Author.Render("@" + c.AuthorName()))
		b.WriteString(" ")
		b.WriteString(s.Content.Render(common.Truncate(common.FirstLine(c.BodyText()), max(10, width-len(c.AuthorName())-3))))
		b.WriteString("\n")
	}
	if end < len(th.Comments) {
		b.WriteString(s.Muted.Render(fmt.Sprintf("… %d more", len(th.Comments)-end)))
	}
	return b.String()
}

func (p Post) renderCommentAnalysis() string {
	s := p.styles
	state := p.thread.Analysis()
	switch {
	case state.IsPending():
		return p.spinner.View() + " Analyzing comments..."
	case state.IsFailed():
		return s.Error.Render(state.Message())
	case state.IsSucceeded():
		res, _ := state.Value()
		return fmt.Sprintf("Comment sentiment: %s (%d comments)\n%s",
			sentimentBadge(s, res.Majority), res.Count, renderDistribution(s, res.AverageDistribution))
	}
	if p.thread.CanAnalyze() {
		return s.Muted.Render("Press a to analyze comment sentiment.")
	}
	return s.Muted.Render("Nothing to analyze.")
}
