package pages

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/common"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

const (
	barWidth        = 20
	splitMinWidth   = 100
	defaultWidth    = 80
	defaultVisible  = 5
	rowsPerPostCard = 4
)

func header(s theme.Styles, title, tagline string) string {
	return s.Title.Render(title) + "\n" + s.Tagline.Render(tagline)
}

func (b browser) contentWidth() int {
	if b.width <= 0 {
		return defaultWidth
	}
	return b.width
}

// visibleCount is how many post cards fit below the used rows.
func (b browser) visibleCount(used int) int {
	if b.height <= 0 {
		return defaultVisible
	}
	return max(1, (b.height-used-2)/rowsPerPostCard)
}

// body renders the list with the analysis panel beside or below it.
func (b browser) body(used int) string {
	width := b.contentWidth()
	if !b.analyzer.Active() {
		return b.renderList(width, b.visibleCount(used))
	}
	if width >= splitMinWidth {
		listW := width * 55 / 100
		list := b.renderList(listW, b.visibleCount(used))
		panel := renderAnalysis(b.styles, b.analyzer, b.spinner.View(), width-listW-2)
		return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", panel)
	}
	list := b.renderList(width, max(1, b.visibleCount(used)/2))
	return list + "\n\n" + renderAnalysis(b.styles, b.analyzer, b.spinner.View(), width)
}

func (b browser) renderList(width, visible int) string {
	s := b.styles
	state := b.search.State()
	switch {
	case state.IsIdle():
		return s.Muted.Render("Pick a query to load posts.")
	case state.IsPending():
		return b.spinner.View() + " Loading posts..."
	case state.IsFailed():
		return s.Error.Render("Error: " + state.Message())
	}
	if notice := b.search.Notice(); notice != "" {
		return s.Notice.Render(notice)
	}

	posts := b.posts()
	start := 0
	if b.cursor >= visible {
		start = b.cursor - visible + 1
	}
	end := min(len(posts), start+visible)

	selected, hasSelected := b.analyzer.Selected()
	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		marked := hasSelected && selected.Key() == posts[i].Key()
		cards = append(cards, renderPostCard(s, posts[i], width-4, i == b.cursor, marked))
	}
	cards = append(cards, s.Muted.Render(fmt.Sprintf("%d/%d posts", b.cursor+1, len(posts))))
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderPostCard(s theme.Styles, p domain.Post, width int, highlighted, analyzed bool) string {
	meta := s.Author.Render("@"+p.AuthorName()) + s.Timestamp.Render(" · r/"+p.Community)
	if p.NumComments > 0 {
		meta += s.Timestamp.Render(" · " + common.FormatCount(p.NumComments) + " comments")
	}
	if analyzed {
		meta += s.Badge.Render("analyzed")
	}
	text := common.Truncate(common.FirstLine(p.DisplayText()), max(10, width))
	lines := []string{meta, s.Content.Render(text)}
	if img, ok := p.FirstImage(); ok {
		lines = append(lines, s.Muted.Render(common.Truncate("🖼 "+img, max(10, width))))
	}

	card := s.Unselected
	if highlighted {
		card = s.Selected
	}
	return card.Width(max(10, width)).Render(strings.Join(lines, "\n"))
}

type analyzerView interface {
	Selected() (domain.Post, bool)
	State() domain.RequestState[domain.SentimentResult]
}

func renderAnalysis(s theme.Styles, a analyzerView, spin string, width int) string {
	var b strings.Builder
	b.WriteString(s.Title.UnsetPadding().Render("Sentiment Analysis"))
	b.WriteString("\n\n")

	if p, ok := a.Selected(); ok {
		b.WriteString(s.Muted.Render("Selected post"))
		b.WriteString("\n")
		b.WriteString(s.Content.Render(common.Truncate(common.FirstLine(p.DisplayText()), width)))
		b.WriteString("\n")
		if img, ok := p.FirstImage(); ok {
			b.WriteString(s.Muted.Render(common.Truncate("Image: "+img, width)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	state := a.State()
	switch {
	case state.IsPending():
		b.WriteString(spin + " Analyzing sentiment...")
	case state.IsFailed():
		b.WriteString(s.Error.Render(state.Message()))
	case state.IsSucceeded():
		res, _ := state.Value()
		b.WriteString("Overall: " + sentimentBadge(s, res.Sentiment))
		b.WriteString("\n")
		b.WriteString("Confidence: " + common.Percent(res.Confidence, 2))
		b.WriteString("\n\n")
		b.WriteString(renderDistribution(s, res.Distribution))
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render(fmt.Sprintf("Modalities: text %s  image %s", tick(res.TextUsed), tick(res.ImageUsed))))
	default:
		b.WriteString(s.Muted.Render("Select a post to analyze its sentiment."))
	}
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("esc close"))
	return lipgloss.NewStyle().Width(max(20, width)).Render(b.String())
}

func tick(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func sentimentStyle(s theme.Styles, label domain.Sentiment) lipgloss.Style {
	switch label {
	case domain.SentimentPositive:
		return s.Positive
	case domain.SentimentNegative:
		return s.Negative
	}
	return s.Neutral
}

func sentimentBadge(s theme.Styles, label domain.Sentiment) string {
	return sentimentStyle(s, label).Render(strings.ToUpper(string(label)))
}

// renderDistribution draws one bar per label: the three known labels in
// fixed order, then any extra labels the model returned.
func renderDistribution(s theme.Styles, d domain.Distribution) string {
	extra := lo.Filter(lo.Keys(d), func(l domain.Sentiment, _ int) bool { return !l.Known() })
	slices.Sort(extra)
	labels := append(append([]domain.Sentiment{}, domain.Labels...), extra...)

	width := lo.Max(lo.Map(labels, func(l domain.Sentiment, _ int) int { return len(l) }))
	rows := lo.Map(labels, func(l domain.Sentiment, _ int) string {
		v := d.Get(l)
		filled := common.Clamp(int(math.Round(v*barWidth)), 0, barWidth)
		bar := sentimentStyle(s, l).Render(strings.Repeat("█", filled)) + s.Muted.Render(strings.Repeat("░", barWidth-filled))
		return fmt.Sprintf("%-*s %s %s", width, l, bar, common.Percent(v, 1))
	})
	return strings.Join(rows, "\n")
}

func renderHints(s theme.Styles, bindings ...key.Binding) string {
	parts := lo.FilterMap(bindings, func(b key.Binding, _ int) (string, bool) {
		h := b.Help()
		return h.Key + " " + h.Desc, h.Key != ""
	})
	return s.StatusBar.Render(strings.Join(parts, " • "))
}
