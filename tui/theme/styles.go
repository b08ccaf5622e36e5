package theme

import "github.com/charmbracelet/lipgloss"

type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
	author    lipgloss.Color
	positive  lipgloss.Color
	negative  lipgloss.Color
	neutral   lipgloss.Color
	highlight lipgloss.Color
}

var (
	darkPalette = palette{
		accent:    lipgloss.Color("#FF6600"),
		text:      lipgloss.Color("#CAD3F5"),
		muted:     lipgloss.Color("#6E738D"),
		border:    lipgloss.Color("#45475A"),
		author:    lipgloss.Color("#7DC4E4"),
		positive:  lipgloss.Color("#A6DA95"),
		negative:  lipgloss.Color("#ED8796"),
		neutral:   lipgloss.Color("#EED49F"),
		highlight: lipgloss.Color("#1E2030"),
	}
	lightPalette = palette{
		accent:    lipgloss.Color("#D14800"),
		text:      lipgloss.Color("#1C1C1C"),
		muted:     lipgloss.Color("#7C7F93"),
		border:    lipgloss.Color("#BCC0CC"),
		author:    lipgloss.Color("#1E66F5"),
		positive:  lipgloss.Color("#40A02B"),
		negative:  lipgloss.Color("#D20F39"),
		neutral:   lipgloss.Color("#DF8E1D"),
		highlight: lipgloss.Color("#E6E9EF"),
	}
)

// Styles is the full set of lipgloss styles for one theme.
type Styles struct {
	Title          lipgloss.Style
	Tagline        lipgloss.Style
	Author         lipgloss.Style
	Timestamp      lipgloss.Style
	Content        lipgloss.Style
	Muted          lipgloss.Style
	Selected       lipgloss.Style // bordered card for the selected post
	Unselected     lipgloss.Style
	StatusBar      lipgloss.Style
	ActionActive   lipgloss.Style
	ActionInactive lipgloss.Style
	Error          lipgloss.Style
	Notice         lipgloss.Style
	Badge          lipgloss.Style
	Positive       lipgloss.Style
	Negative       lipgloss.Style
	Neutral        lipgloss.Style
}

// NewStyles builds the styles for t. Unknown themes get the light styles.
func NewStyles(t Theme) Styles {
	p := lightPalette
	if t == Dark {
		p = darkPalette
	}
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			Padding(1, 2, 0, 1),
		Tagline: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			MarginLeft(1),
		Author: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.author),
		Timestamp: lipgloss.NewStyle().Foreground(p.muted),
		Content:   lipgloss.NewStyle().Foreground(p.text),
		Muted:     lipgloss.NewStyle().Foreground(p.muted),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		Unselected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(1, 0, 0, 0),
		ActionActive: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		ActionInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(p.negative).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(p.neutral).
			Italic(true),
		Badge: lipgloss.NewStyle().
			Foreground(p.positive).
			Background(p.highlight).
			Bold(true).
			Padding(0, 1),
		Positive: lipgloss.NewStyle().Foreground(p.positive).Bold(true),
		Negative: lipgloss.NewStyle().Foreground(p.negative).Bold(true),
		Neutral:  lipgloss.NewStyle().Foreground(p.neutral).Bold(true),
	}
}
