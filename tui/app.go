package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/tui/common"
	"github.com/CrestNiraj12/terminalsentiment/tui/pages"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts     app.PostService
	Users     app.UserService
	Sentiment app.SentimentService
	Images    app.ImageEncoder
	Theme     *theme.Provider
	Log       logrus.FieldLogger
	Route     Route
}

// App is the root Bubble Tea model. It owns the pages and routes between them.
type App struct {
	pages    map[string]pages.Page
	active   string
	previous string
	initial  Route
	theme    *theme.Provider
	log      logrus.FieldLogger
	keys     common.KeyMap
	status   string // Transient status message
	width    int
	height   int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Theme == nil {
		deps.Theme = theme.NewProvider(nil, deps.Log)
	}
	if deps.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		deps.Log = l
	}
	pd := pages.Deps{
		Posts:     deps.Posts,
		Users:     deps.Users,
		Sentiment: deps.Sentiment,
		Images:    deps.Images,
		Log:       deps.Log,
		Styles:    deps.Theme.Styles(),
	}
	route := deps.Route
	if route.Page == "" {
		route.Page = pages.HomeName
	}
	return App{
		pages: map[string]pages.Page{
			pages.HomeName:     pages.NewHome(pd),
			pages.ExploreName:  pages.NewExplore(pd),
			pages.TrendingName: pages.NewTrending(pd),
			pages.PostName:     pages.NewPost(pd),
		},
		initial: route,
		theme:   deps.Theme,
		log:     deps.Log,
		keys:    common.DefaultKeyMap(),
	}
}

type navigateMsg struct {
	route Route
}

// Init mounts the initial route.
func (a App) Init() tea.Cmd {
	r := a.initial
	return func() tea.Msg { return navigateMsg{route: r} }
}

// Active returns the name of the mounted page.
func (a App) Active() string { return a.active }

// Page returns a page by name.
func (a App) Page(name string) pages.Page { return a.pages[name] }

// Navigate unmounts the current page and mounts the route's page.
func (a App) Navigate(r Route) (App, tea.Cmd) {
	if _, ok := a.pages[r.Page]; !ok {
		r.Page = pages.HomeName
	}
	var cmds []tea.Cmd
	if a.active != "" && a.active != r.Page {
		a.pages[a.active] = a.pages[a.active].Unmount()
		a.previous = a.active
	}
	if r.Page == pages.PostName {
		post := a.pages[pages.PostName].(pages.Post)
		var cmd tea.Cmd
		post, cmd = post.Open(r.Post)
		a.pages[pages.PostName] = post
		cmds = append(cmds, cmd)
	}
	a.log.WithField("route", r.Path()).Debug("navigate")

	a.active = r.Page
	mounted, cmd := a.pages[a.active].Mount()
	a.pages[a.active] = mounted
	a.status = ""
	return a, tea.Batch(append(cmds, cmd)...)
}

func (a App) back() (App, tea.Cmd) {
	prev := a.previous
	if prev == "" || prev == pages.PostName {
		prev = pages.HomeName
	}
	return a.Navigate(Route{Page: prev})
}

// Update handles messages and routes to the pages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for name, p := range a.pages {
			a.pages[name] = p.SetSize(msg.Width, msg.Height-1)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if !a.current().Capturing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Home):
				return a.Navigate(Route{Page: pages.HomeName})
			case key.Matches(msg, a.keys.Explore):
				return a.Navigate(Route{Page: pages.ExploreName})
			case key.Matches(msg, a.keys.Trending):
				return a.Navigate(Route{Page: pages.TrendingName})
			case key.Matches(msg, a.keys.ToggleTheme):
				return a.toggleTheme(), nil
			}
		}

	case navigateMsg:
		return a.Navigate(msg.route)

	case pages.OpenPostMsg:
		return a.Navigate(Route{Page: pages.PostName, Post: msg.Ref})

	case pages.BackMsg:
		return a.back()

	case common.Routed:
		// Results reach their owner even after it was unmounted.
		name := msg.RouteOwner()
		p, ok := a.pages[name]
		if !ok {
			return a, nil
		}
		updated, cmd := p.Update(msg)
		a.pages[name] = updated
		return a, cmd
	}

	if a.active == "" {
		return a, nil
	}

	// Delegate to the active page.
	updated, cmd := a.current().Update(msg)
	a.pages[a.active] = updated
	return a, cmd
}

func (a App) current() pages.Page {
	if p, ok := a.pages[a.active]; ok {
		return p
	}
	return a.pages[pages.HomeName]
}

func (a App) toggleTheme() App {
	if err := a.theme.Toggle(); err != nil {
		a.status = "Could not save theme: " + err.Error()
	} else {
		a.status = "Theme: " + string(a.theme.Theme())
	}
	styles := a.theme.Styles()
	for name, p := range a.pages {
		a.pages[name] = p.SetStyles(styles)
	}
	return a
}

// View renders the active page.
func (a App) View() string {
	s := a.current().View()
	if a.status != "" {
		s += "\n" + a.theme.Styles().StatusBar.UnsetPadding().Render(a.status)
	}
	return s
}
