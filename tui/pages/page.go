// Package pages holds the routed screens: Home, Explore, Trending and Post.
// Each page owns its post list, its selection and its request states.
package pages

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

// Page names, also used as message owners.
const (
	HomeName     = "home"
	ExploreName  = "explore"
	TrendingName = "trending"
	PostName     = "post"
)

// Page is a routed screen. Pages are mounted when routed to and unmounted when left.
type Page interface {
	Name() string
	Mount() (Page, tea.Cmd)
	Unmount() Page
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	SetStyles(s theme.Styles) Page
	SetSize(width, height int) Page
	// Capturing reports that a text input owns the keyboard.
	Capturing() bool
}

// OpenPostMsg asks the root model to route to a post's thread.
type OpenPostMsg struct {
	Ref domain.PostRef
}

// BackMsg asks the root model to return to the previous page.
type BackMsg struct{}

// Deps are the services and settings shared by all pages.
type Deps struct {
	Posts     app.PostService
	Users     app.UserService
	Sentiment app.SentimentService
	Images    app.ImageEncoder
	Log       logrus.FieldLogger
	Styles    theme.Styles
}

func (d Deps) logger() logrus.FieldLogger {
	if d.Log != nil {
		return d.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
