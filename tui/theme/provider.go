// Package theme holds the light/dark theme and its persistence.
package theme

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Theme is the visual theme name as persisted.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default is used when nothing valid is stored.
	Default = Light
)

// Parse returns the theme named s, or Default.
func Parse(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark
	case Light:
		return Light
	}
	return Default
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Store persists the theme name.
type Store interface {
	LoadTheme() (string, error)
	SaveTheme(theme string) error
}

// Provider owns the active theme: it loads it from the store once,
// exposes the value with its styles, and persists every change.
type Provider struct {
	store  Store
	log    logrus.FieldLogger
	theme  Theme
	styles Styles
}

// NewProvider loads the stored theme. A nil store keeps the theme in memory only.
func NewProvider(store Store, log logrus.FieldLogger) *Provider {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	p := &Provider{store: store, log: log, theme: Default}
	if store != nil {
		name, err := store.LoadTheme()
		if err != nil {
			log.WithError(err).Warn("loading theme; using default")
		} else {
			p.theme = Parse(name)
		}
	}
	p.styles = NewStyles(p.theme)
	return p
}

func (p *Provider) Theme() Theme { return p.theme }

func (p *Provider) Styles() Styles { return p.styles }

// Set switches to t and persists it. The in-memory theme changes even when saving fails.
func (p *Provider) Set(t Theme) error {
	t = Parse(string(t))
	if t == p.theme {
		return nil
	}
	p.theme = t
	p.styles = NewStyles(t)
	if p.store == nil {
		return nil
	}
	if err := p.store.SaveTheme(string(t)); err != nil {
		p.log.WithError(err).WithField("theme", t).Warn("saving theme")
		return err
	}
	return nil
}

// Toggle flips between light and dark.
func (p *Provider) Toggle() error {
	return p.Set(p.theme.Toggled())
}
