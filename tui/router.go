package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/CrestNiraj12/terminalsentiment/domain"
	"github.com/CrestNiraj12/terminalsentiment/tui/pages"
)

// Route is a parsed location: a page name plus the post ref for the Post page.
type Route struct {
	Page string
	Post domain.PostRef
}

// Path renders the route back to its canonical path.
func (r Route) Path() string {
	switch r.Page {
	case pages.ExploreName:
		return "/explore"
	case pages.TrendingName:
		return "/trending"
	case pages.PostName:
		return "/posts/" + url.PathEscape(r.Post.Community) + "/" + url.PathEscape(r.Post.PostID)
	}
	return "/"
}

// ParseRoute maps "/", "/explore", "/trending" and "/posts/{community}/{postId}".
func ParseRoute(path string) (Route, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Route{Page: pages.HomeName}, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	trimmed := strings.TrimRight(path, "/")
	switch trimmed {
	case "":
		return Route{Page: pages.HomeName}, nil
	case "/explore":
		return Route{Page: pages.ExploreName}, nil
	case "/trending":
		return Route{Page: pages.TrendingName}, nil
	}

	parts := strings.Split(strings.TrimPrefix(trimmed, "/"), "/")
	if len(parts) == 3 && parts[0] == "posts" {
		community, err1 := url.PathUnescape(parts[1])
		postID, err2 := url.PathUnescape(parts[2])
		ref := domain.PostRef{Community: community, PostID: postID}
		if err1 == nil && err2 == nil && ref.Valid() {
			return Route{Page: pages.PostName, Post: ref}, nil
		}
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}
