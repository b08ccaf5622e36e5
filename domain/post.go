package domain

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// DeletedAuthor is rendered in place of a missing author.
	DeletedAuthor = "[deleted]"

	// DefaultProfilePicURL is used when a post carries no avatar.
	DefaultProfilePicURL = "https://www.redditstatic.com/avatars/avatar_default_02_24A0ED.png"

	// TimelineCommunity is the sentinel community that yields the global timeline.
	TimelineCommunity = "all"
)

// Post is a single piece of content from the backend store.
// Nullable backend fields are pointers; use the accessor methods for display.
type Post struct {
	ID            string
	Author        *string
	Community     string
	Title         *string
	Text          *string
	Images        []string
	URL           string
	Timestamp     string // Opaque display string
	ProfilePicURL *string
	NumComments   int
}

// AuthorName returns the author or "[deleted]".
func (p Post) AuthorName() string {
	if p.Author == nil || strings.TrimSpace(*p.Author) == "" {
		return DeletedAuthor
	}
	return *p.Author
}

// AvatarURL returns the profile picture or the default avatar.
func (p Post) AvatarURL() string {
	if p.ProfilePicURL == nil || strings.TrimSpace(*p.ProfilePicURL) == "" {
		return DefaultProfilePicURL
	}
	return *p.ProfilePicURL
}

// TitleText returns the title or "".
func (p Post) TitleText() string {
	return deref(p.Title)
}

// BodyText returns the body or "".
func (p Post) BodyText() string {
	return deref(p.Text)
}

// DisplayText is the single line shown in lists: title first, then body.
func (p Post) DisplayText() string {
	if t := strings.TrimSpace(p.TitleText()); t != "" {
		return t
	}
	return strings.TrimSpace(p.BodyText())
}

// Displayable reports whether the post has a title or a body.
func (p Post) Displayable() bool {
	return p.DisplayText() != ""
}

// FirstImage returns the first image URL, if any.
func (p Post) FirstImage() (string, bool) {
	for _, img := range p.Images {
		if img = strings.TrimSpace(img); img != "" {
			return img, true
		}
	}
	return "", false
}

// Ref returns the route reference of the post.
func (p Post) Ref() PostRef {
	return PostRef{Community: p.Community, PostID: p.ID}
}

// Key identifies a post across communities.
func (p Post) Key() string {
	return p.Community + "/" + p.ID
}

// FilterDisplayable drops posts with neither title nor body.
func FilterDisplayable(posts []Post) []Post {
	return lo.Filter(posts, func(p Post, _ int) bool {
		return p.Displayable()
	})
}

// PostRef addresses a post by its community and identifier.
type PostRef struct {
	Community string
	PostID    string
}

// Valid reports whether both parts are present.
func (r PostRef) Valid() bool {
	return strings.TrimSpace(r.Community) != "" && strings.TrimSpace(r.PostID) != ""
}

func (r PostRef) String() string {
	return r.Community + "/" + r.PostID
}

// Comment belongs to exactly one post.
type Comment struct {
	ID     string
	Author *string
	Body   *string
}

// AuthorName returns the author or "[deleted]".
func (c Comment) AuthorName() string {
	if c.Author == nil || strings.TrimSpace(*c.Author) == "" {
		return DeletedAuthor
	}
	return *c.Author
}

// BodyText returns the body or "".
func (c Comment) BodyText() string {
	return deref(c.Body)
}

// Thread is a post together with its comments.
type Thread struct {
	Post     Post
	Comments []Comment
}

// CommentTexts returns the non-blank comment bodies in order.
func (t Thread) CommentTexts() []string {
	return lo.FilterMap(t.Comments, func(c Comment, _ int) (string, bool) {
		body := c.BodyText()
		return body, strings.TrimSpace(body) != ""
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr is a small helper for building nullable fields.
func StringPtr(s string) *string {
	return &s
}
