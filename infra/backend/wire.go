package backend

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// flexString decodes a JSON string, number, or null into text.
// The backend sends timestamps and ids as either.
type flexString struct {
	Value string
	Set   bool
}

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = flexString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString{Value: s, Set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString{Value: n.String(), Set: true}
	return nil
}

// wirePost is the post shape returned by every posts endpoint.
type wirePost struct {
	PostID        flexString `json:"post_id"`
	Title         *string    `json:"title"`
	Text          *string    `json:"text"`
	URL           *string    `json:"url"`
	Images        []string   `json:"images"`
	Author        *string    `json:"author"`
	ProfilePicURL *string    `json:"profile_pic_url"`
	Subreddit     *string    `json:"subreddit"`
	Timestamp     flexString `json:"timestamp"`
	NumComments   int        `json:"num_comments"`
}

type wireComment struct {
	ID     flexString `json:"id"`
	Author *string    `json:"author"`
	Text   *string    `json:"text"`
	Body   *string    `json:"body"`
}

type postsResponse struct {
	Posts []wirePost `json:"posts"`
}

type usersResponse struct {
	Users []string `json:"users"`
}

type threadResponse struct {
	Post     *wirePost     `json:"post"`
	Comments []wireComment `json:"comments"`
}

type analyzeRequest struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

type analyzeResponse struct {
	Sentiment    string             `json:"sentiment"`
	Confidence   float64            `json:"confidence"`
	Distribution map[string]float64 `json:"distribution"`
	TextUsed     bool               `json:"text_used"`
	ImageUsed    bool               `json:"image_used"`
}

type analyzeCommentsRequest struct {
	Comments []string `json:"comments"`
}

type analyzeCommentsResponse struct {
	MajoritySentiment string             `json:"majority_sentiment"`
	AvgDistribution   map[string]float64 `json:"avg_distribution"`
	Count             int                `json:"count"`
}

func mapPosts(in []wirePost) []domain.Post {
	return lo.Map(in, func(p wirePost, _ int) domain.Post {
		return mapPost(p)
	})
}

func mapPost(p wirePost) domain.Post {
	images := lo.Uniq(lo.FilterMap(p.Images, func(img string, _ int) (string, bool) {
		img = strings.TrimSpace(img)
		return img, img != ""
	}))
	return domain.Post{
		ID:            sanitizeForTerminal(p.PostID.Value),
		Author:        nullableAuthor(p.Author),
		Community:     sanitizeForTerminal(deref(p.Subreddit)),
		Title:         nullableText(p.Title),
		Text:          nullableText(p.Text),
		Images:        images,
		URL:           sanitizeForTerminal(deref(p.URL)),
		Timestamp:     sanitizeForTerminal(p.Timestamp.Value),
		ProfilePicURL: nullableText(p.ProfilePicURL),
		NumComments:   p.NumComments,
	}
}

func mapComments(in []wireComment) []domain.Comment {
	return lo.Map(in, func(c wireComment, _ int) domain.Comment {
		body := c.Body
		if body == nil {
			body = c.Text
		}
		return domain.Comment{
			ID:     sanitizeForTerminal(c.ID.Value),
			Author: nullableAuthor(c.Author),
			Body:   nullableText(body),
		}
	})
}

func mapDistribution(in map[string]float64) domain.Distribution {
	out := make(domain.Distribution, len(in))
	for k, v := range in {
		out[domain.ParseSentiment(k)] = v
	}
	return out
}

// nullableAuthor treats the literal string "None" as a missing author.
func nullableAuthor(s *string) *string {
	if s == nil {
		return nil
	}
	v := sanitizeForTerminal(strings.TrimSpace(*s))
	if v == "" || v == "None" {
		return nil
	}
	return &v
}

func nullableText(s *string) *string {
	if s == nil {
		return nil
	}
	v := sanitizeForTerminal(*s)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sanitizeForTerminal removes ANSI escape sequences and control characters
// (except newlines and tabs) so remote content cannot drive the terminal.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
