package search

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalsentiment/app"
	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// NoResultsNotice is shown when a search succeeds with no posts.
const NoResultsNotice = "No posts found for this query"

// HashtagMode chooses how a hashtag query is resolved.
type HashtagMode int

const (
	// HashtagCommunity looks the hashtag up as an exact community.
	HashtagCommunity HashtagMode = iota
	// HashtagFullText runs a free-text post search.
	HashtagFullText
)

// Endpoint is a backend posts endpoint.
type Endpoint int

const (
	EndpointByAuthor Endpoint = iota
	EndpointByCommunity
	EndpointFullText
)

func (e Endpoint) String() string {
	switch e {
	case EndpointByAuthor:
		return "by-author"
	case EndpointByCommunity:
		return "by-community"
	case EndpointFullText:
		return "full-text"
	}
	return "unknown"
}

// Resolve maps a search kind to its endpoint. Timeline is the "all" community.
func Resolve(kind domain.SearchKind, mode HashtagMode) (Endpoint, error) {
	switch kind {
	case domain.SearchUsername:
		return EndpointByAuthor, nil
	case domain.SearchHashtag:
		if mode == HashtagFullText {
			return EndpointFullText, nil
		}
		return EndpointByCommunity, nil
	case domain.SearchTimeline:
		return EndpointByCommunity, nil
	}
	return 0, fmt.Errorf("%w: unsupported search kind %q", domain.ErrInvalidQuery, string(kind))
}

// ResultMsg carries a completed search back to its owner.
type ResultMsg struct {
	Owner    string
	Seq      int
	QueryKey string
	Posts    []domain.Post
	Err      error
}

func (m ResultMsg) RouteOwner() string { return m.Owner }

// Orchestrator turns search queries into post-list request state.
// Responses are applied only when they match the current request's seq and query key.
type Orchestrator struct {
	owner   string
	posts   app.PostService
	hashtag HashtagMode
	seq     int
	query   domain.SearchQuery
	mode    HashtagMode // mode of the current query
	state   domain.RequestState[[]domain.Post]
}

// New creates an Orchestrator whose messages are routed to owner.
func New(owner string, posts app.PostService, mode HashtagMode) Orchestrator {
	return Orchestrator{owner: owner, posts: posts, hashtag: mode}
}

// Search issues q using the orchestrator's hashtag mode.
func (o Orchestrator) Search(q domain.SearchQuery) (Orchestrator, tea.Cmd) {
	return o.SearchWith(q, o.hashtag)
}

// SearchWith issues q with an explicit hashtag mode. Invalid queries fail
// immediately and return a nil Cmd. Any in-flight request becomes stale.
func (o Orchestrator) SearchWith(q domain.SearchQuery, mode HashtagMode) (Orchestrator, tea.Cmd) {
	o.seq++
	o.query = q
	o.mode = mode
	if err := q.Validate(); err != nil {
		o.state = domain.Failed[[]domain.Post](domain.DescribeError(err))
		return o, nil
	}
	endpoint, err := Resolve(q.Kind, mode)
	if err != nil {
		o.state = domain.Failed[[]domain.Post](domain.DescribeError(err))
		return o, nil
	}
	o.state = domain.Pending[[]domain.Post]()
	return o, o.fetch(o.seq, q, endpoint)
}

// Retry re-issues the current query with the mode it was issued with.
func (o Orchestrator) Retry() (Orchestrator, tea.Cmd) {
	if o.query == (domain.SearchQuery{}) {
		return o, nil
	}
	return o.SearchWith(o.query, o.mode)
}

// Reset returns to idle and discards any in-flight response.
func (o Orchestrator) Reset() Orchestrator {
	o.seq++
	o.query = domain.SearchQuery{}
	o.state = domain.Idle[[]domain.Post]()
	return o
}

// Update applies a result if it is current. It reports whether state changed.
func (o Orchestrator) Update(msg ResultMsg) (Orchestrator, bool) {
	if msg.Owner != o.owner || msg.Seq != o.seq || msg.QueryKey != o.query.Key() {
		return o, false
	}
	if msg.Err != nil {
		o.state = domain.Failed[[]domain.Post](domain.DescribeError(msg.Err))
		return o, true
	}
	o.state = domain.Succeeded(domain.FilterDisplayable(msg.Posts))
	return o, true
}

func (o Orchestrator) fetch(seq int, q domain.SearchQuery, endpoint Endpoint) tea.Cmd {
	posts := o.posts
	owner := o.owner
	term := q.Term()
	key := q.Key()
	return func() tea.Msg {
		var (
			out []domain.Post
			err error
		)
		ctx := context.Background()
		switch endpoint {
		case EndpointByAuthor:
			out, err = posts.ByAuthor(ctx, term)
		case EndpointByCommunity:
			out, err = posts.ByCommunity(ctx, term)
		case EndpointFullText:
			out, err = posts.Search(ctx, term)
		}
		return ResultMsg{Owner: owner, Seq: seq, QueryKey: key, Posts: out, Err: err}
	}
}

// State returns the current request state.
func (o Orchestrator) State() domain.RequestState[[]domain.Post] {
	return o.state
}

// Query returns the current query.
func (o Orchestrator) Query() domain.SearchQuery {
	return o.query
}

// Posts returns the loaded posts, nil unless succeeded.
func (o Orchestrator) Posts() []domain.Post {
	posts, _ := o.state.Value()
	return posts
}

// Notice is the user-visible message for a successful empty search, "" otherwise.
func (o Orchestrator) Notice() string {
	if o.Empty() {
		return NoResultsNotice
	}
	return ""
}

// Empty reports a successful search that found nothing.
func (o Orchestrator) Empty() bool {
	posts, ok := o.state.Value()
	return ok && len(posts) == 0
}
