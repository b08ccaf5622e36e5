package domain

import (
	"fmt"
	"strings"
)

// SearchKind selects how a query is resolved against the backend.
type SearchKind string

const (
	SearchUsername SearchKind = "username"
	SearchHashtag  SearchKind = "hashtag"
	SearchTimeline SearchKind = "timeline"
)

// Valid reports whether the kind is one of the supported kinds.
func (k SearchKind) Valid() bool {
	switch k {
	case SearchUsername, SearchHashtag, SearchTimeline:
		return true
	}
	return false
}

// SearchQuery is a trimmed user query and its kind.
type SearchQuery struct {
	Raw  string
	Kind SearchKind
}

// NewSearchQuery trims the raw input.
func NewSearchQuery(raw string, kind SearchKind) SearchQuery {
	return SearchQuery{Raw: strings.TrimSpace(raw), Kind: kind}
}

// Term is the value dispatched to the backend: the trimmed query with any
// leading '@' (username) or '#' (hashtag) removed. Term(Term(q)) == Term(q).
func (q SearchQuery) Term() string {
	raw := strings.TrimSpace(q.Raw)
	switch q.Kind {
	case SearchUsername:
		return strings.TrimSpace(strings.TrimLeft(raw, "@"))
	case SearchHashtag:
		return strings.TrimSpace(strings.TrimLeft(raw, "#"))
	case SearchTimeline:
		return TimelineCommunity
	}
	return raw
}

// Key identifies the query for staleness checks.
func (q SearchQuery) Key() string {
	return string(q.Kind) + ":" + q.Term()
}

// Validate returns ErrInvalidQuery for an unknown kind or an empty term.
func (q SearchQuery) Validate() error {
	if !q.Kind.Valid() {
		return fmt.Errorf("%w: unsupported search kind %q", ErrInvalidQuery, string(q.Kind))
	}
	if q.Kind != SearchTimeline && q.Term() == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalidQuery, q.Kind)
	}
	return nil
}
