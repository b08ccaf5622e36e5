package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_TermStripsPrefix(t *testing.T) {
	tests := []struct {
		raw  string
		kind SearchKind
		want string
	}{
		{raw: "@alice", kind: SearchUsername, want: "alice"},
		{raw: "  alice ", kind: SearchUsername, want: "alice"},
		{raw: "#golang", kind: SearchHashtag, want: "golang"},
		{raw: "golang", kind: SearchHashtag, want: "golang"},
		{raw: "#tag", kind: SearchUsername, want: "#tag"},
		{raw: "anything", kind: SearchTimeline, want: TimelineCommunity},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind)+"/"+tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, NewSearchQuery(tc.raw, tc.kind).Term())
		})
	}
}

func TestSearchQuery_TermIsIdempotent(t *testing.T) {
	for _, raw := range []string{"@alice", "@@alice", "alice", "#go", "##go", "go"} {
		for _, kind := range []SearchKind{SearchUsername, SearchHashtag} {
			once := NewSearchQuery(raw, kind).Term()
			twice := NewSearchQuery(once, kind).Term()
			assert.Equal(t, once, twice, "raw=%q kind=%s", raw, kind)
		}
	}
}

func TestSearchQuery_ValidateRejectsUnknownKind(t *testing.T) {
	err := NewSearchQuery("alice", SearchKind("bogus")).Validate()
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	err = NewSearchQuery("  @ ", SearchUsername).Validate()
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	assert.NoError(t, NewSearchQuery("", SearchTimeline).Validate())
}
