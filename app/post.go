package app

import (
	"context"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// PostService fetches posts and threads from the content backend.
type PostService interface {
	// ByAuthor returns posts written by username.
	ByAuthor(ctx context.Context, username string) ([]domain.Post, error)

	// ByCommunity returns posts of an exact community. "all" yields the global timeline.
	ByCommunity(ctx context.Context, community string) ([]domain.Post, error)

	// Search runs a free-text post search.
	Search(ctx context.Context, query string) ([]domain.Post, error)

	// Thread returns a post and its comments in one round trip.
	Thread(ctx context.Context, ref domain.PostRef) (domain.Thread, error)
}

// UserService backs username autocomplete.
type UserService interface {
	SearchUsers(ctx context.Context, query string) ([]string, error)
}
