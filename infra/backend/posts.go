package backend

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/CrestNiraj12/terminalsentiment/domain"
)

// postService implements app.PostService against the backend.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the REST API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func (s *postService) ByAuthor(ctx context.Context, username string) ([]domain.Post, error) {
	return s.fetchPosts(ctx, "posts_by_author", "/api/posts/user/{username}", map[string]string{"username": username}, nil)
}

func (s *postService) ByCommunity(ctx context.Context, community string) ([]domain.Post, error) {
	return s.fetchPosts(ctx, "posts_by_community", "/api/posts/subreddit/{name}", map[string]string{"name": community}, nil)
}

func (s *postService) Search(ctx context.Context, query string) ([]domain.Post, error) {
	return s.fetchPosts(ctx, "posts_search", "/api/posts/search", nil, map[string]string{"query": query})
}

func (s *postService) Thread(ctx context.Context, ref domain.PostRef) (domain.Thread, error) {
	if !ref.Valid() {
		return domain.Thread{}, errors.Wrapf(domain.ErrInvalidQuery, "post reference %q", ref.String())
	}
	var out threadResponse
	err := s.client.Get(ctx, "post_comments", "/api/posts/{community}/{postId}/comments",
		map[string]string{"community": strings.TrimSpace(ref.Community), "postId": strings.TrimSpace(ref.PostID)}, nil, &out)
	if err != nil {
		return domain.Thread{}, errors.Wrap(err, "fetching thread")
	}
	th := domain.Thread{Comments: mapComments(out.Comments)}
	if out.Post != nil {
		th.Post = mapPost(*out.Post)
	}
	if th.Post.ID == "" {
		th.Post.ID = ref.PostID
	}
	if th.Post.Community == "" {
		th.Post.Community = ref.Community
	}
	return th, nil
}

func (s *postService) fetchPosts(ctx context.Context, action, path string, pathParams, query map[string]string) ([]domain.Post, error) {
	var out postsResponse
	if err := s.client.Get(ctx, action, path, pathParams, query, &out); err != nil {
		return nil, errors.Wrap(err, "fetching posts")
	}
	return mapPosts(out.Posts), nil
}
