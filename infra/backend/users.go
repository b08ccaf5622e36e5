package backend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// userService implements app.UserService.
type userService struct {
	client *Client
}

// NewUserService creates a UserService backed by the REST API.
func NewUserService(client *Client) *userService {
	return &userService{client: client}
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]string, error) {
	var out usersResponse
	if err := s.client.Get(ctx, "users_search", "/api/users/search", nil, map[string]string{"query": query}, &out); err != nil {
		return nil, errors.Wrap(err, "searching users")
	}
	users := lo.FilterMap(out.Users, func(u string, _ int) (string, bool) {
		u = sanitizeForTerminal(u)
		return u, u != ""
	})
	return lo.Uniq(users), nil
}
