package api

import (
	"context"
	"net/http"

	"github.com/lifelens/lifelens-cli/internal/models"
)

// GetProfile fetches the personal profile. A 403 carrying the backend's
// "cannot get user data" message means the profile was never created and
// comes back as an empty record, not an error.
func (c *Client) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	err := c.do(ctx, http.MethodGet, "/api/v1/users/user/"+c.UserID(), nil, &profile)
	if isMissingData(err, "cannot get user data") {
		return models.UserProfile{}, nil
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// SaveProfile creates the personal record for a user that has none.
func (c *Client) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	return c.do(ctx, http.MethodPost, "/api/v1/users/add_user/"+c.UserID(), profile, nil)
}

// UpdateProfile patches an existing personal record.
func (c *Client) UpdateProfile(ctx context.Context, profile models.UserProfile) error {
	return c.do(ctx, http.MethodPatch, "/api/v1/users/update_user/"+c.UserID(), profile, nil)
}

// SaveAllUserData uploads the full flattened profile in one shot. The
// backend rebuilds the user, life-goal, and financial records from it.
func (c *Client) SaveAllUserData(ctx context.Context, data models.AllUserData) error {
	return c.do(ctx, http.MethodPost, "/api/v1/users/user/add_alldata/"+c.UserID(), data, nil)
}

// DeleteUserData removes every backend record for the user. There is no
// partial form; callers confirm before reaching this.
func (c *Client) DeleteUserData(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/user/"+c.UserID(), nil, nil)
}
