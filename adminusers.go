package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// AdminUsersService is the cached view over console operator accounts.
type AdminUsersService struct{ c *Console }

// AdminUsers returns the admin users service.
func (c *Console) AdminUsers() *AdminUsersService { return &AdminUsersService{c: c} }

// List returns a page of admin users matching params.
func (s *AdminUsersService) List(ctx context.Context, params ListAdminUsersParams) (*AdminUserList, error) {
	key := querycache.NewKey("users", "list", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.AdminUserList, error) {
		return api.ListAdminUsers(ctx, s.c.cms, params)
	})
}

// Get returns one admin user by id.
func (s *AdminUsersService) Get(ctx context.Context, id string) (*AdminUser, error) {
	key := querycache.NewKey("users", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.AdminUser, error) {
		return api.GetAdminUser(ctx, s.c.cms, id)
	})
}

// Create adds an admin user and invalidates user lists.
func (s *AdminUsersService) Create(ctx context.Context, req CreateAdminUserRequest) (*AdminUser, error) {
	user, err := api.CreateAdminUser(ctx, s.c.cms, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("users", "list"))
	return user, nil
}

// Update modifies an admin user, refreshes its cached detail and
// invalidates user lists.
func (s *AdminUsersService) Update(ctx context.Context, id string, req UpdateAdminUserRequest) (*AdminUser, error) {
	user, err := api.UpdateAdminUser(ctx, s.c.cms, id, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("users", "list"))
	s.c.cache.Set(querycache.NewKey("users", "detail", id), querycache.Details, user)
	return user, nil
}

// Delete removes an admin user and invalidates user lists.
func (s *AdminUsersService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteAdminUser(ctx, s.c.cms, id); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("users", "list"))
	return nil
}

// ResetPassword sets a new password for an admin user. Passwords are not
// part of any cached representation, so no cache effect.
func (s *AdminUsersService) ResetPassword(ctx context.Context, id, password string) error {
	return api.ResetAdminUserPassword(ctx, s.c.cms, id, types.ResetAdminUserPasswordRequest{Password: password})
}
