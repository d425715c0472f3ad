package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListAdminUsers returns a page of console operator accounts.
// GET /admin/users
func ListAdminUsers(ctx context.Context, c *httpc.Client, params types.ListAdminUsersParams) (*types.AdminUserList, error) {
	return httpc.Get[*types.AdminUserList](ctx, c, "/admin/users", params)
}

// GetAdminUser retrieves one operator account by id.
// GET /admin/users/:id
func GetAdminUser(ctx context.Context, c *httpc.Client, id string) (*types.AdminUser, error) {
	return httpc.Get[*types.AdminUser](ctx, c, fmt.Sprintf("/admin/users/%s", id), nil)
}

// CreateAdminUser creates an operator account.
// POST /admin/users
func CreateAdminUser(ctx context.Context, c *httpc.Client, req types.CreateAdminUserRequest) (*types.AdminUser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.AdminUser](ctx, c, "/admin/users", req)
}

// UpdateAdminUser updates an operator account.
// PUT /admin/users/:id
func UpdateAdminUser(ctx context.Context, c *httpc.Client, id string, req types.UpdateAdminUserRequest) (*types.AdminUser, error) {
	return httpc.Put[*types.AdminUser](ctx, c, fmt.Sprintf("/admin/users/%s", id), req)
}

// DeleteAdminUser removes an operator account.
// DELETE /admin/users/:id
func DeleteAdminUser(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/users/%s", id))
}

// ResetAdminUserPassword sets a new password for the account.
// POST /admin/users/:id/password
func ResetAdminUserPassword(ctx context.Context, c *httpc.Client, id string, req types.ResetAdminUserPasswordRequest) error {
	_, err := httpc.Post[struct{}](ctx, c, fmt.Sprintf("/admin/users/%s/password", id), req)
	return err
}
