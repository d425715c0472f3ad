package api

import (
	"context"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// Login authenticates against POST /admin/login on the CMS backend.
func Login(ctx context.Context, c *httpc.Client, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.LoginResponse](ctx, c, "/admin/login", req)
}

// Me returns the identity behind the current bearer token.
// GET /admin/me
func Me(ctx context.Context, c *httpc.Client) (*types.Principal, error) {
	return httpc.Get[*types.Principal](ctx, c, "/admin/me", nil)
}
