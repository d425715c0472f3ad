package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListTags returns every tag. Tags are reference data; there is no
// pagination on this endpoint.
// GET /admin/tags
func ListTags(ctx context.Context, c *httpc.Client) ([]types.Tag, error) {
	return httpc.Get[[]types.Tag](ctx, c, "/admin/tags", nil)
}

// GetTag retrieves a tag by id.
// GET /admin/tags/:id
func GetTag(ctx context.Context, c *httpc.Client, id string) (*types.Tag, error) {
	return httpc.Get[*types.Tag](ctx, c, fmt.Sprintf("/admin/tags/%s", id), nil)
}

// CreateTag creates a tag.
// POST /admin/tags
func CreateTag(ctx context.Context, c *httpc.Client, req types.CreateTagRequest) (*types.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.Tag](ctx, c, "/admin/tags", req)
}

// UpdateTag updates a tag.
// PUT /admin/tags/:id
func UpdateTag(ctx context.Context, c *httpc.Client, id string, req types.UpdateTagRequest) (*types.Tag, error) {
	return httpc.Put[*types.Tag](ctx, c, fmt.Sprintf("/admin/tags/%s", id), req)
}

// DeleteTag removes a tag.
// DELETE /admin/tags/:id
func DeleteTag(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/tags/%s", id))
}
