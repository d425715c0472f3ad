package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListContent returns a page of ingested content items.
// GET /admin/content
func ListContent(ctx context.Context, c *httpc.Client, params types.ListContentParams) (*types.ContentList, error) {
	return httpc.Get[*types.ContentList](ctx, c, "/admin/content", params)
}

// GetContent retrieves one content item by id.
// GET /admin/content/:id
func GetContent(ctx context.Context, c *httpc.Client, id string) (*types.ContentItem, error) {
	return httpc.Get[*types.ContentItem](ctx, c, fmt.Sprintf("/admin/content/%s", id), nil)
}

// UpdateContentStatus transitions a content item (archive, requeue) and
// returns the updated record.
// PATCH /admin/content/:id/status
func UpdateContentStatus(ctx context.Context, c *httpc.Client, id string, req types.UpdateContentStatusRequest) (*types.ContentItem, error) {
	return httpc.Patch[*types.ContentItem](ctx, c, fmt.Sprintf("/admin/content/%s/status", id), req)
}
