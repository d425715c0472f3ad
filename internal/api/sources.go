package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListSources returns a page of ingestion sources.
// GET /admin/sources
func ListSources(ctx context.Context, c *httpc.Client, params types.ListSourcesParams) (*types.SourceList, error) {
	return httpc.Get[*types.SourceList](ctx, c, "/admin/sources", params)
}

// GetSource retrieves one source by id.
// GET /admin/sources/:id
func GetSource(ctx context.Context, c *httpc.Client, id string) (*types.ContentSource, error) {
	return httpc.Get[*types.ContentSource](ctx, c, fmt.Sprintf("/admin/sources/%s", id), nil)
}

// CreateSource registers a new ingestion source.
// POST /admin/sources
func CreateSource(ctx context.Context, c *httpc.Client, req types.CreateSourceRequest) (*types.ContentSource, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.ContentSource](ctx, c, "/admin/sources", req)
}

// UpdateSource updates a source and returns the canonical record.
// PUT /admin/sources/:id
func UpdateSource(ctx context.Context, c *httpc.Client, id string, req types.UpdateSourceRequest) (*types.ContentSource, error) {
	return httpc.Put[*types.ContentSource](ctx, c, fmt.Sprintf("/admin/sources/%s", id), req)
}

// DeleteSource removes a source.
// DELETE /admin/sources/:id
func DeleteSource(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/sources/%s", id))
}

// RunSource triggers an ingestion run for the source.
// POST /admin/sources/:id/run
func RunSource(ctx context.Context, c *httpc.Client, id string) (*types.RunSourceResponse, error) {
	return httpc.Post[*types.RunSourceResponse](ctx, c, fmt.Sprintf("/admin/sources/%s/run", id), nil)
}
