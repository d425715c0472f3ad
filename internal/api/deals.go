package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListDeals returns a page of deals.
// GET /admin/deals
func ListDeals(ctx context.Context, c *httpc.Client, params types.ListDealsParams) (*types.DealList, error) {
	return httpc.Get[*types.DealList](ctx, c, "/admin/deals", params)
}

// GetDeal retrieves one deal by id.
// GET /admin/deals/:id
func GetDeal(ctx context.Context, c *httpc.Client, id string) (*types.Deal, error) {
	return httpc.Get[*types.Deal](ctx, c, fmt.Sprintf("/admin/deals/%s", id), nil)
}

// CreateDeal creates a deal.
// POST /admin/deals
func CreateDeal(ctx context.Context, c *httpc.Client, req types.CreateDealRequest) (*types.Deal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.Deal](ctx, c, "/admin/deals", req)
}

// UpdateDeal updates a deal and returns the canonical record.
// PUT /admin/deals/:id
func UpdateDeal(ctx context.Context, c *httpc.Client, id string, req types.UpdateDealRequest) (*types.Deal, error) {
	return httpc.Put[*types.Deal](ctx, c, fmt.Sprintf("/admin/deals/%s", id), req)
}

// DeleteDeal removes a deal.
// DELETE /admin/deals/:id
func DeleteDeal(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/deals/%s", id))
}

// UpdateDealStage moves a deal through the pipeline and returns the updated
// deal.
// PATCH /admin/deals/:id/stage
func UpdateDealStage(ctx context.Context, c *httpc.Client, id string, req types.UpdateDealStageRequest) (*types.Deal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Patch[*types.Deal](ctx, c, fmt.Sprintf("/admin/deals/%s/stage", id), req)
}
