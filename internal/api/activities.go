package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListActivities returns a page of activities across all owners.
// GET /admin/activities
func ListActivities(ctx context.Context, c *httpc.Client, params types.ListActivitiesParams) (*types.ActivityList, error) {
	return httpc.Get[*types.ActivityList](ctx, c, "/admin/activities", params)
}

// ListMyActivities returns the current user's activities; the owner filter
// is implied by the token.
// GET /admin/me/activities
func ListMyActivities(ctx context.Context, c *httpc.Client, params types.ListActivitiesParams) (*types.ActivityList, error) {
	params.OwnerID = ""
	return httpc.Get[*types.ActivityList](ctx, c, "/admin/me/activities", params)
}

// GetActivity retrieves one activity by id.
// GET /admin/activities/:id
func GetActivity(ctx context.Context, c *httpc.Client, id string) (*types.Activity, error) {
	return httpc.Get[*types.Activity](ctx, c, fmt.Sprintf("/admin/activities/%s", id), nil)
}

// CreateActivity creates an activity.
// POST /admin/activities
func CreateActivity(ctx context.Context, c *httpc.Client, req types.CreateActivityRequest) (*types.Activity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.Activity](ctx, c, "/admin/activities", req)
}

// UpdateActivity updates an activity.
// PUT /admin/activities/:id
func UpdateActivity(ctx context.Context, c *httpc.Client, id string, req types.UpdateActivityRequest) (*types.Activity, error) {
	return httpc.Put[*types.Activity](ctx, c, fmt.Sprintf("/admin/activities/%s", id), req)
}

// DeleteActivity removes an activity.
// DELETE /admin/activities/:id
func DeleteActivity(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/activities/%s", id))
}

// CompleteActivity marks an activity done and returns the updated record.
// PATCH /admin/activities/:id/complete
func CompleteActivity(ctx context.Context, c *httpc.Client, id string) (*types.Activity, error) {
	return httpc.Patch[*types.Activity](ctx, c, fmt.Sprintf("/admin/activities/%s/complete", id), nil)
}
