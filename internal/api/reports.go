package api

import (
	"context"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// GetReportsOverview returns the dashboard aggregates.
// GET /admin/reports/overview
func GetReportsOverview(ctx context.Context, c *httpc.Client) (*types.ReportsOverview, error) {
	return httpc.Get[*types.ReportsOverview](ctx, c, "/admin/reports/overview", nil)
}
