package console

import (
	"context"
	"time"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// reportsClass keeps the overview warm with a periodic background refresh.
var reportsClass = querycache.Lists.WithRefreshInterval(5 * time.Minute)

// ReportsService is the cached view over aggregated reporting data.
type ReportsService struct{ c *Console }

// Reports returns the reports service.
func (c *Console) Reports() *ReportsService { return &ReportsService{c: c} }

// Overview returns the dashboard overview. After the first fetch the entry
// refreshes in the background every five minutes until the console closes.
func (s *ReportsService) Overview(ctx context.Context) (*ReportsOverview, error) {
	key := querycache.NewKey("reports", "overview")
	return querycache.FetchAs(ctx, s.c.cache, key, reportsClass, func(ctx context.Context) (*types.ReportsOverview, error) {
		return api.GetReportsOverview(ctx, s.c.crm)
	})
}
