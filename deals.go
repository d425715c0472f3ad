package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// DealsService is the cached view over the CRM deals family.
type DealsService struct{ c *Console }

// Deals returns the deals service.
func (c *Console) Deals() *DealsService { return &DealsService{c: c} }

// List returns a page of deals.
func (s *DealsService) List(ctx context.Context, params ListDealsParams) (*DealList, error) {
	key := querycache.NewKey("deals", "list", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.DealList, error) {
		return api.ListDeals(ctx, s.c.crm, params)
	})
}

// Get returns one deal by id.
func (s *DealsService) Get(ctx context.Context, id string) (*Deal, error) {
	key := querycache.NewKey("deals", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.Deal, error) {
		return api.GetDeal(ctx, s.c.crm, id)
	})
}

// Create adds a deal and invalidates every cached deal list.
func (s *DealsService) Create(ctx context.Context, req CreateDealRequest) (*Deal, error) {
	deal, err := api.CreateDeal(ctx, s.c.crm, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("deals", "list"))
	return deal, nil
}

// Update modifies a deal; lists are invalidated and the detail entry takes
// the response body.
func (s *DealsService) Update(ctx context.Context, id string, req UpdateDealRequest) (*Deal, error) {
	deal, err := api.UpdateDeal(ctx, s.c.crm, id, req)
	if err != nil {
		return nil, err
	}
	s.applyUpdate(deal)
	return deal, nil
}

// Delete removes a deal and invalidates the lists.
func (s *DealsService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteDeal(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("deals", "list"))
	return nil
}

// UpdateStage moves a deal through the pipeline. Follows the update rule:
// the returned deal overwrites the detail entry, so a subsequent Get serves
// the new stage from cache.
func (s *DealsService) UpdateStage(ctx context.Context, id string, stage DealStage) (*Deal, error) {
	deal, err := api.UpdateDealStage(ctx, s.c.crm, id, types.UpdateDealStageRequest{Stage: stage})
	if err != nil {
		return nil, err
	}
	s.applyUpdate(deal)
	return deal, nil
}

func (s *DealsService) applyUpdate(deal *types.Deal) {
	s.c.cache.Invalidate(querycache.NewKey("deals", "list"))
	s.c.cache.Set(querycache.NewKey("deals", "detail", deal.ID), querycache.Details, deal)
}
