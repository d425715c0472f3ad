package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// ActivitiesService is the cached view over CRM activities, including the
// current-user "my tasks" scope.
type ActivitiesService struct{ c *Console }

// Activities returns the activities service.
func (c *Console) Activities() *ActivitiesService { return &ActivitiesService{c: c} }

// List returns a page of activities across all owners.
func (s *ActivitiesService) List(ctx context.Context, params ListActivitiesParams) (*ActivityList, error) {
	key := querycache.NewKey("activities", "list", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.ActivityList, error) {
		return api.ListActivities(ctx, s.c.crm, params)
	})
}

// Mine returns the current user's activities; the owner scope comes from
// the token, so these entries live under their own key family.
func (s *ActivitiesService) Mine(ctx context.Context, params ListActivitiesParams) (*ActivityList, error) {
	key := querycache.NewKey("activities", "my", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.ActivityList, error) {
		return api.ListMyActivities(ctx, s.c.crm, params)
	})
}

// Get returns one activity by id.
func (s *ActivitiesService) Get(ctx context.Context, id string) (*Activity, error) {
	key := querycache.NewKey("activities", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.Activity, error) {
		return api.GetActivity(ctx, s.c.crm, id)
	})
}

// Create adds an activity and invalidates both list scopes.
func (s *ActivitiesService) Create(ctx context.Context, req CreateActivityRequest) (*Activity, error) {
	activity, err := api.CreateActivity(ctx, s.c.crm, req)
	if err != nil {
		return nil, err
	}
	s.invalidateLists()
	return activity, nil
}

// Update modifies an activity; lists are invalidated and the detail entry
// takes the response body.
func (s *ActivitiesService) Update(ctx context.Context, id string, req UpdateActivityRequest) (*Activity, error) {
	activity, err := api.UpdateActivity(ctx, s.c.crm, id, req)
	if err != nil {
		return nil, err
	}
	s.applyUpdate(activity)
	return activity, nil
}

// Delete removes an activity and invalidates both list scopes.
func (s *ActivitiesService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteActivity(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.invalidateLists()
	return nil
}

// Complete marks an activity done. Follows the update rule.
func (s *ActivitiesService) Complete(ctx context.Context, id string) (*Activity, error) {
	activity, err := api.CompleteActivity(ctx, s.c.crm, id)
	if err != nil {
		return nil, err
	}
	s.applyUpdate(activity)
	return activity, nil
}

func (s *ActivitiesService) applyUpdate(activity *types.Activity) {
	s.invalidateLists()
	s.c.cache.Set(querycache.NewKey("activities", "detail", activity.ID), querycache.Details, activity)
}

// invalidateLists covers both the all-owners and current-user scopes; an
// activity mutation can surface in either.
func (s *ActivitiesService) invalidateLists() {
	s.c.cache.Invalidate(querycache.NewKey("activities", "list"))
	s.c.cache.Invalidate(querycache.NewKey("activities", "my"))
}
