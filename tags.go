package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// TagsService is the cached view over tags. Tags change rarely, so reads
// use the long-lived reference tier.
type TagsService struct{ c *Console }

// Tags returns the tags service.
func (c *Console) Tags() *TagsService { return &TagsService{c: c} }

// List returns all tags.
func (s *TagsService) List(ctx context.Context) ([]Tag, error) {
	key := querycache.NewKey("tags", "list")
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Reference, func(ctx context.Context) ([]types.Tag, error) {
		return api.ListTags(ctx, s.c.crm)
	})
}

// Get returns one tag by id.
func (s *TagsService) Get(ctx context.Context, id string) (*Tag, error) {
	key := querycache.NewKey("tags", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Reference, func(ctx context.Context) (*types.Tag, error) {
		return api.GetTag(ctx, s.c.crm, id)
	})
}

// Create adds a tag and invalidates the tag list.
func (s *TagsService) Create(ctx context.Context, req CreateTagRequest) (*Tag, error) {
	tag, err := api.CreateTag(ctx, s.c.crm, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("tags", "list"))
	return tag, nil
}

// Update modifies a tag, refreshes its cached detail and invalidates the list.
func (s *TagsService) Update(ctx context.Context, id string, req UpdateTagRequest) (*Tag, error) {
	tag, err := api.UpdateTag(ctx, s.c.crm, id, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("tags", "list"))
	s.c.cache.Set(querycache.NewKey("tags", "detail", id), querycache.Reference, tag)
	return tag, nil
}

// Delete removes a tag and invalidates the tag list. Customers holding the
// tag are served stale until their own entries age out.
func (s *TagsService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteTag(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("tags", "list"))
	return nil
}
