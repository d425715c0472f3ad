package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// ContentService is the cached view over ingested content items.
type ContentService struct{ c *Console }

// Content returns the content service.
func (c *Console) Content() *ContentService { return &ContentService{c: c} }

// List returns a page of content items matching params.
func (s *ContentService) List(ctx context.Context, params ListContentParams) (*ContentList, error) {
	key := querycache.NewKey("content", "list", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.ContentList, error) {
		return api.ListContent(ctx, s.c.cms, params)
	})
}

// Get returns one content item by id.
func (s *ContentService) Get(ctx context.Context, id string) (*ContentItem, error) {
	key := querycache.NewKey("content", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.ContentItem, error) {
		return api.GetContent(ctx, s.c.cms, id)
	})
}

// UpdateStatus moves an item through the review workflow, refreshes its
// cached detail and invalidates content lists.
func (s *ContentService) UpdateStatus(ctx context.Context, id string, status ContentStatus) (*ContentItem, error) {
	item, err := api.UpdateContentStatus(ctx, s.c.cms, id, types.UpdateContentStatusRequest{Status: status})
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("content", "list"))
	s.c.cache.Set(querycache.NewKey("content", "detail", id), querycache.Details, item)
	return item, nil
}
