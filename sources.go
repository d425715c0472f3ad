package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// SourcesService is the cached view over content ingestion sources.
type SourcesService struct{ c *Console }

// Sources returns the sources service.
func (c *Console) Sources() *SourcesService { return &SourcesService{c: c} }

// List returns a page of sources matching params.
func (s *SourcesService) List(ctx context.Context, params ListSourcesParams) (*SourceList, error) {
	key := querycache.NewKey("sources", "list", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.SourceList, error) {
		return api.ListSources(ctx, s.c.cms, params)
	})
}

// Get returns one source by id.
func (s *SourcesService) Get(ctx context.Context, id string) (*ContentSource, error) {
	key := querycache.NewKey("sources", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.ContentSource, error) {
		return api.GetSource(ctx, s.c.cms, id)
	})
}

// Create registers a source and invalidates source lists.
func (s *SourcesService) Create(ctx context.Context, req CreateSourceRequest) (*ContentSource, error) {
	src, err := api.CreateSource(ctx, s.c.cms, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("sources", "list"))
	return src, nil
}

// Update modifies a source, refreshes its cached detail and invalidates lists.
func (s *SourcesService) Update(ctx context.Context, id string, req UpdateSourceRequest) (*ContentSource, error) {
	src, err := api.UpdateSource(ctx, s.c.cms, id, req)
	if err != nil {
		return nil, err
	}
	s.applyUpdate(id, src)
	return src, nil
}

// Delete removes a source and invalidates source lists.
func (s *SourcesService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteSource(ctx, s.c.cms, id); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("sources", "list"))
	return nil
}

// Run triggers an ingestion run. The run mutates the source's status and
// last-run fields server-side, so both lists and the detail entry are
// invalidated rather than rewritten.
func (s *SourcesService) Run(ctx context.Context, id string) (*RunSourceResponse, error) {
	resp, err := api.RunSource(ctx, s.c.cms, id)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("sources", "list"))
	s.c.cache.Invalidate(querycache.NewKey("sources", "detail", id))
	return resp, nil
}

func (s *SourcesService) applyUpdate(id string, src *types.ContentSource) {
	s.c.cache.Invalidate(querycache.NewKey("sources", "list"))
	s.c.cache.Set(querycache.NewKey("sources", "detail", id), querycache.Details, src)
}
