package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// NotesService is the cached view over notes, which are always read scoped
// under a parent customer or deal.
type NotesService struct{ c *Console }

// Notes returns the notes service.
func (c *Console) Notes() *NotesService { return &NotesService{c: c} }

// ForCustomer returns a page of notes under one customer.
func (s *NotesService) ForCustomer(ctx context.Context, customerID string, params PageParams) (*NoteList, error) {
	key := querycache.NewKey("notes", "customer", customerID, params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.NoteList, error) {
		return api.ListCustomerNotes(ctx, s.c.crm, customerID, params)
	})
}

// ForDeal returns a page of notes under one deal.
func (s *NotesService) ForDeal(ctx context.Context, dealID string, params PageParams) (*NoteList, error) {
	key := querycache.NewKey("notes", "deal", dealID, params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.NoteList, error) {
		return api.ListDealNotes(ctx, s.c.crm, dealID, params)
	})
}

// Get returns one note by id.
func (s *NotesService) Get(ctx context.Context, id string) (*Note, error) {
	key := querycache.NewKey("notes", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.Note, error) {
		return api.GetNote(ctx, s.c.crm, id)
	})
}

// Create attaches a note to the customer and/or deal named in the request
// and invalidates exactly the parent scopes the request names.
func (s *NotesService) Create(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	note, err := api.CreateNote(ctx, s.c.crm, req)
	if err != nil {
		return nil, err
	}
	switch {
	case req.CustomerID == "" && req.DealID == "":
		s.c.cache.Invalidate(querycache.NewKey("notes"))
	default:
		if req.CustomerID != "" {
			s.c.cache.Invalidate(querycache.NewKey("notes", "customer", req.CustomerID))
		}
		if req.DealID != "" {
			s.c.cache.Invalidate(querycache.NewKey("notes", "deal", req.DealID))
		}
	}
	return note, nil
}

// Delete removes a note. Only the note id is available here, so the whole
// notes family is invalidated as the safe superset.
func (s *NotesService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteNote(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("notes"))
	return nil
}
