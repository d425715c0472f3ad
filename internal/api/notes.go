package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListCustomerNotes returns notes scoped to a customer.
// GET /admin/customers/:id/notes
func ListCustomerNotes(ctx context.Context, c *httpc.Client, customerID string, params types.PageParams) (*types.NoteList, error) {
	return httpc.Get[*types.NoteList](ctx, c, fmt.Sprintf("/admin/customers/%s/notes", customerID), params)
}

// ListDealNotes returns notes scoped to a deal.
// GET /admin/deals/:id/notes
func ListDealNotes(ctx context.Context, c *httpc.Client, dealID string, params types.PageParams) (*types.NoteList, error) {
	return httpc.Get[*types.NoteList](ctx, c, fmt.Sprintf("/admin/deals/%s/notes", dealID), params)
}

// GetNote retrieves one note by id.
// GET /admin/notes/:id
func GetNote(ctx context.Context, c *httpc.Client, id string) (*types.Note, error) {
	return httpc.Get[*types.Note](ctx, c, fmt.Sprintf("/admin/notes/%s", id), nil)
}

// CreateNote attaches a note to the customer and/or deal named in the body.
// POST /admin/notes
func CreateNote(ctx context.Context, c *httpc.Client, req types.CreateNoteRequest) (*types.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.Note](ctx, c, "/admin/notes", req)
}

// DeleteNote removes a note.
// DELETE /admin/notes/:id
func DeleteNote(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/notes/%s", id))
}
