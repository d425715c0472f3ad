package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// GetContact retrieves a contact by its standalone id.
// GET /admin/contacts/:id
func GetContact(ctx context.Context, c *httpc.Client, id string) (*types.Contact, error) {
	return httpc.Get[*types.Contact](ctx, c, fmt.Sprintf("/admin/contacts/%s", id), nil)
}

// UpdateContact updates a contact.
// PUT /admin/contacts/:id
func UpdateContact(ctx context.Context, c *httpc.Client, id string, req types.UpdateContactRequest) (*types.Contact, error) {
	return httpc.Put[*types.Contact](ctx, c, fmt.Sprintf("/admin/contacts/%s", id), req)
}

// DeleteContact removes a contact.
// DELETE /admin/contacts/:id
func DeleteContact(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/contacts/%s", id))
}

// SetContactPrimary makes the contact its customer's primary contact.
// PATCH /admin/contacts/:id/primary
func SetContactPrimary(ctx context.Context, c *httpc.Client, id string) error {
	_, err := httpc.Patch[struct{}](ctx, c, fmt.Sprintf("/admin/contacts/%s/primary", id), nil)
	return err
}
