package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// ContactsService operates on contacts by their standalone id. These calls
// only know the contact id, not the owning customer, so their invalidation
// falls back to the customer detail family as a safe superset.
type ContactsService struct{ c *Console }

// Contacts returns the standalone contacts service.
func (c *Console) Contacts() *ContactsService { return &ContactsService{c: c} }

// Get returns one contact by id.
func (s *ContactsService) Get(ctx context.Context, id string) (*Contact, error) {
	key := querycache.NewKey("contacts", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.Contact, error) {
		return api.GetContact(ctx, s.c.crm, id)
	})
}

// Update modifies a contact. The response carries the customer id, so the
// parent-scoped contacts entry is invalidated precisely.
func (s *ContactsService) Update(ctx context.Context, id string, req UpdateContactRequest) (*Contact, error) {
	contact, err := api.UpdateContact(ctx, s.c.crm, id, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Set(querycache.NewKey("contacts", "detail", contact.ID), querycache.Details, contact)
	s.invalidateParent(contact.CustomerID)
	return contact, nil
}

// Delete removes a contact. Only the id is known at this point, so every
// customer's contacts entry is invalidated.
func (s *ContactsService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteContact(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.invalidateParent("")
	return nil
}

// SetPrimary makes the contact its customer's primary contact. The endpoint
// returns no body, so the customer id is unknown and the superset rule
// applies.
func (s *ContactsService) SetPrimary(ctx context.Context, id string) error {
	if err := api.SetContactPrimary(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.invalidateParent("")
	return nil
}

// invalidateParent invalidates the contacts entry under one customer, or
// under every customer when the parent id is unknown.
func (s *ContactsService) invalidateParent(customerID string) {
	if customerID != "" {
		s.c.cache.Invalidate(querycache.NewKey("customers", "detail", customerID, "contacts"))
		return
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "detail"))
}
