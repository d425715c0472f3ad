package console

import (
	"context"

	"github.com/openpulse/console-go/internal/api"
	"github.com/openpulse/console-go/internal/querycache"
	"github.com/openpulse/console-go/internal/types"
)

// CustomersService is the cached view over the CRM customers family,
// including the contact and tag sub-resources nested under a customer.
type CustomersService struct{ c *Console }

// Customers returns the customers service.
func (c *Console) Customers() *CustomersService { return &CustomersService{c: c} }

// List returns a page of customers. Identical filter sets share one cache
// slot regardless of how they were constructed.
func (s *CustomersService) List(ctx context.Context, params ListCustomersParams) (*CustomerList, error) {
	key := querycache.NewKey("customers", "list", params)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Lists, func(ctx context.Context) (*types.CustomerList, error) {
		return api.ListCustomers(ctx, s.c.crm, params)
	})
}

// Get returns one customer by id.
func (s *CustomersService) Get(ctx context.Context, id string) (*Customer, error) {
	key := querycache.NewKey("customers", "detail", id)
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) (*types.Customer, error) {
		return api.GetCustomer(ctx, s.c.crm, id)
	})
}

// Create adds a customer and invalidates every cached customer list.
func (s *CustomersService) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	cust, err := api.CreateCustomer(ctx, s.c.crm, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "list"))
	return cust, nil
}

// Update modifies a customer. Lists are invalidated and the detail entry is
// overwritten with the response body, so the next detail read needs no GET.
// Concurrent updates to the same id are not serialized; the last response
// to land determines the cached value.
func (s *CustomersService) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error) {
	cust, err := api.UpdateCustomer(ctx, s.c.crm, id, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "list"))
	s.c.cache.Set(querycache.NewKey("customers", "detail", cust.ID), querycache.Details, cust)
	return cust, nil
}

// Delete removes a customer and invalidates the lists. The detail entry is
// left to age out; nothing routes to it after deletion.
func (s *CustomersService) Delete(ctx context.Context, id string) error {
	if err := api.DeleteCustomer(ctx, s.c.crm, id); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "list"))
	return nil
}

// Contacts returns the customer's contacts.
func (s *CustomersService) Contacts(ctx context.Context, customerID string) ([]Contact, error) {
	key := querycache.NewKey("customers", "detail", customerID, "contacts")
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) ([]types.Contact, error) {
		return api.ListCustomerContacts(ctx, s.c.crm, customerID)
	})
}

// CreateContact adds a contact under the customer and invalidates only that
// customer's contacts entry.
func (s *CustomersService) CreateContact(ctx context.Context, customerID string, req CreateContactRequest) (*Contact, error) {
	contact, err := api.CreateCustomerContact(ctx, s.c.crm, customerID, req)
	if err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "detail", customerID, "contacts"))
	return contact, nil
}

// Tags returns the tags assigned to the customer.
func (s *CustomersService) Tags(ctx context.Context, customerID string) ([]Tag, error) {
	key := querycache.NewKey("customers", "detail", customerID, "tags")
	return querycache.FetchAs(ctx, s.c.cache, key, querycache.Details, func(ctx context.Context) ([]types.Tag, error) {
		return api.GetCustomerTags(ctx, s.c.crm, customerID)
	})
}

// AssignTags attaches tags to the customer.
func (s *CustomersService) AssignTags(ctx context.Context, customerID string, tagIDs []string) error {
	if err := api.AssignCustomerTags(ctx, s.c.crm, customerID, tagIDs); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "detail", customerID, "tags"))
	return nil
}

// RemoveTag detaches one tag from the customer.
func (s *CustomersService) RemoveTag(ctx context.Context, customerID, tagID string) error {
	if err := api.RemoveCustomerTag(ctx, s.c.crm, customerID, tagID); err != nil {
		return err
	}
	s.c.cache.Invalidate(querycache.NewKey("customers", "detail", customerID, "tags"))
	return nil
}
