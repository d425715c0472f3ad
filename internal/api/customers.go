package api

import (
	"context"
	"fmt"

	"github.com/openpulse/console-go/internal/httpc"
	"github.com/openpulse/console-go/internal/types"
)

// ListCustomers returns a page of customers.
// GET /admin/customers
func ListCustomers(ctx context.Context, c *httpc.Client, params types.ListCustomersParams) (*types.CustomerList, error) {
	return httpc.Get[*types.CustomerList](ctx, c, "/admin/customers", params)
}

// GetCustomer retrieves one customer by id.
// GET /admin/customers/:id
func GetCustomer(ctx context.Context, c *httpc.Client, id string) (*types.Customer, error) {
	return httpc.Get[*types.Customer](ctx, c, fmt.Sprintf("/admin/customers/%s", id), nil)
}

// CreateCustomer creates a customer.
// POST /admin/customers
func CreateCustomer(ctx context.Context, c *httpc.Client, req types.CreateCustomerRequest) (*types.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.Customer](ctx, c, "/admin/customers", req)
}

// UpdateCustomer updates a customer and returns the canonical record.
// PUT /admin/customers/:id
func UpdateCustomer(ctx context.Context, c *httpc.Client, id string, req types.UpdateCustomerRequest) (*types.Customer, error) {
	return httpc.Put[*types.Customer](ctx, c, fmt.Sprintf("/admin/customers/%s", id), req)
}

// DeleteCustomer removes a customer.
// DELETE /admin/customers/:id
func DeleteCustomer(ctx context.Context, c *httpc.Client, id string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/customers/%s", id))
}

// ListCustomerContacts returns the contacts nested under a customer.
// GET /admin/customers/:id/contacts
func ListCustomerContacts(ctx context.Context, c *httpc.Client, customerID string) ([]types.Contact, error) {
	return httpc.Get[[]types.Contact](ctx, c, fmt.Sprintf("/admin/customers/%s/contacts", customerID), nil)
}

// CreateCustomerContact adds a contact to a customer. The customer id in the
// path wins over whatever the body carries.
// POST /admin/customers/:id/contacts
func CreateCustomerContact(ctx context.Context, c *httpc.Client, customerID string, req types.CreateContactRequest) (*types.Contact, error) {
	req.CustomerID = customerID
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return httpc.Post[*types.Contact](ctx, c, fmt.Sprintf("/admin/customers/%s/contacts", customerID), req)
}

// GetCustomerTags returns the tags assigned to a customer.
// GET /admin/customers/:id/tags
func GetCustomerTags(ctx context.Context, c *httpc.Client, customerID string) ([]types.Tag, error) {
	return httpc.Get[[]types.Tag](ctx, c, fmt.Sprintf("/admin/customers/%s/tags", customerID), nil)
}

// AssignCustomerTags attaches the given tags to a customer.
// POST /admin/customers/:id/tags
func AssignCustomerTags(ctx context.Context, c *httpc.Client, customerID string, tagIDs []string) error {
	_, err := httpc.Post[struct{}](ctx, c, fmt.Sprintf("/admin/customers/%s/tags", customerID), types.AssignTagsRequest{TagIDs: tagIDs})
	return err
}

// RemoveCustomerTag detaches one tag from a customer.
// DELETE /admin/customers/:id/tags/:tagId
func RemoveCustomerTag(ctx context.Context, c *httpc.Client, customerID, tagID string) error {
	return httpc.Delete(ctx, c, fmt.Sprintf("/admin/customers/%s/tags/%s", customerID, tagID))
}
