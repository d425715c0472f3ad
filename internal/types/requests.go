package types

// List parameters are encoded as query strings; zero values are omitted so
// that two parameter sets with the same effective filters produce the same
// request and the same cache key.

type ListCustomersParams struct {
	Page   int            `json:"page,omitempty"`
	Limit  int            `json:"limit,omitempty"`
	Search string         `json:"search,omitempty"`
	Status CustomerStatus `json:"status,omitempty"`
	OwnerID string        `json:"owner_id,omitempty"`
	TagID   string        `json:"tag_id,omitempty"`
}

type ListDealsParams struct {
	Page       int       `json:"page,omitempty"`
	Limit      int       `json:"limit,omitempty"`
	Search     string    `json:"search,omitempty"`
	Stage      DealStage `json:"stage,omitempty"`
	OwnerID    string    `json:"owner_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	DateFrom   string    `json:"date_from,omitempty"`
	DateTo     string    `json:"date_to,omitempty"`
}

type ListActivitiesParams struct {
	Page       int            `json:"page,omitempty"`
	Limit      int            `json:"limit,omitempty"`
	Search     string         `json:"search,omitempty"`
	Type       ActivityType   `json:"type,omitempty"`
	Status     ActivityStatus `json:"status,omitempty"`
	CustomerID string         `json:"customer_id,omitempty"`
	DealID     string         `json:"deal_id,omitempty"`
	OwnerID    string         `json:"owner_id,omitempty"`
	DateFrom   string         `json:"date_from,omitempty"`
	DateTo     string         `json:"date_to,omitempty"`
}

// PageParams is the page/limit subset used by scoped note listings.
type PageParams struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type ListSourcesParams struct {
	Page     int        `json:"page,omitempty"`
	Limit    int        `json:"limit,omitempty"`
	Search   string     `json:"search,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
	Type     SourceType `json:"type,omitempty"`
}

type ListContentParams struct {
	Page     int           `json:"page,omitempty"`
	Limit    int           `json:"limit,omitempty"`
	Search   string        `json:"search,omitempty"`
	Status   ContentStatus `json:"status,omitempty"`
	Type     ContentType   `json:"type,omitempty"`
	SourceID string        `json:"source_id,omitempty"`
	DateFrom string        `json:"date_from,omitempty"`
	DateTo   string        `json:"date_to,omitempty"`
}

type ListAdminUsersParams struct {
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Search string `json:"search,omitempty"`
	Role   string `json:"role,omitempty"`
}

// ------------------------------
// Mutation requests
// ------------------------------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateCustomerRequest struct {
	Name               string         `json:"name"`
	Email              string         `json:"email,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Company            string         `json:"company,omitempty"`
	Status             CustomerStatus `json:"status,omitempty"`
	OwnerID            string         `json:"owner_id,omitempty"`
	AssignedTo         string         `json:"assigned_to,omitempty"`
	ContactPreferences map[string]any `json:"contact_preferences,omitempty"`
	FollowUpAt         string         `json:"follow_up_at,omitempty"`
}

type UpdateCustomerRequest struct {
	Name               string         `json:"name,omitempty"`
	Email              string         `json:"email,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Company            string         `json:"company,omitempty"`
	Status             CustomerStatus `json:"status,omitempty"`
	OwnerID            string         `json:"owner_id,omitempty"`
	AssignedTo         string         `json:"assigned_to,omitempty"`
	ContactPreferences map[string]any `json:"contact_preferences,omitempty"`
	FollowUpAt         string         `json:"follow_up_at,omitempty"`
}

type CreateContactRequest struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Title      string `json:"title,omitempty"`
	IsPrimary  bool   `json:"is_primary,omitempty"`
}

type UpdateContactRequest struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Title     string `json:"title,omitempty"`
	IsPrimary *bool  `json:"is_primary,omitempty"`
}

type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type UpdateTagRequest struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// AssignTagsRequest attaches existing tags to a customer.
type AssignTagsRequest struct {
	TagIDs []string `json:"tag_ids"`
}

type CreateDealRequest struct {
	Name              string    `json:"name"`
	CustomerID        string    `json:"customer_id"`
	Stage             DealStage `json:"stage,omitempty"`
	Amount            float64   `json:"amount,omitempty"`
	Currency          string    `json:"currency,omitempty"`
	Probability       int       `json:"probability,omitempty"`
	ExpectedCloseDate string    `json:"expected_close_date,omitempty"`
	OwnerID           string    `json:"owner_id,omitempty"`
}

type UpdateDealRequest struct {
	Name              string    `json:"name,omitempty"`
	CustomerID        string    `json:"customer_id,omitempty"`
	Stage             DealStage `json:"stage,omitempty"`
	Amount            float64   `json:"amount,omitempty"`
	Currency          string    `json:"currency,omitempty"`
	Probability       int       `json:"probability,omitempty"`
	ExpectedCloseDate string    `json:"expected_close_date,omitempty"`
	OwnerID           string    `json:"owner_id,omitempty"`
}

type UpdateDealStageRequest struct {
	Stage DealStage `json:"stage"`
}

type CreateActivityRequest struct {
	Type        ActivityType `json:"type"`
	Subject     string       `json:"subject"`
	Description string       `json:"description,omitempty"`
	CustomerID  string       `json:"customer_id,omitempty"`
	DealID      string       `json:"deal_id,omitempty"`
	DueAt       string       `json:"due_at,omitempty"`
}

type UpdateActivityRequest struct {
	Type        ActivityType `json:"type,omitempty"`
	Subject     string       `json:"subject,omitempty"`
	Description string       `json:"description,omitempty"`
	CustomerID  string       `json:"customer_id,omitempty"`
	DealID      string       `json:"deal_id,omitempty"`
	DueAt       string       `json:"due_at,omitempty"`
}

type CreateNoteRequest struct {
	Content    string `json:"content"`
	CustomerID string `json:"customer_id,omitempty"`
	DealID     string `json:"deal_id,omitempty"`
}

type CreateSourceRequest struct {
	Name                 string         `json:"name"`
	Type                 SourceType     `json:"type"`
	FeedURL              string         `json:"feed_url,omitempty"`
	APIConfig            map[string]any `json:"api_config,omitempty"`
	IsActive             *bool          `json:"is_active,omitempty"`
	FetchIntervalMinutes int            `json:"fetch_interval_minutes,omitempty"`
}

type UpdateSourceRequest struct {
	Name                 string         `json:"name,omitempty"`
	Type                 SourceType     `json:"type,omitempty"`
	FeedURL              string         `json:"feed_url,omitempty"`
	APIConfig            map[string]any `json:"api_config,omitempty"`
	IsActive             *bool          `json:"is_active,omitempty"`
	FetchIntervalMinutes int            `json:"fetch_interval_minutes,omitempty"`
}

type UpdateContentStatusRequest struct {
	Status ContentStatus `json:"status"`
}

type CreateAdminUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type UpdateAdminUserRequest struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type ResetAdminUserPasswordRequest struct {
	Password string `json:"password"`
}
