package types

// ------------------------------
// Auth
// ------------------------------

// Principal is the authenticated identity attached to a session. It is
// replaced wholesale on every successful auth check, never patched.
type Principal struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// ------------------------------
// CRM entities
// ------------------------------

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerLead     CustomerStatus = "lead"
)

// Customer represents a CRM customer record.
type Customer struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Company            string         `json:"company,omitempty"`
	Status             CustomerStatus `json:"status"`
	OwnerID            string         `json:"owner_id,omitempty"`
	AssignedTo         string         `json:"assigned_to,omitempty"`
	ContactPreferences map[string]any `json:"contact_preferences,omitempty"`
	FollowUpAt         string         `json:"follow_up_at,omitempty"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
	DeletedAt          string         `json:"deleted_at,omitempty"`
	Tags               []Tag          `json:"tags,omitempty"`
	PrimaryContact     *Contact       `json:"primary_contact,omitempty"`
}

// Contact is a person attached to a customer.
type Contact struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Title      string `json:"title,omitempty"`
	IsPrimary  bool   `json:"is_primary"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Tag is reference/lookup data shared across customers.
type Tag struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	CustomerCount int    `json:"customer_count,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type DealStage string

const (
	DealLead        DealStage = "lead"
	DealQualified   DealStage = "qualified"
	DealProposal    DealStage = "proposal"
	DealNegotiation DealStage = "negotiation"
	DealWon         DealStage = "won"
	DealLost        DealStage = "lost"
)

// CustomerRef is the shallow customer embed returned inside deals,
// activities and notes.
type CustomerRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

// Deal represents a sales opportunity in the pipeline.
type Deal struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	CustomerID        string       `json:"customer_id"`
	Customer          *CustomerRef `json:"customer,omitempty"`
	Stage             DealStage    `json:"stage"`
	Amount            float64      `json:"amount,omitempty"`
	Currency          string       `json:"currency"`
	Probability       int          `json:"probability,omitempty"`
	ExpectedCloseDate string       `json:"expected_close_date,omitempty"`
	OwnerID           string       `json:"owner_id,omitempty"`
	CreatedAt         string       `json:"created_at"`
	UpdatedAt         string       `json:"updated_at"`
}

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityTask    ActivityType = "task"
	ActivityNote    ActivityType = "note"
)

type ActivityStatus string

const (
	ActivityScheduled ActivityStatus = "scheduled"
	ActivityCompleted ActivityStatus = "completed"
	ActivityOverdue   ActivityStatus = "overdue"
)

// NamedRef is a minimal id/name embed (deals inside activities and notes,
// activity owners, note authors).
type NamedRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Activity is a scheduled or completed task against a customer or deal.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Subject     string       `json:"subject"`
	Description string       `json:"description,omitempty"`
	CustomerID  string       `json:"customer_id,omitempty"`
	Customer    *CustomerRef `json:"customer,omitempty"`
	DealID      string       `json:"deal_id,omitempty"`
	Deal        *NamedRef    `json:"deal,omitempty"`
	OwnerID     string       `json:"owner_id"`
	Owner       *NamedRef    `json:"owner,omitempty"`
	DueAt       string       `json:"due_at,omitempty"`
	CompletedAt string       `json:"completed_at,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// Note is free-form text attached to a customer or a deal.
type Note struct {
	ID         string       `json:"id"`
	Content    string       `json:"content"`
	CustomerID string       `json:"customer_id,omitempty"`
	Customer   *CustomerRef `json:"customer,omitempty"`
	DealID     string       `json:"deal_id,omitempty"`
	Deal       *NamedRef    `json:"deal,omitempty"`
	AuthorID   string       `json:"author_id"`
	Author     *NamedRef    `json:"author,omitempty"`
	CreatedAt  string       `json:"created_at"`
	UpdatedAt  string       `json:"updated_at"`
}

// ------------------------------
// Platform (CMS) entities
// ------------------------------

type SourceType string

const (
	SourceRSS     SourceType = "RSS"
	SourcePodcast SourceType = "PODCAST"
	SourceYouTube SourceType = "YOUTUBE"
	SourceTwitter SourceType = "TWITTER"
	SourceReddit  SourceType = "REDDIT"
	SourceManual  SourceType = "MANUAL"
)

// ContentSource is an ingestion source (feed, channel, account).
type ContentSource struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Type                 SourceType     `json:"type"`
	FeedURL              string         `json:"feed_url,omitempty"`
	APIConfig            map[string]any `json:"api_config,omitempty"`
	IsActive             bool           `json:"is_active"`
	FetchIntervalMinutes int            `json:"fetch_interval_minutes"`
	LastFetchedAt        string         `json:"last_fetched_at,omitempty"`
	CreatedAt            string         `json:"created_at"`
	UpdatedAt            string         `json:"updated_at"`
}

type ContentType string

const (
	ContentArticle ContentType = "ARTICLE"
	ContentVideo   ContentType = "VIDEO"
	ContentTweet   ContentType = "TWEET"
	ContentComment ContentType = "COMMENT"
	ContentPodcast ContentType = "PODCAST"
)

type ContentStatus string

const (
	ContentPending    ContentStatus = "PENDING"
	ContentProcessing ContentStatus = "PROCESSING"
	ContentReady      ContentStatus = "READY"
	ContentFailed     ContentStatus = "FAILED"
	ContentArchived   ContentStatus = "ARCHIVED"
)

// ContentItem is a single ingested piece of content.
type ContentItem struct {
	ID           string        `json:"id"`
	Type         ContentType   `json:"type"`
	Status       ContentStatus `json:"status"`
	Title        string        `json:"title"`
	BodyText     string        `json:"body_text,omitempty"`
	Excerpt      string        `json:"excerpt,omitempty"`
	Author       string        `json:"author,omitempty"`
	SourceID     string        `json:"source_id,omitempty"`
	SourceName   string        `json:"source_name,omitempty"`
	MediaURL     string        `json:"media_url,omitempty"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	OriginalURL  string        `json:"original_url,omitempty"`
	DurationSec  int           `json:"duration_sec,omitempty"`
	TopicTags    []string      `json:"topic_tags,omitempty"`
	PublishedAt  string        `json:"published_at,omitempty"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	LikeCount    int           `json:"like_count"`
	ViewCount    int           `json:"view_count"`
	ShareCount   int           `json:"share_count"`
}

// AdminUser is an operator account on the console itself.
type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
