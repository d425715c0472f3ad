package types

import "time"

// LoginResponse is returned by POST /admin/login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

// Paginated list envelopes. Every list endpoint shares the same shape.

type CustomerList struct {
	Data       []Customer `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

type DealList struct {
	Data       []Deal `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

type ActivityList struct {
	Data       []Activity `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

type NoteList struct {
	Data       []Note `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

type SourceList struct {
	Data       []ContentSource `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type ContentList struct {
	Data       []ContentItem `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

type AdminUserList struct {
	Data       []AdminUser `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// RunSourceResponse is returned by POST /admin/sources/:id/run.
type RunSourceResponse struct {
	Message string `json:"message"`
	JobID   string `json:"job_id,omitempty"`
}

// ------------------------------
// Reports
// ------------------------------

type OverviewMetrics struct {
	TotalCustomers     int     `json:"total_customers"`
	ActiveDeals        int     `json:"active_deals"`
	PipelineValue      float64 `json:"pipeline_value"`
	ActivitiesThisWeek int     `json:"activities_this_week"`
	CustomersThisMonth int     `json:"customers_this_month"`
	WonDealsThisMonth  int     `json:"won_deals_this_month"`
}

type DealStageSummary struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type ActivityBreakdown struct {
	Call    int `json:"call"`
	Email   int `json:"email"`
	Meeting int `json:"meeting"`
	Task    int `json:"task"`
	Note    int `json:"note"`
}

type ActivityTimeline struct {
	Date      string            `json:"date"`
	Count     int               `json:"count"`
	Breakdown ActivityBreakdown `json:"breakdown"`
}

type TopPerformer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	DealsClosed   int     `json:"deals_closed"`
	PipelineValue float64 `json:"pipeline_value"`
}

type ReportsOverview struct {
	Metrics            OverviewMetrics    `json:"metrics"`
	DealsByStage       []DealStageSummary `json:"deals_by_stage"`
	ActivitiesOverTime []ActivityTimeline `json:"activities_over_time"`
	TopPerformers      []TopPerformer     `json:"top_performers,omitempty"`
}

// ActivityStatusOf derives the display status from completion and due time.
// Timestamps are RFC 3339; an unparsable due time counts as scheduled.
func ActivityStatusOf(a Activity, now time.Time) ActivityStatus {
	if a.CompletedAt != "" {
		return ActivityCompleted
	}
	if a.DueAt == "" {
		return ActivityScheduled
	}
	due, err := time.Parse(time.RFC3339, a.DueAt)
	if err != nil {
		return ActivityScheduled
	}
	if due.Before(now) {
		return ActivityOverdue
	}
	return ActivityScheduled
}
