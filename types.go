package console

import (
	"github.com/openpulse/console-go/internal/session"
	"github.com/openpulse/console-go/internal/types"
)

// Re-exported session types so callers never import internal packages.

type Session = session.Snapshot

type AuthStatus = session.Status

const (
	AuthUnknown         = session.StatusUnknown
	AuthChecking        = session.StatusChecking
	AuthAuthenticated   = session.StatusAuthenticated
	AuthUnauthenticated = session.StatusUnauthenticated
)

// LoginRoute is where expired or logged-out sessions are sent.
const LoginRoute = session.LoginRoute

// Re-exported domain types.

type (
	Principal     = types.Principal
	Customer      = types.Customer
	Contact       = types.Contact
	Tag           = types.Tag
	Deal          = types.Deal
	Activity      = types.Activity
	Note          = types.Note
	ContentSource = types.ContentSource
	ContentItem   = types.ContentItem
	AdminUser     = types.AdminUser

	CustomerStatus = types.CustomerStatus
	DealStage      = types.DealStage
	ActivityType   = types.ActivityType
	ActivityStatus = types.ActivityStatus
	SourceType     = types.SourceType
	ContentType    = types.ContentType
	ContentStatus  = types.ContentStatus

	CustomerList  = types.CustomerList
	DealList      = types.DealList
	ActivityList  = types.ActivityList
	NoteList      = types.NoteList
	SourceList    = types.SourceList
	ContentList   = types.ContentList
	AdminUserList = types.AdminUserList

	ListCustomersParams  = types.ListCustomersParams
	ListDealsParams      = types.ListDealsParams
	ListActivitiesParams = types.ListActivitiesParams
	ListSourcesParams    = types.ListSourcesParams
	ListContentParams    = types.ListContentParams
	ListAdminUsersParams = types.ListAdminUsersParams
	PageParams           = types.PageParams

	CreateCustomerRequest         = types.CreateCustomerRequest
	UpdateCustomerRequest         = types.UpdateCustomerRequest
	CreateContactRequest          = types.CreateContactRequest
	UpdateContactRequest          = types.UpdateContactRequest
	CreateTagRequest              = types.CreateTagRequest
	UpdateTagRequest              = types.UpdateTagRequest
	CreateDealRequest             = types.CreateDealRequest
	UpdateDealRequest             = types.UpdateDealRequest
	UpdateDealStageRequest        = types.UpdateDealStageRequest
	CreateActivityRequest         = types.CreateActivityRequest
	UpdateActivityRequest         = types.UpdateActivityRequest
	CreateNoteRequest             = types.CreateNoteRequest
	CreateSourceRequest           = types.CreateSourceRequest
	UpdateSourceRequest           = types.UpdateSourceRequest
	UpdateContentStatusRequest    = types.UpdateContentStatusRequest
	CreateAdminUserRequest        = types.CreateAdminUserRequest
	UpdateAdminUserRequest        = types.UpdateAdminUserRequest
	ResetAdminUserPasswordRequest = types.ResetAdminUserPasswordRequest

	RunSourceResponse = types.RunSourceResponse
	ReportsOverview   = types.ReportsOverview
)
