package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequestValidate(t *testing.T) {
	require.NoError(t, LoginRequest{Email: "op@example.com", Password: "secret"}.Validate())

	assert.Error(t, LoginRequest{Email: "", Password: "secret"}.Validate())
	assert.Error(t, LoginRequest{Email: "not-an-email", Password: "secret"}.Validate())
	assert.Error(t, LoginRequest{Email: "op@example.com", Password: ""}.Validate())
}

func TestCreateCustomerRequestValidate(t *testing.T) {
	require.NoError(t, CreateCustomerRequest{Name: "Acme", Email: "hi@acme.com"}.Validate())
	require.NoError(t, CreateCustomerRequest{Name: "Acme", Status: CustomerLead}.Validate())

	assert.Error(t, CreateCustomerRequest{Name: "  "}.Validate())
	assert.Error(t, CreateCustomerRequest{Name: "Acme", Email: "bad"}.Validate())
	assert.Error(t, CreateCustomerRequest{Name: "Acme", Status: "archived"}.Validate())
}

func TestCreateDealRequestValidate(t *testing.T) {
	require.NoError(t, CreateDealRequest{Name: "Big deal", CustomerID: "c1", Stage: DealProposal, Probability: 60}.Validate())

	assert.Error(t, CreateDealRequest{CustomerID: "c1"}.Validate())
	assert.Error(t, CreateDealRequest{Name: "Big deal"}.Validate())
	assert.Error(t, CreateDealRequest{Name: "Big deal", CustomerID: "c1", Stage: "parked"}.Validate())
	assert.Error(t, CreateDealRequest{Name: "Big deal", CustomerID: "c1", Probability: 120}.Validate())
}

func TestUpdateDealStageRequestValidate(t *testing.T) {
	for _, stage := range []DealStage{DealLead, DealQualified, DealProposal, DealNegotiation, DealWon, DealLost} {
		assert.NoError(t, UpdateDealStageRequest{Stage: stage}.Validate())
	}
	assert.Error(t, UpdateDealStageRequest{}.Validate())
	assert.Error(t, UpdateDealStageRequest{Stage: "parked"}.Validate())
}

func TestCreateActivityRequestValidate(t *testing.T) {
	require.NoError(t, CreateActivityRequest{Type: ActivityCall, Subject: "Intro call"}.Validate())

	assert.Error(t, CreateActivityRequest{Type: "fax", Subject: "Intro call"}.Validate())
	assert.Error(t, CreateActivityRequest{Type: ActivityCall, Subject: " "}.Validate())
}

func TestCreateNoteRequestValidate(t *testing.T) {
	require.NoError(t, CreateNoteRequest{Content: "spoke with CTO", CustomerID: "c1"}.Validate())
	assert.Error(t, CreateNoteRequest{Content: "   "}.Validate())
}

func TestCreateTagRequestValidate(t *testing.T) {
	require.NoError(t, CreateTagRequest{Name: "vip", Color: "#ff0000"}.Validate())
	assert.Error(t, CreateTagRequest{Color: "#ff0000"}.Validate())
	assert.Error(t, CreateTagRequest{Name: "vip"}.Validate())
}

func TestCreateSourceRequestValidate(t *testing.T) {
	require.NoError(t, CreateSourceRequest{Name: "HN feed", Type: SourceRSS, FeedURL: "https://example.com/rss"}.Validate())
	// Manual sources have no feed.
	require.NoError(t, CreateSourceRequest{Name: "Editorial", Type: SourceManual}.Validate())

	assert.Error(t, CreateSourceRequest{Type: SourceRSS, FeedURL: "https://example.com/rss"}.Validate())
	assert.Error(t, CreateSourceRequest{Name: "HN feed", Type: "carrier-pigeon"}.Validate())
	assert.Error(t, CreateSourceRequest{Name: "HN feed", Type: SourceRSS}.Validate())
}

func TestCreateAdminUserRequestValidate(t *testing.T) {
	require.NoError(t, CreateAdminUserRequest{Email: "op@example.com", Role: "admin", Password: "longenough"}.Validate())

	assert.Error(t, CreateAdminUserRequest{Email: "bad", Role: "admin", Password: "longenough"}.Validate())
	assert.Error(t, CreateAdminUserRequest{Email: "op@example.com", Password: "longenough"}.Validate())
	assert.Error(t, CreateAdminUserRequest{Email: "op@example.com", Role: "admin", Password: "short"}.Validate())
}
