package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Pre-flight validation for requests the console builds from operator input.
// The server remains the authority; these checks only catch payloads that
// could never succeed.

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool { return emailRe.MatchString(s) }

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !ValidEmail(r.Email) {
		return fmt.Errorf("email %q is not valid", r.Email)
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (r CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		return fmt.Errorf("email %q is not valid", r.Email)
	}
	switch r.Status {
	case "", CustomerActive, CustomerInactive, CustomerLead:
	default:
		return fmt.Errorf("unknown customer status %q", r.Status)
	}
	return nil
}

func (r CreateContactRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		return fmt.Errorf("email %q is not valid", r.Email)
	}
	return nil
}

func (r CreateDealRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.CustomerID == "" {
		return fmt.Errorf("customer_id is required")
	}
	switch r.Stage {
	case "", DealLead, DealQualified, DealProposal, DealNegotiation, DealWon, DealLost:
	default:
		return fmt.Errorf("unknown deal stage %q", r.Stage)
	}
	if r.Probability < 0 || r.Probability > 100 {
		return fmt.Errorf("probability must be between 0 and 100")
	}
	return nil
}

func (r UpdateDealStageRequest) Validate() error {
	switch r.Stage {
	case DealLead, DealQualified, DealProposal, DealNegotiation, DealWon, DealLost:
		return nil
	default:
		return fmt.Errorf("unknown deal stage %q", r.Stage)
	}
}

func (r CreateActivityRequest) Validate() error {
	switch r.Type {
	case ActivityCall, ActivityEmail, ActivityMeeting, ActivityTask, ActivityNote:
	default:
		return fmt.Errorf("unknown activity type %q", r.Type)
	}
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	return nil
}

func (r CreateNoteRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

func (r CreateTagRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Color == "" {
		return fmt.Errorf("color is required")
	}
	return nil
}

func (r CreateSourceRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	switch r.Type {
	case SourceRSS, SourcePodcast, SourceYouTube, SourceTwitter, SourceReddit, SourceManual:
	default:
		return fmt.Errorf("unknown source type %q", r.Type)
	}
	if r.Type != SourceManual && r.FeedURL == "" {
		return fmt.Errorf("feed_url is required for %s sources", r.Type)
	}
	return nil
}

func (r CreateAdminUserRequest) Validate() error {
	if !ValidEmail(r.Email) {
		return fmt.Errorf("email %q is not valid", r.Email)
	}
	if r.Role == "" {
		return fmt.Errorf("role is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
