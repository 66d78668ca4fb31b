package models

import (
	"math"
	"time"
)

// CampaignStatus is the moderation state of a campaign.
type CampaignStatus string

const (
	CampaignPending  CampaignStatus = "pending"
	CampaignApproved CampaignStatus = "approved"
	CampaignRejected CampaignStatus = "rejected"
)

// IsValid reports whether s is a known campaign status.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignPending, CampaignApproved, CampaignRejected:
		return true
	default:
		return false
	}
}

// Campaign is a fundraising campaign owned by a user.
type Campaign struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	GoalAmount  int64          `json:"goalAmount"`
	Collected   int64          `json:"collectedAmount"`
	Banner      string         `json:"banner"`
	CategoryID  string         `json:"categoryId"`
	OwnerID     string         `json:"ownerId"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CampaignRequest is the create/update payload of a campaign.
// Status is honoured for admins only.
type CampaignRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	GoalAmount  int64          `json:"goalAmount"`
	Banner      string         `json:"banner"`
	CategoryID  string         `json:"categoryId"`
	Status      CampaignStatus `json:"status,omitempty"`
}

// CampaignFilter narrows a campaign listing.
type CampaignFilter struct {
	Pagination

	Search     string
	CategoryID string
	Status     CampaignStatus
}

// Pagination limits.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// MaxPage keeps (MaxPage-1)*MaxPageLimit within int.
	MaxPage = math.MaxInt / MaxPageLimit
)

// Pagination is a page/limit pair parsed from a query string.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps p to 1 <= page <= MaxPage and 1 <= limit <= MaxPageLimit,
// using DefaultPageLimit for a missing limit.
func (p Pagination) Normalize() Pagination {
	switch {
	case p.Page < 1:
		p.Page = 1
	case p.Page > MaxPage:
		p.Page = MaxPage
	}
	switch {
	case p.Limit < 1:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset returns the number of rows to skip for the page.
// It saturates at math.MaxInt instead of overflowing.
func (p Pagination) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}
