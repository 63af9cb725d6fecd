package models

import "time"

// Listing is the public directory projection of an approved Submission.
// Created once by the approval handler; never mutated or deleted.
type Listing struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category,omitempty"`
	Description      string     `json:"description,omitempty"`
	ContactName      string     `json:"contactName,omitempty"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Website          string     `json:"website,omitempty"`
	Address          string     `json:"address,omitempty"`
	LogoURL          string     `json:"logoUrl,omitempty"`
	Package          string     `json:"package,omitempty"`
	Frequency        string     `json:"frequency,omitempty"`
	StripeCustomerID *string    `json:"stripeCustomerId"`
	ApprovedAt       *time.Time `json:"approvedAt"`
	Featured         bool       `json:"featured"`
}

// ListingFromSubmission builds the directory projection from an approved
// submission's current fields.
func ListingFromSubmission(s *Submission) Listing {
	return Listing{
		ID:               s.ID,
		Name:             s.BusinessName,
		Category:         s.Category,
		Description:      s.Description,
		ContactName:      s.ContactName,
		Email:            s.Email,
		Phone:            s.Phone,
		Website:          s.Website,
		Address:          s.Address,
		LogoURL:          s.LogoURL,
		Package:          s.Package,
		Frequency:        s.Frequency,
		StripeCustomerID: s.StripeCustomerID,
		ApprovedAt:       s.ApprovedAt,
		Featured:         IsFeaturedPackage(s.Package),
	}
}
