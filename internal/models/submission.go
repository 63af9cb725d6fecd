package models

import "time"

// Submission lifecycle statuses. Transitions are strictly forward:
// awaiting_payment -> paid -> approved. There is no reverse transition and
// no cancellation state.
const (
	StatusAwaitingPayment = "awaiting_payment"
	StatusPaid            = "paid"
	StatusApproved        = "approved"
)

// Paid package tiers. Anything else (including an empty package) is the
// free tier.
const (
	PackageFeatured   = "featured"
	PackagePremium    = "premium"
	PackageNewsletter = "newsletter"
)

// Billing frequencies.
const (
	FrequencyMonthly = "monthly"
	FrequencyAnnual  = "annual"
)

// Submission is a prospective business listing moving through the paid
// submission funnel. JSON field names match the on-disk store read by the
// site front-end.
type Submission struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	BusinessName string `json:"businessName"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
	Address      string `json:"address,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Package      string `json:"package,omitempty"`
	Frequency    string `json:"frequency,omitempty"`

	// Payment linkage, null until the submission is paid.
	StripeSessionID  *string `json:"stripeSessionId"`
	StripeCustomerID *string `json:"stripeCustomerId"`

	// Write-once lifecycle timestamps, each null until its transition.
	SubmittedAt        time.Time  `json:"submittedAt"`
	PaymentConfirmedAt *time.Time `json:"paymentConfirmedAt"`
	ApprovedAt         *time.Time `json:"approvedAt"`
}

// IsFeaturedPackage reports whether a package tier gets featured placement
// in the directory.
func IsFeaturedPackage(pkg string) bool {
	switch pkg {
	case PackageFeatured, PackagePremium, PackageNewsletter:
		return true
	}
	return false
}
