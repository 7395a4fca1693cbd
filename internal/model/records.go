package model

import "time"

// UserProfile is the stored per-user record, including the scored quiz
// result from onboarding
type UserProfile struct {
	ID              string       `json:"id" bson:"_id,omitempty"`
	UserID          string       `json:"userId" bson:"userId"`
	Email           string       `json:"email" bson:"email"`
	BusinessName    string       `json:"businessName" bson:"businessName"`
	Industry        string       `json:"industry" bson:"industry"`
	SetupPreference string       `json:"setupPreference" bson:"setupPreference"`
	ChaosResult     *ChaosResult `json:"chaosResult,omitempty" bson:"chaosResult,omitempty"`
	CreatedAt       time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// GrowthAmbition values stored in business settings
const (
	AmbitionScale     = "scale"
	AmbitionSteady    = "steady"
	AmbitionLifestyle = "lifestyle"
)

// BusinessSettings holds per-user preferences the synthesizer and
// behavior service consume
type BusinessSettings struct {
	UserID         string    `json:"userId" bson:"userId"`
	GrowthAmbition string    `json:"growthAmbition" bson:"growthAmbition"`
	WorkingHours   int       `json:"workingHours" bson:"workingHours"` // per week
	TeamSize       int       `json:"teamSize" bson:"teamSize"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// IntegrationCategory groups providers by the domain they serve
type IntegrationCategory string

const (
	CategoryAccounting IntegrationCategory = "accounting"
	CategoryCRM        IntegrationCategory = "crm"
	CategoryCalendar   IntegrationCategory = "calendar"
)

// Integration is a connected third-party provider
type Integration struct {
	ID        string              `json:"id" bson:"_id,omitempty"`
	UserID    string              `json:"userId" bson:"userId"`
	Provider  string              `json:"provider" bson:"provider"`
	Category  IntegrationCategory `json:"category" bson:"category"`
	IsActive  bool                `json:"isActive" bson:"isActive"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CategoryForProvider maps a provider name to its integration category
func CategoryForProvider(provider string) (IntegrationCategory, bool) {
	switch provider {
	case "quickbooks", "xero", "freshbooks":
		return CategoryAccounting, true
	case "hubspot", "jobber", "servicetitan":
		return CategoryCRM, true
	case "google-calendar", "outlook-calendar":
		return CategoryCalendar, true
	default:
		return "", false
	}
}

// TransactionType values
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a native financial record
type Transaction struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	Type       string    `json:"type" bson:"type"` // income, expense
	Amount     float64   `json:"amount" bson:"amount"`
	Category   string    `json:"category" bson:"category"`
	Note       string    `json:"note,omitempty" bson:"note,omitempty"`
	OccurredAt time.Time `json:"occurredAt" bson:"occurredAt"`
}

// Contact statuses
const (
	ContactLead     = "lead"
	ContactCustomer = "customer"
	ContactRepeat   = "repeat"
)

// Contact is a native customer record
type Contact struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Name      string    `json:"name" bson:"name"`
	Status    string    `json:"status" bson:"status"` // lead, customer, repeat
	Source    string    `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a native schedule record
type Appointment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Title     string    `json:"title" bson:"title"`
	Status    string    `json:"status" bson:"status"`
	StartsAt  time.Time `json:"startsAt" bson:"startsAt"`
	DurationH float64   `json:"durationHours" bson:"durationHours"`
}
