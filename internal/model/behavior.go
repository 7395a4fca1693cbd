package model

import "time"

// InteractionEvent values tracked against recommendations
const (
	EventViewed    = "viewed"
	EventClicked   = "clicked"
	EventCompleted = "completed"
	EventDismissed = "dismissed"
)

// Interaction is one recorded user action on a recommendation
type Interaction struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"userId" bson:"userId"`
	RecommendationID string    `json:"recommendationId" bson:"recommendationId"`
	Event            string    `json:"event" bson:"event"`
	OccurredAt       time.Time `json:"occurredAt" bson:"occurredAt"`
}

// Complexity preferences derived from behavior
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityAdvanced = "advanced"
)

// UserBehavior is the per-request summary of how a user engages with
// recommendations. Recomputed on demand, never stored as its own entity.
type UserBehavior struct {
	ImplementationRate  float64  `json:"implementationRate"` // 0-1
	PreferredComplexity string   `json:"preferredComplexity"`
	EngagementPatterns  []string `json:"engagementPatterns"`
	GrowthAmbition      string   `json:"growthAmbition"`
}

// IndustryBenchmarks are per-trade reference numbers seeded into Mongo
type IndustryBenchmarks struct {
	Industry        string    `json:"industry" bson:"industry"`
	MonthlyRevenue  float64   `json:"monthlyRevenue" bson:"monthlyRevenue"`
	MonthlyExpenses float64   `json:"monthlyExpenses" bson:"monthlyExpenses"`
	ConversionRate  float64   `json:"conversionRate" bson:"conversionRate"` // 0-1
	AvgJobValue     float64   `json:"avgJobValue" bson:"avgJobValue"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}
