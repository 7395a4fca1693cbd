package model

import "time"

// RecommendationType classifies a recommendation
type RecommendationType string

const (
	RecTypeRevenue     RecommendationType = "revenue"
	RecTypeEfficiency  RecommendationType = "efficiency"
	RecTypeGrowth      RecommendationType = "growth"
	RecTypeOperational RecommendationType = "operational"
	RecTypeStrategic   RecommendationType = "strategic"
)

// Priority levels
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Stream is the UI grouping bucket for a recommendation
type Stream string

const (
	StreamForYou    Stream = "forYou"
	StreamTrending  Stream = "trending"
	StreamQuickWins Stream = "quickWins"
)

// Composite ranking weights
const (
	WeightPersonalized = 0.4
	WeightUrgency      = 0.3
	WeightConfidence   = 0.3
)

// Recommendation is one entry in the adaptive feed. IDs are stable per
// generator so re-runs with unchanged inputs upsert in place.
type Recommendation struct {
	ID                string             `json:"id" bson:"recommendationId"`
	UserID            string             `json:"userId" bson:"userId"`
	BatchID           string             `json:"batchId" bson:"batchId"`
	Type              RecommendationType `json:"type" bson:"type"`
	Priority          Priority           `json:"priority" bson:"priority"`
	Hook              string             `json:"hook" bson:"hook"`
	Title             string             `json:"title" bson:"title"`
	Description       string             `json:"description" bson:"description"`
	Reasoning         string             `json:"reasoning" bson:"reasoning"`
	ExpectedImpact    float64            `json:"expectedImpact" bson:"expectedImpact"`
	TimeToImplement   string             `json:"timeToImplement" bson:"timeToImplement"`
	PersonalizedScore float64            `json:"personalizedScore" bson:"personalizedScore"`
	ConfidenceScore   float64            `json:"confidenceScore" bson:"confidenceScore"`
	UrgencyScore      float64            `json:"urgencyScore" bson:"urgencyScore"`
	Actions           []string           `json:"actions" bson:"actions"`
	StreamType        Stream             `json:"streamType" bson:"streamType"`
	Rank              int                `json:"rank" bson:"rank"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
}

// CompositeScore is the fixed weighted ranking score
func (r *Recommendation) CompositeScore() float64 {
	return WeightPersonalized*r.PersonalizedScore +
		WeightUrgency*r.UrgencyScore +
		WeightConfidence*r.ConfidenceScore
}

// CategoryStyle is the display metadata for a recommendation type
type CategoryStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// StyleForType returns display metadata with a defined fallback for
// unknown types
func StyleForType(t RecommendationType) CategoryStyle {
	switch t {
	case RecTypeRevenue:
		return CategoryStyle{Color: "#16a34a", Icon: "trending-up"}
	case RecTypeEfficiency:
		return CategoryStyle{Color: "#2563eb", Icon: "zap"}
	case RecTypeGrowth:
		return CategoryStyle{Color: "#9333ea", Icon: "rocket"}
	case RecTypeOperational:
		return CategoryStyle{Color: "#ea580c", Icon: "settings"}
	case RecTypeStrategic:
		return CategoryStyle{Color: "#0891b2", Icon: "compass"}
	default:
		return CategoryStyle{Color: "#6b7280", Icon: "lightbulb"}
	}
}
