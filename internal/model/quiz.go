package model

import "time"

// ClarityZone is the coarse bucket derived from the chaos score
type ClarityZone string

const (
	ZoneChaos   ClarityZone = "chaos"   // score >= 70
	ZoneControl ClarityZone = "control" // 40 <= score < 70
	ZoneClarity ClarityZone = "clarity" // score < 40
)

// Zone thresholds
const (
	ChaosThreshold   = 70
	ControlThreshold = 40
)

// ZoneForScore maps a chaos score to its clarity zone
func ZoneForScore(score int) ClarityZone {
	switch {
	case score >= ChaosThreshold:
		return ZoneChaos
	case score >= ControlThreshold:
		return ZoneControl
	default:
		return ZoneClarity
	}
}

// ChaosQuizResponse is the fixed-shape quiz submission.
// Ordinal fields are 1-10; zero means unanswered and is defaulted by the
// scoring service. Categorical fields are free strings matched against
// the option tables.
type ChaosQuizResponse struct {
	DailyOverwhelm           int    `json:"daily_overwhelm" bson:"dailyOverwhelm"`
	RevenuePredictability    int    `json:"revenue_predictability" bson:"revenuePredictability"`
	CustomerAcquisition      string `json:"customer_acquisition" bson:"customerAcquisition"`
	BiggestChallenge         string `json:"biggest_challenge" bson:"biggestChallenge"`
	TaskManagementDifficulty int    `json:"task_management_difficulty" bson:"taskManagementDifficulty"`
	FinancialTracking        int    `json:"financial_tracking" bson:"financialTracking"`
	CustomerCommunication    int    `json:"customer_communication" bson:"customerCommunication"`
	TimeManagement           int    `json:"time_management" bson:"timeManagement"`
}

// QuizAnswer is a single scored answer, kept for audit/debug on the result
type QuizAnswer struct {
	QuestionID        string  `json:"questionId" bson:"questionId"`
	Answer            string  `json:"answer" bson:"answer"`
	ChaosContribution float64 `json:"chaosContribution" bson:"chaosContribution"`
}

// ChaosResult is the scored quiz outcome
type ChaosResult struct {
	ChaosScore             int          `json:"chaos_score" bson:"chaosScore"`
	ClarityZone            ClarityZone  `json:"clarity_zone" bson:"clarityZone"`
	IndustryPercentile     int          `json:"industry_percentile" bson:"industryPercentile"`
	QuickWins              []string     `json:"quick_wins" bson:"quickWins"`
	StrategicOpportunities []string     `json:"strategic_opportunities" bson:"strategicOpportunities"`
	ChaosFactors           []string     `json:"chaos_factors" bson:"chaosFactors"`
	Answers                []QuizAnswer `json:"answers,omitempty" bson:"answers,omitempty"`
	ScoredAt               time.Time    `json:"scoredAt" bson:"scoredAt"`
}
