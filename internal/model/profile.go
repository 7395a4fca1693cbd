package model

import "time"

// DataSource is the provenance tier of a synthesized domain
type DataSource string

const (
	SourceIntegration DataSource = "integration" // connected third-party provider
	SourceNative      DataSource = "native"      // built-in records
	SourceNone        DataSource = "none"        // no data available
)

// Confidence is a fixed constant per source tier, not computed from the
// data itself. Native tiers differ slightly per domain but always sit
// between integration and none.
const (
	ConfidenceIntegration    = 95
	ConfidenceNativeFinance  = 85
	ConfidenceNativeCustomer = 80
	ConfidenceNativeSchedule = 75
	ConfidenceNone           = 0
)

// BusinessInfo is the static part of the unified profile
type BusinessInfo struct {
	UserID          string `json:"userId" bson:"userId"`
	BusinessName    string `json:"businessName" bson:"businessName"`
	Industry        string `json:"industry" bson:"industry"`
	SetupPreference string `json:"setupPreference" bson:"setupPreference"`
}

// FinancialData aggregates the financial domain
type FinancialData struct {
	Revenue          float64    `json:"revenue" bson:"revenue"`
	Expenses         float64    `json:"expenses" bson:"expenses"`
	Profit           float64    `json:"profit" bson:"profit"`
	AvgJobValue      float64    `json:"avgJobValue" bson:"avgJobValue"`
	TransactionCount int        `json:"transactionCount" bson:"transactionCount"`
	Source           DataSource `json:"source" bson:"source"`
	Confidence       int        `json:"confidence" bson:"confidence"`
}

// CustomerData aggregates the customer domain
type CustomerData struct {
	TotalCustomers int        `json:"totalCustomers" bson:"totalCustomers"`
	ActiveLeads    int        `json:"activeLeads" bson:"activeLeads"`
	ConversionRate float64    `json:"conversionRate" bson:"conversionRate"` // 0-1
	RepeatRate     float64    `json:"repeatRate" bson:"repeatRate"`         // 0-1
	Source         DataSource `json:"source" bson:"source"`
	Confidence     int        `json:"confidence" bson:"confidence"`
}

// ScheduleData aggregates the schedule domain
type ScheduleData struct {
	UpcomingJobs    int        `json:"upcomingJobs" bson:"upcomingJobs"`
	CompletedJobs   int        `json:"completedJobs" bson:"completedJobs"`
	UtilizationRate float64    `json:"utilizationRate" bson:"utilizationRate"` // 0-1
	Source          DataSource `json:"source" bson:"source"`
	Confidence      int        `json:"confidence" bson:"confidence"`
}

// QuizInsights carries the stored chaos result into the unified profile
type QuizInsights struct {
	ChaosScore         int         `json:"chaosScore" bson:"chaosScore"`
	ClarityZone        ClarityZone `json:"clarityZone" bson:"clarityZone"`
	IndustryPercentile int         `json:"industryPercentile" bson:"industryPercentile"`
	TopChallenges      []string    `json:"topChallenges" bson:"topChallenges"`
}

// UnifiedBusinessProfile is the per-request synthesized view of a
// business. It is never persisted; the profile cache only coalesces
// bursts within a single dashboard load.
type UnifiedBusinessProfile struct {
	BusinessInfo  BusinessInfo  `json:"businessInfo"`
	FinancialData FinancialData `json:"financialData"`
	CustomerData  CustomerData  `json:"customerData"`
	ScheduleData  ScheduleData  `json:"scheduleData"`
	QuizInsights  QuizInsights  `json:"quizInsights"`
	SynthesizedAt time.Time     `json:"synthesizedAt"`
}

// DataQuality is the mean domain confidence, 0-100
func (p *UnifiedBusinessProfile) DataQuality() int {
	return (p.FinancialData.Confidence + p.CustomerData.Confidence + p.ScheduleData.Confidence) / 3
}

// HealthScore blends the inverse chaos score with data quality
func (p *UnifiedBusinessProfile) HealthScore() int {
	base := 100 - p.QuizInsights.ChaosScore
	return (base*7 + p.DataQuality()*3) / 10
}
