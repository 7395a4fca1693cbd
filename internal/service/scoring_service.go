package service

import (
	"fmt"
	"math"
	"time"

	"trademate/internal/model"
)

// Per-question weights for ordinal answers (1-10). Inverted questions
// measure good habits, so a high answer should lower the chaos score:
// they contribute (11 - value) x weight instead.
var ordinalWeights = map[string]float64{
	"daily_overwhelm":            2.0,
	"task_management_difficulty": 1.6,
	"customer_communication":     1.2,
	"time_management":            1.7,
}

var invertedWeights = map[string]float64{
	"revenue_predictability": 1.8,
	"financial_tracking":     1.5,
}

// Fixed contribution per categorical option. Unknown options fall back
// to the per-question default rather than silently contributing zero.
var acquisitionScores = map[string]float64{
	"Word of mouth":    8,
	"Referrals":        6,
	"Advertising":      4,
	"Online marketing": 3,
	"Repeat customers": 2,
}

var challengeScores = map[string]float64{
	"Scheduling and organization": 9,
	"Managing paperwork":          8,
	"Getting paid on time":        7,
	"Finding new customers":       6,
	"Pricing jobs correctly":      5,
}

const (
	ordinalDefault     = 5 // neutral mid-scale for missing/malformed answers
	acquisitionDefault = 4
	challengeDefault   = 6
)

// Strategic opportunity keyed by the stated biggest challenge
var challengeOpportunities = map[string]string{
	"Scheduling and organization": "Centralize all jobs in one calendar and book by area to cut dead time",
	"Managing paperwork":          "Digitize quotes and invoices so nothing lives on paper twice",
	"Getting paid on time":        "Switch to deposit-upfront and automated payment reminders",
	"Finding new customers":       "Ask every finished job for a review while you are still on site",
	"Pricing jobs correctly":      "Build a rate card from your last 20 jobs and stop quoting from memory",
}

// ScoringService computes the chaos score from quiz responses. Pure and
// total: malformed input degrades to neutral defaults, never an error.
type ScoringService struct{}

// NewScoringService creates a new scoring service
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score maps the 8-field quiz response to a ChaosResult. The score is a
// capped weighted sum, always in [0, 100].
func (s *ScoringService) Score(resp model.ChaosQuizResponse) *model.ChaosResult {
	answers := []model.QuizAnswer{
		s.ordinalAnswer("daily_overwhelm", resp.DailyOverwhelm),
		s.ordinalAnswer("revenue_predictability", resp.RevenuePredictability),
		s.categoricalAnswer("customer_acquisition", resp.CustomerAcquisition),
		s.categoricalAnswer("biggest_challenge", resp.BiggestChallenge),
		s.ordinalAnswer("task_management_difficulty", resp.TaskManagementDifficulty),
		s.ordinalAnswer("financial_tracking", resp.FinancialTracking),
		s.ordinalAnswer("customer_communication", resp.CustomerCommunication),
		s.ordinalAnswer("time_management", resp.TimeManagement),
	}

	total := 0.0
	for _, a := range answers {
		total += a.ChaosContribution
	}
	score := int(math.Round(math.Min(100, math.Max(0, total))))

	result := &model.ChaosResult{
		ChaosScore:         score,
		ClarityZone:        model.ZoneForScore(score),
		IndustryPercentile: industryPercentile(score),
		Answers:            answers,
		ScoredAt:           time.Now(),
	}
	s.deriveInsights(resp, result)
	return result
}

// industryPercentile is the canonical simplified formula: a high chaos
// score places the business near the bottom of its industry.
func industryPercentile(score int) int {
	p := 100 - score
	if p < 10 {
		return 10
	}
	return p
}

func (s *ScoringService) ordinalAnswer(questionID string, value int) model.QuizAnswer {
	if value < 1 || value > 10 {
		value = ordinalDefault
	}

	var contribution float64
	if w, ok := invertedWeights[questionID]; ok {
		contribution = float64(11-value) * w
	} else {
		contribution = float64(value) * ordinalWeights[questionID]
	}

	return model.QuizAnswer{
		QuestionID:        questionID,
		Answer:            fmt.Sprintf("%d", value),
		ChaosContribution: contribution,
	}
}

func (s *ScoringService) categoricalAnswer(questionID, option string) model.QuizAnswer {
	var contribution float64
	switch questionID {
	case "customer_acquisition":
		if v, ok := acquisitionScores[option]; ok {
			contribution = v
		} else {
			contribution = acquisitionDefault
		}
	case "biggest_challenge":
		if v, ok := challengeScores[option]; ok {
			contribution = v
		} else {
			contribution = challengeDefault
		}
	}

	return model.QuizAnswer{
		QuestionID:        questionID,
		Answer:            option,
		ChaosContribution: contribution,
	}
}

// deriveInsights fills quick wins, strategic opportunities and chaos
// factors from the dominant answers
func (s *ScoringService) deriveInsights(resp model.ChaosQuizResponse, result *model.ChaosResult) {
	quickWins := []string{}
	strategic := []string{}
	factors := []string{}

	if resp.DailyOverwhelm >= 7 {
		factors = append(factors, "Day-to-day operations feel out of control")
		quickWins = append(quickWins, "Start each morning with a 10-minute review of the day's jobs")
	}
	if resp.RevenuePredictability >= 1 && resp.RevenuePredictability <= 4 {
		factors = append(factors, "Revenue swings hard month to month")
		strategic = append(strategic, "Introduce maintenance contracts to build recurring revenue")
	}
	if resp.TaskManagementDifficulty >= 7 {
		factors = append(factors, "Jobs are tracked in too many places")
		quickWins = append(quickWins, "Move every open job into a single shared list")
	}
	if resp.FinancialTracking >= 1 && resp.FinancialTracking <= 4 {
		factors = append(factors, "Money in and out is not tracked closely")
		quickWins = append(quickWins, "Log every invoice and receipt the day it lands")
	}
	if resp.CustomerCommunication >= 7 {
		factors = append(factors, "Customers have to chase you for updates")
		quickWins = append(quickWins, "Send a templated status text after every site visit")
	}
	if resp.TimeManagement >= 7 {
		factors = append(factors, "The schedule runs you instead of the other way around")
		strategic = append(strategic, "Batch jobs by area to cut drive time between sites")
	}
	if opp, ok := challengeOpportunities[resp.BiggestChallenge]; ok {
		strategic = append(strategic, opp)
	}

	result.QuickWins = quickWins
	result.StrategicOpportunities = strategic
	result.ChaosFactors = factors
}
