package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trademate/internal/model"
)

func TestScoreBoundsAcrossInputs(t *testing.T) {
	s := NewScoringService()

	ordinals := []int{-5, 0, 1, 5, 10, 11, 100}
	options := []string{"", "Word of mouth", "Scheduling and organization", "made-up option"}

	for _, v := range ordinals {
		for _, opt := range options {
			result := s.Score(model.ChaosQuizResponse{
				DailyOverwhelm:           v,
				RevenuePredictability:    v,
				CustomerAcquisition:      opt,
				BiggestChallenge:         opt,
				TaskManagementDifficulty: v,
				FinancialTracking:        v,
				CustomerCommunication:    v,
				TimeManagement:           v,
			})
			assert.GreaterOrEqual(t, result.ChaosScore, 0)
			assert.LessOrEqual(t, result.ChaosScore, 100)
			assert.Contains(t, []model.ClarityZone{model.ZoneChaos, model.ZoneControl, model.ZoneClarity}, result.ClarityZone)
			assert.GreaterOrEqual(t, result.IndustryPercentile, 10)
			assert.LessOrEqual(t, result.IndustryPercentile, 100)
			assert.Len(t, result.Answers, 8)
		}
	}
}

func TestScoreWorstCaseClampsTo100(t *testing.T) {
	s := NewScoringService()

	result := s.Score(model.ChaosQuizResponse{
		DailyOverwhelm:           10,
		RevenuePredictability:    1,
		CustomerAcquisition:      "Word of mouth",
		BiggestChallenge:         "Scheduling and organization",
		TaskManagementDifficulty: 10,
		FinancialTracking:        1,
		CustomerCommunication:    10,
		TimeManagement:           10,
	})

	assert.Equal(t, 100, result.ChaosScore)
	assert.Equal(t, model.ZoneChaos, result.ClarityZone)
	assert.Equal(t, 10, result.IndustryPercentile)
}

func TestScoreBestCaseIsClarity(t *testing.T) {
	s := NewScoringService()

	result := s.Score(model.ChaosQuizResponse{
		DailyOverwhelm:           1,
		RevenuePredictability:    10,
		CustomerAcquisition:      "Repeat customers",
		BiggestChallenge:         "Pricing jobs correctly",
		TaskManagementDifficulty: 1,
		FinancialTracking:        10,
		CustomerCommunication:    1,
		TimeManagement:           1,
	})

	assert.Equal(t, 17, result.ChaosScore)
	assert.Equal(t, model.ZoneClarity, result.ClarityZone)
	assert.Equal(t, 83, result.IndustryPercentile)
}

func TestScoreStrugglingBusiness(t *testing.T) {
	s := NewScoringService()

	result := s.Score(model.ChaosQuizResponse{
		DailyOverwhelm:           9,
		RevenuePredictability:    2,
		CustomerAcquisition:      "Referrals",
		BiggestChallenge:         "Scheduling and organization",
		TaskManagementDifficulty: 8,
		FinancialTracking:        3,
		CustomerCommunication:    7,
		TimeManagement:           9,
	})

	assert.Greater(t, result.ChaosScore, model.ChaosThreshold)
	assert.Equal(t, model.ZoneChaos, result.ClarityZone)
	assert.NotEmpty(t, result.ChaosFactors)
	assert.NotEmpty(t, result.QuickWins)
	assert.NotEmpty(t, result.StrategicOpportunities)
}

func TestScoreZeroValueResponseUsesDefaults(t *testing.T) {
	s := NewScoringService()

	// An empty submission degrades to neutral mid-scale answers, never an error
	result := s.Score(model.ChaosQuizResponse{})

	assert.Equal(t, 62, result.ChaosScore)
	assert.Equal(t, model.ZoneControl, result.ClarityZone)
	for _, a := range result.Answers {
		assert.GreaterOrEqual(t, a.ChaosContribution, 0.0)
	}
}

func TestScoreMonotonicInOverwhelm(t *testing.T) {
	s := NewScoringService()

	base := model.ChaosQuizResponse{
		DailyOverwhelm:           1,
		RevenuePredictability:    5,
		CustomerAcquisition:      "Referrals",
		BiggestChallenge:         "Getting paid on time",
		TaskManagementDifficulty: 5,
		FinancialTracking:        5,
		CustomerCommunication:    5,
		TimeManagement:           5,
	}

	prev := s.Score(base).ChaosScore
	for v := 2; v <= 10; v++ {
		base.DailyOverwhelm = v
		score := s.Score(base).ChaosScore
		assert.GreaterOrEqual(t, score, prev, "raising overwhelm must not lower the score")
		prev = score
	}
}

func TestScoreInvertedQuestionLowersChaos(t *testing.T) {
	s := NewScoringService()

	resp := model.ChaosQuizResponse{
		DailyOverwhelm:           5,
		RevenuePredictability:    1,
		CustomerAcquisition:      "Referrals",
		BiggestChallenge:         "Getting paid on time",
		TaskManagementDifficulty: 5,
		FinancialTracking:        5,
		CustomerCommunication:    5,
		TimeManagement:           5,
	}
	unpredictable := s.Score(resp).ChaosScore

	resp.RevenuePredictability = 10
	predictable := s.Score(resp).ChaosScore

	assert.Greater(t, unpredictable, predictable)
}

func TestScoreIsDeterministic(t *testing.T) {
	s := NewScoringService()

	resp := model.ChaosQuizResponse{
		DailyOverwhelm:           6,
		RevenuePredictability:    4,
		CustomerAcquisition:      "Advertising",
		BiggestChallenge:         "Managing paperwork",
		TaskManagementDifficulty: 7,
		FinancialTracking:        6,
		CustomerCommunication:    3,
		TimeManagement:           4,
	}

	first := s.Score(resp)
	second := s.Score(resp)

	assert.Equal(t, first.ChaosScore, second.ChaosScore)
	assert.Equal(t, first.ClarityZone, second.ClarityZone)
	assert.Equal(t, first.ChaosFactors, second.ChaosFactors)
}

func TestDeriveInsightsChallengeOpportunity(t *testing.T) {
	s := NewScoringService()

	result := s.Score(model.ChaosQuizResponse{
		DailyOverwhelm:           2,
		RevenuePredictability:    8,
		CustomerAcquisition:      "Referrals",
		BiggestChallenge:         "Getting paid on time",
		TaskManagementDifficulty: 2,
		FinancialTracking:        8,
		CustomerCommunication:    2,
		TimeManagement:           2,
	})

	require.Len(t, result.StrategicOpportunities, 1)
	assert.Contains(t, result.StrategicOpportunities[0], "deposit-upfront")
}
