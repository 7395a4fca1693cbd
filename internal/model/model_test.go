package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneForScoreBoundaries(t *testing.T) {
	assert.Equal(t, ZoneClarity, ZoneForScore(0))
	assert.Equal(t, ZoneClarity, ZoneForScore(39))
	assert.Equal(t, ZoneControl, ZoneForScore(40))
	assert.Equal(t, ZoneControl, ZoneForScore(69))
	assert.Equal(t, ZoneChaos, ZoneForScore(70))
	assert.Equal(t, ZoneChaos, ZoneForScore(100))
}

func TestCompositeScoreWeights(t *testing.T) {
	rec := &Recommendation{
		PersonalizedScore: 100,
		UrgencyScore:      50,
		ConfidenceScore:   80,
	}
	// 0.4*100 + 0.3*50 + 0.3*80
	assert.InDelta(t, 79.0, rec.CompositeScore(), 0.001)
}

func TestStyleForTypeCoversAllTypes(t *testing.T) {
	types := []RecommendationType{
		RecTypeRevenue, RecTypeEfficiency, RecTypeGrowth, RecTypeOperational, RecTypeStrategic,
	}
	seen := map[string]bool{}
	for _, typ := range types {
		style := StyleForType(typ)
		assert.NotEmpty(t, style.Color)
		assert.NotEmpty(t, style.Icon)
		seen[style.Color] = true
	}
	assert.Len(t, seen, len(types), "every type gets a distinct color")
}

func TestStyleForTypeUnknownFallsBack(t *testing.T) {
	style := StyleForType("mystery")
	assert.Equal(t, "#6b7280", style.Color)
	assert.Equal(t, "lightbulb", style.Icon)
}

func TestCategoryForProvider(t *testing.T) {
	cat, ok := CategoryForProvider("quickbooks")
	assert.True(t, ok)
	assert.Equal(t, CategoryAccounting, cat)

	cat, ok = CategoryForProvider("jobber")
	assert.True(t, ok)
	assert.Equal(t, CategoryCRM, cat)

	cat, ok = CategoryForProvider("google-calendar")
	assert.True(t, ok)
	assert.Equal(t, CategoryCalendar, cat)

	_, ok = CategoryForProvider("myspace")
	assert.False(t, ok)
}

func TestDataQualityMeanConfidence(t *testing.T) {
	p := &UnifiedBusinessProfile{
		FinancialData: FinancialData{Confidence: ConfidenceIntegration},
		CustomerData:  CustomerData{Confidence: ConfidenceNativeCustomer},
		ScheduleData:  ScheduleData{Confidence: ConfidenceNone},
	}
	// (95 + 80 + 0) / 3
	assert.Equal(t, 58, p.DataQuality())
}
