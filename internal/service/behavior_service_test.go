package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trademate/internal/model"
)

func TestRecordInteractionRejectsUnknownEvent(t *testing.T) {
	svc := NewBehaviorService(&fakeInteractionRepo{}, &fakeSettingsRepo{}, nil)

	err := svc.RecordInteraction(context.Background(), "u1", "rec-revenue", "hovered")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestRecordInteractionStoresKnownEvent(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := NewBehaviorService(repo, &fakeSettingsRepo{}, nil)

	err := svc.RecordInteraction(context.Background(), "u1", "rec-revenue", model.EventCompleted)
	require.NoError(t, err)
	require.Len(t, repo.interactions, 1)
	assert.Equal(t, "rec-revenue", repo.interactions[0].RecommendationID)
}

func TestSummarizeNewUserDefaults(t *testing.T) {
	svc := NewBehaviorService(&fakeInteractionRepo{}, &fakeSettingsRepo{}, nil)

	behavior, err := svc.Summarize(context.Background(), "u1")
	require.NoError(t, err)

	assert.InDelta(t, 0.3, behavior.ImplementationRate, 0.001)
	assert.Equal(t, model.ComplexitySimple, behavior.PreferredComplexity)
	assert.Equal(t, model.AmbitionSteady, behavior.GrowthAmbition)
	assert.Empty(t, behavior.EngagementPatterns)
}

func TestSummarizeImplementationRate(t *testing.T) {
	interactions := []*model.Interaction{}
	for i := 0; i < 10; i++ {
		interactions = append(interactions, &model.Interaction{UserID: "u1", Event: model.EventViewed})
	}
	for i := 0; i < 7; i++ {
		interactions = append(interactions, &model.Interaction{UserID: "u1", Event: model.EventCompleted})
	}

	svc := NewBehaviorService(&fakeInteractionRepo{interactions: interactions}, &fakeSettingsRepo{}, nil)

	behavior, err := svc.Summarize(context.Background(), "u1")
	require.NoError(t, err)

	assert.InDelta(t, 0.7, behavior.ImplementationRate, 0.001)
	assert.Equal(t, model.ComplexityAdvanced, behavior.PreferredComplexity)
	// Viewed outnumbers completed, so it leads the patterns
	require.NotEmpty(t, behavior.EngagementPatterns)
	assert.Equal(t, "browses the feed", behavior.EngagementPatterns[0])
}

func TestSummarizeRateCappedAtOne(t *testing.T) {
	interactions := []*model.Interaction{
		{UserID: "u1", Event: model.EventViewed},
		{UserID: "u1", Event: model.EventCompleted},
		{UserID: "u1", Event: model.EventCompleted},
		{UserID: "u1", Event: model.EventCompleted},
	}

	svc := NewBehaviorService(&fakeInteractionRepo{interactions: interactions}, &fakeSettingsRepo{}, nil)

	behavior, err := svc.Summarize(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, behavior.ImplementationRate)
}

func TestSummarizeReadsGrowthAmbitionFromSettings(t *testing.T) {
	settings := &fakeSettingsRepo{settings: &model.BusinessSettings{
		UserID:         "u1",
		GrowthAmbition: model.AmbitionScale,
	}}
	svc := NewBehaviorService(&fakeInteractionRepo{}, settings, nil)

	behavior, err := svc.Summarize(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, model.AmbitionScale, behavior.GrowthAmbition)
}

func TestSummarizeSurvivesFailingStores(t *testing.T) {
	svc := NewBehaviorService(&fakeInteractionRepo{fail: true}, &fakeSettingsRepo{fail: true}, nil)

	behavior, err := svc.Summarize(context.Background(), "u1")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, behavior.ImplementationRate, 0.001)
	assert.Equal(t, model.AmbitionSteady, behavior.GrowthAmbition)
}

func TestDominantPatternsOrderedByFrequency(t *testing.T) {
	patterns := dominantPatterns(map[string]int64{
		model.EventViewed:    3,
		model.EventClicked:   5,
		model.EventDismissed: 3,
		model.EventCompleted: 0,
	})

	// clicked first on count, then the tied pair alphabetically
	assert.Equal(t, []string{"opens details", "dismisses suggestions", "browses the feed"}, patterns)
}
