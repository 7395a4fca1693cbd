package service

import (
	"context"
	"errors"
	"log"
	"sort"

	"trademate/internal/cache"
	"trademate/internal/model"
	"trademate/internal/repository"
)

var ErrUnknownEvent = errors.New("unknown interaction event")

// defaultImplementationRate is assumed for users with no interaction
// history yet
const defaultImplementationRate = 0.3

var eventPatterns = map[string]string{
	model.EventViewed:    "browses the feed",
	model.EventClicked:   "opens details",
	model.EventCompleted: "implements recommendations",
	model.EventDismissed: "dismisses suggestions",
}

// BehaviorService derives the per-request UserBehavior summary from
// interaction history. No module-level state: everything flows through
// the injected repos and cache.
type BehaviorService struct {
	interactionRepo repository.InteractionRepo
	settingsRepo    repository.SettingsRepo
	behaviorCache   cache.BehaviorCache
}

// NewBehaviorService creates a new behavior service
func NewBehaviorService(
	interactionRepo repository.InteractionRepo,
	settingsRepo repository.SettingsRepo,
	behaviorCache cache.BehaviorCache,
) *BehaviorService {
	return &BehaviorService{
		interactionRepo: interactionRepo,
		settingsRepo:    settingsRepo,
		behaviorCache:   behaviorCache,
	}
}

// RecordInteraction stores one user action against a recommendation
func (s *BehaviorService) RecordInteraction(ctx context.Context, userID, recommendationID, event string) error {
	if _, ok := eventPatterns[event]; !ok {
		return ErrUnknownEvent
	}

	interaction := &model.Interaction{
		UserID:           userID,
		RecommendationID: recommendationID,
		Event:            event,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return err
	}

	if s.behaviorCache != nil {
		if err := s.behaviorCache.IncrementEvent(ctx, userID, event); err != nil {
			log.Printf("behavior counter update failed for user %s: %v", userID, err)
		}
	}
	return nil
}

// Summarize recomputes the UserBehavior summary on demand. Counter
// reads prefer Redis and fall back to scanning the interaction log.
func (s *BehaviorService) Summarize(ctx context.Context, userID string) (*model.UserBehavior, error) {
	counts := s.eventCounts(ctx, userID)

	behavior := &model.UserBehavior{
		ImplementationRate:  defaultImplementationRate,
		PreferredComplexity: model.ComplexitySimple,
		GrowthAmbition:      model.AmbitionSteady,
	}

	viewed := counts[model.EventViewed]
	completed := counts[model.EventCompleted]
	if viewed > 0 {
		behavior.ImplementationRate = float64(completed) / float64(viewed)
		if behavior.ImplementationRate > 1 {
			behavior.ImplementationRate = 1
		}
	}

	switch {
	case behavior.ImplementationRate > 0.6:
		behavior.PreferredComplexity = model.ComplexityAdvanced
	case behavior.ImplementationRate > 0.3:
		behavior.PreferredComplexity = model.ComplexityModerate
	}

	behavior.EngagementPatterns = dominantPatterns(counts)

	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("settings fetch failed for user %s: %v", userID, err)
	} else if settings != nil && settings.GrowthAmbition != "" {
		behavior.GrowthAmbition = settings.GrowthAmbition
	}

	return behavior, nil
}

func (s *BehaviorService) eventCounts(ctx context.Context, userID string) map[string]int64 {
	if s.behaviorCache != nil {
		counts, err := s.behaviorCache.GetCounts(ctx, userID)
		if err != nil {
			log.Printf("behavior counter read failed for user %s: %v", userID, err)
		} else if len(counts) > 0 {
			return counts
		}
	}

	counts := make(map[string]int64)
	interactions, err := s.interactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("interaction fetch failed for user %s: %v", userID, err)
		return counts
	}
	for _, interaction := range interactions {
		counts[interaction.Event]++
	}
	return counts
}

// dominantPatterns returns human-readable engagement labels, most
// frequent first
func dominantPatterns(counts map[string]int64) []string {
	type eventCount struct {
		event string
		count int64
	}
	ranked := make([]eventCount, 0, len(counts))
	for event, count := range counts {
		if count > 0 {
			ranked = append(ranked, eventCount{event, count})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].event < ranked[j].event
	})

	patterns := []string{}
	for _, ec := range ranked {
		if label, ok := eventPatterns[ec.event]; ok {
			patterns = append(patterns, label)
		}
	}
	return patterns
}
