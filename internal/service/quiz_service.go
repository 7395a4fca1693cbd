package service

import (
	"context"
	"log"

	"trademate/internal/cache"
	"trademate/internal/model"
	"trademate/internal/repository"
)

// QuizService scores quiz submissions and persists the result on the
// user profile
type QuizService struct {
	scoring      *ScoringService
	profileRepo  repository.ProfileRepo
	profileCache cache.ProfileCache
	notifier     FeedNotifier
}

// NewQuizService creates a new quiz service
func NewQuizService(scoring *ScoringService, profileRepo repository.ProfileRepo, profileCache cache.ProfileCache) *QuizService {
	return &QuizService{
		scoring:      scoring,
		profileRepo:  profileRepo,
		profileCache: profileCache,
	}
}

// SetNotifier injects the feed notifier
func (s *QuizService) SetNotifier(n FeedNotifier) {
	s.notifier = n
}

// ScoreOnly scores a response without persisting anything. Used by the
// pre-signup quiz.
func (s *QuizService) ScoreOnly(resp model.ChaosQuizResponse) *model.ChaosResult {
	return s.scoring.Score(resp)
}

// Submit scores a response and stores the result on the user profile.
// A failed write degrades to the in-memory result rather than an error:
// the dashboard still renders, just against lower-confidence data on
// the next synthesis.
func (s *QuizService) Submit(ctx context.Context, userID string, resp model.ChaosQuizResponse) *model.ChaosResult {
	result := s.scoring.Score(resp)

	if err := s.profileRepo.SaveChaosResult(ctx, userID, result); err != nil {
		log.Printf("chaos result save failed for user %s: %v", userID, err)
	} else if s.profileCache != nil {
		if err := s.profileCache.Invalidate(ctx, userID); err != nil {
			log.Printf("profile cache invalidation failed for user %s: %v", userID, err)
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyUser(userID, "score_updated", map[string]interface{}{
			"chaosScore":  result.ChaosScore,
			"clarityZone": result.ClarityZone,
		})
	}

	return result
}

// GetResult returns the stored chaos result, or nil if the user has
// not completed the quiz
func (s *QuizService) GetResult(ctx context.Context, userID string) (*model.ChaosResult, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return profile.ChaosResult, nil
}
