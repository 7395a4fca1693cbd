package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"trademate/internal/cache"
	"trademate/internal/model"
	"trademate/internal/repository"
)

const (
	// DomainConfidenceGate is the minimum synthesized confidence for the
	// financial and customer generators to fire. Operational and
	// strategic generators are confidence-independent.
	DomainConfidenceGate = 70

	// MaxPersisted bounds how many ranked recommendations are stored
	MaxPersisted = 10

	// Numeric contract of the financial generator
	revenueImpactShare = 0.6
	expenseImpactShare = 0.4
	urgentGapFraction  = 0.3
)

// FeedNotifier pushes feed events to a connected dashboard (implemented
// by the ws hub)
type FeedNotifier interface {
	NotifyUser(userID string, event string, payload interface{})
}

// RecommendationService runs the full pipeline: synthesize profile,
// derive behavior, generate, rank, persist top-N, notify.
type RecommendationService struct {
	synthesizer   *SynthesizerService
	behavior      *BehaviorService
	benchmarkRepo repository.BenchmarkRepo
	recRepo       repository.RecommendationRepo
	feedCache     cache.FeedCache
	notifier      FeedNotifier
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	synthesizer *SynthesizerService,
	behavior *BehaviorService,
	benchmarkRepo repository.BenchmarkRepo,
	recRepo repository.RecommendationRepo,
	feedCache cache.FeedCache,
) *RecommendationService {
	return &RecommendationService{
		synthesizer:   synthesizer,
		behavior:      behavior,
		benchmarkRepo: benchmarkRepo,
		recRepo:       recRepo,
		feedCache:     feedCache,
	}
}

// SetNotifier injects the feed notifier (wired in main to the ws hub)
func (s *RecommendationService) SetNotifier(n FeedNotifier) {
	s.notifier = n
}

// Refresh runs a full generation batch for a user and returns the
// ranked, persisted feed. Storage write failures are logged and the
// in-memory result is still returned.
func (s *RecommendationService) Refresh(ctx context.Context, userID string) ([]*model.Recommendation, error) {
	profile, err := s.synthesizer.Synthesize(ctx, userID)
	if err != nil {
		return nil, err
	}

	behavior, err := s.behavior.Summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	benchmarks := s.lookupBenchmarks(ctx, profile.BusinessInfo.Industry)

	recs := Generate(profile, behavior, benchmarks)
	Rank(recs)
	if len(recs) > MaxPersisted {
		recs = recs[:MaxPersisted]
	}

	batchID := uuid.New().String()
	now := time.Now()
	for i, rec := range recs {
		rec.UserID = userID
		rec.BatchID = batchID
		rec.Rank = i + 1
		rec.CreatedAt = now
	}

	s.persist(ctx, userID, batchID, recs)

	if s.notifier != nil {
		s.notifier.NotifyUser(userID, "recommendations_refreshed", map[string]interface{}{
			"batchId": batchID,
			"count":   len(recs),
		})
	}

	return recs, nil
}

// GetFeed returns the stored feed, preferring the cache. The trending
// stream is served from the Redis ZSET so it stays score-ordered across
// the latest batch; every cache miss or failure falls through to Mongo.
func (s *RecommendationService) GetFeed(ctx context.Context, userID string, stream model.Stream) ([]*model.Recommendation, error) {
	if s.feedCache != nil {
		switch stream {
		case "":
			cached, err := s.feedCache.GetFeed(ctx, userID)
			if err != nil {
				log.Printf("feed cache read failed for user %s: %v", userID, err)
			} else if cached != nil {
				return cached, nil
			}
		case model.StreamTrending:
			if recs, ok := s.trendingFeed(ctx, userID); ok {
				return recs, nil
			}
		}
	}

	if stream != "" {
		return s.recRepo.GetByStream(ctx, userID, stream)
	}
	return s.recRepo.GetByUserID(ctx, userID)
}

// trendingFeed resolves the trending ZSET ids against the cached feed,
// falling back to the stored batch when the feed blob has expired. The
// second return is false whenever Mongo should serve the request instead.
func (s *RecommendationService) trendingFeed(ctx context.Context, userID string) ([]*model.Recommendation, bool) {
	ids, err := s.feedCache.GetTrending(ctx, userID, MaxPersisted)
	if err != nil {
		log.Printf("trending read failed for user %s: %v", userID, err)
		return nil, false
	}
	if len(ids) == 0 {
		return nil, false
	}

	feed, err := s.feedCache.GetFeed(ctx, userID)
	if err != nil {
		log.Printf("feed cache read failed for user %s: %v", userID, err)
	}
	if feed == nil {
		feed, err = s.recRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("recommendation fetch failed for user %s: %v", userID, err)
			return nil, false
		}
	}

	byID := make(map[string]*model.Recommendation, len(feed))
	for _, rec := range feed {
		byID[rec.ID] = rec
	}

	recs := make([]*model.Recommendation, 0, len(ids))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		return nil, false
	}
	return recs, true
}

func (s *RecommendationService) lookupBenchmarks(ctx context.Context, industry string) *model.IndustryBenchmarks {
	if s.benchmarkRepo != nil && industry != "" {
		benchmarks, err := s.benchmarkRepo.GetByIndustry(ctx, industry)
		if err != nil {
			log.Printf("benchmark fetch failed for industry %q: %v", industry, err)
		} else if benchmarks != nil {
			return benchmarks
		}
	}
	return DefaultBenchmarks()
}

// persist upserts the batch and removes rows from older batches. The
// feed is full-replace-by-batch, so stale rows never accumulate.
func (s *RecommendationService) persist(ctx context.Context, userID, batchID string, recs []*model.Recommendation) {
	stored := true
	for _, rec := range recs {
		if err := s.recRepo.Upsert(ctx, rec); err != nil {
			log.Printf("recommendation upsert failed for user %s rec %s: %v", userID, rec.ID, err)
			stored = false
		}
	}
	if stored {
		if err := s.recRepo.DeleteOtherBatches(ctx, userID, batchID); err != nil {
			log.Printf("stale batch cleanup failed for user %s: %v", userID, err)
		}
	}

	if s.feedCache == nil {
		return
	}
	if err := s.feedCache.SetFeed(ctx, userID, recs); err != nil {
		log.Printf("feed cache write failed for user %s: %v", userID, err)
	}
	if err := s.feedCache.ResetTrending(ctx, userID); err != nil {
		log.Printf("trending reset failed for user %s: %v", userID, err)
	}
	for _, rec := range recs {
		if err := s.feedCache.UpdateTrending(ctx, userID, rec); err != nil {
			log.Printf("trending update failed for user %s: %v", userID, err)
		}
	}
}

// DefaultBenchmarks is the fallback when no industry row is seeded
func DefaultBenchmarks() *model.IndustryBenchmarks {
	return &model.IndustryBenchmarks{
		Industry:        "general",
		MonthlyRevenue:  25000,
		MonthlyExpenses: 17500,
		ConversionRate:  0.35,
		AvgJobValue:     850,
	}
}

// Generate composes the four generators. Pure: identical inputs yield
// identical recommendation sets in a fixed emission order.
func Generate(profile *model.UnifiedBusinessProfile, behavior *model.UserBehavior, benchmarks *model.IndustryBenchmarks) []*model.Recommendation {
	recs := []*model.Recommendation{}
	recs = append(recs, generateFinancial(profile, behavior, benchmarks)...)
	recs = append(recs, generateCustomer(profile, benchmarks)...)
	recs = append(recs, generateOperational(profile)...)
	recs = append(recs, generateStrategic(profile, behavior, benchmarks)...)
	return recs
}

// Rank sorts by the weighted composite, descending. The sort is stable,
// so ties keep generator emission order.
func Rank(recs []*model.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CompositeScore() > recs[j].CompositeScore()
	})
}

func generateFinancial(profile *model.UnifiedBusinessProfile, behavior *model.UserBehavior, benchmarks *model.IndustryBenchmarks) []*model.Recommendation {
	fin := profile.FinancialData
	if fin.Confidence < DomainConfidenceGate {
		return nil
	}

	recs := []*model.Recommendation{}

	if benchmarks.MonthlyRevenue > 0 && fin.Revenue < benchmarks.MonthlyRevenue {
		gap := benchmarks.MonthlyRevenue - fin.Revenue
		gapFraction := gap / benchmarks.MonthlyRevenue
		priority := model.PriorityHigh
		urgency := 65.0
		if gapFraction > urgentGapFraction {
			priority = model.PriorityUrgent
			urgency = 90
		}
		recs = append(recs, &model.Recommendation{
			ID:       "rec-revenue",
			Type:     model.RecTypeRevenue,
			Priority: priority,
			Hook:     fmt.Sprintf("Similar businesses bring in $%.0f more per month", gap),
			Title:    "Close your revenue gap",
			Description: fmt.Sprintf(
				"Your monthly revenue of $%.0f sits below the $%.0f industry benchmark. Tightening quoting and follow-up typically recovers 60%% of that gap.",
				fin.Revenue, benchmarks.MonthlyRevenue),
			Reasoning:         "Revenue below industry benchmark with high-confidence financial data",
			ExpectedImpact:    revenueImpactShare * gap,
			TimeToImplement:   "2-4 weeks",
			PersonalizedScore: clampScore(50 + gapFraction*50),
			ConfidenceScore:   float64(fin.Confidence),
			UrgencyScore:      urgency,
			Actions: []string{
				"Review your last 10 quotes against the benchmark job value",
				"Follow up every open estimate older than a week",
				"Raise prices on your three most-booked services",
			},
			StreamType: model.StreamForYou,
		})
	}

	if benchmarks.MonthlyExpenses > 0 && fin.Expenses > benchmarks.MonthlyExpenses {
		excess := fin.Expenses - benchmarks.MonthlyExpenses
		excessFraction := excess / benchmarks.MonthlyExpenses
		recs = append(recs, &model.Recommendation{
			ID:       "rec-expense",
			Type:     model.RecTypeEfficiency,
			Priority: model.PriorityHigh,
			Hook:     fmt.Sprintf("You spend $%.0f more than comparable trades", excess),
			Title:    "Trim overspend",
			Description: fmt.Sprintf(
				"Monthly expenses of $%.0f run above the $%.0f benchmark. Supplier and subscription reviews usually claw back 40%% of the excess.",
				fin.Expenses, benchmarks.MonthlyExpenses),
			Reasoning:         "Expenses above industry benchmark with high-confidence financial data",
			ExpectedImpact:    expenseImpactShare * excess,
			TimeToImplement:   "1-2 days",
			PersonalizedScore: clampScore(45 + excessFraction*50),
			ConfidenceScore:   float64(fin.Confidence),
			UrgencyScore:      60,
			Actions: []string{
				"Cancel tools and subscriptions unused for 60 days",
				"Requote your two biggest suppliers",
			},
			StreamType: model.StreamQuickWins,
		})
	}

	return recs
}

func generateCustomer(profile *model.UnifiedBusinessProfile, benchmarks *model.IndustryBenchmarks) []*model.Recommendation {
	cust := profile.CustomerData
	if cust.Confidence < DomainConfidenceGate {
		return nil
	}
	if cust.ConversionRate >= benchmarks.ConversionRate {
		return nil
	}

	gap := benchmarks.ConversionRate - cust.ConversionRate
	return []*model.Recommendation{{
		ID:       "rec-conversion",
		Type:     model.RecTypeGrowth,
		Priority: model.PriorityHigh,
		Hook: fmt.Sprintf("You convert %.0f%% of leads; your industry converts %.0f%%",
			cust.ConversionRate*100, benchmarks.ConversionRate*100),
		Title: "Convert more of the leads you already have",
		Description: fmt.Sprintf(
			"With %d active leads, closing the conversion gap is worth roughly %.1f extra jobs without spending on new marketing.",
			cust.ActiveLeads, float64(cust.ActiveLeads)*gap),
		Reasoning:         "Conversion rate below industry benchmark with high-confidence customer data",
		ExpectedImpact:    float64(cust.ActiveLeads) * gap,
		TimeToImplement:   "1 week",
		PersonalizedScore: clampScore(40 + gap*200),
		ConfidenceScore:   float64(cust.Confidence),
		UrgencyScore:      70,
		Actions: []string{
			"Call every lead within an hour of their enquiry",
			"Send quotes the same day you visit",
			"Add one follow-up touch three days after quoting",
		},
		StreamType: model.StreamForYou,
	}}
}

func generateOperational(profile *model.UnifiedBusinessProfile) []*model.Recommendation {
	chaos := profile.QuizInsights.ChaosScore
	if chaos <= model.ChaosThreshold {
		return nil
	}

	return []*model.Recommendation{{
		ID:       "rec-stabilize",
		Type:     model.RecTypeOperational,
		Priority: model.PriorityUrgent,
		Hook:     fmt.Sprintf("Your chaos score of %d puts you in the red zone", chaos),
		Title:    "Stabilize your core processes",
		Description: "High operational chaos compounds: missed jobs cost revenue, " +
			"which adds pressure, which drops more balls. Lock down scheduling and invoicing first.",
		Reasoning:         "Chaos score above the chaos-zone threshold",
		ExpectedImpact:    float64(chaos-50) * 20,
		TimeToImplement:   "1-2 weeks",
		PersonalizedScore: 85,
		ConfidenceScore:   90,
		UrgencyScore:      95,
		Actions: []string{
			"Pick one system of record for jobs and retire the rest",
			"Invoice every completed job within 24 hours",
			"Block two admin hours per week, non-negotiable",
		},
		StreamType: model.StreamForYou,
	}}
}

func generateStrategic(profile *model.UnifiedBusinessProfile, behavior *model.UserBehavior, benchmarks *model.IndustryBenchmarks) []*model.Recommendation {
	if behavior.GrowthAmbition != model.AmbitionScale {
		return nil
	}
	if profile.QuizInsights.ChaosScore >= model.ControlThreshold {
		return nil
	}

	return []*model.Recommendation{{
		ID:       "rec-scale",
		Type:     model.RecTypeStrategic,
		Priority: model.PriorityHigh,
		Hook:     "Your operations are calm enough to grow",
		Title:    "You're ready to scale",
		Description: "Low chaos plus scale ambition is the window to add capacity: " +
			"a first hire or subcontractor network before demand forces a rushed one.",
		Reasoning:         "Scale ambition with chaos score in the clarity zone",
		ExpectedImpact:    benchmarks.MonthlyRevenue * 0.25,
		TimeToImplement:   "1-3 months",
		PersonalizedScore: clampScore(60 + behavior.ImplementationRate*40),
		ConfidenceScore:   75,
		UrgencyScore:      50,
		Actions: []string{
			"Document your three most common job types as checklists",
			"Price a first hire against your busiest month",
		},
		StreamType: model.StreamTrending,
	}}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
