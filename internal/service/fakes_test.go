package service

import (
	"context"
	"errors"
	"sort"

	"trademate/internal/model"
)

// In-memory repository fakes shared by the service tests. Each fake can
// be forced to fail to exercise degradation paths.

var errFakeDown = errors.New("store unavailable")

type fakeProfileRepo struct {
	profile *model.UserProfile
	fail    bool
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	if f.fail {
		return errFakeDown
	}
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) SaveChaosResult(ctx context.Context, userID string, result *model.ChaosResult) error {
	if f.fail {
		return errFakeDown
	}
	if f.profile != nil {
		f.profile.ChaosResult = result
	}
	return nil
}

type fakeSettingsRepo struct {
	settings *model.BusinessSettings
	fail     bool
}

func (f *fakeSettingsRepo) GetByUserID(ctx context.Context, userID string) (*model.BusinessSettings, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, settings *model.BusinessSettings) error {
	if f.fail {
		return errFakeDown
	}
	f.settings = settings
	return nil
}

type fakeIntegrationRepo struct {
	integrations []*model.Integration
	fail         bool
}

func (f *fakeIntegrationRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Integration, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.integrations, nil
}

func (f *fakeIntegrationRepo) Upsert(ctx context.Context, integration *model.Integration) error {
	if f.fail {
		return errFakeDown
	}
	for i, existing := range f.integrations {
		if existing.Provider == integration.Provider {
			f.integrations[i] = integration
			return nil
		}
	}
	f.integrations = append(f.integrations, integration)
	return nil
}

func (f *fakeIntegrationRepo) Deactivate(ctx context.Context, userID, provider string) error {
	if f.fail {
		return errFakeDown
	}
	for _, integration := range f.integrations {
		if integration.Provider == provider {
			integration.IsActive = false
		}
	}
	return nil
}

type fakeTransactionRepo struct {
	transactions []*model.Transaction
	fail         bool
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	if f.fail {
		return errFakeDown
	}
	f.transactions = append(f.transactions, tx)
	return nil
}

func (f *fakeTransactionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Transaction, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.transactions, nil
}

type fakeContactRepo struct {
	contacts []*model.Contact
	fail     bool
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	if f.fail {
		return errFakeDown
	}
	f.contacts = append(f.contacts, contact)
	return nil
}

func (f *fakeContactRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Contact, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.contacts, nil
}

type fakeAppointmentRepo struct {
	appointments []*model.Appointment
	fail         bool
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *model.Appointment) error {
	if f.fail {
		return errFakeDown
	}
	f.appointments = append(f.appointments, appt)
	return nil
}

func (f *fakeAppointmentRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Appointment, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.appointments, nil
}

type fakeBenchmarkRepo struct {
	benchmarks map[string]*model.IndustryBenchmarks
	fail       bool
}

func (f *fakeBenchmarkRepo) GetByIndustry(ctx context.Context, industry string) (*model.IndustryBenchmarks, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.benchmarks[industry], nil
}

func (f *fakeBenchmarkRepo) Upsert(ctx context.Context, benchmarks *model.IndustryBenchmarks) error {
	if f.fail {
		return errFakeDown
	}
	if f.benchmarks == nil {
		f.benchmarks = make(map[string]*model.IndustryBenchmarks)
	}
	f.benchmarks[benchmarks.Industry] = benchmarks
	return nil
}

type fakeInteractionRepo struct {
	interactions []*model.Interaction
	fail         bool
}

func (f *fakeInteractionRepo) Create(ctx context.Context, interaction *model.Interaction) error {
	if f.fail {
		return errFakeDown
	}
	f.interactions = append(f.interactions, interaction)
	return nil
}

func (f *fakeInteractionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Interaction, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.interactions, nil
}

// fakeRecommendationRepo keys rows by userID+recommendationID the way
// the Mongo upsert filter does.
type fakeRecommendationRepo struct {
	rows         map[string]*model.Recommendation
	deletedCalls int
	fail         bool
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{rows: make(map[string]*model.Recommendation)}
}

func (f *fakeRecommendationRepo) Upsert(ctx context.Context, rec *model.Recommendation) error {
	if f.fail {
		return errFakeDown
	}
	f.rows[rec.UserID+"/"+rec.ID] = rec
	return nil
}

func (f *fakeRecommendationRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Recommendation, error) {
	if f.fail {
		return nil, errFakeDown
	}
	recs := []*model.Recommendation{}
	for _, rec := range f.rows {
		if rec.UserID == userID {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (f *fakeRecommendationRepo) GetByStream(ctx context.Context, userID string, stream model.Stream) ([]*model.Recommendation, error) {
	if f.fail {
		return nil, errFakeDown
	}
	recs := []*model.Recommendation{}
	for _, rec := range f.rows {
		if rec.UserID == userID && rec.StreamType == stream {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (f *fakeRecommendationRepo) DeleteOtherBatches(ctx context.Context, userID, batchID string) error {
	if f.fail {
		return errFakeDown
	}
	f.deletedCalls++
	for key, rec := range f.rows {
		if rec.UserID == userID && rec.BatchID != batchID {
			delete(f.rows, key)
		}
	}
	return nil
}

// fakeFeedCache mirrors the Redis feed blob and trending ZSET in maps
type fakeFeedCache struct {
	feed     []*model.Recommendation
	trending map[string]float64
	fail     bool
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{trending: make(map[string]float64)}
}

func (f *fakeFeedCache) GetFeed(ctx context.Context, userID string) ([]*model.Recommendation, error) {
	if f.fail {
		return nil, errFakeDown
	}
	return f.feed, nil
}

func (f *fakeFeedCache) SetFeed(ctx context.Context, userID string, recs []*model.Recommendation) error {
	if f.fail {
		return errFakeDown
	}
	f.feed = recs
	return nil
}

func (f *fakeFeedCache) UpdateTrending(ctx context.Context, userID string, rec *model.Recommendation) error {
	if f.fail {
		return errFakeDown
	}
	f.trending[rec.ID] = rec.CompositeScore()
	return nil
}

func (f *fakeFeedCache) GetTrending(ctx context.Context, userID string, limit int) ([]string, error) {
	if f.fail {
		return nil, errFakeDown
	}
	ids := make([]string, 0, len(f.trending))
	for id := range f.trending {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return f.trending[ids[i]] > f.trending[ids[j]]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeFeedCache) ResetTrending(ctx context.Context, userID string) error {
	if f.fail {
		return errFakeDown
	}
	f.trending = make(map[string]float64)
	return nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) NotifyUser(userID string, event string, payload interface{}) {
	f.events = append(f.events, event)
}
