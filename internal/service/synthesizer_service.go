package service

import (
	"context"
	"log"
	"sync"
	"time"

	"trademate/internal/cache"
	"trademate/internal/model"
	"trademate/internal/repository"
)

// SynthesizerService builds the UnifiedBusinessProfile for a user from
// whatever data sources exist. Read-only: it never writes to Mongo.
// Every sub-fetch failure degrades its own domain to the none tier
// instead of failing the synthesis.
type SynthesizerService struct {
	profileRepo     repository.ProfileRepo
	settingsRepo    repository.SettingsRepo
	integrationRepo repository.IntegrationRepo
	transactionRepo repository.TransactionRepo
	contactRepo     repository.ContactRepo
	appointmentRepo repository.AppointmentRepo
	profileCache    cache.ProfileCache
}

// NewSynthesizerService creates a new synthesizer service
func NewSynthesizerService(
	profileRepo repository.ProfileRepo,
	settingsRepo repository.SettingsRepo,
	integrationRepo repository.IntegrationRepo,
	transactionRepo repository.TransactionRepo,
	contactRepo repository.ContactRepo,
	appointmentRepo repository.AppointmentRepo,
	profileCache cache.ProfileCache,
) *SynthesizerService {
	return &SynthesizerService{
		profileRepo:     profileRepo,
		settingsRepo:    settingsRepo,
		integrationRepo: integrationRepo,
		transactionRepo: transactionRepo,
		contactRepo:     contactRepo,
		appointmentRepo: appointmentRepo,
		profileCache:    profileCache,
	}
}

// fetched holds the results of the concurrent record fetches. A nil
// slice/pointer means that source is absent or failed.
type fetched struct {
	profile      *model.UserProfile
	settings     *model.BusinessSettings
	integrations []*model.Integration
	transactions []*model.Transaction
	contacts     []*model.Contact
	appointments []*model.Appointment
}

// Synthesize builds the unified profile for a user
func (s *SynthesizerService) Synthesize(ctx context.Context, userID string) (*model.UnifiedBusinessProfile, error) {
	if s.profileCache != nil {
		cached, err := s.profileCache.Get(ctx, userID)
		if err != nil {
			log.Printf("profile cache read failed for user %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	f := s.fetchAll(ctx, userID)

	unified := &model.UnifiedBusinessProfile{
		BusinessInfo:  s.resolveBusinessInfo(userID, f.profile, f.settings),
		FinancialData: resolveFinancial(f.integrations, f.transactions),
		CustomerData:  resolveCustomer(f.integrations, f.contacts),
		ScheduleData:  resolveSchedule(f.integrations, f.appointments),
		QuizInsights:  resolveQuizInsights(f.profile),
		SynthesizedAt: time.Now(),
	}

	if s.profileCache != nil {
		if err := s.profileCache.Set(ctx, userID, unified); err != nil {
			log.Printf("profile cache write failed for user %s: %v", userID, err)
		}
	}

	return unified, nil
}

// fetchAll issues the six record fetches concurrently. Each goroutine
// logs and swallows its own error so one failed source cannot abort the
// join.
func (s *SynthesizerService) fetchAll(ctx context.Context, userID string) *fetched {
	f := &fetched{}
	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		profile, err := s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("synthesize: profile fetch failed for user %s: %v", userID, err)
			return
		}
		f.profile = profile
	}()
	go func() {
		defer wg.Done()
		settings, err := s.settingsRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("synthesize: settings fetch failed for user %s: %v", userID, err)
			return
		}
		f.settings = settings
	}()
	go func() {
		defer wg.Done()
		integrations, err := s.integrationRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("synthesize: integrations fetch failed for user %s: %v", userID, err)
			return
		}
		f.integrations = integrations
	}()
	go func() {
		defer wg.Done()
		transactions, err := s.transactionRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("synthesize: transactions fetch failed for user %s: %v", userID, err)
			return
		}
		f.transactions = transactions
	}()
	go func() {
		defer wg.Done()
		contacts, err := s.contactRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("synthesize: contacts fetch failed for user %s: %v", userID, err)
			return
		}
		f.contacts = contacts
	}()
	go func() {
		defer wg.Done()
		appointments, err := s.appointmentRepo.GetByUserID(ctx, userID)
		if err != nil {
			log.Printf("synthesize: appointments fetch failed for user %s: %v", userID, err)
			return
		}
		f.appointments = appointments
	}()

	wg.Wait()
	return f
}

func (s *SynthesizerService) resolveBusinessInfo(userID string, profile *model.UserProfile, settings *model.BusinessSettings) model.BusinessInfo {
	info := model.BusinessInfo{UserID: userID}
	if profile != nil {
		info.BusinessName = profile.BusinessName
		info.Industry = profile.Industry
		info.SetupPreference = profile.SetupPreference
	}
	return info
}

func activeIntegration(integrations []*model.Integration, category model.IntegrationCategory) bool {
	for _, integration := range integrations {
		if integration.IsActive && integration.Category == category {
			return true
		}
	}
	return false
}

// resolveFinancial prefers a connected accounting integration, then
// native transactions, then the none tier. Integration aggregates are
// zero pending real provider API calls; only provenance and confidence
// are carried.
func resolveFinancial(integrations []*model.Integration, transactions []*model.Transaction) model.FinancialData {
	if activeIntegration(integrations, model.CategoryAccounting) {
		return model.FinancialData{
			Source:     model.SourceIntegration,
			Confidence: model.ConfidenceIntegration,
		}
	}

	if len(transactions) > 0 {
		data := model.FinancialData{
			Source:           model.SourceNative,
			Confidence:       model.ConfidenceNativeFinance,
			TransactionCount: len(transactions),
		}
		incomeCount := 0
		for _, tx := range transactions {
			switch tx.Type {
			case model.TransactionIncome:
				data.Revenue += tx.Amount
				incomeCount++
			case model.TransactionExpense:
				data.Expenses += tx.Amount
			}
		}
		data.Profit = data.Revenue - data.Expenses
		if incomeCount > 0 {
			data.AvgJobValue = data.Revenue / float64(incomeCount)
		}
		return data
	}

	return model.FinancialData{Source: model.SourceNone, Confidence: model.ConfidenceNone}
}

func resolveCustomer(integrations []*model.Integration, contacts []*model.Contact) model.CustomerData {
	if activeIntegration(integrations, model.CategoryCRM) {
		return model.CustomerData{
			Source:     model.SourceIntegration,
			Confidence: model.ConfidenceIntegration,
		}
	}

	if len(contacts) > 0 {
		data := model.CustomerData{
			Source:     model.SourceNative,
			Confidence: model.ConfidenceNativeCustomer,
		}
		converted, repeat := 0, 0
		for _, contact := range contacts {
			switch contact.Status {
			case model.ContactLead:
				data.ActiveLeads++
			case model.ContactCustomer:
				converted++
			case model.ContactRepeat:
				converted++
				repeat++
			}
		}
		data.TotalCustomers = converted
		total := converted + data.ActiveLeads
		if total > 0 {
			data.ConversionRate = float64(converted) / float64(total)
		}
		if converted > 0 {
			data.RepeatRate = float64(repeat) / float64(converted)
		}
		return data
	}

	return model.CustomerData{Source: model.SourceNone, Confidence: model.ConfidenceNone}
}

// monthlyCapacityHours is the assumed bookable hours per month used for
// the native utilization estimate
const monthlyCapacityHours = 160.0

func resolveSchedule(integrations []*model.Integration, appointments []*model.Appointment) model.ScheduleData {
	if activeIntegration(integrations, model.CategoryCalendar) {
		return model.ScheduleData{
			Source:     model.SourceIntegration,
			Confidence: model.ConfidenceIntegration,
		}
	}

	if len(appointments) > 0 {
		data := model.ScheduleData{
			Source:     model.SourceNative,
			Confidence: model.ConfidenceNativeSchedule,
		}
		bookedHours := 0.0
		for _, appt := range appointments {
			switch appt.Status {
			case model.AppointmentScheduled:
				data.UpcomingJobs++
				bookedHours += appt.DurationH
			case model.AppointmentCompleted:
				data.CompletedJobs++
				bookedHours += appt.DurationH
			}
		}
		data.UtilizationRate = bookedHours / monthlyCapacityHours
		if data.UtilizationRate > 1 {
			data.UtilizationRate = 1
		}
		return data
	}

	return model.ScheduleData{Source: model.SourceNone, Confidence: model.ConfidenceNone}
}

func resolveQuizInsights(profile *model.UserProfile) model.QuizInsights {
	if profile == nil || profile.ChaosResult == nil {
		return model.QuizInsights{
			ClarityZone:        model.ZoneClarity,
			IndustryPercentile: 100,
		}
	}
	return model.QuizInsights{
		ChaosScore:         profile.ChaosResult.ChaosScore,
		ClarityZone:        profile.ChaosResult.ClarityZone,
		IndustryPercentile: profile.ChaosResult.IndustryPercentile,
		TopChallenges:      profile.ChaosResult.ChaosFactors,
	}
}
