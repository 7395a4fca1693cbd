package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/config"
	"trademate/internal/model"
	"trademate/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	benchmarkRepo := repository.NewBenchmarkRepo(db)

	benchmarks := []*model.IndustryBenchmarks{
		{
			Industry:        "plumbing",
			MonthlyRevenue:  28000,
			MonthlyExpenses: 19600,
			ConversionRate:  0.42,
			AvgJobValue:     650,
		},
		{
			Industry:        "electrical",
			MonthlyRevenue:  32000,
			MonthlyExpenses: 21500,
			ConversionRate:  0.38,
			AvgJobValue:     900,
		},
		{
			Industry:        "hvac",
			MonthlyRevenue:  35000,
			MonthlyExpenses: 25000,
			ConversionRate:  0.33,
			AvgJobValue:     1200,
		},
		{
			Industry:        "general",
			MonthlyRevenue:  25000,
			MonthlyExpenses: 17500,
			ConversionRate:  0.35,
			AvgJobValue:     850,
		},
	}

	for _, b := range benchmarks {
		if err := benchmarkRepo.Upsert(ctx, b); err != nil {
			log.Fatalf("Failed to upsert %s benchmarks: %v", b.Industry, err)
		}
	}
	fmt.Printf("Seeded %d industry benchmark sets\n", len(benchmarks))

	// Demo user with native records so the synthesizer has something to
	// aggregate on a fresh database
	userID := "user_demo0001"
	now := time.Now()

	profileRepo := repository.NewProfileRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	contactRepo := repository.NewContactRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)

	profile := &model.UserProfile{
		UserID:          userID,
		Email:           "demo@example.com",
		BusinessName:    "Riverside Plumbing",
		Industry:        "plumbing",
		SetupPreference: "guided",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		log.Fatalf("Failed to seed demo profile: %v", err)
	}

	if err := settingsRepo.Upsert(ctx, &model.BusinessSettings{
		UserID:         userID,
		GrowthAmbition: model.AmbitionScale,
		WorkingHours:   45,
		TeamSize:       2,
	}); err != nil {
		log.Fatalf("Failed to seed demo settings: %v", err)
	}

	transactions := []*model.Transaction{
		{UserID: userID, Type: model.TransactionIncome, Amount: 4200, Category: "jobs", OccurredAt: now.AddDate(0, 0, -20)},
		{UserID: userID, Type: model.TransactionIncome, Amount: 3100, Category: "jobs", OccurredAt: now.AddDate(0, 0, -12)},
		{UserID: userID, Type: model.TransactionIncome, Amount: 5600, Category: "jobs", OccurredAt: now.AddDate(0, 0, -4)},
		{UserID: userID, Type: model.TransactionExpense, Amount: 1800, Category: "materials", OccurredAt: now.AddDate(0, 0, -15)},
		{UserID: userID, Type: model.TransactionExpense, Amount: 950, Category: "fuel", OccurredAt: now.AddDate(0, 0, -7)},
	}
	for _, t := range transactions {
		if err := transactionRepo.Create(ctx, t); err != nil {
			log.Fatalf("Failed to seed transaction: %v", err)
		}
	}

	contacts := []*model.Contact{
		{UserID: userID, Name: "Dana Whitfield", Status: model.ContactCustomer, Source: "referral", CreatedAt: now.AddDate(0, 0, -30)},
		{UserID: userID, Name: "Marcus Lee", Status: model.ContactLead, Source: "website", CreatedAt: now.AddDate(0, 0, -9)},
		{UserID: userID, Name: "Priya Raman", Status: model.ContactRepeat, Source: "referral", CreatedAt: now.AddDate(0, 0, -60)},
		{UserID: userID, Name: "Tom Okafor", Status: model.ContactLead, Source: "advertising", CreatedAt: now.AddDate(0, 0, -3)},
	}
	for _, c := range contacts {
		if err := contactRepo.Create(ctx, c); err != nil {
			log.Fatalf("Failed to seed contact: %v", err)
		}
	}

	appointments := []*model.Appointment{
		{UserID: userID, Title: "Water heater replacement", Status: model.AppointmentCompleted, StartsAt: now.AddDate(0, 0, -10), DurationH: 4},
		{UserID: userID, Title: "Bathroom repipe estimate", Status: model.AppointmentCompleted, StartsAt: now.AddDate(0, 0, -5), DurationH: 1.5},
		{UserID: userID, Title: "Drain clearing", Status: model.AppointmentScheduled, StartsAt: now.AddDate(0, 0, 2), DurationH: 2},
	}
	for _, a := range appointments {
		if err := appointmentRepo.Create(ctx, a); err != nil {
			log.Fatalf("Failed to seed appointment: %v", err)
		}
	}

	fmt.Printf("Seeded demo user '%s' with %d transactions, %d contacts, %d appointments\n",
		userID, len(transactions), len(contacts), len(appointments))
}
