package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/cache"
	"trademate/internal/config"
	"trademate/internal/repository"
	"trademate/internal/service"
	"trademate/internal/transport/rest"
	"trademate/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	feedHub := ws.NewFeedHub()
	log.Println("Feed hub started")

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	integrationRepo := repository.NewIntegrationRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	contactRepo := repository.NewContactRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	benchmarkRepo := repository.NewBenchmarkRepo(db)
	interactionRepo := repository.NewInteractionRepo(db)
	recRepo := repository.NewRecommendationRepo(db)

	// Initialize caches
	profileCache := cache.NewProfileCache(rdb, time.Duration(cfg.ProfileCacheSeconds)*time.Second)
	feedCache := cache.NewFeedCache(rdb, time.Duration(cfg.FeedCacheHours)*time.Hour)
	behaviorCache := cache.NewBehaviorCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg, profileRepo, settingsRepo)
	scoringSvc := service.NewScoringService()
	quizSvc := service.NewQuizService(scoringSvc, profileRepo, profileCache)
	synthesizerSvc := service.NewSynthesizerService(
		profileRepo,
		settingsRepo,
		integrationRepo,
		transactionRepo,
		contactRepo,
		appointmentRepo,
		profileCache,
	)
	behaviorSvc := service.NewBehaviorService(interactionRepo, settingsRepo, behaviorCache)
	recSvc := service.NewRecommendationService(synthesizerSvc, behaviorSvc, benchmarkRepo, recRepo, feedCache)
	integrationSvc := service.NewIntegrationService(integrationRepo, profileCache)

	// Inject notifier (feedHub implements service.FeedNotifier)
	quizSvc.SetNotifier(feedHub)
	recSvc.SetNotifier(feedHub)

	// Create router with container
	container := &rest.Container{
		AuthService:           authSvc,
		QuizService:           quizSvc,
		SynthesizerService:    synthesizerSvc,
		BehaviorService:       behaviorSvc,
		RecommendationService: recSvc,
		IntegrationService:    integrationSvc,
		BenchmarkRepo:         benchmarkRepo,
		FeedHub:               feedHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Printf("Host auth: username=%s", cfg.HostUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/signup")
		log.Println("  POST /v1/quiz/score")
		log.Println("  POST /v1/quiz/submit")
		log.Println("  GET  /v1/quiz/result")
		log.Println("  GET  /v1/profile/unified")
		log.Println("  GET  /v1/profile/dashboard")
		log.Println("  GET  /v1/profile/behavior")
		log.Println("  POST /v1/recommendations/refresh")
		log.Println("  GET  /v1/recommendations")
		log.Println("  POST /v1/recommendations/{id}/interact")
		log.Println("  GET/POST/DELETE /v1/integrations")
		log.Println("  PUT/GET /v1/benchmarks")
		log.Println("  WS  /v1/ws/feed")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
