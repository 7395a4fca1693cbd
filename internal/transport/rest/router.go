package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"trademate/internal/repository"
	"trademate/internal/service"
	"trademate/internal/transport/rest/handler"
	"trademate/internal/transport/rest/middleware"
	"trademate/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService           *service.AuthService
	QuizService           *service.QuizService
	SynthesizerService    *service.SynthesizerService
	BehaviorService       *service.BehaviorService
	RecommendationService *service.RecommendationService
	IntegrationService    *service.IntegrationService
	BenchmarkRepo         repository.BenchmarkRepo
	FeedHub               *ws.FeedHub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	profileHandler := handler.NewProfileHandler(c.SynthesizerService, c.BehaviorService)
	recHandler := handler.NewRecommendationHandler(c.RecommendationService, c.BehaviorService)
	integrationHandler := handler.NewIntegrationHandler(c.IntegrationService)
	benchmarkHandler := handler.NewBenchmarkHandler(c.BenchmarkRepo)
	wsHandler := ws.NewHandler(c.FeedHub)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/score", quizHandler.Score).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/benchmarks", benchmarkHandler.Upsert).Methods("PUT", "OPTIONS")
	hostRoutes.HandleFunc("/benchmarks/{industry}", benchmarkHandler.Get).Methods("GET", "OPTIONS")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/quiz/result", quizHandler.Result).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile/unified", profileHandler.Unified).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile/dashboard", profileHandler.Dashboard).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile/behavior", profileHandler.Behavior).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/recommendations/refresh", recHandler.Refresh).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/recommendations", recHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/recommendations/{id}/interact", recHandler.Interact).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/integrations", integrationHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/integrations", integrationHandler.Connect).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/integrations/{provider}", integrationHandler.Disconnect).Methods("DELETE", "OPTIONS")

	// WebSocket feed (token in query param)
	userRoutes.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
