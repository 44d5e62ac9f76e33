package api

import (
	"github.com/gorilla/mux"

	"github.com/garnizeh/askhub/internal/config"
	"github.com/garnizeh/askhub/internal/db"
	"github.com/garnizeh/askhub/internal/qa"
	"github.com/garnizeh/askhub/internal/repository/sqlite"
)

// SetupRoutes wires repositories, services and handlers into the router. The
// generator is injected so the server can run with a real model client or a
// stub in tests.
func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB, generator qa.Generator) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, nil)

	// Services
	questionSvc := qa.NewQuestionService(repo, repo, repo)
	answerSvc := qa.NewAnswerService(repo, repo)
	commentSvc := qa.NewCommentService(repo, repo)
	aiSvc := qa.NewAIAnswerService(repo, repo, repo, generator, cfg.Engine.Timeout)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, repo, cfg.JWTSecret, cfg.TokenDuration)
	questionsHandler := NewQuestionsHandler(questionSvc, answerSvc, commentSvc, aiSvc)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Question endpoints
	apiV1.HandleFunc("/questions", questionsHandler.CreateQuestion).Methods("POST")
	apiV1.HandleFunc("/questions", questionsHandler.ListQuestions).Methods("GET")
	apiV1.HandleFunc("/questions/{id}", questionsHandler.GetQuestion).Methods("GET")
	apiV1.HandleFunc("/questions/{id}/answers", questionsHandler.CreateAnswer).Methods("POST")
	apiV1.HandleFunc("/questions/{id}/generate-answer", questionsHandler.GenerateAIAnswer).Methods("POST")
	apiV1.HandleFunc("/answers/{id}/comments", questionsHandler.CreateComment).Methods("POST")

	return r
}
