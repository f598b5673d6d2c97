// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/chadhq/chad-backend/internal/config"
	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/handlers"
	"github.com/chadhq/chad-backend/internal/middleware"
	"github.com/chadhq/chad-backend/internal/ratelimit"
	"github.com/chadhq/chad-backend/internal/repository/audio"
	"github.com/chadhq/chad-backend/internal/repository/profile"
	"github.com/chadhq/chad-backend/internal/repository/user"
	"github.com/chadhq/chad-backend/internal/services"
	"github.com/chadhq/chad-backend/internal/services/chatbot"
	"github.com/chadhq/chad-backend/internal/services/recorder"
	"github.com/chadhq/chad-backend/internal/services/reply"
	"github.com/chadhq/chad-backend/internal/services/resources"
	"github.com/chadhq/chad-backend/internal/services/user_services"
	"github.com/chadhq/chad-backend/internal/store/journal"
	"github.com/chadhq/chad-backend/internal/store/session"
	"github.com/chadhq/chad-backend/internal/uistate"
)

func main() {
	cfg := config.Load()
	logger := services.NewLogger("chad-backend")

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.AudioBlob{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := user.NewGormUserRepository(db)
	profileRepo := profile.NewGormProfileRepository(db)
	audioRepo := audio.NewGormAudioRepository(db)

	// --- Stores ---
	sessionStore := session.NewStore()
	journalPersister := journal.NewFilePersister(cfg.JournalSnapshotPath, logger)
	journalStore, err := journal.NewStore(journalPersister, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to load journal snapshot: %v", err)
	}
	stateStore := uistate.NewStore()

	// --- Services ---
	replyProvider, err := buildReplyProvider(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize reply provider: %v", err)
	}

	authService := user_services.NewAuthService(userRepo, profileRepo, cfg.JWTSecretKey, logger)
	chatService := chatbot.NewService(sessionStore, replyProvider, logger)
	recorderService := recorder.NewService(recorder.NoDevice{}, audioRepo, logger)
	resourceService := resources.NewService(resources.Seed())

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	journalHandler := handlers.NewJournalHandler(journalStore, recorderService, logger)
	resourcesHandler := handlers.NewResourcesHandler(resourceService)
	settingsHandler := handlers.NewSettingsHandler(stateStore)

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware(authService)
	authLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())

	r.Use(middleware.CORS)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	// The session probe is polled by clients waiting to leave the auth
	// surface, so it must not consume the credential rate budget. Registered
	// before the limited subrouter so it matches first.
	r.HandleFunc("/api/auth/session", authHandler.Session).Methods("GET")

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.Use(middleware.RateLimitMiddleware(authLimiter, "auth"))
	auth.HandleFunc("/signup", authHandler.SignUp).Methods("POST")
	auth.HandleFunc("/signin", authHandler.SignIn).Methods("POST")
	auth.HandleFunc("/signout", authHandler.SignOut).Methods("POST")

	// --- Protected Routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware)

	api.HandleFunc("/chat/messages", chatHandler.Send).Methods("POST")
	api.HandleFunc("/chat/sessions", chatHandler.GetSessions).Methods("GET")
	api.HandleFunc("/chat/sessions/{id}/messages", chatHandler.GetSessionMessages).Methods("GET")
	api.HandleFunc("/chat/sessions/{id}/activate", chatHandler.Activate).Methods("POST")
	api.HandleFunc("/chat/new", chatHandler.NewChat).Methods("POST")

	api.HandleFunc("/journal/entries", journalHandler.GetEntries).Methods("GET")
	api.HandleFunc("/journal/entries", journalHandler.CreateEntry).Methods("POST")
	api.HandleFunc("/journal/entries/{id}", journalHandler.UpdateEntry).Methods("PUT")
	api.HandleFunc("/journal/entries/{id}", journalHandler.DeleteEntry).Methods("DELETE")
	api.HandleFunc("/journal/playback", journalHandler.TogglePlayback).Methods("POST")
	api.HandleFunc("/journal/recordings", journalHandler.UploadRecording).Methods("POST")
	api.HandleFunc("/journal/recordings/stream", journalHandler.RecordStream).Methods("GET")
	api.HandleFunc("/journal/audio/{id}", journalHandler.GetAudio).Methods("GET")

	api.HandleFunc("/resources", resourcesHandler.List).Methods("GET")
	api.HandleFunc("/resources/{id}", resourcesHandler.Get).Methods("GET")

	api.HandleFunc("/settings/state", settingsHandler.GetState).Methods("GET")
	api.HandleFunc("/settings/state", settingsHandler.UpdateState).Methods("PUT")

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	logger.Info("server starting",
		"port", cfg.ServerPort,
		"reply_provider", cfg.ReplyProvider,
		"database", cfg.DatabasePath)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	// Let scheduled bot replies land before the process exits.
	chatService.Wait()
	authLimiter.Close()
	logger.Info("server stopped")
}

func buildReplyProvider(cfg *config.Config) (reply.Provider, error) {
	switch cfg.ReplyProvider {
	case "openai":
		rc := reply.DefaultConfig()
		rc.APIKey = cfg.OpenAIAPIKey
		rc.BaseURL = cfg.OpenAIBaseURL
		rc.Model = cfg.ReplyModel
		return reply.NewOpenAIProvider(rc)
	default:
		return reply.NewStubProvider(time.Duration(cfg.ReplyDelayMs) * time.Millisecond), nil
	}
}
