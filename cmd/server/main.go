package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"Scoops/internal/api/middleware"
	"Scoops/internal/api/routes"
	"Scoops/internal/core/comments"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/feeds"
	"Scoops/internal/core/posts"
	"Scoops/internal/core/updates"
	"Scoops/internal/core/votes"
	"Scoops/internal/db/memory"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger := newLogger()

	// In-memory canonical collections. The engine owns all state; a single
	// process serves every session.
	postRepo := memory.NewPostRepository()
	commentRepo := memory.NewCommentRepository()
	seeder := memory.NewSeeder(postRepo, commentRepo)

	notifier := updates.NewNotifier()
	postVotes := votes.NewStore(votes.PolarityTernary)
	commentVotes := votes.NewStore(votes.PolarityTernary)

	postService := posts.NewPostService(postRepo, postVotes, notifier, logger)
	commentService := comments.NewCommentService(commentRepo, postRepo, commentVotes, notifier, logger)
	feedService := feeds.NewFeedService(postRepo, postVotes, logger)

	eng := engine.New(postService, commentService, feedService, notifier, seeder, logger)

	if err := eng.Initialize(context.Background()); err != nil {
		log.Fatal("Failed to initialize engine:", err)
	}
	logger.Info("engine initialized with fixture data")

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300, // 5 minutes
	}))

	// Rate limiting: 60 writes per minute per IP
	writeLimiter := middleware.NewWriteLimiter(60, 1*time.Minute)
	r.Use(writeLimiter.Middleware)

	routes.RegisterFeedRoutes(r, eng)
	routes.RegisterPostRoutes(r, eng)
	routes.RegisterCommentRoutes(r, eng)
	routes.RegisterVoteRoutes(r, eng)
	routes.RegisterStreamRoutes(r, eng)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Scoops engine starting on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// newLogger builds the process logger from LOG_LEVEL (debug|info|warn|error)
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
