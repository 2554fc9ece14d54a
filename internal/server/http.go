package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviabank/trivia-api/internal/config"
	"github.com/triviabank/trivia-api/internal/question"
)

// NewHTTPServer wires the API routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client, handlers *question.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, rdb); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, withCORS(withObservability(pattern, logger, h)))
	}

	route("GET /categories", handlers.Categories)
	route("GET /categories/{id}/questions", handlers.CategoryQuestions)
	route("GET /questions", handlers.ListQuestions)
	route("POST /questions", handlers.CreateQuestion)
	route("POST /questions/search", handlers.SearchQuestions)
	route("DELETE /questions/{id}", handlers.DeleteQuestion)
	route("POST /quizzes", handlers.Quiz)

	// the frontend preflights every non-GET call
	mux.HandleFunc("OPTIONS /", withCORS(func(w http.ResponseWriter, r *http.Request) {}))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return rdb.Ping(ctx).Err()
}
