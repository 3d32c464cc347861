package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
)

type Config struct {
	Addr string `split_words:"true" default:":8080"`
}

// Dispatcher is the request-processing contract the webhook forwards to.
type Dispatcher interface {
	Dispatch(ctx context.Context, env *alexa.RequestEnvelope) alexa.ResponseEnvelope
}

// NewRouter exposes the skill webhook. The platform retries on non-2xx, so
// only undecodable payloads are rejected; everything else is answered by
// the dispatcher's terminal fallback.
func NewRouter(dispatcher Dispatcher) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Post("/alexa", webhook(dispatcher))

	return r
}

func webhook(dispatcher Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var env alexa.RequestEnvelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			log.Debug().Err(err).Msg("cannot decode request envelope")
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resp := dispatcher.Dispatch(r.Context(), &env)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error().Err(err).Msg("cannot encode response envelope")
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Run serves until the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info().Str("addr", cfg.Addr).Msg("skill webhook listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
