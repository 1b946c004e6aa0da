package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// simulateURL is the fixed source the /simulate endpoint queues, a dev
// helper mirroring a fresh upload notification.
const simulateURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

type statusResponse struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", healthHandler())
	r.Get("/auth/start", authStartHandler(cfg))
	r.Get("/auth/callback", authCallbackHandler(cfg))
	r.Post("/monitor/run_once", monitorRunOnceHandler(cfg))
	r.Post("/simulate", simulateHandler(cfg))

	return r
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
	}
}

func authStartHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Session == nil {
			writeError(w, http.StatusServiceUnavailable, "oauth not configured")
			return
		}
		http.Redirect(w, r, cfg.Session.AuthURL(), http.StatusTemporaryRedirect)
	}
}

func authCallbackHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Session == nil {
			writeError(w, http.StatusServiceUnavailable, "oauth not configured")
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			writeError(w, http.StatusBadRequest, "missing code")
			return
		}
		if err := cfg.Session.Exchange(r.Context(), code); err != nil {
			cfg.Logger.Error(r.Context(), "OAuth exchange failed: %v", err)
			writeError(w, http.StatusBadGateway, "exchange failed")
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{Status: "authorized"})
	}
}

// monitorRunOnceHandler queues one poll pass. The pass outlives the
// request, so it runs on a detached context.
func monitorRunOnceHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Session == nil || !cfg.Session.Authorized() {
			writeError(w, http.StatusBadRequest, "not authorized")
			return
		}
		go func() {
			ctx := context.Background()
			if _, err := cfg.Monitor.RunOnce(ctx); err != nil {
				cfg.Logger.Error(ctx, "Monitor pass failed: %v", err)
			}
		}()
		writeJSON(w, http.StatusOK, statusResponse{Status: "monitor_queued"})
	}
}

func simulateHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			ctx := context.Background()
			if err := cfg.Process(ctx, simulateURL); err != nil {
				cfg.Logger.Error(ctx, "Simulated run failed: %v", err)
			}
		}()
		writeJSON(w, http.StatusOK, statusResponse{Status: "queued", URL: simulateURL})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
