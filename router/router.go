// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/auth"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/cliparse"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/handlers"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/jira"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/middleware"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/slackmsg"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, publisher slackmsg.Publisher, titles jira.TitleLookup) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	estimateHandler := handlers.NewEstimateHandler(store.New(db), verifierFor(cfg), publisher, titles, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Slash commands and block interactions share one endpoint
	mux.HandleFunc("POST /slack/estimate", middleware.WithLogging(estimateHandler.HandleEstimate))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("retro-vote-sorter estimation API v1"))
	})

	return mux
}

// verifierFor picks the request verification strategy the deployment
// configured. cliparse guarantees AuthMode is always one of the three.
func verifierFor(cfg cliparse.Config) auth.Verifier {
	switch cfg.AuthMode {
	case cliparse.AuthModePermissive:
		return auth.StaticVerifier{Allow: true}
	case cliparse.AuthModeStrict:
		return auth.StaticVerifier{Allow: false}
	default:
		return auth.HMACVerifier{Secret: cfg.SigningSecret}
	}
}
