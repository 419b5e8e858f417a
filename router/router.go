// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/survey-portal/cliparse"
	"github.com/danielhkuo/survey-portal/gate"
	"github.com/danielhkuo/survey-portal/handlers"
	"github.com/danielhkuo/survey-portal/listview"
	"github.com/danielhkuo/survey-portal/middleware"
	"github.com/danielhkuo/survey-portal/repository"
)

func NewRouter(repo repository.Repository, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	responseHandler := handlers.NewResponseHandler(repo, cfg)
	surveyorHandler := handlers.NewSurveyorHandler(gate.NewSessions(cfg.SurveyorPassword, gate.DefaultIdleTimeout), cfg)
	listHandler := handlers.NewListHandler(repo, listview.NewRegistry(), cfg)

	protect := middleware.RequireSurveyor(cfg.SessionSecret)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Respondent (public)
	mux.HandleFunc("POST /responses", middleware.WithLogging(responseHandler.Submit))

	// Password gate (public)
	mux.HandleFunc("GET /surveyor/gate", middleware.WithLogging(surveyorHandler.GateStatus))
	mux.HandleFunc("POST /surveyor/unlock", middleware.WithLogging(surveyorHandler.Unlock))
	mux.HandleFunc("POST /surveyor/lock", middleware.WithLogging(surveyorHandler.Lock))

	// Response list (surveyor only)
	mux.HandleFunc("GET /surveyor/responses", middleware.WithLogging(protect(listHandler.GetResponses)))
	mux.HandleFunc("GET /surveyor/export", middleware.WithLogging(protect(listHandler.ExportSnapshot)))
	mux.HandleFunc("GET /surveyor/stream", middleware.WithLogging(protect(listHandler.Stream)))
	mux.HandleFunc("POST /surveyor/views/{id}/sort", middleware.WithLogging(protect(listHandler.Sort)))
	mux.HandleFunc("POST /surveyor/views/{id}/refresh", middleware.WithLogging(protect(listHandler.Refresh)))
	mux.HandleFunc("GET /surveyor/views/{id}/export", middleware.WithLogging(protect(listHandler.Export)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-portal API v1"))
	})

	return mux
}
