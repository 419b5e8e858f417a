// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/survey-portal/auth"
	"github.com/danielhkuo/survey-portal/cliparse"
	"github.com/danielhkuo/survey-portal/gate"
	"github.com/danielhkuo/survey-portal/middleware"
	"github.com/danielhkuo/survey-portal/models"
)

// GateCookie identifies the browser session a gate belongs to
const GateCookie = "gate_session"

// SurveyorTokenTTL is how long an unlocked session stays unlocked
const SurveyorTokenTTL = 12 * time.Hour

type SurveyorHandler struct {
	sessions *gate.Sessions
	cfg      cliparse.Config
}

func NewSurveyorHandler(sessions *gate.Sessions, cfg cliparse.Config) *SurveyorHandler {
	return &SurveyorHandler{sessions: sessions, cfg: cfg}
}

// GateStatus handles GET /surveyor/gate
func (h *SurveyorHandler) GateStatus(w http.ResponseWriter, r *http.Request) {
	_, g := h.session(w, r)
	middleware.JSONResponse(w, http.StatusOK, h.status(r, g))
}

// Unlock handles POST /surveyor/unlock
func (h *SurveyorHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, g := h.session(w, r)
	if !g.Enter(req.Password) {
		slog.Info("surveyor unlock failed", "attempts", g.Attempts())
		middleware.ErrorResponse(w, http.StatusUnauthorized, g.Message())
		return
	}

	tok, err := auth.IssueSurveyorToken(h.cfg.SessionSecret, id, SurveyorTokenTTL)
	if err != nil {
		slog.Error("failed to issue surveyor token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to unlock")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SurveyorCookie,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(SurveyorTokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("surveyor unlocked")
	middleware.JSONResponse(w, http.StatusOK, models.GateStatusResponse{
		Unlocked:  true,
		Attempts:  g.Attempts(),
		Remaining: g.Remaining(),
	})
}

// Lock handles POST /surveyor/lock
func (h *SurveyorHandler) Lock(w http.ResponseWriter, r *http.Request) {
	_, g := h.session(w, r)
	g.Lock()

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SurveyorCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.GateStatusResponse{
		Remaining: g.Remaining(),
	})
}

// session finds or starts the caller's gate session and refreshes its cookie
func (h *SurveyorHandler) session(w http.ResponseWriter, r *http.Request) (string, *gate.Gate) {
	var cookieID string
	if c, err := r.Cookie(GateCookie); err == nil {
		cookieID = c.Value
	}

	id, g := h.sessions.Get(cookieID)
	if id != cookieID {
		http.SetCookie(w, &http.Cookie{
			Name:     GateCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id, g
}

func (h *SurveyorHandler) status(r *http.Request, g *gate.Gate) models.GateStatusResponse {
	unlocked := g.Unlocked()
	if !unlocked {
		// the token outlives a pruned gate session
		if c, err := r.Cookie(middleware.SurveyorCookie); err == nil {
			_, err := auth.ValidateSurveyorToken(h.cfg.SessionSecret, c.Value)
			unlocked = err == nil
		}
	}

	return models.GateStatusResponse{
		Unlocked:  unlocked,
		Attempts:  g.Attempts(),
		Remaining: g.Remaining(),
		Message:   g.Message(),
	}
}
