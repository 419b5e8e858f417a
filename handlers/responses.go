// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/survey-portal/auth"
	"github.com/danielhkuo/survey-portal/cliparse"
	"github.com/danielhkuo/survey-portal/middleware"
	"github.com/danielhkuo/survey-portal/models"
	"github.com/danielhkuo/survey-portal/submission"
)

type ResponseHandler struct {
	repo submission.Inserter
	cfg  cliparse.Config
}

func NewResponseHandler(repo submission.Inserter, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{repo: repo, cfg: cfg}
}

// Submit handles POST /responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	form := submission.NewForm(h.repo)
	form.SetName(string(req.Name))
	form.SetAge(string(req.Age))

	err := form.Submit(r.Context())

	var verr *submission.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.FieldErrorResponse(w, verr.Fields.Map())
		return
	case err != nil:
		slog.Error("failed to insert response", "error", err)
		// the data service's message is shown to the respondent as-is
		middleware.ErrorResponse(w, http.StatusInternalServerError, submission.UserMessage(err))
		return
	}

	slog.Info("response submitted",
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionSecret),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		Message: submission.SuccessMessage,
	})
}
