// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/survey-portal/cliparse"
	"github.com/danielhkuo/survey-portal/csvexport"
	"github.com/danielhkuo/survey-portal/listview"
	"github.com/danielhkuo/survey-portal/middleware"
	"github.com/danielhkuo/survey-portal/models"
)

type ListHandler struct {
	src   listview.Source
	views *listview.Registry
	cfg   cliparse.Config
	now   func() time.Time
	ping  time.Duration
}

func NewListHandler(src listview.Source, views *listview.Registry, cfg cliparse.Config) *ListHandler {
	return &ListHandler{src: src, views: views, cfg: cfg, now: time.Now}
}

// GetResponses handles GET /surveyor/responses?sort=&dir=
func (h *ListHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	field, dir, ok := parseSort(w, r)
	if !ok {
		return
	}

	rs, err := h.src.FetchAll(r.Context())
	if err != nil {
		slog.Error("failed to fetch responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, listview.LoadFailedMessage)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.listState("", listview.State{
		Status:        listview.StatusReady,
		SortField:     field,
		SortDirection: dir,
		Responses:     listview.Sort(rs, field, dir),
	}))
}

// ExportSnapshot handles GET /surveyor/export?sort=&dir=
func (h *ListHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	field, dir, ok := parseSort(w, r)
	if !ok {
		return
	}

	rs, err := h.src.FetchAll(r.Context())
	if err != nil {
		slog.Error("failed to fetch responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, listview.LoadFailedMessage)
		return
	}

	data, err := csvexport.Render(listview.Sort(rs, field, dir), h.location())
	h.writeCSV(w, data, err)
}

// Sort handles POST /surveyor/views/{id}/sort
func (h *ListHandler) Sort(w http.ResponseWriter, r *http.Request) {
	id, v, ok := h.view(w, r)
	if !ok {
		return
	}

	var req models.SortRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	field, err := listview.ParseSortField(req.Field)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.listState(id, v.ToggleSort(field)))
}

// Refresh handles POST /surveyor/views/{id}/refresh
func (h *ListHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	id, v, ok := h.view(w, r)
	if !ok {
		return
	}
	slog.Info("live view refreshed", "view_id", id, "sid", surveyorSession(r))
	middleware.JSONResponse(w, http.StatusOK, h.listState(id, v.Refresh()))
}

// Export handles GET /surveyor/views/{id}/export
func (h *ListHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, v, ok := h.view(w, r)
	if !ok {
		return
	}

	data, err := v.Export()
	h.writeCSV(w, data, err)
}

// surveyorSession returns the session id of the unlocked gate behind r
func surveyorSession(r *http.Request) string {
	if c, ok := middleware.SurveyorFromContext(r.Context()); ok {
		return c.Session
	}
	return ""
}

func (h *ListHandler) view(w http.ResponseWriter, r *http.Request) (string, *listview.View, bool) {
	id := r.PathValue("id")
	v, ok := h.views.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "View not found")
		return "", nil, false
	}
	return id, v, true
}

func (h *ListHandler) writeCSV(w http.ResponseWriter, data []byte, err error) {
	if errors.Is(err, csvexport.ErrEmpty) {
		// nothing to export
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.Error("failed to render export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export responses")
		return
	}

	w.Header().Set("Content-Type", csvexport.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvexport.FileName(h.now())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

func (h *ListHandler) listState(viewID string, st listview.State) models.ListState {
	loc := h.location()
	now := h.now()

	rows := make([]models.ResponseRow, len(st.Responses))
	for i, r := range st.Responses {
		rows[i] = models.ResponseRow{
			Response:  r,
			Timestamp: csvexport.FormatTimestamp(r.CreatedAt, loc),
			Received:  humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		}
	}

	return models.ListState{
		ViewID:        viewID,
		Status:        string(st.Status),
		Error:         st.Error,
		SortField:     string(st.SortField),
		SortDirection: string(st.SortDirection),
		Empty:         st.Empty(),
		Responses:     rows,
	}
}

func (h *ListHandler) location() *time.Location {
	if h.cfg.Location != nil {
		return h.cfg.Location
	}
	return time.Local
}

// parseSort reads ?sort= and ?dir=, defaulting to created_at desc
func parseSort(w http.ResponseWriter, r *http.Request) (listview.SortField, listview.SortDirection, bool) {
	field, dir := listview.DefaultSortField, listview.DefaultSortDirection

	q := r.URL.Query()
	if s := q.Get("sort"); s != "" {
		f, err := listview.ParseSortField(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return "", "", false
		}
		field = f
	}
	if s := q.Get("dir"); s != "" {
		d, err := listview.ParseSortDirection(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return "", "", false
		}
		dir = d
	}
	return field, dir, true
}
