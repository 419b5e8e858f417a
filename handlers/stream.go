// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/survey-portal/listview"
	"github.com/danielhkuo/survey-portal/models"
)

// StreamPingInterval keeps idle event streams open through proxies
const StreamPingInterval = 25 * time.Second

// Stream handles GET /surveyor/stream?sort=&dir=
//
// The stream owns a listview.View for as long as the connection stays open.
// It first sends a "view" event carrying the view id, which the client uses
// for the sort, refresh and export endpoints, then a "state" event for
// every transition. Slow clients only ever see the latest state.
func (h *ListHandler) Stream(w http.ResponseWriter, r *http.Request) {
	field, dir, ok := parseSort(w, r)
	if !ok {
		return
	}

	rc := http.NewResponseController(w)

	updates := make(chan listview.State, 1)
	v := listview.New(h.src,
		listview.WithLocation(h.location()),
		listview.WithSort(field, dir),
		listview.WithOnChange(func(st listview.State) {
			// callbacks are serialised, so after the drain the send succeeds
			select {
			case <-updates:
			default:
			}
			updates <- st
		}),
	)

	id := h.views.Add(v)
	defer h.views.Remove(id)
	defer v.Unmount()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, rc, "view", models.ViewCreatedEvent{ViewID: id}); err != nil {
		slog.Warn("event stream closed", "view_id", id, "error", err)
		return
	}

	slog.Info("surveyor stream opened", "view_id", id, "sid", surveyorSession(r))
	v.Mount(r.Context())

	ping := time.NewTicker(h.pingInterval())
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("surveyor stream closed", "view_id", id)
			return
		case st := <-updates:
			if err := writeEvent(w, rc, "state", h.listState(id, st)); err != nil {
				slog.Warn("event stream closed", "view_id", id, "error", err)
				return
			}
		case <-ping.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func (h *ListHandler) pingInterval() time.Duration {
	if h.ping > 0 {
		return h.ping
	}
	return StreamPingInterval
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return rc.Flush()
}
