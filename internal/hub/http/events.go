package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type EventHandler struct {
	Events *service.EventService
}

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"imageUrl"`
}

func (req eventRequest) validate() string {
	if req.Title == "" {
		return "Title is required"
	}
	if req.Date.IsZero() {
		return "Date is required"
	}
	return ""
}

func (req eventRequest) toInput() service.EventInput {
	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
	}
}

func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeFailure(w, http.StatusBadRequest, msg)
		return
	}

	event, err := h.Events.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		l.Error("event create failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusCreated, "Event created", toEventView(event))
}

func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	events, err := h.Events.ListEvents(r.Context())
	if err != nil {
		l.Error("event list failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeList(w, http.StatusOK, "Events fetched", int64(len(events)), toEventViews(events))
}

func (h *EventHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	event, err := h.Events.GetEvent(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEventNotFound):
		writeFailure(w, http.StatusNotFound, "Event not found")
		return
	default:
		l.Error("event get failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Event fetched", toEventView(event))
}

func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeFailure(w, http.StatusBadRequest, msg)
		return
	}

	event, err := h.Events.UpdateEvent(r.Context(), r.PathValue("id"), req.toInput())
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEventNotFound):
		writeFailure(w, http.StatusNotFound, "Event not found")
		return
	default:
		l.Error("event update failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Event updated", toEventView(event))
}

func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	err := h.Events.DeleteEvent(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEventNotFound):
		writeFailure(w, http.StatusNotFound, "Event not found")
		return
	default:
		l.Error("event delete failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Event deleted", nil)
}
