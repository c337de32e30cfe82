package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type AnnouncementHandler struct {
	Announcements *service.AnnouncementService
}

type announcementRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AnnouncedAt time.Time `json:"announcedAt"`
}

func (h *AnnouncementHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	if req.Title == "" {
		writeFailure(w, http.StatusBadRequest, "Title is required")
		return
	}

	announcement, err := h.Announcements.CreateAnnouncement(r.Context(), service.AnnouncementInput{
		Title:       req.Title,
		Description: req.Description,
		AnnouncedAt: req.AnnouncedAt,
	})
	if err != nil {
		l.Error("announcement create failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusCreated, "Announcement created", toAnnouncementView(announcement))
}

func (h *AnnouncementHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	announcements, err := h.Announcements.ListAnnouncements(r.Context())
	if err != nil {
		l.Error("announcement list failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeList(w, http.StatusOK, "Announcements fetched", int64(len(announcements)), toAnnouncementViews(announcements))
}

func (h *AnnouncementHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	err := h.Announcements.DeleteAnnouncement(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAnnouncementNotFound):
		writeFailure(w, http.StatusNotFound, "Announcement not found")
		return
	default:
		l.Error("announcement delete failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Announcement deleted", nil)
}
