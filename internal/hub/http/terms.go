package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type TermsHandler struct {
	Terms *service.TermsService
}

type termsRequest struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// HandleSave upserts a section by heading. POSTing the same heading twice
// replaces the text instead of creating a duplicate.
func (h *TermsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req termsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	if req.Heading == "" || req.Text == "" {
		writeFailure(w, http.StatusBadRequest, "Heading and text are required")
		return
	}

	saved, err := h.Terms.SaveTerms(r.Context(), service.TermsInput{Heading: req.Heading, Text: req.Text})
	if err != nil {
		l.Error("terms save failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Terms saved", toTermsView(saved))
}

func (h *TermsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	terms, err := h.Terms.ListTerms(r.Context())
	if err != nil {
		l.Error("terms list failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeList(w, http.StatusOK, "Terms fetched", int64(len(terms)), toTermsViews(terms))
}

func (h *TermsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	terms, err := h.Terms.GetTerms(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTermsNotFound):
		writeFailure(w, http.StatusNotFound, "Terms section not found")
		return
	default:
		l.Error("terms get failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Terms fetched", toTermsView(terms))
}

func (h *TermsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	err := h.Terms.DeleteTerms(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTermsNotFound):
		writeFailure(w, http.StatusNotFound, "Terms section not found")
		return
	default:
		l.Error("terms delete failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Terms deleted", nil)
}
