package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type FacultyHandler struct {
	Faculty *service.FacultyService
}

type createFacultyRequest struct {
	Name          string `json:"name"`
	LastName      string `json:"lastName"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	Qualification string `json:"qualification"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

func (h *FacultyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req createFacultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Department == "" || req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "Name, department, email and password are required")
		return
	}

	created, err := h.Faculty.CreateFaculty(r.Context(), service.CreateFacultyInput{
		Name:          req.Name,
		LastName:      req.LastName,
		Department:    req.Department,
		Designation:   req.Designation,
		Qualification: req.Qualification,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Password:      req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmailTaken):
		writeFailure(w, http.StatusConflict, "Email already exists")
		return
	default:
		l.Error("faculty create failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusCreated, "Faculty created", toFacultyView(created))
}

func (h *FacultyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	results, err := h.Faculty.ListFaculty(r.Context())
	if err != nil {
		l.Error("faculty list failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeList(w, http.StatusOK, "Faculty fetched", int64(len(results)), toFacultyViews(results))
}

func (h *FacultyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	faculty, err := h.Faculty.GetFaculty(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrFacultyNotFound):
		writeFailure(w, http.StatusNotFound, "Faculty not found")
		return
	default:
		l.Error("faculty get failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Faculty fetched", toFacultyView(faculty))
}
