package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type AlumniHandler struct {
	Alumni *service.AlumniService
}

type createAlumniRequest struct {
	Name            string   `json:"name"`
	LastName        string   `json:"lastName"`
	Department      string   `json:"department"`
	RollNumber      string   `json:"rollNumber"`
	GraduationYear  int      `json:"graduationYear"`
	Degree          string   `json:"degree"`
	CurrentJobTitle string   `json:"currentJobTitle"`
	CompanyName     string   `json:"companyName"`
	ContactNumber   string   `json:"contactNumber"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ProfilePicture  string   `json:"profilePicture"`
	PortfolioURL    string   `json:"portfolioUrl"`
	LinkedInURL     string   `json:"linkedinUrl"`
	Skills          []string `json:"skills"`
	About           string   `json:"about"`
}

func (h *AlumniHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req createAlumniRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Department == "" || req.RollNumber == "" || req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "Name, department, roll number, email and password are required")
		return
	}

	created, err := h.Alumni.CreateAlumni(r.Context(), service.CreateAlumniInput{
		Name:            req.Name,
		LastName:        req.LastName,
		Department:      req.Department,
		RollNumber:      req.RollNumber,
		GraduationYear:  req.GraduationYear,
		Degree:          req.Degree,
		CurrentJobTitle: req.CurrentJobTitle,
		CompanyName:     req.CompanyName,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Password:        req.Password,
		ProfilePicture:  req.ProfilePicture,
		PortfolioURL:    req.PortfolioURL,
		LinkedInURL:     req.LinkedInURL,
		Skills:          req.Skills,
		About:           req.About,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrRollNumberTaken):
		writeFailure(w, http.StatusConflict, "Roll number already exists in this department")
		return
	case errors.Is(err, service.ErrEmailTaken):
		writeFailure(w, http.StatusConflict, "Email already exists")
		return
	default:
		l.Error("alumni create failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusCreated, "Alumni registered", toAlumniView(created))
}

func (h *AlumniHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	search := strings.TrimSpace(q.Get("search"))

	results, total, err := h.Alumni.ListAlumni(r.Context(), page, limit, search)
	if err != nil {
		l.Error("alumni list failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeList(w, http.StatusOK, "Alumni fetched", total, toAlumniViews(results))
}

func (h *AlumniHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	alumni, err := h.Alumni.GetAlumni(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAlumniNotFound):
		writeFailure(w, http.StatusNotFound, "Alumni not found")
		return
	default:
		l.Error("alumni get failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Alumni fetched", toAlumniView(alumni))
}

type updateAlumniRequest struct {
	Name            *string  `json:"name"`
	LastName        *string  `json:"lastName"`
	Department      *string  `json:"department"`
	RollNumber      *string  `json:"rollNumber"`
	GraduationYear  *int     `json:"graduationYear"`
	Degree          *string  `json:"degree"`
	CurrentJobTitle *string  `json:"currentJobTitle"`
	CompanyName     *string  `json:"companyName"`
	ContactNumber   *string  `json:"contactNumber"`
	ProfilePicture  *string  `json:"profilePicture"`
	PortfolioURL    *string  `json:"portfolioUrl"`
	LinkedInURL     *string  `json:"linkedinUrl"`
	Skills          []string `json:"skills"`
	About           *string  `json:"about"`
}

func (h *AlumniHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req updateAlumniRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	updated, err := h.Alumni.UpdateAlumni(r.Context(), r.PathValue("id"), service.UpdateAlumniInput{
		Name:            req.Name,
		LastName:        req.LastName,
		Department:      req.Department,
		RollNumber:      req.RollNumber,
		GraduationYear:  req.GraduationYear,
		Degree:          req.Degree,
		CurrentJobTitle: req.CurrentJobTitle,
		CompanyName:     req.CompanyName,
		ContactNumber:   req.ContactNumber,
		ProfilePicture:  req.ProfilePicture,
		PortfolioURL:    req.PortfolioURL,
		LinkedInURL:     req.LinkedInURL,
		Skills:          req.Skills,
		About:           req.About,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAlumniNotFound):
		writeFailure(w, http.StatusNotFound, "Alumni not found")
		return
	case errors.Is(err, service.ErrRollNumberTaken):
		writeFailure(w, http.StatusConflict, "Roll number already exists in this department")
		return
	default:
		l.Error("alumni update failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Alumni updated", toAlumniView(updated))
}

func (h *AlumniHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	err := h.Alumni.DeleteAlumni(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAlumniNotFound):
		writeFailure(w, http.StatusNotFound, "Alumni not found")
		return
	default:
		l.Error("alumni delete failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Alumni deleted", nil)
}
