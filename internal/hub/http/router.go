package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/httpx"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.TokenVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService         *service.AuthService
	BootstrapService    *service.BootstrapService
	AlumniService       *service.AlumniService
	FacultyService      *service.FacultyService
	UserService         *service.UserService
	EventService        *service.EventService
	AnnouncementService *service.AnnouncementService
	TermsService        *service.TermsService
	StatsService        *service.StatsService
}

func NewRouter(verifier httpx.TokenVerifier, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (rt *Router) ApplyRoutes() {
	rt.registerAuth()
	rt.registerBootstrap()
	rt.registerAlumni()
	rt.registerFaculty()
	rt.registerUsers()
	rt.registerEvents()
	rt.registerAnnouncements()
	rt.registerTerms()
	rt.registerStats()
	rt.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(rt.Mux, rt.middlewares...).ServeHTTP(w, req)
}

// adminOnly wraps a handler with bearer authn plus an admin role check.
func (rt *Router) adminOnly(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(rt.verifier),
		httpx.RequireRole(string(domain.RoleAdmin)),
	)
}

// authenticated wraps a handler with bearer authn, any role.
func (rt *Router) authenticated(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(rt.verifier))
}

func (rt *Router) registerAuth() {
	h := &AuthHandler{Auth: rt.AuthService}

	rt.Mux.HandleFunc("POST /v1/auth/login", h.HandleLogin)
	rt.Mux.HandleFunc("POST /v1/auth/forgot-password", h.HandleForgotPassword)
	rt.Mux.HandleFunc("POST /v1/auth/reset-password", h.HandleResetPassword)
}

func (rt *Router) registerBootstrap() {
	rt.Mux.Handle("POST /v1/bootstrap", &BootstrapHandler{Bootstrap: rt.BootstrapService})
}

func (rt *Router) registerAlumni() {
	h := &AlumniHandler{Alumni: rt.AlumniService}

	rt.Mux.HandleFunc("POST /v1/alumni", h.HandleCreate)
	rt.Mux.Handle("GET /v1/alumni", rt.authenticated(h.HandleList))
	rt.Mux.Handle("GET /v1/alumni/{id}", rt.authenticated(h.HandleGet))
	rt.Mux.Handle("PUT /v1/alumni/{id}", rt.authenticated(h.HandleUpdate))
	rt.Mux.Handle("DELETE /v1/alumni/{id}", rt.adminOnly(h.HandleDelete))
}

func (rt *Router) registerFaculty() {
	h := &FacultyHandler{Faculty: rt.FacultyService}

	rt.Mux.Handle("POST /v1/faculty", rt.adminOnly(h.HandleCreate))
	rt.Mux.Handle("GET /v1/faculty", rt.authenticated(h.HandleList))
	rt.Mux.Handle("GET /v1/faculty/{id}", rt.authenticated(h.HandleGet))
}

func (rt *Router) registerUsers() {
	h := &UserHandler{Users: rt.UserService}

	rt.Mux.HandleFunc("POST /v1/users/register", h.HandleRegister)
}

func (rt *Router) registerEvents() {
	h := &EventHandler{Events: rt.EventService}

	rt.Mux.Handle("POST /v1/events", rt.adminOnly(h.HandleCreate))
	rt.Mux.HandleFunc("GET /v1/events", h.HandleList)
	rt.Mux.HandleFunc("GET /v1/events/{id}", h.HandleGet)
	rt.Mux.Handle("PUT /v1/events/{id}", rt.adminOnly(h.HandleUpdate))
	rt.Mux.Handle("DELETE /v1/events/{id}", rt.adminOnly(h.HandleDelete))
}

func (rt *Router) registerAnnouncements() {
	h := &AnnouncementHandler{Announcements: rt.AnnouncementService}

	rt.Mux.Handle("POST /v1/announcements", rt.adminOnly(h.HandleCreate))
	rt.Mux.HandleFunc("GET /v1/announcements", h.HandleList)
	rt.Mux.Handle("DELETE /v1/announcements/{id}", rt.adminOnly(h.HandleDelete))
}

func (rt *Router) registerTerms() {
	h := &TermsHandler{Terms: rt.TermsService}

	rt.Mux.Handle("POST /v1/terms", rt.adminOnly(h.HandleSave))
	rt.Mux.HandleFunc("GET /v1/terms", h.HandleList)
	rt.Mux.HandleFunc("GET /v1/terms/{id}", h.HandleGet)
	rt.Mux.Handle("DELETE /v1/terms/{id}", rt.adminOnly(h.HandleDelete))
}

func (rt *Router) registerStats() {
	rt.Mux.Handle("GET /v1/stats", rt.adminOnly((&StatsHandler{Stats: rt.StatsService}).ServeHTTP))
}

func (rt *Router) registerSystem() {
	rt.Mux.HandleFunc("GET /livez", rt.HandleLivez)
	rt.Mux.HandleFunc("GET /readyz", rt.HandleReadyz)
}
