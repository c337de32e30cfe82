package http

import (
	"net/http"
	"time"

	"github.com/tariq205/duetcareerhub/pkg/httpx"
)

type livezResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HandleLivez reports process liveness only; it never touches the store.
func (rt *Router) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, livezResponse{
		Status:  "ok",
		Version: rt.buildVersion,
		Uptime:  time.Since(rt.startTime).Round(time.Second).String(),
	})
}

type readyzResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// HandleReadyz reports readiness to serve traffic, gated on a store ping.
func (rt *Router) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)

	if err := rt.store.Ping(r.Context()); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, readyzResponse{Status: "unavailable", Store: "down"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, readyzResponse{Status: "ok", Store: "up"})
}
