package http

import (
	"net/http"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type StatsHandler struct {
	Stats *service.StatsService
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		l.Error("stats failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Stats fetched", toStatsView(stats))
}
