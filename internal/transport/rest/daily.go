package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nmoskvina/lexiday/internal/domain"
)

// dailyService defines the minimal interface needed by DailyHandler.
type dailyService interface {
	GetState(ctx context.Context) (*domain.DailyState, error)
	Reveal(ctx context.Context) (*domain.DailyState, error)
	Missed(ctx context.Context) (*domain.DailyState, error)
	GotIt(ctx context.Context) (*domain.DailyState, error)
}

// DailyHandler serves the daily spotlight REST endpoints.
type DailyHandler struct {
	svc dailyService
	log *slog.Logger
}

// NewDailyHandler creates a DailyHandler.
func NewDailyHandler(svc dailyService, logger *slog.Logger) *DailyHandler {
	return &DailyHandler{svc: svc, log: logger.With("handler", "daily")}
}

// GetState handles GET /api/v1/daily.
func (h *DailyHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.GetState)
}

// Reveal handles POST /api/v1/daily/reveal.
func (h *DailyHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Reveal)
}

// Missed handles POST /api/v1/daily/missed.
func (h *DailyHandler) Missed(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Missed)
}

// GotIt handles POST /api/v1/daily/gotit.
func (h *DailyHandler) GotIt(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.GotIt)
}

// respond runs one state machine operation; every operation returns the
// resulting state in the same shape.
func (h *DailyHandler) respond(w http.ResponseWriter, r *http.Request, op func(context.Context) (*domain.DailyState, error)) {
	state, err := op(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDailyStateResponse(state))
}
