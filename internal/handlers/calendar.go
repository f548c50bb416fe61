package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/query"
)

// StatsHandler serves derived views that never mutate anything: aggregate
// statistics and the calendar grouping.
type StatsHandler struct {
	engine *persistence.Engine
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(engine *persistence.Engine) *StatsHandler {
	return &StatsHandler{engine: engine}
}

// RegisterRoutes registers the derived-view routes on the given router
func (h *StatsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/stats", h.GetStats).Methods("GET")
	r.HandleFunc("/calendar", h.GetCalendar).Methods("GET")
}

// GetStats returns total/active/completed/overdue counts
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	reminders, _ := h.engine.LoadReminders(r.Context())
	respondJSON(w, http.StatusOK, query.ComputeStatistics(reminders))
}

// GetCalendar returns reminders bucketed by local calendar day, plus the
// unscheduled ones that have no usable due date.
func (h *StatsHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	reminders, _ := h.engine.LoadReminders(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"days":        query.GroupByCalendarDay(reminders),
		"unscheduled": query.Unscheduled(reminders),
	})
}
