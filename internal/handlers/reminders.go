package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/dates"
	"github.com/wchklaus97/remind-me/internal/models"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/query"
	"github.com/wchklaus97/remind-me/internal/validation"
)

// ReminderHandler serves the reminder collection over HTTP. Every mutation is
// a read-modify-write cycle against the persistence engine, serialized by a
// mutex so concurrent requests cannot race a lost update onto the storage key.
type ReminderHandler struct {
	engine *persistence.Engine
	logger *zap.Logger

	mu sync.Mutex
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(engine *persistence.Engine, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{engine: engine, logger: logger}
}

// RegisterRoutes registers reminder routes on the given router.
// The router should already carry the /reminders prefix.
func (h *ReminderHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListReminders).Methods("GET")
	r.HandleFunc("", h.CreateReminder).Methods("POST")
	r.HandleFunc("/{id}", h.UpdateReminder).Methods("PATCH")
	r.HandleFunc("/{id}", h.DeleteReminder).Methods("DELETE")
	r.HandleFunc("/{id}/toggle", h.ToggleReminder).Methods("POST")
}

// CreateReminderRequest represents a create reminder request
type CreateReminderRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=500"`
	Description string   `json:"description" validate:"max=10000"`
	DueDate     string   `json:"due_date" validate:"max=64"`
	TagIDs      []string `json:"tag_ids"`
}

// UpdateReminderRequest represents a partial reminder update
type UpdateReminderRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	TagIDs      *[]string `json:"tag_ids,omitempty"`
}

// ListReminders returns the filtered, searched, and sorted reminder view.
// Unrecognized filter/sort tokens fall back to their defaults rather than
// erroring, matching the tolerant behavior of the rest of the core.
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, _ := h.engine.LoadReminders(r.Context())

	params := r.URL.Query()
	filter := models.ParseFilter(params.Get("filter"))
	sortBy := models.ParseSort(params.Get("sort"))
	searchQuery := params.Get("q")

	view := query.SelectAndSort(reminders, filter, searchQuery, sortBy)
	respondJSON(w, http.StatusOK, map[string]any{
		"reminders": view,
		"stats":     query.ComputeStatistics(reminders),
	})
}

// CreateReminder appends a new reminder and persists the collection
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req CreateReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	req.Title = validation.SanitizeText(req.Title)
	req.Description = validation.SanitizeText(req.Description)
	if err := validation.Validate.Struct(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	reminder := models.Reminder{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dates.ToRFC3339(req.DueDate),
		Completed:   false,
		CreatedAt:   time.Now().Format(time.RFC3339),
		TagIDs:      req.TagIDs,
	}
	if reminder.TagIDs == nil {
		reminder.TagIDs = []string{}
	}

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	reminders, _ := h.engine.LoadReminders(ctx)
	reminders = append(reminders, reminder)
	if err := h.engine.SaveReminders(ctx, reminders); err != nil {
		// The reminder exists in the response either way; the write is
		// retried by the next mutation.
		h.logger.Warn("reminder_save_lost", zap.String("id", reminder.ID), zap.Error(err))
	}

	respondJSON(w, http.StatusCreated, reminder)
}

// UpdateReminder applies a partial update to one reminder
func (h *ReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	reminders, _ := h.engine.LoadReminders(ctx)
	idx := indexByID(reminders, id)
	if idx < 0 {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Reminder not found")
		return
	}

	reminder := &reminders[idx]
	if req.Title != nil {
		title := validation.SanitizeText(*req.Title)
		if title == "" {
			respondJSONError(w, http.StatusBadRequest, "Validation Failed", "Title cannot be empty")
			return
		}
		reminder.Title = title
	}
	if req.Description != nil {
		reminder.Description = validation.SanitizeText(*req.Description)
	}
	if req.DueDate != nil {
		reminder.DueDate = dates.ToRFC3339(*req.DueDate)
	}
	if req.TagIDs != nil {
		reminder.TagIDs = *req.TagIDs
		if reminder.TagIDs == nil {
			reminder.TagIDs = []string{}
		}
	}

	if err := h.engine.SaveReminders(ctx, reminders); err != nil {
		h.logger.Warn("reminder_save_lost", zap.String("id", id), zap.Error(err))
	}

	respondJSON(w, http.StatusOK, *reminder)
}

// DeleteReminder removes one reminder by id
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	reminders, _ := h.engine.LoadReminders(ctx)
	idx := indexByID(reminders, id)
	if idx < 0 {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Reminder not found")
		return
	}

	reminders = append(reminders[:idx], reminders[idx+1:]...)
	if err := h.engine.SaveReminders(ctx, reminders); err != nil {
		h.logger.Warn("reminder_save_lost", zap.String("id", id), zap.Error(err))
	}

	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

// ToggleReminder flips a reminder's completed flag
func (h *ReminderHandler) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	reminders, _ := h.engine.LoadReminders(ctx)
	idx := indexByID(reminders, id)
	if idx < 0 {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Reminder not found")
		return
	}

	reminders[idx].Completed = !reminders[idx].Completed
	if err := h.engine.SaveReminders(ctx, reminders); err != nil {
		h.logger.Warn("reminder_save_lost", zap.String("id", id), zap.Error(err))
	}

	respondJSON(w, http.StatusOK, reminders[idx])
}

func indexByID(reminders []models.Reminder, id string) int {
	for i, r := range reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}
