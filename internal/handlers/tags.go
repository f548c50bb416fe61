package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/models"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/validation"
)

// TagHandler serves the tag collection. Tags have an independent lifecycle:
// deleting one never touches the reminders that reference it.
type TagHandler struct {
	engine *persistence.Engine
	logger *zap.Logger

	mu sync.Mutex
}

// NewTagHandler creates a new tag handler
func NewTagHandler(engine *persistence.Engine, logger *zap.Logger) *TagHandler {
	return &TagHandler{engine: engine, logger: logger}
}

// RegisterRoutes registers tag routes on the given router.
// The router should already carry the /tags prefix.
func (h *TagHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListTags).Methods("GET")
	r.HandleFunc("", h.CreateTag).Methods("POST")
	r.HandleFunc("/{id}", h.UpdateTag).Methods("PATCH")
	r.HandleFunc("/{id}", h.DeleteTag).Methods("DELETE")
}

// CreateTagRequest represents a create tag request
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"required,tag_color"`
}

// UpdateTagRequest represents a partial tag update
type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty" validate:"omitempty,tag_color"`
}

// ListTags returns every tag
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.LoadTags(r.Context()))
}

// CreateTag appends a new tag and persists the collection
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	req.Name = validation.SanitizeText(req.Name)
	if err := validation.Validate.Struct(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	tag := models.Tag{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Color: req.Color,
	}

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	tags := append(h.engine.LoadTags(ctx), tag)
	if err := h.engine.SaveTags(ctx, tags); err != nil {
		h.logger.Warn("tag_save_lost", zap.String("id", tag.ID), zap.Error(err))
	}

	respondJSON(w, http.StatusCreated, tag)
}

// UpdateTag applies a partial update to one tag
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}
	if err := validation.Validate.Struct(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	tags := h.engine.LoadTags(ctx)
	idx := -1
	for i, t := range tags {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Tag not found")
		return
	}

	if req.Name != nil {
		name := validation.SanitizeText(*req.Name)
		if name == "" {
			respondJSONError(w, http.StatusBadRequest, "Validation Failed", "Name cannot be empty")
			return
		}
		tags[idx].Name = name
	}
	if req.Color != nil {
		tags[idx].Color = *req.Color
	}

	if err := h.engine.SaveTags(ctx, tags); err != nil {
		h.logger.Warn("tag_save_lost", zap.String("id", id), zap.Error(err))
	}

	respondJSON(w, http.StatusOK, tags[idx])
}

// DeleteTag removes one tag by id. Reminders referencing the tag keep their
// now-dangling reference and render it as "no tag".
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()

	tags := h.engine.LoadTags(ctx)
	idx := -1
	for i, t := range tags {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Tag not found")
		return
	}

	tags = append(tags[:idx], tags[idx+1:]...)
	if err := h.engine.SaveTags(ctx, tags); err != nil {
		h.logger.Warn("tag_save_lost", zap.String("id", id), zap.Error(err))
	}

	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}
