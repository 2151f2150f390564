package assignments

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"groupstudy_backend/internal/storage"
)

// Store is the persistence surface the handlers need; *Repository implements it.
type Store interface {
	Insert(ctx context.Context, a *Assignment) error
	List(ctx context.Context, difficulty string) ([]Assignment, error)
	Get(ctx context.Context, id string) (*Assignment, error)
	Replace(ctx context.Context, id string, a *Assignment) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
	}
}

var validate = validator.New()

type assignmentRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Marks        float64 `json:"marks" validate:"required"`
	Difficulty   string  `json:"difficulty" validate:"required"`
	DueDate      string  `json:"dueDate" validate:"required"`
	ThumbnailUrl string  `json:"thumbnailUrl" validate:"required"`
	CreatedBy    string  `json:"createdBy" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type updateResultResponse struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

func (req *assignmentRequest) toModel() *Assignment {
	return &Assignment{
		Title:        req.Title,
		Description:  req.Description,
		Marks:        req.Marks,
		Difficulty:   req.Difficulty,
		DueDate:      req.DueDate,
		ThumbnailUrl: req.ThumbnailUrl,
		CreatedBy:    req.CreatedBy,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode create assignment request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "invalid request"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "All fields are required"})
		return
	}

	if err := h.store.Insert(r.Context(), req.toModel()); err != nil {
		slog.Error("failed to create assignment", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, messageResponse{Message: "Assignment created successfully"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")

	list, err := h.store.List(r.Context(), difficulty)
	if err != nil {
		slog.Error("failed to list assignments", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	assignment, err := h.store.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Assignment not found"})
		return
	}
	if err != nil {
		slog.Error("failed to get assignment", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, assignment)
}

// GetForUpdate backs the edit form. A missing document responds 200 with a
// null body rather than 404, which the frontend relies on.
func (h *Handler) GetForUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	assignment, err := h.store.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		render.JSON(w, r, nil)
		return
	}
	if err != nil {
		slog.Error("failed to get assignment for update", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, assignment)
}

// Update replaces every field of the document from the body, upserting when
// the id does not exist, and echoes the raw operation counts.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req assignmentRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode update assignment request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "invalid request"})
		return
	}

	res, err := h.store.Replace(r.Context(), id, req.toModel())
	if err != nil {
		slog.Error("failed to update assignment", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, updateResultResponse{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete assignment", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	if deleted != 1 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Assignment not found or failed to delete"})
		return
	}
	render.JSON(w, r, messageResponse{Message: "Assignment deleted successfully"})
}

// DeleteLegacy is the older delete route. Unlike Delete it answers with a
// plain-text body and 204 on success.
func (h *Handler) DeleteLegacy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assignmentId")

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil || deleted != 1 {
		slog.Error("failed to delete assignment", "err", err, "id", id)
		http.Error(w, "failed to delete assignment", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	_, _ = w.Write([]byte("Assignment deleted"))
}
