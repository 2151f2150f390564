package completions

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Store interface {
	Insert(ctx context.Context, c *Completion) error
	ListByUser(ctx context.Context, userEmail string) ([]Completion, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
	}
}

type completionRequest struct {
	AssignmentTitle string  `json:"assignmentTitle"`
	UserEmail       string  `json:"userEmail"`
	Marks           float64 `json:"marks"`
	Feedback        string  `json:"feedback"`
	Status          string  `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Create archives a graded submission. The grader supplies all fields and
// nothing is validated, matching the grading UI's behavior.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req completionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode completion request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "invalid request"})
		return
	}

	completion := &Completion{
		AssignmentTitle: req.AssignmentTitle,
		UserEmail:       req.UserEmail,
		Marks:           req.Marks,
		Feedback:        req.Feedback,
		Status:          req.Status,
	}
	if err := h.store.Insert(r.Context(), completion); err != nil {
		slog.Error("failed to insert completion", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, messageResponse{Message: "Assignment completed successfully"})
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userEmail := chi.URLParam(r, "userEmail")

	list, err := h.store.ListByUser(r.Context(), userEmail)
	if err != nil {
		slog.Error("failed to list completions", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, list)
}
