package submissions

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"groupstudy_backend/internal/session"
	"groupstudy_backend/internal/storage"
)

type Store interface {
	Insert(ctx context.Context, s *Submission) error
	ListPending(ctx context.Context, userEmail string) ([]Submission, error)
	Get(ctx context.Context, id string) (*Submission, error)
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

type submissionRequest struct {
	PdfLink         string  `json:"pdfLink" validate:"required"`
	QuickNote       string  `json:"quickNote" validate:"required"`
	UserEmail       string  `json:"userEmail" validate:"required"`
	AssignmentTitle string  `json:"assignmentTitle"`
	AssignmentMarks float64 `json:"assignmentMarks"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode submission request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "invalid request"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "All fields are required"})
		return
	}

	submission := &Submission{
		PdfLink:         req.PdfLink,
		QuickNote:       req.QuickNote,
		UserEmail:       req.UserEmail,
		AssignmentTitle: req.AssignmentTitle,
		AssignmentMarks: req.AssignmentMarks,
		Status:          StatusPending,
	}
	if err := h.store.Insert(r.Context(), submission); err != nil {
		slog.Error("failed to insert submission", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, messageResponse{Message: "Assignment submitted successfully"})
}

// ListPending serves the one session-gated route. The path email must match
// the identity attached by the auth middleware exactly.
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	userEmail := chi.URLParam(r, "userEmail")

	ident, ok := session.IdentityFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, messageResponse{Message: "unauthorized access"})
		return
	}
	if ident.Email != userEmail {
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, messageResponse{Message: "Access Denied"})
		return
	}

	list, err := h.store.ListPending(r.Context(), userEmail)
	if err != nil {
		slog.Error("failed to list pending submissions", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, list)
}

// Get serves the grading view for a single submission.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assignmentId")

	submission, err := h.store.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Assignment not found"})
		return
	}
	if err != nil {
		slog.Error("failed to get submission", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	render.JSON(w, r, submission)
}

// Delete removes a graded submission; recording the grade itself is a
// separate insert into the completed collection.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assignmentId")

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete submission", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	if deleted != 1 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, messageResponse{Message: "Assignment not found or failed to delete"})
		return
	}
	render.JSON(w, r, messageResponse{Message: "Assignment removed from submitted collection"})
}
