package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Handler struct {
	tokens *TokenService
}

func NewHandler(tokens *TokenService) *Handler {
	return &Handler{
		tokens: tokens,
	}
}

type loginRequest struct {
	Email string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Login issues a session token for the posted email and places it in the
// session cookie. No password check happens here: the upstream identity
// provider has already authenticated the user.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode login request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "invalid request"})
		return
	}
	if req.Email == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, messageResponse{Message: "email is required"})
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		slog.Error("failed to issue session token", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, messageResponse{Message: "Internal server error"})
		return
	}
	setTokenCookie(w, token)
	render.JSON(w, r, successResponse{Success: true})
}

// Logout clears the session cookie. Already-issued tokens stay valid until
// they expire.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	clearTokenCookie(w)
	render.JSON(w, r, successResponse{Success: true})
}
