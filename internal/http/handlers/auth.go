package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow/internal/domain/user"
	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/jobs"
)

// WelcomeEnqueuer pushes the post-registration welcome job. Enqueueing is
// best-effort: a queue outage must never fail a registration.
type WelcomeEnqueuer interface {
	Enqueue(ctx context.Context, j jobs.Job) error
}

type AuthHandler struct {
	svc      *identity.Service
	enqueuer WelcomeEnqueuer
	log      *slog.Logger
}

func NewAuthHandler(svc *identity.Service, enqueuer WelcomeEnqueuer, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		enqueuer: enqueuer,
		log:      log,
	}
}

type RegisterRequest struct {
	Username     string `json:"username" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email,max=100"`
	PasswordHash string `json:"passwordHash" binding:"required,max=256"`
	FirstName    string `json:"firstName" binding:"omitempty,max=50"`
	LastName     string `json:"lastName" binding:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userPayload is what crosses the boundary: the stored record minus the hash.
type userPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func payloadFrom(u user.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, err := h.svc.Register(ctx.Request.Context(), user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrDuplicateEmail):
			RespondBadRequest(ctx, "Email already exists")
		case errors.Is(err, identity.ErrDuplicateUsername):
			RespondBadRequest(ctx, "Username already exists")
		default:
			RespondBadRequest(ctx, "Could not register user")
		}
		return
	}

	h.enqueueWelcome(ctx.Request.Context(), u)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    payloadFrom(u),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// req.Password carries the client-computed digest, not a plaintext.
	u, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondUnauthorized(ctx, "Invalid email or password")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    payloadFrom(u),
	})
}

func (h *AuthHandler) enqueueWelcome(ctx context.Context, u user.User) {
	if h.enqueuer == nil {
		return
	}

	j, err := jobs.NewWelcomeEmail(u.Email, u.Username)
	if err != nil {
		h.log.Error("building welcome job", "err", err)
		return
	}

	if err := h.enqueuer.Enqueue(ctx, j); err != nil {
		h.log.Error("enqueueing welcome job", "err", err, "user_id", u.ID)
	}
}
