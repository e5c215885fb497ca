package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/eletronicos-be/internal/auth"
	"github.com/hongminglow/eletronicos-be/internal/http/respond"
	"github.com/hongminglow/eletronicos-be/internal/models"
	"github.com/hongminglow/eletronicos-be/internal/models/dto"
	"github.com/hongminglow/eletronicos-be/internal/storage"
)

// AuthHandler owns the registro/login endpoints.
type AuthHandler struct {
	store      storage.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, bcryptCost int, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/registro", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	// The UNIQUE constraint is authoritative; this lookup only avoids hashing
	// for a name that is already taken.
	_, err := h.store.FindByUsername(r.Context(), req.Username)
	switch {
	case err == nil:
		respond.Error(w, http.StatusBadRequest, msgUserExists)
		return
	case !errors.Is(err, storage.ErrNotFound):
		h.logger.ErrorContext(r.Context(), "register: find user", "username", req.Username, "error", err)
		respond.Error(w, http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "register: hash password", "error", err)
		respond.Error(w, http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}
	if _, err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, msgUserExists)
			return
		}
		h.logger.ErrorContext(r.Context(), "register: create user", "username", req.Username, "error", err)
		respond.Error(w, http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	respond.Message(w, http.StatusCreated, msgUserRegistered)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	user, err := h.store.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, msgUserNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "login: find user", "username", req.Username, "error", err)
		respond.Error(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, msgWrongPassword)
			return
		}
		h.logger.ErrorContext(r.Context(), "login: compare password", "username", req.Username, "error", err)
		respond.Error(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	token, err := h.tokens.Generate(auth.Identity{ID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "login: generate token", "error", err)
		respond.Error(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{Token: token})
}
