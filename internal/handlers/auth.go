package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/purchase-ledger/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	System   string `json:"system"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" || req.System == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Register(r.Context(), req.Login, req.Password, req.System)
	if err != nil {
		if errors.Is(err, domain.ErrOperatorExists) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrUnknownSystem) {
			http.Error(w, "Unknown system", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to register", zap.Error(err), zap.String("login", req.Login))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to login", zap.Error(err), zap.String("login", req.Login))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}
