package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/inventoryops/warehouse-api/internal/auth/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/middleware"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// AuthHandler handles session and password recovery endpoints
type AuthHandler struct {
	loginHandler   *command.LoginUserHandler
	refreshHandler *command.RefreshTokenHandler
	logoutHandler  *command.LogoutUserHandler
	forgotHandler  *command.ForgotPasswordHandler
	resetHandler   *command.ResetPasswordHandler

	authn func(http.HandlerFunc) http.HandlerFunc
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	loginHandler *command.LoginUserHandler,
	refreshHandler *command.RefreshTokenHandler,
	logoutHandler *command.LogoutUserHandler,
	forgotHandler *command.ForgotPasswordHandler,
	resetHandler *command.ResetPasswordHandler,
	tokens *authpkg.TokenManager,
) *AuthHandler {
	return &AuthHandler{
		loginHandler:   loginHandler,
		refreshHandler: refreshHandler,
		logoutHandler:  logoutHandler,
		forgotHandler:  forgotHandler,
		resetHandler:   resetHandler,
		authn:          middleware.Auth(tokens),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/login", h.Login).Methods("POST")
	router.HandleFunc("/refresh-token", h.RefreshToken).Methods("POST")
	router.HandleFunc("/forgot-password", h.ForgotPassword).Methods("POST")
	router.HandleFunc("/reset-password", h.ResetPassword).Methods("POST")

	router.HandleFunc("/logout", h.authn(h.Logout)).Methods("POST")
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("email", req.Email).Msg("Login failed")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// RefreshToken handles POST /refresh-token
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.refreshHandler.Handle(command.RefreshTokenCommand{RefreshToken: req.RefreshToken})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Token refresh failed")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Token refreshed successfully",
		Data:    result,
	})
}

// Logout handles POST /logout. The session to end comes from the
// access token, not the request body.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid token",
		})
		return
	}

	if err := h.logoutHandler.Handle(command.LogoutUserCommand{UserID: userID}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Logout failed")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Logged out successfully",
	})
}

// ForgotPassword handles POST /forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.forgotHandler.Handle(r.Context(), command.ForgotPasswordCommand{Email: req.Email}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Forgot password failed")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Password reset email sent",
	})
}

// ResetPassword handles POST /reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.resetHandler.Handle(command.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Password reset failed")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Password reset successfully",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
