package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inventoryops/warehouse-api/internal/middleware"
	"github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/internal/user/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/user/usecase/query"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// UserHandler handles HTTP requests for users using CQRS pattern
type UserHandler struct {
	// Command handlers
	createHandler     *command.CreateUserHandler
	updateHandler     *command.UpdateUserHandler
	changeRoleHandler *command.ChangeRoleHandler
	deleteHandler     *command.DeleteUserHandler

	// Query handlers
	getHandler  *query.GetUserHandler
	listHandler *query.ListUsersHandler

	repo  domain.UserRepository
	authn func(http.HandlerFunc) http.HandlerFunc
	admin func(http.HandlerFunc) http.HandlerFunc
}

// NewUserHandler creates a new user handler with CQRS pattern
// (manual DI for backwards compatibility)
func NewUserHandler(users domain.UserRepository, tokens *authpkg.TokenManager) *UserHandler {
	createHandler := command.NewCreateUserHandler(users, tokens)
	updateHandler := command.NewUpdateUserHandler(users)
	changeRoleHandler := command.NewChangeRoleHandler(users)
	deleteHandler := command.NewDeleteUserHandler(users)

	getHandler := query.NewGetUserHandler(users)
	listHandler := query.NewListUsersHandler(users)

	return NewUserHandlerWithDI(
		createHandler, updateHandler, changeRoleHandler, deleteHandler,
		getHandler, listHandler, users, tokens,
	)
}

// NewUserHandlerWithDI creates a new user handler using dependency
// injection. This is used by Wire.
func NewUserHandlerWithDI(
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	changeRoleHandler *command.ChangeRoleHandler,
	deleteHandler *command.DeleteUserHandler,
	getHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	repo domain.UserRepository,
	tokens *authpkg.TokenManager,
) *UserHandler {
	authn := middleware.Auth(tokens)
	adminGate := middleware.RequireAdmin()
	return &UserHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		changeRoleHandler: changeRoleHandler,
		deleteHandler:     deleteHandler,
		getHandler:        getHandler,
		listHandler:       listHandler,
		repo:              repo,
		authn:             authn,
		admin: func(next http.HandlerFunc) http.HandlerFunc {
			return authn(adminGate(next))
		},
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Registration is open
	router.HandleFunc("/users", h.CreateUser).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/users", h.admin(h.ListUsers)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", h.authn(h.GetUser)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", h.authn(h.UpdateUser)).Methods("PUT")

	// Admin routes (admin role required)
	router.HandleFunc("/users/{id:[0-9]+}/role", h.admin(h.ChangeRole)).Methods("PATCH")
	router.HandleFunc("/users/{id:[0-9]+}", h.admin(h.DeleteUser)).Methods("DELETE")
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	result, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create user")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User created successfully",
		Data:    result,
	})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.listHandler.Handle(query.ListUsersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list users")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list users",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"users": users,
			"total": count,
		},
	})
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.getHandler.Handle(query.GetUserQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// UpdateUser handles PUT /users/{id}. Role changes go through the
// dedicated admin route.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateUserCommand{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update user")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "User updated successfully",
		Data:    user,
	})
}

// ChangeRole handles PATCH /users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.changeRoleHandler.Handle(command.ChangeRoleCommand{ID: id, Role: req.Role})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to change user role")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Role updated successfully",
		Data:    user,
	})
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete user")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "User deleted successfully",
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
