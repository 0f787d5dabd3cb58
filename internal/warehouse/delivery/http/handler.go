package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inventoryops/warehouse-api/internal/middleware"
	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/internal/warehouse/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/warehouse/usecase/query"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// WarehouseHandler handles HTTP requests for warehouses using CQRS pattern
type WarehouseHandler struct {
	// Command handlers
	createHandler *command.CreateWarehouseHandler
	updateHandler *command.UpdateWarehouseHandler
	editHandler   *command.EditWarehouseHandler
	deleteHandler *command.DeleteWarehouseHandler

	// Query handlers
	getHandler  *query.GetWarehouseHandler
	listHandler *query.ListWarehousesHandler

	authn func(http.HandlerFunc) http.HandlerFunc
}

// NewWarehouseHandler creates a new warehouse handler with CQRS pattern
// (manual DI for backwards compatibility)
func NewWarehouseHandler(warehouses domain.WarehouseRepository, tokens *authpkg.TokenManager) *WarehouseHandler {
	createHandler := command.NewCreateWarehouseHandler(warehouses)
	updateHandler := command.NewUpdateWarehouseHandler(warehouses)
	editHandler := command.NewEditWarehouseHandler(warehouses)
	deleteHandler := command.NewDeleteWarehouseHandler(warehouses)

	getHandler := query.NewGetWarehouseHandler(warehouses)
	listHandler := query.NewListWarehousesHandler(warehouses)

	return NewWarehouseHandlerWithDI(
		createHandler, updateHandler, editHandler, deleteHandler,
		getHandler, listHandler, tokens,
	)
}

// NewWarehouseHandlerWithDI creates a new warehouse handler using
// dependency injection. This is used by Wire.
func NewWarehouseHandlerWithDI(
	createHandler *command.CreateWarehouseHandler,
	updateHandler *command.UpdateWarehouseHandler,
	editHandler *command.EditWarehouseHandler,
	deleteHandler *command.DeleteWarehouseHandler,
	getHandler *query.GetWarehouseHandler,
	listHandler *query.ListWarehousesHandler,
	tokens *authpkg.TokenManager,
) *WarehouseHandler {
	return &WarehouseHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		editHandler:   editHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		authn:         middleware.Auth(tokens),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *WarehouseHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/warehouse", h.ListWarehouses).Methods("GET")
	router.HandleFunc("/warehouse/{id:[0-9]+}", h.GetWarehouse).Methods("GET")

	// Authenticated routes
	router.HandleFunc("/warehouse", h.authn(h.CreateWarehouse)).Methods("POST")
	router.HandleFunc("/warehouse/{id:[0-9]+}", h.authn(h.UpdateWarehouse)).Methods("PUT")
	router.HandleFunc("/warehouse/{id:[0-9]+}", h.authn(h.EditWarehouse)).Methods("PATCH")
	router.HandleFunc("/warehouse/{id:[0-9]+}", h.authn(h.DeleteWarehouse)).Methods("DELETE")
}

// CreateWarehouse handles POST /warehouse
func (h *WarehouseHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Location  string `json:"location"`
		ManagerID uint   `json:"managerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateWarehouseCommand{
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: req.ManagerID,
	}

	warehouse, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create warehouse")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Warehouse created successfully",
		Data:    warehouse,
	})
}

// ListWarehouses handles GET /warehouse
func (h *WarehouseHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	warehouses, err := h.listHandler.Handle(query.ListWarehousesQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list warehouses")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list warehouses",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    warehouses,
	})
}

// GetWarehouse handles GET /warehouse/{id}
func (h *WarehouseHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	warehouse, err := h.getHandler.Handle(query.GetWarehouseQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    warehouse,
	})
}

// UpdateWarehouse handles PUT /warehouse/{id}
func (h *WarehouseHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name      string `json:"name"`
		Location  string `json:"location"`
		ManagerID uint   `json:"managerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateWarehouseCommand{
		ID:        id,
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: req.ManagerID,
	}

	warehouse, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update warehouse")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse updated successfully",
		Data:    warehouse,
	})
}

// EditWarehouse handles PATCH /warehouse/{id}
func (h *WarehouseHandler) EditWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Location  *string `json:"location"`
		ManagerID *uint   `json:"managerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.EditWarehouseCommand{
		ID:        id,
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: req.ManagerID,
	}

	warehouse, err := h.editHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to edit warehouse")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse updated successfully",
		Data:    warehouse,
	})
}

// DeleteWarehouse handles DELETE /warehouse/{id}
func (h *WarehouseHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteWarehouseCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete warehouse")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse deleted successfully",
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
