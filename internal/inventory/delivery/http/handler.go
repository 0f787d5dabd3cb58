package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inventoryops/warehouse-api/internal/alert"
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/inventory/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/inventory/usecase/query"
	"github.com/inventoryops/warehouse-api/internal/middleware"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/database"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// InventoryHandler handles HTTP requests for products and their stock
// using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	createHandler *command.CreateInventoryHandler
	updateHandler *command.UpdateInventoryHandler
	editHandler   *command.EditInventoryHandler
	deleteHandler *command.DeleteInventoryHandler

	// Query handlers
	getHandler            *query.GetInventoryHandler
	listHandler           *query.ListInventoryHandler
	listWarehousesHandler *query.ListWarehousesHandler

	repo  domain.ProductRepository
	authn func(http.HandlerFunc) http.HandlerFunc
}

// NewInventoryHandler creates a new inventory handler with CQRS pattern
// (manual DI for backwards compatibility)
func NewInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	tx database.TxRunner,
	dispatcher alert.Dispatcher,
	tokens *authpkg.TokenManager,
) *InventoryHandler {
	createHandler := command.NewCreateInventoryHandler(products, stocks, warehouses, dispatcher, tx)
	updateHandler := command.NewUpdateInventoryHandler(products, stocks, warehouses, dispatcher)
	editHandler := command.NewEditInventoryHandler(products, stocks, warehouses, dispatcher)
	deleteHandler := command.NewDeleteInventoryHandler(products)

	getHandler := query.NewGetInventoryHandler(products)
	listHandler := query.NewListInventoryHandler(products)
	listWarehousesHandler := query.NewListWarehousesHandler(stocks, warehouses)

	return NewInventoryHandlerWithDI(
		createHandler, updateHandler, editHandler, deleteHandler,
		getHandler, listHandler, listWarehousesHandler,
		products, tokens,
	)
}

// NewInventoryHandlerWithDI creates a new inventory handler using
// dependency injection. This is used by Wire.
func NewInventoryHandlerWithDI(
	createHandler *command.CreateInventoryHandler,
	updateHandler *command.UpdateInventoryHandler,
	editHandler *command.EditInventoryHandler,
	deleteHandler *command.DeleteInventoryHandler,
	getHandler *query.GetInventoryHandler,
	listHandler *query.ListInventoryHandler,
	listWarehousesHandler *query.ListWarehousesHandler,
	repo domain.ProductRepository,
	tokens *authpkg.TokenManager,
) *InventoryHandler {
	return &InventoryHandler{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		editHandler:           editHandler,
		deleteHandler:         deleteHandler,
		getHandler:            getHandler,
		listHandler:           listHandler,
		listWarehousesHandler: listWarehousesHandler,
		repo:                  repo,
		authn:                 middleware.Auth(tokens),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/inventory", h.ListInventory).Methods("GET")
	router.HandleFunc("/inventory/allwarehouses/{id:[0-9]+}", h.ListWarehousesForProduct).Methods("GET")
	router.HandleFunc("/inventory/{id:[0-9]+}", h.GetInventory).Methods("GET")

	// Authenticated routes
	router.HandleFunc("/inventory", h.authn(h.CreateInventory)).Methods("POST")
	router.HandleFunc("/inventory/{id:[0-9]+}", h.authn(h.UpdateInventory)).Methods("PUT")
	router.HandleFunc("/inventory/{id:[0-9]+}", h.authn(h.EditInventory)).Methods("PATCH")
	router.HandleFunc("/inventory/{id:[0-9]+}", h.authn(h.DeleteInventory)).Methods("DELETE")
}

type inventoryRequest struct {
	Name              *string  `json:"name"`
	Price             *float64 `json:"price"`
	WarehouseID       *uint    `json:"warehouseId"`
	Quantity          *int     `json:"quantity"`
	LowStockThreshold *int     `json:"lowStockThreshold"`
}

// CreateInventory handles POST /inventory
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateInventoryCommand{
		Name:              req.Name,
		Price:             req.Price,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}

	result, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create inventory")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Inventory created successfully",
		Data:    result,
	})
}

// ListInventory handles GET /inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListInventoryQuery{Limit: limit, Offset: offset}
	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list inventory",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
			"limit":    q.Limit,
			"offset":   offset,
		},
	})
}

// GetInventory handles GET /inventory/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.getHandler.Handle(query.GetInventoryQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListWarehousesForProduct handles GET /inventory/allwarehouses/{id}
func (h *InventoryHandler) ListWarehousesForProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	warehouses, err := h.listWarehousesHandler.Handle(query.ListWarehousesQuery{ProductID: id})
	if err != nil {
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    warehouses,
	})
}

// UpdateInventory handles PUT /inventory/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateInventoryCommand{
		ID:                id,
		Name:              req.Name,
		Price:             req.Price,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update inventory")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory updated successfully",
		Data:    product,
	})
}

// EditInventory handles PATCH /inventory/{id}
func (h *InventoryHandler) EditInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.EditInventoryCommand{
		ID:                id,
		Name:              req.Name,
		Price:             req.Price,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}

	product, err := h.editHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to edit inventory")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory updated successfully",
		Data:    product,
	})
}

// DeleteInventory handles DELETE /inventory/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteInventoryCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete inventory")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory deleted successfully",
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
