package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inventoryops/warehouse-api/internal/alert"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/middleware"
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/internal/stock/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/stock/usecase/query"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// StockHandler handles HTTP requests for stock entries using CQRS pattern
type StockHandler struct {
	// Command handlers
	createHandler *command.CreateStockHandler
	updateHandler *command.UpdateStockHandler
	editHandler   *command.EditStockHandler
	deleteHandler *command.DeleteStockHandler

	// Query handlers
	getHandler  *query.GetStockHandler
	listHandler *query.ListStockHandler

	authn func(http.HandlerFunc) http.HandlerFunc
}

// NewStockHandler creates a new stock handler with CQRS pattern
// (manual DI for backwards compatibility)
func NewStockHandler(
	stocks domain.StockRepository,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
	tokens *authpkg.TokenManager,
) *StockHandler {
	createHandler := command.NewCreateStockHandler(stocks)
	updateHandler := command.NewUpdateStockHandler(stocks, products, warehouses, dispatcher)
	editHandler := command.NewEditStockHandler(stocks, products, warehouses, dispatcher)
	deleteHandler := command.NewDeleteStockHandler(stocks)

	getHandler := query.NewGetStockHandler(stocks)
	listHandler := query.NewListStockHandler(stocks)

	return NewStockHandlerWithDI(
		createHandler, updateHandler, editHandler, deleteHandler,
		getHandler, listHandler, tokens,
	)
}

// NewStockHandlerWithDI creates a new stock handler using dependency
// injection. This is used by Wire.
func NewStockHandlerWithDI(
	createHandler *command.CreateStockHandler,
	updateHandler *command.UpdateStockHandler,
	editHandler *command.EditStockHandler,
	deleteHandler *command.DeleteStockHandler,
	getHandler *query.GetStockHandler,
	listHandler *query.ListStockHandler,
	tokens *authpkg.TokenManager,
) *StockHandler {
	return &StockHandler{
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

func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/stock", h.ListStock).Methods("GET")
	router.HandleFunc("/stock/{id:[0-9]+}", h.GetStock).Methods("GET")

	// Authenticated routes
	router.HandleFunc("/stock", h.authn(h.CreateStock)).Methods("POST")
	router.HandleFunc("/stock/{id:[0-9]+}", h.authn(h.UpdateStock)).Methods("PUT")
	router.HandleFunc("/stock/{id:[0-9]+}", h.authn(h.EditStock)).Methods("PATCH")
	router.HandleFunc("/stock/{id:[0-9]+}", h.authn(h.DeleteStock)).Methods("DELETE")
}

type stockRequest struct {
	ProductID         *uint `json:"productId"`
	WarehouseID       *uint `json:"warehouseId"`
	Quantity          *int  `json:"quantity"`
	LowStockThreshold *int  `json:"lowStockThreshold"`
}

// CreateStock handles POST /stock
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateStockCommand{
		ProductID:         req.ProductID,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}

	entry, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create stock entry")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock entry created successfully",
		Data:    entry,
	})
}

// ListStock handles GET /stock
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	entries, err := h.listHandler.Handle(query.ListStockQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list stock entries")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stock entries",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    entries,
	})
}

// GetStock handles GET /stock/{id}
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	entry, err := h.getHandler.Handle(query.GetStockQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    entry,
	})
}

// UpdateStock handles PUT /stock/{id}
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateStockCommand{
		ID:                id,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}

	entry, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update stock entry")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock entry updated successfully",
		Data:    entry,
	})
}

// EditStock handles PATCH /stock/{id}
func (h *StockHandler) EditStock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.EditStockCommand{
		ID:                id,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}

	entry, err := h.editHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to edit stock entry")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock entry updated successfully",
		Data:    entry,
	})
}

// DeleteStock handles DELETE /stock/{id}
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteStockCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete stock entry")
		respondJSON(w, apperror.HTTPStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock entry deleted successfully",
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
