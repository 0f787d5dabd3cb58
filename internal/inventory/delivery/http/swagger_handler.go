package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateInventory godoc
// @Summary Create a product with its initial stock
// @Description Create a product and its first stock entry in one call
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,price=number,warehouseId=int,quantity=int,lowStockThreshold=int} true "Inventory data"
// @Success 201 {object} object{success=bool,message=string,data=object{inventory=object,stock=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventoryDoc() {}

// ListInventory godoc
// @Summary List products
// @Description Get a list of all products with pagination
// @Tags Inventory
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,limit=int,offset=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /inventory [get]
func (h *InventoryHandler) ListInventoryDoc() {}

// GetInventory godoc
// @Summary Get product by ID
// @Description Get a specific product by its ID
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetInventoryDoc() {}

// ListWarehousesForProduct godoc
// @Summary List warehouses holding a product
// @Description Get all warehouses with a stock entry for the product
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /inventory/allwarehouses/{id} [get]
func (h *InventoryHandler) ListWarehousesForProductDoc() {}

// UpdateInventory godoc
// @Summary Update a product
// @Description Full update of a product, optionally with stock levels
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,price=number,warehouseId=int,quantity=int,lowStockThreshold=int} true "Inventory data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateInventoryDoc() {}

// EditInventory godoc
// @Summary Partially update a product
// @Description Patch selected product fields, optionally with stock levels
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,price=number,warehouseId=int,quantity=int,lowStockThreshold=int} false "Inventory data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /inventory/{id} [patch]
func (h *InventoryHandler) EditInventoryDoc() {}

// DeleteInventory godoc
// @Summary Delete a product
// @Description Delete a product by ID
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteInventoryDoc() {}
