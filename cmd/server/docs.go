package main

// The swagger UI at /swagger/ serves the spec generated from these
// annotations. Run go generate (or swag init directly) before building
// a binary that should expose /swagger/doc.json.
//
//go:generate swag init --generalInfo docs.go --dir ./,../../internal --output docs

// @title Warehouse Inventory API
// @version 1.0
// @description REST backend for warehouse and inventory management with low-stock alerting and stock reports.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Login, token rotation and password recovery

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Inventory
// @tag.description Product and combined product/stock endpoints

// @tag.name Warehouses
// @tag.description Warehouse management endpoints

// @tag.name Stock
// @tag.description Stock entry endpoints

// @tag.name Reports
// @tag.description CSV and PDF stock reports

// @tag.name Health
// @tag.description Health check endpoints
