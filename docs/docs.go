// Package docs registers the OpenAPI document served at /swagger/*any.
// The document is maintained by hand alongside the handler annotations;
// security scheme and route names must match the @Security and @Router lines.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/stock/items": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Stock"], "summary": "List stock items", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Stock"], "summary": "Create a stock item", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "409": {"description": "Duplicate name"}}}
        },
        "/api/v1/stock/items/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Stock"], "summary": "Get a stock item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Stock"], "summary": "Update a stock item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "404": {"description": "Not found"}, "409": {"description": "Duplicate name or concurrent update"}}}
        },
        "/api/v1/stock/items/{id}/restock-requests": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Restock"], "summary": "Create a restock request", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "404": {"description": "Item not found"}}}
        },
        "/api/v1/stock/items/{id}/restock-requests/{requestId}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Restock"], "summary": "Move a restock request to a new status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "requestId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Concurrent update"}, "422": {"description": "Invalid transition"}}}
        },
        "/api/v1/stock/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Stock"], "summary": "List distinct categories", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/stock/restock-requests": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Restock"], "summary": "List restock requests", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid status"}}}
        },
        "/api/v1/dispense/treatments/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Dispense"], "summary": "Dispense status of a treatment", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Dispense"], "summary": "Dispense every pending medicine of a treatment", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Already dispensed or concurrent update"}, "422": {"description": "Insufficient stock"}}}
        },
        "/api/v1/reports/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reports"], "summary": "Dashboard counters", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/reports/low-stock": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reports"], "summary": "Low stock items", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid limit"}}}},
        "/api/v1/reports/urgent-stock": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reports"], "summary": "Urgent stock items", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid limit"}}}},
        "/api/v1/reports/near-expiry": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reports"], "summary": "Items expiring soon", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid days"}}}},
        "/api/v1/reports/stock-tracking": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reports"], "summary": "Stock tracking with levels", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/reports/total-quantity": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reports"], "summary": "Total units on hand", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Clinic Backoffice API",
	Description:      "Medicine stock ledger: stock items, restock requests, dispensing and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
