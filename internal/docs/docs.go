// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o internal/docs`.
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
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "User registered"}, "400": {"description": "Invalid input"}, "409": {"description": "Username taken"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "responses": {"200": {"description": "User authenticated and token generated"}, "401": {"description": "Invalid credentials"}, "423": {"description": "Account locked"}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout user", "responses": {"200": {"description": "Logged out"}}}},
        "/profile": {"get": {"security": [{"BearerAuth": []}], "tags": ["user"], "summary": "Get user profile", "responses": {"200": {"description": "User profile"}}}},
        "/onboard": {"post": {"security": [{"BearerAuth": []}], "tags": ["user"], "summary": "Onboard user", "responses": {"200": {"description": "Updated profile"}, "400": {"description": "Invalid input"}}}},
        "/data": {"get": {"security": [{"BearerAuth": []}], "tags": ["health"], "summary": "Dashboard data", "responses": {"200": {"description": "Dashboard"}}}},
        "/health-snapshot": {"get": {"security": [{"BearerAuth": []}], "tags": ["health"], "summary": "Health snapshot", "responses": {"200": {"description": "Snapshot"}}}},
        "/export": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "tags": ["export"], "summary": "Export workbook", "responses": {"200": {"description": "XLSX workbook"}}}},
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "Expenses"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Record an expense", "responses": {"201": {"description": "Expense created"}, "400": {"description": "Invalid input"}}}
        },
        "/expenses/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Delete an expense", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Expense deleted"}, "404": {"description": "Expense not found"}}}},
        "/assets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["assets"], "summary": "List assets", "responses": {"200": {"description": "Assets"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["assets"], "summary": "Record an asset", "responses": {"201": {"description": "Asset created"}, "400": {"description": "Invalid input"}}}
        },
        "/assets/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["assets"], "summary": "Delete an asset", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Asset deleted"}, "404": {"description": "Asset not found"}}}},
        "/liabilities": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["liabilities"], "summary": "List liabilities", "responses": {"200": {"description": "Liabilities"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["liabilities"], "summary": "Record a liability", "responses": {"201": {"description": "Liability created"}, "400": {"description": "Invalid input"}}}
        },
        "/liabilities/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["liabilities"], "summary": "Delete a liability", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Liability deleted"}, "404": {"description": "Liability not found"}}}},
        "/goals": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "List goals", "responses": {"200": {"description": "Goals"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "Create a goal", "responses": {"201": {"description": "Goal created"}, "400": {"description": "Invalid input"}}}
        },
        "/goals/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "Delete a goal", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Goal deleted"}, "404": {"description": "Goal not found"}}}},
        "/internal/revoked-tokens/purge": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["internal"], "summary": "Purge expired revocations", "responses": {"200": {"description": "Purged rows"}, "401": {"description": "Invalid API key"}, "503": {"description": "Service key not configured"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "finhealth API",
	Description:      "Personal financial health engine: cash flow, net worth, avalanche debt plan, goal feasibility, projections and a 0-100 score.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
