package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the marketplace API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>nordnotes-api Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the marketplace endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "nordnotes-api", "version": "v0.1.0" },
  "components": {
    "parameters": {
      "actingUser": { "name": "X-User-ID", "in": "header", "required": false, "schema": {"type":"string"}, "description": "Demo persona; defaults to the selected current user" }
    }
  },
  "paths": {
    "/api/users": { "get": { "summary": "List users", "responses": { "200": { "description": "users" } } } },
    "/api/users/{id}": { "get": { "summary": "Get user", "responses": { "200": { "description": "user" }, "404": { "description": "USER_NOT_FOUND" } } } },
    "/api/users/{id}/stats": { "get": { "summary": "Seller statistics", "responses": { "200": { "description": "sales, documents, earnings, rating" }, "404": { "description": "USER_NOT_FOUND" } } } },
    "/api/users/{id}/documents": { "get": { "summary": "Seller listings", "responses": { "200": { "description": "documents" } } } },
    "/api/users/{id}/sales": { "get": { "summary": "Seller sales", "responses": { "200": { "description": "transactions" } } } },
    "/api/users/{id}/purchases": { "get": { "summary": "Buyer purchases (acting user only)", "responses": { "200": { "description": "transactions" }, "403": { "description": "not the buyer" } } } },
    "/api/users/{id}/payout": { "post": { "summary": "Simulate payout (balance to zero)", "responses": { "200": { "description": "user" }, "404": { "description": "USER_NOT_FOUND" } } } },
    "/api/me": {
      "get": { "summary": "Acting user", "responses": { "200": { "description": "user" }, "401": { "description": "no acting user" } } },
      "put": { "summary": "Select current user", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"userId":{"type":"string"}}}}}}, "responses": { "200": { "description": "user" }, "404": { "description": "USER_NOT_FOUND" } } }
    },
    "/api/documents": {
      "get": { "summary": "Browse documents", "parameters": [
        {"name":"q","in":"query","schema":{"type":"string"}},
        {"name":"university","in":"query","schema":{"type":"string"}},
        {"name":"country","in":"query","schema":{"type":"string","enum":["NO","SE","DK"]}},
        {"name":"subject","in":"query","schema":{"type":"string"}},
        {"name":"type","in":"query","schema":{"type":"string"}},
        {"name":"sort","in":"query","schema":{"type":"string","enum":["newest","rating","priceLow","sales"]}}
      ], "responses": { "200": { "description": "documents" } } },
      "post": { "summary": "Create listing (seller or both)", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","priceNOK","university","country","subject","type"],"properties":{"title":{"type":"string"},"description":{"type":"string"},"priceNOK":{"type":"number","minimum":15},"university":{"type":"string"},"country":{"type":"string"},"subject":{"type":"string"},"courseCode":{"type":"string"},"type":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}},"language":{"type":"string"}}}}}}, "responses": { "201": { "description": "document" }, "400": { "description": "invalid input" }, "403": { "description": "ROLE_NOT_ALLOWED" } } }
    },
    "/api/documents/filters": { "get": { "summary": "Distinct filter values", "responses": { "200": { "description": "universities, subjects, types, countries" } } } },
    "/api/documents/{id}": {
      "get": { "summary": "Document page", "responses": { "200": { "description": "document, seller, salesCount, reviews, hasPurchased" }, "404": { "description": "DOCUMENT_NOT_FOUND" } } },
      "patch": { "summary": "Update listing (seller only)", "responses": { "200": { "description": "document" }, "403": { "description": "not the seller" }, "404": { "description": "DOCUMENT_NOT_FOUND" } } }
    },
    "/api/documents/{id}/purchase": { "post": { "summary": "Buy document", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"paymentMethod":{"type":"string","enum":["vipps_demo","kort_demo","stripe_demo"]}}}}}}, "responses": { "201": { "description": "transaction" }, "403": { "description": "SELF_PURCHASE" }, "404": { "description": "DOCUMENT_NOT_FOUND / USER_NOT_FOUND" } } } },
    "/api/documents/{id}/reviews": { "post": { "summary": "Review a purchased document", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"rating":{"type":"integer","minimum":1,"maximum":5},"comment":{"type":"string"}}}}}}, "responses": { "201": { "description": "review" }, "400": { "description": "INVALID_RATING" }, "409": { "description": "NOT_PURCHASED / ALREADY_REVIEWED" } } } },
    "/api/documents/{id}/file": {
      "post": { "summary": "Upload document file (seller only, multipart field 'file')", "responses": { "200": { "description": "document" }, "503": { "description": "file storage not configured" } } },
      "get": { "summary": "Download document file (seller or buyer)", "responses": { "200": { "description": "file" }, "403": { "description": "NOT_PURCHASED" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
