// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/add-movie": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["text/plain"],
                "tags": ["movies"],
                "summary": "Add a movie",
                "parameters": [
                    {"type": "file", "description": "Poster image", "name": "poster", "in": "formData", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Release year", "name": "year", "in": "formData", "required": true},
                    {"type": "string", "description": "Genre", "name": "genre", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/generate-summary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["summary"],
                "summary": "Generate a plot summary",
                "parameters": [
                    {"description": "Movie and release year", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.summaryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/get_movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.MovieListing"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        },
        "/get_movies_by_year": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies by release year",
                "parameters": [
                    {"type": "string", "description": "Release year (exact match)", "name": "year", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.MovieListing"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "handler.summaryRequest": {
            "type": "object",
            "properties": {
                "movie": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "model.MovieListing": {
            "type": "object",
            "properties": {
                "genre": {"type": "string"},
                "poster": {"type": "string"},
                "release_year": {"type": "string"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Movie Catalog API",
	Description:      "Movie catalog with poster storage and AI plot summaries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
