package handlers

import "net/http"

// apiSpec is the machine-readable API description served at /apispec.json.
// It is maintained by hand; the surface is small enough that generated
// documentation would cost more than it saves.
const apiSpec = `{
  "swagger": "2.0",
  "info": {"title": "MD Editor API", "version": "1.0"},
  "securityDefinitions": {
    "Bearer": {
      "type": "apiKey",
      "name": "Authorization",
      "in": "header",
      "description": "JWT as: Bearer {token}"
    }
  },
  "definitions": {
    "Post": {
      "type": "object",
      "properties": {
        "id":         {"type": "integer"},
        "title":      {"type": "string"},
        "content":    {"type": "string"},
        "user_id":    {"type": "integer"},
        "created_at": {"type": "string", "format": "date-time"},
        "updated_at": {"type": "string", "format": "date-time"}
      }
    },
    "User": {
      "type": "object",
      "properties": {
        "id":         {"type": "integer"},
        "username":   {"type": "string"},
        "created_at": {"type": "string", "format": "date-time"}
      }
    }
  },
  "paths": {
    "/auth/register": {"post": {"tags": ["auth"], "responses": {"201": {"description": "User created"}, "400": {"description": "Invalid input"}, "409": {"description": "Username taken"}}}},
    "/auth/login":    {"post": {"tags": ["auth"], "responses": {"200": {"description": "Token pair"}, "401": {"description": "Invalid credentials"}}}},
    "/auth/refresh":  {"post": {"tags": ["auth"], "responses": {"200": {"description": "Token pair"}, "401": {"description": "Invalid refresh token"}}}},
    "/auth/me":       {"get": {"tags": ["auth"], "security": [{"Bearer": []}], "responses": {"200": {"description": "Caller identity"}, "401": {"description": "Unauthorized"}}}},
    "/posts/":        {
      "post": {"tags": ["posts"], "security": [{"Bearer": []}], "responses": {"201": {"description": "Post created", "schema": {"$ref": "#/definitions/Post"}}}},
      "get":  {"tags": ["posts"], "security": [{"Bearer": []}], "responses": {"200": {"description": "Posts owned by the caller"}}}
    },
    "/posts/{id}": {
      "get":    {"tags": ["posts"], "security": [{"Bearer": []}], "responses": {"200": {"description": "Post"}, "404": {"description": "Not found"}}},
      "put":    {"tags": ["posts"], "security": [{"Bearer": []}], "responses": {"200": {"description": "Post updated"}, "404": {"description": "Not found"}}},
      "delete": {"tags": ["posts"], "security": [{"Bearer": []}], "responses": {"200": {"description": "Confirmation"}, "404": {"description": "Not found"}}}
    }
  }
}`

// APISpec serves the static API description document.
func APISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(apiSpec))
}
