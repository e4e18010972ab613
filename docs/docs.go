// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/server/main.go`.
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
        "/api/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.sessionUser"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/sessions/current": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Current session user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.sessionUser"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}}
                }
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/products/expected/{year}/{week}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Expected products of a week",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Week number", "name": "week", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/products/confirmed/{year}/{week}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Confirmed products of a week",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Week number", "name": "week", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}}}
                }
            }
        },
        "/api/products/expected/{year}/{week_number}": {
            "post": {
                "description": "Old expected products of the week are deleted and the body is inserted in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Replace the weekly declaration of the logged-in farmer",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Week number", "name": "week_number", "in": "path", "required": true},
                    {"description": "Declaration", "name": "products", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/product.ExpectedInput"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/product.IDMapping"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/farmerConfirm/{product_id}/{year}/{week}": {
            "put": {
                "tags": ["products"],
                "summary": "Confirm an expected product",
                "parameters": [
                    {"type": "integer", "description": "Product id", "name": "product_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Week number", "name": "week", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/neworder": {
            "post": {
                "description": "Each item is placed on its own; an item without enough confirmed stock is rejected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "Order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.PlaceOrderInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.PlaceResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/orders/{id}/{product_name}": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["orders"],
                "summary": "Move every item of a product in an order to the next state",
                "parameters": [
                    {"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Product name", "name": "product_name", "in": "path", "required": true},
                    {"description": "Target state, delivered when omitted", "name": "state", "in": "body", "schema": {"$ref": "#/definitions/api.stateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/orders/farmershipped": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["orders"],
                "summary": "Mark the farmer's booked items as shipped to the shop",
                "parameters": [
                    {"description": "Product ids", "name": "products", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "integer"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}
                }
            }
        },
        "/provider/apply": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Apply as a farmer",
                "parameters": [
                    {"description": "Application", "name": "application", "in": "body", "required": true, "schema": {"$ref": "#/definitions/provider.ApplyInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/provider.Application"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user with any role",
                "parameters": [
                    {"description": "User", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.CreateInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.User"}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/clients": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Register a client",
                "parameters": [
                    {"description": "Client", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/client.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/client.Client"}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "api.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "api.sessionUser": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "provider_id": {"type": "integer"},
                "role": {"type": "string"}
            }
        },
        "api.stateRequest": {
            "type": "object",
            "properties": {"state": {"type": "string"}}
        },
        "product.Product": {
            "type": "object",
            "properties": {
                "category_id": {"type": "integer"},
                "category_name": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "notified": {"type": "boolean"},
                "price": {"type": "string"},
                "provider_id": {"type": "integer"},
                "provider_name": {"type": "string"},
                "quantity": {"type": "integer"},
                "status": {"type": "string"},
                "unit": {"type": "string"},
                "week_number": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "product.ExpectedInput": {
            "type": "object",
            "properties": {
                "category": {"type": "integer"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit": {"type": "string"}
            }
        },
        "product.IDMapping": {
            "type": "object",
            "properties": {
                "new_id": {"type": "integer"},
                "old_id": {"type": "integer"}
            }
        },
        "order.PlaceOrderInput": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "city": {"type": "string"},
                "client_id": {"type": "integer"},
                "delivery_at": {"type": "string"},
                "order_items": {"type": "array", "items": {"$ref": "#/definitions/order.PlaceItemInput"}},
                "pickup": {"type": "boolean"},
                "total": {"type": "string"}
            }
        },
        "order.PlaceItemInput": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "qty": {"type": "integer"}
            }
        },
        "order.PlacedItem": {
            "type": "object",
            "properties": {
                "item_id": {"type": "integer"},
                "price": {"type": "string"},
                "product_id": {"type": "integer"},
                "product_name": {"type": "string"},
                "quantity": {"type": "integer"},
                "reason": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "order.PlaceResult": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.PlacedItem"}},
                "order_id": {"type": "integer"}
            }
        },
        "provider.ApplyInput": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "city": {"type": "string"},
                "company": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "surname": {"type": "string"}
            }
        },
        "provider.Application": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "city": {"type": "string"},
                "company": {"type": "string"},
                "created_at": {"type": "string"},
                "decided_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string"},
                "surname": {"type": "string"}
            }
        },
        "user.CreateInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "user.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "client.RegisterInput": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "birthdate": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "email": {"type": "string"},
                "gender": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "region": {"type": "string"},
                "surname": {"type": "string"}
            }
        },
        "client.Client": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "budget": {"type": "string"},
                "city": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "surname": {"type": "string"},
                "user_id": {"type": "integer"}
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
	Title:            "Solidarity Purchase Group API",
	Description:      "Weekly farm-to-consumer marketplace: declarations, confirmations, orders and fulfilment.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
