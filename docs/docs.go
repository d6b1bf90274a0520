// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g main.go -o docs
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
        "/appointments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Citas"],
                "summary": "Reservar una cita",
                "parameters": [
                    {"name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateAppointmentDTO"}}
                ],
                "responses": {
                    "201": {"description": "Cita creada", "schema": {"$ref": "#/definitions/domain.Appointment"}},
                    "400": {"description": "Datos inválidos", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}},
                    "409": {"description": "El horario ya está reservado", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}},
                    "429": {"description": "Demasiadas solicitudes", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}}
                }
            }
        },
        "/appointments/date/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Citas"],
                "summary": "Citas de una fecha",
                "parameters": [{"type": "string", "name": "date", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Appointment"}}},
                    "400": {"description": "Fecha inválida", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}}
                }
            }
        },
        "/appointments/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Citas"],
                "summary": "Cambiar el estado de una cita",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UpdateAppointmentStatusDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Appointment"}},
                    "400": {"description": "Estado inválido", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}},
                    "404": {"description": "Cita no encontrada", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}}
                }
            }
        },
        "/availability/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Citas"],
                "summary": "Horarios disponibles de una fecha",
                "parameters": [{"type": "string", "name": "date", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DayAvailability"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Autenticación"],
                "summary": "Iniciar sesión de administración",
                "parameters": [
                    {"name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "401": {"description": "Usuario o contraseña incorrectos", "schema": {"$ref": "#/definitions/rest.errorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Appointment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer_name": {"type": "string"},
                "customer_phone": {"type": "string"},
                "customer_email": {"type": "string"},
                "service_id": {"type": "string"},
                "service_name": {"type": "object", "additionalProperties": {"type": "string"}},
                "appointment_date": {"type": "string"},
                "appointment_time": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "confirmed", "completed", "cancelled"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.CreateAppointmentDTO": {
            "type": "object",
            "required": ["customer_name", "customer_phone", "service_id", "appointment_date", "appointment_time"],
            "properties": {
                "customer_name": {"type": "string", "minLength": 2, "maxLength": 100},
                "customer_phone": {"type": "string"},
                "customer_email": {"type": "string"},
                "service_id": {"type": "string"},
                "appointment_date": {"type": "string", "example": "2025-06-02"},
                "appointment_time": {"type": "string", "example": "09:30"},
                "notes": {"type": "string", "maxLength": 1000}
            }
        },
        "domain.UpdateAppointmentStatusDTO": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["pending", "confirmed", "completed", "cancelled"]}
            }
        },
        "domain.DayAvailability": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day_of_week": {"type": "integer"},
                "slots": {"type": "array", "items": {"$ref": "#/definitions/domain.Slot"}}
            }
        },
        "domain.Slot": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "available": {"type": "boolean"}
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "domain.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.UserSummary"}
            }
        },
        "domain.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "rest.errorResponseBody": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "code": {"type": "integer"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/rest.fieldDetail"}}
            }
        },
        "rest.fieldDetail": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "rule": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Barbershop API",
	Description:      "API del sitio y de reservas de la barbería",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
