// Package docs registers the OpenAPI document served under /swagger.
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
        "/": {
            "get": {"produces": ["text/plain"], "tags": ["health"], "summary": "Server banner",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}}
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }}
        },
        "/post-job": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["jobs"], "summary": "Post a job",
                "parameters": [{"description": "job fields (title, category, skills, postedBy, ...)", "name": "input", "in": "body", "required": true,
                    "schema": {"type": "object", "additionalProperties": true}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.InsertResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/all-jobs": {
            "get": {"produces": ["application/json"], "tags": ["jobs"], "summary": "List jobs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": true}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/all-jobs/{id}": {
            "get": {"produces": ["application/json"], "tags": ["jobs"], "summary": "Get job",
                "parameters": [{"type": "string", "description": "job id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }},
            "post": {"description": "Multipart uploads are text-extracted and judged against the job skills; JSON bodies store a hosted CV link.",
                "consumes": ["multipart/form-data", "application/json"], "produces": ["application/json"], "tags": ["cv"], "summary": "Submit CV",
                "parameters": [
                    {"type": "string", "description": "job id", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "CV document (pdf or docx)", "name": "file", "in": "formData"},
                    {"type": "string", "description": "applicant email", "name": "email", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.submissionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/myJobs/{email}": {
            "get": {"produces": ["application/json"], "tags": ["jobs"], "summary": "List my jobs",
                "parameters": [{"type": "string", "description": "poster email", "name": "email", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": true}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/delete-job/{id}": {
            "delete": {"produces": ["application/json"], "tags": ["jobs"], "summary": "Delete job",
                "parameters": [{"type": "string", "description": "job id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.DeleteResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/register": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Register user",
                "parameters": [{"description": "registration payload", "name": "input", "in": "body", "required": true,
                    "schema": {"$ref": "#/definitions/handlers.registerRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.InsertResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/login": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Login",
                "parameters": [{"description": "login payload", "name": "input", "in": "body", "required": true,
                    "schema": {"$ref": "#/definitions/handlers.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        },
        "/me": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["auth"], "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }}
        }
    },
    "definitions": {
        "handlers.loginRequest": {"type": "object", "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.registerRequest": {"type": "object", "properties": {
            "userType": {"type": "string"}, "Firstname": {"type": "string"}, "Lastname": {"type": "string"},
            "DateOfBirth": {"type": "string"}, "Gender": {"type": "string"}, "Email": {"type": "string"},
            "PhoneNumber": {"type": "string"}, "Origin": {"type": "string"}, "CompanyName": {"type": "string"},
            "Password": {"type": "string"}}},
        "handlers.submissionResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "match": {"type": "boolean"}, "insertedId": {"type": "string"}}},
        "presenter.DeleteResult": {"type": "object", "properties": {
            "acknowledged": {"type": "boolean"}, "deletedCount": {"type": "integer"}}},
        "presenter.ErrorResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "status": {"type": "boolean"}}},
        "presenter.InsertResult": {"type": "object", "properties": {
            "acknowledged": {"type": "boolean"}, "insertedId": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Session token, \"Bearer <JWT>\" or \"<JWT>\".", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Job Portal API",
	Description:      "Job board backend: postings, accounts and CV intake with skill matching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
