// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a customer or admin account",
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "No submitted application or valid registration token"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate and receive a session token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/applications": {
            "post": {
                "tags": ["applications"],
                "summary": "Create an insurance application",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["applications"],
                "summary": "List applications visible to the caller",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/applications/{id}/submit": {
            "post": {
                "tags": ["applications"],
                "summary": "Submit an application and provision customer credentials",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/claims": {
            "post": {
                "tags": ["claims"],
                "summary": "File a claim against an active policy",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["claims"],
                "summary": "List claims visible to the caller",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets": {
            "post": {
                "tags": ["pets"],
                "summary": "Register a pet",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["pets"],
                "summary": "List the caller's pets",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments": {
            "post": {
                "tags": ["payments"],
                "summary": "Record a payment against a policy",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["payments"],
                "summary": "List payments visible to the caller",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Aggregate counts scoped to the caller",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/search": {
            "get": {
                "tags": ["search"],
                "summary": "Cross-entity substring search",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pawsure API",
	Description:      "Pet insurance line-of-business backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
