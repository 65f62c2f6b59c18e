// Package docs registers the Swagger specification served under /swagger/.
// The path list is maintained by hand alongside the handler annotations.
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
        "/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Create a bill-splitting session",
                "responses": {}
            }
        },
        "/sessions/code/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Look up a session by share code",
                "responses": {}
            }
        },
        "/items/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Preview a bill total",
                "responses": {}
            }
        },
        "/items/session/{sessionId}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Calculate the session split summary",
                "responses": {}
            }
        },
        "/settlements/session/{sessionId}/plan": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settlements"],
                "summary": "Get the settle-up transfer plan",
                "responses": {}
            }
        },
        "/payments/session/{sessionId}/links": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Get shareable settle-up reminders",
                "responses": {}
            }
        },
        "/receipts/parse": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Parse receipt text",
                "responses": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "JomSplit API",
	Description:      "Malaysian bill-splitting API with SST, service charge and 5 sen rounding support.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
