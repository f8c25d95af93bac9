// Package swagger holds the OpenAPI document served under /swagger.
// It follows the layout of `swag init -g cmd/start.go -o docs/swagger`; keep it
// in sync with the handler annotations.
package swagger

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
        "/buckets": {
            "get": {
                "description": "Lists every bucket in the order returned by the storage service.",
                "produces": ["application/json"],
                "tags": ["buckets"],
                "summary": "List Buckets",
                "responses": {
                    "200": {"description": "Buckets", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            }
        },
        "/buckets/{bucket}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["buckets"],
                "summary": "Get Bucket",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/template.Bucket"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            },
            "put": {
                "description": "Creates the bucket. Creating an existing bucket is a no-op.",
                "produces": ["application/json"],
                "tags": ["buckets"],
                "summary": "Create Bucket",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Invalid bucket name", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            },
            "delete": {
                "description": "Deletes an empty bucket. Non-empty buckets are rejected with 409.",
                "produces": ["application/json"],
                "tags": ["buckets"],
                "summary": "Remove Bucket",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Removed", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Bucket not empty", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            }
        },
        "/buckets/{bucket}/objects": {
            "get": {
                "description": "Lists objects by prefix. A missing bucket or a denied listing fails the request.",
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "List Objects",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true},
                    {"type": "string", "description": "Key prefix", "name": "prefix", "in": "query"},
                    {"type": "boolean", "description": "Descend into nested prefixes", "name": "recursive", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Objects", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Bucket not found", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            }
        },
        "/buckets/{bucket}/objects/{object}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Stat or Download Object",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true},
                    {"type": "string", "description": "Object name", "name": "object", "in": "path", "required": true},
                    {"type": "boolean", "description": "Stream the object content", "name": "download", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/template.Object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            },
            "put": {
                "description": "Uploads the request body. The Content-Type header is stored with the object.",
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Upload Object",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true},
                    {"type": "string", "description": "Object name", "name": "object", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/template.Object"}},
                    "404": {"description": "Bucket not found", "schema": {"$ref": "#/definitions/server.ErrorBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Remove Object",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true},
                    {"type": "string", "description": "Object name", "name": "object", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Removed", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/buckets/{bucket}/url/{object}": {
            "get": {
                "description": "Returns the unsigned object URL, or a presigned GET URL when presign=true (expires in seconds, default 7 days).",
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Object URL",
                "parameters": [
                    {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true},
                    {"type": "string", "description": "Object name", "name": "object", "in": "path", "required": true},
                    {"type": "boolean", "description": "Sign the URL", "name": "presign", "in": "query"},
                    {"type": "integer", "description": "Expiry in seconds", "name": "expires", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "URL", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "server.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "template.Bucket": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "created_time": {"type": "string"}
            }
        },
        "template.Object": {
            "type": "object",
            "properties": {
                "bucket_name": {"type": "string"},
                "name": {"type": "string"},
                "created_time": {"type": "string"},
                "length": {"type": "integer"},
                "etag": {"type": "string"},
                "content_type": {"type": "string"},
                "mat_desc": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "security": [{"ApiKeyAuth": []}]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storage Template API",
	Description:      "Bucket and object operations over an S3-compatible store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
