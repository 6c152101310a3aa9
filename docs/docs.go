// Package docs registers the swagger document served at /docs. It follows
// the handler annotations; regenerate with swag init after changing them.
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
        "/api/v1/content/validate": {
            "post": {
                "description": "Runs the validation gate and returns the verdict. Violations are recorded unless record_profanity is false.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Moderation"
                ],
                "summary": "Validate learner text",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner id",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "description": "Text to validate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.ValidateContentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Verdict",
                        "schema": {
                            "$ref": "#/definitions/moderation.ValidationResult"
                        }
                    },
                    "400": {
                        "description": "Invalid body or context",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/files/translations": {
            "post": {
                "description": "Accepts a multipart text file (field \"file\") or JSON with text extracted on the client. The text is validated before translation.",
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Translations"
                ],
                "summary": "Translate an uploaded file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner id",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "file",
                        "description": "UTF-8 text file",
                        "name": "file",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Target language",
                        "name": "target_language",
                        "in": "formData"
                    },
                    {
                        "description": "Extracted text",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/request.FileTranslationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Translation",
                        "schema": {
                            "$ref": "#/definitions/response.TranslationOutput"
                        }
                    },
                    "400": {
                        "description": "Invalid request or unsupported file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "422": {
                        "description": "Blocked by moderation",
                        "schema": {
                            "$ref": "#/definitions/response.BlockedOutput"
                        }
                    },
                    "502": {
                        "description": "Translation provider failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/languages/detect": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Translations"
                ],
                "summary": "Detect the language of learner text",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner id",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "description": "Text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.DetectLanguageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Detected language",
                        "schema": {
                            "$ref": "#/definitions/response.DetectLanguageOutput"
                        }
                    },
                    "422": {
                        "description": "Blocked by moderation",
                        "schema": {
                            "$ref": "#/definitions/response.BlockedOutput"
                        }
                    },
                    "502": {
                        "description": "Provider failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/moderation/high-risk-users": {
            "get": {
                "description": "Counts violations per user over the most recent records and returns users at or above the threshold",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Moderation"
                ],
                "summary": "List high-risk users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Authorization token",
                        "name": "Authorization",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Minimum violations",
                        "name": "threshold",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Number of recent records to scan",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Users with the threshold and window used",
                        "schema": {
                            "$ref": "#/definitions/response.HighRiskUsersOutput"
                        }
                    },
                    "400": {
                        "description": "Negative threshold or limit",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Repository failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/moderation/records": {
            "get": {
                "description": "Returns the most recent moderation records, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Moderation"
                ],
                "summary": "List recent usage records",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Authorization token",
                        "name": "Authorization",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Number of records (default 100, max 1000)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Records",
                        "schema": {
                            "$ref": "#/definitions/response.RecordsOutput"
                        }
                    },
                    "400": {
                        "description": "Invalid limit",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/moderation/records/{record_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Moderation"
                ],
                "summary": "Retrieve a usage record by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Authorization token",
                        "name": "Authorization",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "record_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Record",
                        "schema": {
                            "$ref": "#/definitions/moderation.UsageRecord"
                        }
                    },
                    "400": {
                        "description": "Invalid record_id",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Record not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/moderation/users/{user_id}/violations": {
            "get": {
                "description": "Returns the rolling violation counter and the learner's persisted records",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Moderation"
                ],
                "summary": "Get a learner's violations",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Authorization token",
                        "name": "Authorization",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Learner id",
                        "name": "user_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Number of records (default 100, max 1000)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Violations",
                        "schema": {
                            "$ref": "#/definitions/moderation.UserViolations"
                        }
                    }
                }
            }
        },
        "/api/v1/translations": {
            "post": {
                "description": "Validates the text and, when it passes, translates it with the configured provider",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Translations"
                ],
                "summary": "Translate learner text",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner id",
                        "name": "X-User-ID",
                        "in": "header"
                    },
                    {
                        "description": "Translation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.TranslationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Translation",
                        "schema": {
                            "$ref": "#/definitions/response.TranslationOutput"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "422": {
                        "description": "Blocked by moderation",
                        "schema": {
                            "$ref": "#/definitions/response.BlockedOutput"
                        }
                    },
                    "502": {
                        "description": "Translation provider failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "All dependencies reachable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "A dependency is down",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Version"
                ],
                "summary": "Get console version",
                "responses": {
                    "200": {
                        "description": "Version information",
                        "schema": {
                            "$ref": "#/definitions/version.Info"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "moderation.Category": {
            "type": "string",
            "enum": [
                "violence",
                "terrorism",
                "hate_speech",
                "drugs",
                "sexual",
                "profanity"
            ],
            "x-enum-varnames": [
                "CategoryViolence",
                "CategoryTerrorism",
                "CategoryHateSpeech",
                "CategoryDrugs",
                "CategorySexual",
                "CategoryProfanity"
            ]
        },
        "moderation.Reason": {
            "type": "string",
            "enum": [
                "empty",
                "too_long",
                "inappropriate_content"
            ],
            "x-enum-varnames": [
                "ReasonEmpty",
                "ReasonTooLong",
                "ReasonInappropriateContent"
            ]
        },
        "moderation.ValidationResult": {
            "type": "object",
            "properties": {
                "is_valid": {
                    "type": "boolean"
                },
                "reason": {
                    "$ref": "#/definitions/moderation.Reason"
                },
                "error_message": {
                    "type": "string"
                },
                "detected_words": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "category": {
                    "$ref": "#/definitions/moderation.Category"
                }
            }
        },
        "moderation.UsageRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "context": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "detected_words": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "category": {
                    "$ref": "#/definitions/moderation.Category"
                },
                "user_id": {
                    "type": "string"
                },
                "browser": {
                    "type": "string"
                },
                "os": {
                    "type": "string"
                },
                "device": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "moderation.HighRiskUser": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "last_seen": {
                    "type": "string"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/moderation.Category"
                    }
                }
            }
        },
        "moderation.UserViolations": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "string"
                },
                "rolling_count": {
                    "type": "integer"
                },
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/moderation.UsageRecord"
                    }
                }
            }
        },
        "request.ValidateContentRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "context": {
                    "description": "Free-form submission context, at most 64 characters. Defaults to general.",
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "record_profanity": {
                    "type": "boolean"
                }
            }
        },
        "request.TranslationRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "source_language": {
                    "type": "string"
                },
                "target_language": {
                    "type": "string"
                }
            }
        },
        "request.FileTranslationRequest": {
            "type": "object",
            "properties": {
                "file_name": {
                    "type": "string"
                },
                "extracted_text": {
                    "type": "string"
                },
                "source_language": {
                    "type": "string"
                },
                "target_language": {
                    "type": "string"
                }
            }
        },
        "request.DetectLanguageRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "response.TranslationOutput": {
            "type": "object",
            "properties": {
                "translated_text": {
                    "type": "string"
                },
                "detected_source_language": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                }
            }
        },
        "response.DetectLanguageOutput": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string"
                }
            }
        },
        "response.BlockedOutput": {
            "type": "object",
            "properties": {
                "blocked": {
                    "type": "boolean"
                },
                "show_dialog": {
                    "type": "boolean"
                },
                "reason": {
                    "$ref": "#/definitions/moderation.Reason"
                },
                "error_message": {
                    "type": "string"
                },
                "detected_words": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "category": {
                    "$ref": "#/definitions/moderation.Category"
                }
            }
        },
        "response.RecordsOutput": {
            "type": "object",
            "properties": {
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/moderation.UsageRecord"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                }
            }
        },
        "response.HighRiskUsersOutput": {
            "type": "object",
            "properties": {
                "scanned": {
                    "type": "integer"
                },
                "threshold": {
                    "type": "integer"
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/moderation.HighRiskUser"
                    }
                },
                "window": {
                    "type": "integer"
                }
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "app_name": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "build_date": {
                    "type": "string"
                },
                "go_version": {
                    "type": "string"
                },
                "platform": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.4.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PolyglAI Console API",
	Description:      "Content validation, translation and moderation review API for the PolyglAI learner dashboard and admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
