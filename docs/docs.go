package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "AI study planning assistant with conversational plan building, conflict detection, and Google Calendar export.",
        "title": "Study Plan Assistant API",
        "version": "1"
    },
    "host": "localhost:8080",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy"}
                }
            }
        },
        "/api/v1/chat/messages": {
            "post": {
                "tags": ["Chat"],
                "summary": "Send a chat message",
                "description": "Sends a user message to the assistant. When the reply contains a study plan, the plan is parsed and held pending approval.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "header",
                        "name": "X-User-ID",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {
                                    "type": "string",
                                    "example": "Plan my week, I have a physics exam Friday"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Assistant reply, possibly with a pending plan"},
                    "409": {"description": "A previous message is still being processed"},
                    "503": {"description": "Assistant unavailable"}
                }
            }
        },
        "/api/v1/chat/plan/approve": {
            "post": {
                "tags": ["Chat"],
                "summary": "Approve the pending plan",
                "description": "Commits the pending plan (or a subset of its tasks) to the schedule.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "header",
                        "name": "X-User-ID",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": false,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "indexes": {"type": "array", "items": {"type": "integer"}},
                                "force": {"type": "boolean"},
                                "export_to_calendar": {"type": "boolean"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Tasks committed"},
                    "404": {"description": "No pending plan"},
                    "409": {"description": "Plan conflicts with existing schedule"}
                }
            }
        },
        "/api/v1/chat/history": {
            "get": {
                "tags": ["Chat"],
                "summary": "Get conversation history",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Conversation transcript"}
                }
            },
            "delete": {
                "tags": ["Chat"],
                "summary": "Reset the conversation",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Conversation cleared"}
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true},
                    {"in": "query", "name": "date", "type": "string", "description": "Filter by date (YYYY-MM-DD)"}
                ],
                "responses": {
                    "200": {"description": "Tasks for the user"}
                }
            }
        },
        "/api/v1/tasks/conflicts": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Check a time window for conflicts",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true},
                    {"in": "query", "name": "date", "type": "string", "required": true},
                    {"in": "query", "name": "start_time", "type": "string", "required": true},
                    {"in": "query", "name": "end_time", "type": "string", "required": true},
                    {"in": "query", "name": "exclude_id", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Overlapping tasks, if any"}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true},
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated task"},
                    "404": {"description": "Task not found"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true},
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Task deleted"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/api/v1/schedule/classes": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get semester classes",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Weekly classes"}}
            },
            "put": {
                "tags": ["Schedule"],
                "summary": "Replace semester classes",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Classes saved"}}
            }
        },
        "/api/v1/schedule/free-time": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get free-time windows",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Free-time windows"}}
            },
            "put": {
                "tags": ["Schedule"],
                "summary": "Replace free-time windows",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Free time saved"}}
            }
        },
        "/api/v1/schedule/preferences": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get study preferences",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Study preferences"}}
            },
            "put": {
                "tags": ["Schedule"],
                "summary": "Replace study preferences",
                "parameters": [
                    {"in": "header", "name": "X-User-ID", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "Preferences saved"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Study Plan Assistant API",
	Description:      "AI study planning assistant with conversational plan building, conflict detection, and Google Calendar export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
