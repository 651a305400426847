package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Dashboard API",
        "description": "Backend for the school administration dashboard",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Dashboard", "description": "Summary and activity feeds"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Attendance", "description": "Daily roll call"},
        {"name": "Behavior", "description": "Violation records"},
        {"name": "Announcements", "description": "School announcements"},
        {"name": "Schedule", "description": "Weekly timetable"},
        {"name": "Reports", "description": "Aggregated reports and downloads"},
        {"name": "Auth", "description": "Dashboard login"}
    ],
    "paths": {
        "/dashboard/attendance-summary": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Today's attendance headline counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AttendanceSummary"}}
                }
            }
        },
        "/dashboard/recent-activities": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Latest attendance and violation events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/RecentActivity"}}}
                }
            }
        },
        "/dashboard/recent-announcements": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Newest announcements, at most three",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Announcement"}}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List students joined with attendance for a date",
                "parameters": [
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/RollCallEntry"}}}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Save a student's attendance for a date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveAttendanceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AttendanceRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/behavior": {
            "get": {
                "tags": ["Behavior"],
                "summary": "List violations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/BehaviorViolation"}}}
                }
            },
            "post": {
                "tags": ["Behavior"],
                "summary": "Record a violation",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateViolationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/BehaviorViolation"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/behavior/{id}": {
            "delete": {
                "tags": ["Behavior"],
                "summary": "Delete a violation",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Announcement"}}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Publish an announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Announcement"}}
                }
            }
        },
        "/announcements/{id}": {
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete an announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Weekly timetable for a class/section",
                "parameters": [
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ClassSchedule"}}
                }
            }
        },
        "/reports/{type}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Aggregate a report over a date window",
                "parameters": [
                    {"name": "type", "in": "path", "required": true, "type": "string", "enum": ["attendance", "behavior", "statistics"]},
                    {"name": "period", "in": "query", "type": "string", "enum": ["day", "week", "month"]},
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"},
                    {"name": "start", "in": "query", "type": "string"},
                    {"name": "end", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AttendanceReport"}},
                    "400": {"description": "Unknown report type", "schema": {"$ref": "#/definitions/APIError"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/reports/attendance/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the attendance report as PDF or CSV",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "csv"], "default": "pdf"},
                    {"name": "period", "in": "query", "type": "string", "enum": ["day", "week", "month"]},
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"}
                ],
                "produces": ["application/pdf", "text/csv"],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and receive a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "className": {"type": "string"},
                "section": {"type": "string"}
            }
        },
        "AttendanceRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "studentId": {"type": "integer"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["present", "absent", "late", "excused"]},
                "notes": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "RollCallEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "className": {"type": "string"},
                "section": {"type": "string"},
                "attendanceStatus": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "AttendanceSummary": {
            "type": "object",
            "properties": {
                "totalStudents": {"type": "integer"},
                "presentCount": {"type": "integer"},
                "absentCount": {"type": "integer"},
                "lateCount": {"type": "integer"}
            }
        },
        "BehaviorViolation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "studentId": {"type": "integer"},
                "studentName": {"type": "string"},
                "violationType": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "lessonPeriod": {"type": "string"},
                "severity": {"type": "string", "enum": ["low", "medium", "high"]},
                "createdAt": {"type": "string"}
            }
        },
        "Announcement": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string", "x-nullable": true},
                "importance": {"type": "string", "enum": ["normal", "important", "urgent"]},
                "createdAt": {"type": "string"}
            }
        },
        "ClassSchedule": {
            "type": "object",
            "properties": {
                "className": {"type": "string"},
                "section": {"type": "string"},
                "periods": {"type": "array", "items": {"type": "object"}},
                "days": {"type": "array", "items": {"type": "object"}}
            }
        },
        "RecentActivity": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "type": {"type": "string", "enum": ["attendance", "late", "absence", "excused", "violation"]},
                "description": {"type": "string"},
                "studentName": {"type": "string"},
                "time": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "AttendanceReport": {
            "type": "object",
            "properties": {
                "totalStudents": {"type": "integer"},
                "presentCount": {"type": "integer"},
                "absentCount": {"type": "integer"},
                "lateCount": {"type": "integer"},
                "date": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "className": {"type": "string"},
                "section": {"type": "string"}
            }
        },
        "SaveAttendanceRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["present", "absent", "late", "excused"]},
                "notes": {"type": "string"}
            },
            "required": ["studentId", "date", "status"]
        },
        "CreateViolationRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "violationType": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "lessonPeriod": {"type": "string"},
                "severity": {"type": "string", "enum": ["low", "medium", "high"]}
            },
            "required": ["studentId", "violationType", "date", "severity"]
        },
        "CreateAnnouncementRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "importance": {"type": "string", "enum": ["normal", "important", "urgent"]}
            },
            "required": ["title", "content", "startDate", "importance"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expiresAt": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
