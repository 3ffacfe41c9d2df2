package constants

import "time"

// Database pool
const (
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 2
	DatabaseConnMaxLifetime = 30 // minutes
)

// Timeouts
const (
	DefaultTimeout        = 5 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Sessions
const (
	SessionCookieName = "er_session"
	SessionTTL        = 24 * time.Hour
	SessionIDLength   = 21
)

// Redis key prefixes
const (
	RedisKeySession      = "session:"
	RedisKeyUserSessions = "user_sessions:"
	RedisKeyLoginAttempt = "login:"
)

// Login throttling
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Account roles and statuses
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// List pagination
const (
	DefaultPageSize = 15
	SurveyPageSize  = 20
)
