package utils

import "time"

// Application constants
const (
	AppName    = "RideAdmin"
	AppVersion = "1.0.0"

	DefaultCurrency = "EGP"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	AdminTokenTTL     = 24 * time.Hour
	PasswordMinLength = 8

	// Reporting defaults
	DefaultStatsWindowDays = 30
	DefaultTrendDays       = 7
	DefaultActivityLimit   = 10

	// Cache TTLs
	OverviewCacheTTL = 1 * time.Minute
	StatsCacheTTL    = 5 * time.Minute
)

// HTTP status values used in the response envelope
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgInternalServer     = "internal server error"
	ErrMsgValidationFailed   = "validation failed"
	ErrMsgNotFound           = "not found"
)
