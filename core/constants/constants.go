package constants

import "time"

// Timeouts
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
	UploadTimeout         = 60 * time.Second
)

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRawToken  = "raw_token"
)

// Token
const (
	ScopeTokenAccess = "access"
	TokenCookieName  = "token"
	AccessTokenTTL   = 24 * time.Hour
)

// Roles
const (
	RoleUser  = "usuario"
	RoleAdmin = "admin"
)

// Redis keys
const (
	RedisKeyVerificationCode = "verification_code:"
	RedisKeyTokenBlacklist   = "token_blacklist:"
	RedisKeyCategories       = "categories:all"
)

// TTLs
const (
	VerificationCodeTTL = 10 * time.Minute
	CategoryCacheTTL    = 5 * time.Minute
)

// Uploads
const (
	MaxImageSize       = 5 << 20
	MaxPDFSize         = 10 << 20
	FolderEvents       = "eventos"
	FolderResources    = "recursos"
	FolderProfilePhoto = "perfiles"
)

// Pagination
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// Database
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 5 // in minutes
	DatabaseSSLMode         = "disable"
	PgUniqueViolation       = "23505"
)

// Worker
const (
	QueueDefault       = "default"
	QueueCritical      = "critical"
	ExpireEventsCron   = "@hourly"
	WorkerConcurrency  = 10
	TaskMaxRetry       = 3
	VerificationCodeLn = 6
)
