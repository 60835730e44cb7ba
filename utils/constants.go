package utils

import (
	"time"
)

// ContextKey is the type for request-scoped values stored on a context
type ContextKey string

// Request context keys populated by handlers
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// HTTP timing constants
const (
	// DefaultRequestTimeout bounds a single search or lookup request
	DefaultRequestTimeout = 30 * time.Second

	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)
