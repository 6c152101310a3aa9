package common

type contextKey string

const (
	RequestIDKey      contextKey = "request_id"
	UserIDContextKey  contextKey = "user_id"
	ClientInfoKey     contextKey = "client_info"
	AdminClaimsKey    contextKey = "admin_claims"
	LatencyContextKey contextKey = "__execution_time"
)
