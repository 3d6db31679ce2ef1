package types

// ContextUserKey is the gin context key holding the caller's Identity.
const ContextUserKey = "user"

// DefaultOrigins is the CORS allow list when CORS_ORIGINS is unset.
var DefaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}
