package log

// Logger modes and encodings accepted in ZapConfig.
const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key holding the request ID added to log lines.
type RequestIDKey struct{}
