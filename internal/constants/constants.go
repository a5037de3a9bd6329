package constants

import "time"

const (
	DatabaseTimeout     = 5 * time.Second
	DatabasePingTimeout = 10 * time.Second
	HealthCheckTimeout  = 2 * time.Second
)

// The source database is shared with the game servers, keep the footprint small.
const (
	DBMaxOpenConns    = 5
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// RedactedErrorMessage is the only error detail ever returned to RPC callers.
const RedactedErrorMessage = "Unknown error. See the server log for more details."
