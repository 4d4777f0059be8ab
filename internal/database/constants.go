package database

import "time"

const (
	// DefaultMaxConnections is the default maximum number of pool connections
	DefaultMaxConnections = 25

	// DefaultMinConnections is the minimum number of idle pool connections
	DefaultMinConnections = 2

	// DefaultMaxConnIdleTime is how long a connection may sit idle
	DefaultMaxConnIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime is the maximum lifetime of a pooled connection
	DefaultMaxConnLifetime = time.Hour
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"

	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
)
