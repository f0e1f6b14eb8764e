package mongo

import "errors"

var (
	// ErrConnectFailed is returned when all connection attempts are exhausted.
	ErrConnectFailed = errors.New("failed to connect to mongo")

	// ErrHealthcheckFailed is returned when a connectivity probe fails.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
