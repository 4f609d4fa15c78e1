package server

import "time"

// Prediction and detail routes fan out to several upstream calls, so writes get a wider budget
// than reads.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 45 * time.Second
	idleTimeout       = 90 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 15 * time.Second
