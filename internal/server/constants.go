package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Metrics server starting"
	LogMsgServerStopped    = "Metrics server stopped"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff            = "nosniff"
	HeaderValueDeny               = "DENY"
	HeaderValueReferrerNoReferrer = "no-referrer"
)

// Routes
const (
	PathHealthz = "/healthz"
	PathMetrics = "/metrics"
)

// Timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	HealthzBody       = "ok"
)
