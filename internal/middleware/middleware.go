// Package middleware contains the Echo middleware stack: request IDs,
// request-scoped loggers, tracing, CORS, recovery, and the global
// error handler that funnels every error into the errs envelope.
package middleware
