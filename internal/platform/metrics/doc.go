// Package metrics exposes Prometheus instrumentation for the HTTP server and
// the area calculations. Every Metrics value owns its own registry, so
// several instances can coexist in tests.
package metrics
