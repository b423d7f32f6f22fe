// Package logging assembles the structured slog loggers used across the
// transcript pipeline.
//
// It centralizes level and format plumbing, exposes typed attribute helpers
// and shared field-name constants so the cache, the domain model, and the
// CLI emit records with the same shape, and provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
