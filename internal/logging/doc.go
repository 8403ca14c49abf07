// Package logging builds the slog loggers used across scorecard.
//
// Two handler formats are supported: a single-line key=value console format
// for humans and a JSON format for machine consumption. Output can fan out to
// multiple sinks (a run's log file plus stderr) through a single writer.
// NewFromConfig wires the format, level, and log directory from the
// application config so commands construct loggers in one call.
//
// The package also centralizes structured field names (component, team,
// correlation_id, ...) and context helpers that stamp a run's correlation ID
// onto every record, keeping log lines greppable across runs.
package logging
