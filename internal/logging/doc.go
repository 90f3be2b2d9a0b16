// Package logging builds the zerolog loggers used across quickconvert.
//
// Loggers are configured once per process from config and CLI flags, attached
// to the command context, and retrieved with FromContext. Each invocation
// carries a ULID trace id so log lines from one run can be correlated.
package logging
