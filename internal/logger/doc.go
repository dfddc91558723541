// Package logger is a process-wide facade over a zap sugared logger.
// Loggers can be attached to a context with extra key-value pairs;
// the level is shared and can be changed at runtime.
package logger
