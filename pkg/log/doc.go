/*
Package log provides the global structured logger for the
application, built on zerolog.

Init configures level and output format once at startup (console
writer by default, JSON with --log-json). Packages derive child
loggers via WithComponent and the domain-specific helpers.
*/
package log
