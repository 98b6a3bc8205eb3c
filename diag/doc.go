// Package diag provides the structured logging surface the CLI emits
// progress records through (package worker does not log), a thin wrapper over
// github.com/tliron/commonlog configured the same way the language
// server in this corpus configures it: commonlog.Configure(verbosity,
// nil) at process start, then one named commonlog.Logger per
// subsystem.
package diag
