// Package logging wraps zerolog for clitools.
//
// SetupLogger is called once per command invocation from the root command's
// PersistentPreRun. Console output goes to stderr through zerolog's
// ConsoleWriter; every entry is also appended to a log file under the XDG
// state directory unless file logging is disabled in the settings.
//
// Packages obtain a component logger with GetLogger("config"), which tags
// entries with a component field.
package logging
