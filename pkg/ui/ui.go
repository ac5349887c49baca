// Package ui holds the terminal-facing helpers shared by clitools commands:
// output format detection, markdown rendering and interactive prompts.
//
// Styles live in the ui/styles subpackage.
package ui
