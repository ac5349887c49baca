// Package setup turns a fresh copy of the clitools template into a new
// project.
//
// It performs literal substitution of three placeholders (module path,
// project name and display name) across a fixed list of template files and
// renames the package directory under cmd/ to the new project name. The list
// and the placeholders come from pkg/settings.
//
// Substitution is a single pass with the longest placeholder tried first, so
// "github.com/arthur-debert/clitools" is replaced as a module path rather
// than having its trailing "clitools" rewritten as a name.
package setup
