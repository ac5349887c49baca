package setup

import (
	stderrors "errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/clitools/pkg/errors"
	"github.com/arthur-debert/clitools/pkg/logging"
	"github.com/arthur-debert/clitools/pkg/settings"
	"github.com/spf13/afero"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Placeholders are the literal strings shipped in the template files.
type Placeholders struct {
	ModulePath  string
	Name        string
	DisplayName string
}

// Options describes one setup run.
type Options struct {
	// Root is the project root; Files and PackageDir are relative to it.
	Root string
	// Name is the new project, binary and package directory name.
	Name string
	// DisplayName defaults to Name.
	DisplayName string
	// ModulePath defaults to the placeholder module path with its last
	// element replaced by Name.
	ModulePath string

	// Files are rewritten in order and must exist.
	Files []string
	// Dirs are walked for files whose extension is in Extensions. Missing
	// directories are skipped.
	Dirs       []string
	Extensions []string

	PackageDir   string
	Placeholders Placeholders

	// DryRun computes the result without touching the filesystem.
	DryRun bool
}

// FromSettings fills the file list and placeholders from settings.
func FromSettings(s settings.Setup) Options {
	return Options{
		Files:      append([]string(nil), s.Files...),
		Dirs:       append([]string(nil), s.Dirs...),
		Extensions: append([]string(nil), s.Extensions...),
		PackageDir: s.PackageDir,
		Placeholders: Placeholders{
			ModulePath:  s.ModulePath,
			Name:        s.Name,
			DisplayName: s.DisplayName,
		},
	}
}

// Replacement is one literal substitution.
type Replacement struct {
	Old string
	New string
}

// FileChange records the substitutions made in one file.
type FileChange struct {
	Path         string
	Replacements int
}

// Result summarises a setup run.
type Result struct {
	Root        string
	Files       []FileChange
	RenamedFrom string
	RenamedTo   string
	DryRun      bool
}

// TotalReplacements sums the replacements over all files.
func (r *Result) TotalReplacements() int {
	total := 0
	for _, f := range r.Files {
		total += f.Replacements
	}
	return total
}

// ValidateName checks that name can be used as a Go package directory and binary name.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "project name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrInvalidInput,
			"project name %q must start with a lowercase letter and contain only lowercase letters, digits, '-' or '_'", name).
			WithDetail("name", name)
	}
	return nil
}

// Replacements returns the substitutions for opts, longest placeholder first
// so that a placeholder containing another one is matched whole. Besides the
// three placeholders, the upper-case name (see UpperName) is replaced too.
func Replacements(opts Options) []Replacement {
	pairs := []Replacement{
		{Old: opts.Placeholders.ModulePath, New: opts.ModulePath},
		{Old: opts.Placeholders.Name, New: opts.Name},
		{Old: opts.Placeholders.DisplayName, New: opts.DisplayName},
		{Old: UpperName(opts.Placeholders.Name), New: UpperName(opts.Name)},
	}

	seen := make(map[string]bool)
	var reps []Replacement
	for _, p := range pairs {
		if p.Old == "" || p.Old == p.New || seen[p.Old] {
			continue
		}
		seen[p.Old] = true
		reps = append(reps, p)
	}
	sort.SliceStable(reps, func(i, j int) bool {
		return len(reps[i].Old) > len(reps[j].Old)
	})
	return reps
}

// UpperName is the form of name used in environment variable prefixes and
// the man page title: my-tool becomes MY_TOOL.
func UpperName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), "-", "_")
}

// Apply replaces every placeholder occurrence in content in a single
// left-to-right pass, so replaced text is never rewritten again.
// It returns the new content and the number of replacements.
func Apply(content string, reps []Replacement) (string, int) {
	if len(reps) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))
	count := 0

	for i := 0; i < len(content); {
		matched := false
		for _, r := range reps {
			if strings.HasPrefix(content[i:], r.Old) {
				b.WriteString(r.New)
				i += len(r.Old)
				count++
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(content[i])
			i++
		}
	}
	return b.String(), count
}

// Run rewrites the template files and renames the package directory.
//
// Every file is read and the rename target is checked before anything is
// written, so a missing template or an existing target leaves the project
// untouched.
func Run(fs afero.Fs, opts Options) (*Result, error) {
	logger := logging.GetLogger("setup")
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	opts, err := complete(opts)
	if err != nil {
		return nil, err
	}
	reps := Replacements(opts)

	result := &Result{Root: opts.Root, DryRun: opts.DryRun}

	type pending struct {
		path    string
		content string
		mode    os.FileMode
	}
	var writes []pending

	files, err := collectFiles(fs, opts)
	if err != nil {
		return nil, err
	}

	for _, rel := range files {
		full := filepath.Join(opts.Root, filepath.FromSlash(rel))

		info, err := fs.Stat(full)
		if err != nil {
			return nil, statError(err, "template file", rel, full)
		}
		if info.IsDir() {
			return nil, errors.Newf(errors.ErrFileAccess, "template file %s is a directory", rel).
				WithDetail("path", full)
		}

		data, err := afero.ReadFile(fs, full)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read template file %s", rel).
				WithDetail("path", full)
		}

		updated, count := Apply(string(data), reps)
		result.Files = append(result.Files, FileChange{Path: rel, Replacements: count})
		logger.Debug().Str("file", rel).Int("replacements", count).Msg("Planned file rewrite")

		if count > 0 {
			writes = append(writes, pending{path: full, content: updated, mode: info.Mode().Perm()})
		}
	}

	var from, to string
	if opts.PackageDir != "" {
		fromRel := filepath.ToSlash(opts.PackageDir)
		toRel := path.Join(path.Dir(fromRel), opts.Name)

		if fromRel != toRel {
			from = filepath.Join(opts.Root, filepath.FromSlash(fromRel))
			to = filepath.Join(opts.Root, filepath.FromSlash(toRel))

			info, err := fs.Stat(from)
			if err != nil {
				return nil, statError(err, "package directory", fromRel, from)
			}
			if !info.IsDir() {
				return nil, errors.Newf(errors.ErrFileNotFound, "package directory %s not found", fromRel).
					WithDetail("path", from)
			}
			if exists, _ := afero.Exists(fs, to); exists {
				return nil, errors.Newf(errors.ErrAlreadyExists, "cannot rename %s: %s already exists", fromRel, toRel).
					WithDetail("path", to)
			}
			result.RenamedFrom = fromRel
			result.RenamedTo = toRel
		}
	}

	if opts.DryRun {
		logger.Info().Int("files", len(result.Files)).Msg("Dry run, no changes written")
		return result, nil
	}

	for _, w := range writes {
		if err := afero.WriteFile(fs, w.path, []byte(w.content), w.mode); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", w.path).
				WithDetail("path", w.path)
		}
		logger.Info().Str("path", w.path).Msg("Rewrote template file")
	}

	if from != "" {
		if err := fs.Rename(from, to); err != nil {
			return result, errors.Wrapf(err, errors.ErrRename, "failed to rename %s to %s", from, to).
				WithDetail("from", from).
				WithDetail("to", to)
		}
		logger.Info().Str("from", from).Str("to", to).Msg("Renamed package directory")
	}

	return result, nil
}

// collectFiles returns opts.Files followed by the files found under
// opts.Dirs, sorted and without duplicates. Paths are slash separated and
// relative to the root.
func collectFiles(fs afero.Fs, opts Options) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, rel := range opts.Files {
		rel = path.Clean(filepath.ToSlash(rel))
		if !seen[rel] {
			seen[rel] = true
			files = append(files, rel)
		}
	}

	if len(opts.Extensions) == 0 {
		return files, nil
	}

	var walked []string
	for _, dir := range opts.Dirs {
		root := filepath.Join(opts.Root, filepath.FromSlash(dir))
		if exists, _ := afero.DirExists(fs, root); !exists {
			continue
		}

		err := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !hasExtension(p, opts.Extensions) {
				return nil
			}
			rel, err := filepath.Rel(opts.Root, p)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if !seen[rel] {
				seen[rel] = true
				walked = append(walked, rel)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot scan %s", dir).
				WithDetail("path", root)
		}
	}
	sort.Strings(walked)

	return append(files, walked...), nil
}

// statError maps a failed Stat to FILE_NOT_FOUND when the path is missing
// and FILE_ACCESS otherwise.
func statError(err error, what, rel, full string) error {
	if stderrors.Is(err, iofs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrFileNotFound, "%s %s not found", what, rel).
			WithDetail("path", full)
	}
	return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s %s", what, rel).
		WithDetail("path", full)
}

func hasExtension(p string, extensions []string) bool {
	ext := filepath.Ext(p)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// complete validates opts and fills the derived defaults.
func complete(opts Options) (Options, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if err := ValidateName(opts.Name); err != nil {
		return opts, err
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.DisplayName == "" {
		opts.DisplayName = opts.Name
	}
	if opts.ModulePath == "" {
		opts.ModulePath = DefaultModulePath(opts.Placeholders.ModulePath, opts.Name)
	}
	if opts.ModulePath == "" {
		return opts, errors.New(errors.ErrInvalidInput, "module path cannot be empty")
	}
	return opts, nil
}

// DefaultModulePath swaps the last element of placeholder for name:
// github.com/arthur-debert/clitools becomes github.com/arthur-debert/<name>.
func DefaultModulePath(placeholder, name string) string {
	if placeholder == "" {
		return name
	}
	dir := path.Dir(placeholder)
	if dir == "." {
		return name
	}
	return fmt.Sprintf("%s/%s", dir, name)
}
