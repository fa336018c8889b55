package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const gitignoreHeader = "# CarbonTrace project-local data (auto-generated)\n# Config is tracked; exports, logs and secrets are not.\n"

// projectIgnores are ignored in every project-local .carbontrace directory.
//
//nolint:gochecknoglobals // Read-only list.
var projectIgnores = []string{"exports/", "*.log", ".env"}

// GitignoreContent returns the .gitignore of a project-local .carbontrace
// directory. extra entries (such as a custom export directory) follow the
// defaults; blanks and duplicates are dropped.
func GitignoreContent(extra ...string) string {
	var b strings.Builder
	b.WriteString(gitignoreHeader)
	seen := make(map[string]bool, len(projectIgnores)+len(extra))
	for _, entry := range append(append([]string{}, projectIgnores...), extra...) {
		entry = strings.TrimSpace(entry)
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return b.String()
}

// EnsureGitignore writes GitignoreContent(extra...) to dir/.gitignore unless
// the file exists. It reports whether the file was created.
func EnsureGitignore(dir string, extra ...string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case !os.IsNotExist(err):
		return false, fmt.Errorf("checking .gitignore at %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	//nolint:gosec // .gitignore is meant to be world-readable.
	if err := os.WriteFile(path, []byte(GitignoreContent(extra...)), 0o644); err != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", path, err)
	}
	return true, nil
}

// exportIgnore returns the .gitignore entry for a relative export directory,
// or "" when the directory lies outside the project.
func exportIgnore(exportDir string) string {
	if exportDir == "" || filepath.IsAbs(exportDir) {
		return ""
	}
	clean := filepath.ToSlash(filepath.Clean(exportDir))
	if clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return ""
	}
	return clean + "/"
}

// EnsureProjectGitignore writes the .gitignore of projectDir, adding the
// configured export directory when it is relative.
func (c *Config) EnsureProjectGitignore(projectDir string) (bool, error) {
	return EnsureGitignore(projectDir, exportIgnore(c.Data.ExportDir))
}
